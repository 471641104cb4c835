package gamemaster

import (
	"fmt"

	"copsrobber/game"
	"copsrobber/searcher"
	"copsrobber/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NoCop is reported by SelectedCop while no cop has been picked this turn.
const NoCop = -1

type Option func(s *Session)

// WithRules replaces the standard hop and round limits.
func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

// WithRobberSearcher replaces the greedy robber decision procedure.
func WithRobberSearcher(robberAI searcher.Searcher) Option {
	return func(s *Session) {
		if robberAI != nil {
			s.robberAI = robberAI
		}
	}
}

// Session is one game of cops and robber. It owns the board and the three
// pieces, and it is the only thing that moves them: callers forward user
// input and read back the derived results. A session is not safe for
// concurrent use; every call runs to completion before the next one.
type Session struct {
	ID string

	rules    game.Rules
	robberAI searcher.Searcher
	log      zerolog.Logger

	initialized bool
	board       *game.Board
	cops        [game.NumCops]game.Piece
	robber      game.Piece
	startCops   [game.NumCops]int
	startRobber int

	state       game.TurnState
	outcome     game.Outcome
	round       int
	selectedCop int
	reach       *game.Reachability // Legal destinations of the piece in play, nil between moves

	updates []Update
}

func NewSession(options ...Option) *Session {
	id := uuid.NewString()
	s := &Session{ // Default values
		ID:          id,
		rules:       game.NewStandardRules(),
		robberAI:    searcher.NewGreedy(),
		log:         log.With().Str("session", id).Logger(),
		selectedCop: NoCop,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Initialize builds a gridSize x gridSize board, places the pieces and starts
// a new game. It may be called again at any time to start over on a new board.
func (s *Session) Initialize(gridSize int, cops [game.NumCops]int, robber int) error {
	board, err := game.NewBoard(gridSize)
	if err != nil {
		return fmt.Errorf("failed to build board: %w", err)
	}

	placements := append(cops[:], robber)
	for i, tile := range placements {
		if !board.Contains(tile) {
			return fmt.Errorf("%w: %d on a %dx%d board", game.ErrTileOutOfRange, tile, gridSize, gridSize)
		}
		if utils.FindIndex(placements[:i], tile) >= 0 {
			return fmt.Errorf("%w: tile %d", game.ErrTilesOverlap, tile)
		}
	}

	s.board = board
	s.startCops = cops
	s.startRobber = robber
	s.initialized = true
	s.reset()
	s.state = game.Init
	s.record(game.InitializeAction, nil)

	s.log.Info().Msgf("new game on a %dx%d board: cops on %v, robber on %d", gridSize, gridSize, cops, robber)
	return nil
}

// reset puts every piece back on its starting tile and clears the round
// counter, the outcome and any pending selection.
func (s *Session) reset() {
	for i := range s.cops {
		s.cops[i] = game.Piece{ID: game.CopPiece(i), Tile: s.startCops[i]}
	}
	s.robber = game.Piece{ID: game.Robber, Tile: s.startRobber}
	s.round = 0
	s.outcome = game.InProgress
	s.selectedCop = NoCop
	s.reach = nil
}

// SelectCop makes cop c the piece to move and computes where it may go.
// It is ignored unless the cops are choosing a piece.
func (s *Session) SelectCop(c int) (bool, error) {
	if err := s.checkInitialized(); err != nil {
		return false, err
	}
	if c < 0 || c >= game.NumCops {
		return false, fmt.Errorf("%w: %d", game.ErrInvalidCop, c)
	}
	if !Accepts(s.state, game.SelectCopAction) {
		return false, nil
	}

	s.selectedCop = c
	s.reach = s.copReach(c)
	s.state = game.CopSelected
	s.record(game.SelectCopAction, nil)

	s.log.Debug().Msgf("selected %s on tile %d, %d destinations", s.cops[c].ID, s.cops[c].Tile, len(s.reach.Selectable()))
	return true, nil
}

// SelectTile reacts to a click on tile t. With a cop selected, a selectable
// tile moves the cop there and a cop landing on the robber ends the game.
// After a move it acknowledges the move and returns to Init. The returned
// bool tells whether the click changed anything.
func (s *Session) SelectTile(t int) (bool, error) {
	if err := s.checkInitialized(); err != nil {
		return false, err
	}
	if !s.board.Contains(t) {
		return false, fmt.Errorf("%w: %d", game.ErrTileOutOfRange, t)
	}
	if !Accepts(s.state, game.SelectTileAction) {
		return false, nil
	}

	switch s.state {
	case game.CopSelected:
		if !s.reach.IsSelectable(t) {
			return false, nil
		}

		cop := &s.cops[s.selectedCop]
		move := game.Move{
			Piece: cop.ID,
			From:  cop.Tile,
			To:    t,
			Path:  s.reach.Path(t),
		}
		cop.Tile = t
		s.reach.MarkCurrent(t)

		if t == s.robber.Tile {
			s.endGame(game.CopsWin)
		} else {
			s.state = game.TileSelected
		}
		s.record(game.SelectTileAction, &move)

		s.log.Debug().Msgf("%s moved %d -> %d", move.Piece, move.From, move.To)
		return true, nil

	case game.TileSelected, game.RobberTurn:
		s.reach = nil
		s.selectedCop = NoCop
		s.state = game.Init
		s.record(game.SelectTileAction, nil)
		return true, nil
	}

	return false, nil
}

// FinishTurn ends the current half of the round. After a cop move the robber
// replies immediately; after the robber's move the round counter advances
// and the game ends once the round limit is reached.
func (s *Session) FinishTurn() (bool, error) {
	if err := s.checkInitialized(); err != nil {
		return false, err
	}
	if !Accepts(s.state, game.FinishTurnAction) {
		return false, nil
	}

	switch s.state {
	case game.TileSelected:
		s.reach = nil
		s.selectedCop = NoCop
		s.state = game.RobberTurn
		s.record(game.FinishTurnAction, nil)
		s.robberTurn()
		return true, nil

	case game.RobberTurn:
		s.reach = nil
		s.round++
		if s.round < s.rules.MaxRounds() {
			s.state = game.Init
		} else {
			s.endGame(game.RobberWins)
		}
		s.record(game.FinishTurnAction, nil)
		return true, nil
	}

	return false, nil
}

// robberTurn lets the robber searcher move the robber. A boxed-in robber
// stays where it is.
func (s *Session) robberTurn() {
	reach := game.Reach(s.board, s.robber.Tile, s.blocked(), s.rules.HopLimit())
	move, ok := s.robberAI.FindNextMove(s.board, reach, s.copTiles())
	if !ok {
		s.log.Debug().Msgf("robber is boxed in on tile %d", s.robber.Tile)
		return
	}

	s.robber.Tile = move.To
	s.record(game.RobberMoveAction, &move)
	s.log.Debug().Msgf("robber moved %d -> %d", move.From, move.To)
}

func (s *Session) endGame(outcome game.Outcome) {
	s.outcome = outcome
	s.state = game.End
	s.selectedCop = NoCop
	s.log.Info().Msgf("game over after %d rounds: %s", s.round, outcome)
}

// PlayAgain starts the same game over once the previous one has ended.
func (s *Session) PlayAgain() (bool, error) {
	if err := s.checkInitialized(); err != nil {
		return false, err
	}
	if !Accepts(s.state, game.PlayAgainAction) {
		return false, nil
	}

	s.state = game.Restarting
	s.record(game.PlayAgainAction, nil)

	s.reset()
	s.state = game.Init
	s.record(game.InitializeAction, nil)

	s.log.Info().Msg("restarted game")
	return true, nil
}

func (s *Session) checkInitialized() error {
	if !s.initialized {
		return game.ErrNotInitialized
	}
	return nil
}

// copReach computes where cop c may move. The robber's tile can be landed on
// to capture but not crossed.
func (s *Session) copReach(c int) *game.Reachability {
	stops := map[int]bool{s.robber.Tile: true}
	return game.ReachWithStops(s.board, s.cops[c].Tile, s.blocked(), stops, s.rules.HopLimit())
}

// blocked returns the tiles no piece may enter or cross: those held by cops.
func (s *Session) blocked() map[int]bool {
	out := make(map[int]bool, game.NumCops)
	for _, c := range s.cops {
		out[c.Tile] = true
	}
	return out
}

func (s *Session) copTiles() []int {
	out := make([]int, 0, game.NumCops)
	for _, c := range s.cops {
		out = append(out, c.Tile)
	}
	return out
}
