package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Writer writes experiment results as CSV sections separated by a blank line.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) WriteSummaries(summaries []Summary) error {
	header := []string{"player", "games", "cops_wins", "robber_wins", "unfinished", "mean_rounds", "mean_moves"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Player,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.CopsWins),
			strconv.Itoa(s.RobberWins),
			strconv.Itoa(s.Unfinished),
			strconv.FormatFloat(s.MeanRounds, 'f', 2, 64),
			strconv.FormatFloat(s.MeanMoves, 'f', 2, 64),
		})
	}
	return w.write("summaries", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "player", "outcome", "rounds", "moves", "start_time", "end_time", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.Player,
			r.Outcome.String(),
			strconv.Itoa(r.Rounds),
			strconv.Itoa(r.TotalMoves),
			r.StartTime.Format(time.RFC3339),
			r.EndTime.Format(time.RFC3339),
			r.Duration.String(),
		})
	}
	return w.write("game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "round", "piece", "from", "to", "hops", "candidates", "safety", "duration"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Round),
			r.Piece.String(),
			strconv.Itoa(r.From),
			strconv.Itoa(r.To),
			strconv.Itoa(r.Hops),
			strconv.Itoa(r.Candidates),
			strconv.Itoa(r.Safety),
			r.Duration.String(),
		})
	}
	return w.write("move records", header, rows)
}

func (w *Writer) write(section string, header []string, rows [][]string) error {
	writer := csv.NewWriter(w.out)

	err := writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", section, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", section, err)
	}
	_, err = io.WriteString(w.out, "\n")
	if err != nil {
		return fmt.Errorf("failed to terminate %s: %w", section, err)
	}
	return nil
}
