// meta/meta.go
package meta

// TILES_PER_ROW defines the default side length of the square board.
const TILES_PER_ROW = 5

// INITIAL_COP_A defines the default starting tile of the first cop.
const INITIAL_COP_A = 0

// INITIAL_COP_B defines the default starting tile of the second cop.
const INITIAL_COP_B = 4

// INITIAL_ROBBER defines the default starting tile of the robber.
const INITIAL_ROBBER = 12

// MAX_ROUNDS defines how many robber turns the cops have to make a capture.
const MAX_ROUNDS = 10

// HOP_LIMIT defines how many tiles a piece may travel in one move.
const HOP_LIMIT = 2

// MAX_MOVES caps a simulated game so a stuck session cannot loop forever.
const MAX_MOVES = 1000

// GAMES defines the number of simulated games per cop player in an experiment.
const GAMES = 50
