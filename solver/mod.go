package solver

import "tictactoe/game"

// Scores are always one of exactly three integers, from a fixed global
// perspective: positive favors X, negative favors O.
const (
	WinX = 1
	Draw = 0
	WinO = -1
)

// Move records one legal continuation from a state: the target cell, the
// resulting board encoding, the minimax score of the resulting state, and
// whether the move achieves the state's best outcome. Immutable once built.
// Pos and Board are expressed in the orientation of the physical board the
// explorer first reached for this state, which is generally not the
// canonical representative the state is keyed by.
type Move struct {
	Pos     int    `json:"pos"`
	Board   string `json:"to_board"`
	Score   int    `json:"minimax_score"`
	Optimal bool   `json:"is_optimal"`
}

// State is the solved record for one canonical non-terminal board: whose
// turn it is, the best achievable outcome for the side to move, every legal
// continuation in ascending position order, and the position of the first
// optimal move (nil when there are no legal moves). Moves and Best share
// the first-visited board orientation, not the canonical one; readers
// following a line should continue from a move's Board encoding.
type State struct {
	Turn    game.Mark `json:"turn"`
	Outcome int       `json:"best_outcome"`
	Moves   []Move    `json:"next_moves"`
	Best    *int      `json:"winning_move_pos"`
}

// Table maps every reachable canonical non-terminal board to its solved
// record. It is the sole artifact of a solve and is read-only once returned.
type Table map[game.Key]*State
