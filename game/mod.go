package game

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = 0
	X     Mark = 1
	O     Mark = 2
)

// Key is the canonical encoding of a board: the lexicographically smallest
// of its 8 symmetry-transformed encodings. Two boards with the same Key are
// the same game-theoretic state.
type Key string

// EmptyKey is the canonical key of the empty board.
const EmptyKey Key = "000000000"
