package game

import "fmt"

// Board holds the 9 cells of a 3x3 board in row-major order. Boards are
// values: applying a move returns a fresh copy, the original is never
// mutated in place.
type Board [9]Mark

// winPatterns are the 8 three-in-a-row index triples: 3 rows, 3 columns,
// 2 diagonals, scanned in that order.
var winPatterns = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// String encodes the board as a 9-digit string: 0 empty, 1 X, 2 O.
// "100020000" is X at top-left, O at center.
func (b Board) String() string {
	var buf [9]byte
	for i, cell := range b {
		buf[i] = '0' + byte(cell)
	}
	return string(buf[:])
}

// Parse decodes a 9-digit board encoding produced by Board.String.
func Parse(s string) (Board, error) {
	var b Board
	if len(s) != 9 {
		return b, fmt.Errorf("board encoding must be 9 digits, got %q", s)
	}
	for i := 0; i < 9; i++ {
		switch s[i] {
		case '0', '1', '2':
			b[i] = Mark(s[i] - '0')
		default:
			return b, fmt.Errorf("invalid cell %q at position %d in %q", s[i], i, s)
		}
	}
	return b, nil
}

// Winner returns X or O if a win pattern is filled by that mark, Empty
// otherwise. Patterns are scanned in fixed order and the first match wins;
// legal alternating play cannot fill two patterns with different marks, so
// the scan order never changes the answer for reachable boards.
func Winner(b Board) Mark {
	for _, p := range winPatterns {
		if b[p[0]] != Empty && b[p[0]] == b[p[1]] && b[p[0]] == b[p[2]] {
			return b[p[0]]
		}
	}
	return Empty
}

// IsTerminal reports whether the game is over: someone won or the board
// is full.
func IsTerminal(b Board) bool {
	if Winner(b) != Empty {
		return true
	}
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

// Player returns the mark to move, derived from cell counts: X moves first
// and players alternate, so X is to move exactly when the counts are equal.
// Assumes the board arose from legal alternating play; not validated.
func Player(b Board) Mark {
	xs, os := 0, 0
	for _, cell := range b {
		switch cell {
		case X:
			xs++
		case O:
			os++
		}
	}
	if xs == os {
		return X
	}
	return O
}

// LegalMoves returns the empty cell indices in ascending order. This
// ordering defines the move enumeration order used everywhere downstream.
func LegalMoves(b Board) []int {
	moves := make([]int, 0, 9)
	for i, cell := range b {
		if cell == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

// Apply returns a copy of the board with mark placed at pos.
func Apply(b Board, pos int, mark Mark) Board {
	b[pos] = mark
	return b
}
