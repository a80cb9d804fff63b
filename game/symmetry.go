package game

import "bytes"

// Transformation is one of the 8 symmetry relabelings of the 3x3 grid,
// expressed as an index permutation: transformed[i] = board[t[i]].
type Transformation [9]int

// Transformations is the full symmetry group of the square, fixed at
// initialization and never modified.
var Transformations = [8]Transformation{
	{0, 1, 2, 3, 4, 5, 6, 7, 8}, // identity
	{6, 3, 0, 7, 4, 1, 8, 5, 2}, // rotate 90 CW
	{8, 7, 6, 5, 4, 3, 2, 1, 0}, // rotate 180
	{2, 5, 8, 1, 4, 7, 0, 3, 6}, // rotate 270 CW
	{2, 1, 0, 5, 4, 3, 8, 7, 6}, // horizontal flip
	{6, 7, 8, 3, 4, 5, 0, 1, 2}, // vertical flip
	{0, 3, 6, 1, 4, 7, 2, 5, 8}, // main diagonal flip
	{8, 5, 2, 7, 4, 1, 6, 3, 0}, // anti diagonal flip
}

// Transform applies a symmetry transformation to a board.
func Transform(b Board, t Transformation) Board {
	var out Board
	for i, src := range t {
		out[i] = b[src]
	}
	return out
}

// CanonicalKey returns the smallest of the 8 transformed encodings of a
// board. Canonicalization is idempotent, and any two boards related by a
// symmetry transformation share the same key. This is the hot path of the
// whole solve (called at every recursion level), so the candidates are
// compared as byte arrays instead of building 8 strings.
func CanonicalKey(b Board) Key {
	var best [9]byte
	for ti := range Transformations {
		var enc [9]byte
		for i, src := range Transformations[ti] {
			enc[i] = '0' + byte(b[src])
		}
		if ti == 0 || bytes.Compare(enc[:], best[:]) < 0 {
			best = enc
		}
	}
	return Key(best[:])
}
