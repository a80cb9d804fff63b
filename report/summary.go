package report

import (
	"tictactoe/game"
	"tictactoe/solver"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PlyCount is the number of canonical decision states with a given number
// of marks on the board.
type PlyCount struct {
	Ply    int
	States int
}

// Summary holds the statistics derivable from a finished table without
// re-running the solve.
type Summary struct {
	States          int        // total canonical decision states
	Outcome         int        // best achievable outcome from the empty board
	OpeningMoves    int        // legal first moves
	OptimalOpenings int        // first moves achieving the opening outcome
	ByPly           []PlyCount // state counts per ply, ascending
}

// Summarize computes the summary for a solved table.
func Summarize(table solver.Table) Summary {
	sum := Summary{States: len(table)}

	byPly := make(map[int]int)
	for key := range table {
		byPly[marks(key)]++
	}
	plies := maps.Keys(byPly)
	slices.Sort(plies)
	for _, ply := range plies {
		sum.ByPly = append(sum.ByPly, PlyCount{Ply: ply, States: byPly[ply]})
	}

	if opening, ok := table[game.EmptyKey]; ok {
		sum.Outcome = opening.Outcome
		sum.OpeningMoves = len(opening.Moves)
		for _, m := range opening.Moves {
			if m.Optimal {
				sum.OptimalOpenings++
			}
		}
	}
	return sum
}

// marks counts the non-empty cells in a canonical key.
func marks(key game.Key) int {
	n := 0
	for i := 0; i < len(key); i++ {
		if key[i] != '0' {
			n++
		}
	}
	return n
}
