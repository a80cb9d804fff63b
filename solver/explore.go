package solver

import (
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// explorer walks the game graph depth-first, visiting every canonical
// state exactly once. It owns the visited set and the table under
// construction; minimax values come from its evaluator.
type explorer struct {
	eval    *evaluator
	visited map[game.Key]bool
	table   Table
}

func (x *explorer) explore(b game.Board) {
	key := game.CanonicalKey(b)
	if x.visited[key] {
		// Already reached through a symmetric twin of this board.
		return
	}
	x.visited[key] = true

	// Terminal states are decision-free and not stored.
	if game.IsTerminal(b) {
		return
	}

	mark := game.Player(b)
	outcome := x.eval.evaluate(b)

	positions := game.LegalMoves(b)
	moves := make([]Move, 0, len(positions))
	for _, pos := range positions {
		child := game.Apply(b, pos, mark)
		score := x.eval.evaluate(child)
		moves = append(moves, Move{
			Pos:     pos,
			Board:   child.String(),
			Score:   score,
			Optimal: score == outcome,
		})
		// Recurse into every child, optimal or not, so the table covers
		// the full graph rather than just optimal subtrees.
		x.explore(child)
	}

	state := &State{Turn: mark, Outcome: outcome, Moves: moves}
	for i := range moves {
		if moves[i].Optimal {
			pos := moves[i].Pos
			state.Best = &pos
			break
		}
	}
	x.table[key] = state
}

// Solve explores every canonical state reachable from the empty board and
// returns the finished table. Each call builds a fresh memo and visited
// set, so repeated calls are independent and the result is reproducible:
// moves are enumerated in ascending position order at every branch.
func Solve() Table {
	x := &explorer{
		eval:    newEvaluator(),
		visited: make(map[game.Key]bool),
		table:   make(Table),
	}

	log.Debug().Msg("exploring canonical states from the empty board")
	x.explore(game.Board{})
	log.Debug().Msgf("visited %d canonical states, stored %d decision states",
		len(x.visited), len(x.table))

	return x.table
}
