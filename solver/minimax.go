package solver

import "tictactoe/game"

// evaluator computes exact minimax values, memoized by canonical key so
// that boards related by symmetry are solved once. The memo is owned by a
// single solve and never invalidated.
type evaluator struct {
	memo map[game.Key]int
}

func newEvaluator() *evaluator {
	return &evaluator{memo: make(map[game.Key]int)}
}

// evaluate returns the game-theoretic value of b under optimal play by both
// sides: WinX, WinO, or Draw. A memo hit short-circuits everything,
// including re-deriving whose turn it is. Total over boards reachable by
// legal alternating play; the precondition is not validated.
func (e *evaluator) evaluate(b game.Board) int {
	key := game.CanonicalKey(b)
	if score, ok := e.memo[key]; ok {
		return score
	}
	score := e.search(b)
	e.memo[key] = score
	return score
}

func (e *evaluator) search(b game.Board) int {
	switch game.Winner(b) {
	case game.X:
		return WinX
	case game.O:
		return WinO
	}

	moves := game.LegalMoves(b)
	if len(moves) == 0 {
		return Draw
	}

	// Fold children with max for X, min for O, seeded from the first
	// child. Scores are bounded in [WinO, WinX]; no sentinels needed.
	mark := game.Player(b)
	best := 0
	for i, pos := range moves {
		score := e.evaluate(game.Apply(b, pos, mark))
		switch {
		case i == 0:
			best = score
		case mark == game.X && score > best:
			best = score
		case mark == game.O && score < best:
			best = score
		}
	}
	return best
}
