package engine

import (
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"chess-arena/board"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	// WinScore is the value of a won position. Material never comes close.
	WinScore = 10000
	MaxScore = WinScore + 1

	// MaxDepth bounds the configurable search depth; the recursion has no
	// other guard.
	MaxDepth = 8
)

func checkDepth(depth int) error {
	if depth < 0 || depth > MaxDepth {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrDepthOutOfRange, depth, MaxDepth)
	}
	return nil
}

// terminal scores the conditions shared by every search node. ok is false
// when the node has to be expanded.
func terminal(b board.Board, ms *board.MoveSet) (score int, ok bool) {
	if ms.IsEmpty() {
		return -WinScore, true
	}
	if board.CanCaptureKing(b) {
		return WinScore, true
	}
	return 0, false
}

// =============================================================================
// NEGAMAX
// =============================================================================

// Negamax evaluates b from the side to move's point of view, depth plies
// deep. Leaves score the mover's own material, even when its king is gone.
// Above the leaves a side without its king, or without any move, has lost,
// and a side that can take the enemy king has won. stats may be nil.
func Negamax(b board.Board, depth int, stats *SearchStats) int {
	if stats == nil {
		stats = &SearchStats{}
	}
	return negamax(b, depth, stats)
}

func negamax(b board.Board, depth int, stats *SearchStats) int {
	stats.Nodes++
	us := b.ToMove()
	if depth == 0 {
		stats.Leaves++
		return b.Material(us)
	}
	if !b.HasKing(us) {
		return -WinScore
	}
	ms := board.Generate(b)
	if score, ok := terminal(b, &ms); ok {
		return score
	}
	best := -MaxScore
	ms.EachMove(func(m board.Move) bool {
		best = Max(best, -negamax(b.MustPlay(m), depth-1, stats))
		return true
	})
	return best
}

// =============================================================================
// ALPHA-BETA
// =============================================================================

// AlphaBetaEval returns the same value as Negamax, skipping siblings once a
// node's best value reaches beta. stats may be nil.
func AlphaBetaEval(b board.Board, depth int, stats *SearchStats) int {
	if stats == nil {
		stats = &SearchStats{}
	}
	return alphaBeta(b, depth, -MaxScore, MaxScore, stats)
}

// alphaBeta is fail-soft: outside the window the result is a bound on the
// true value, inside it the value is exact.
func alphaBeta(b board.Board, depth int, alpha, beta int, stats *SearchStats) int {
	stats.Nodes++
	us := b.ToMove()
	if depth == 0 {
		stats.Leaves++
		return b.Material(us)
	}
	if !b.HasKing(us) {
		return -WinScore
	}
	ms := board.Generate(b)
	if score, ok := terminal(b, &ms); ok {
		return score
	}
	best := -MaxScore
	ms.EachMove(func(m board.Move) bool {
		score := -alphaBeta(b.MustPlay(m), depth-1, -beta, -alpha, stats)
		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			stats.Cutoffs++
			return false
		}
		return true
	})
	return best
}

// =============================================================================
// ROOT STRATEGIES
// =============================================================================

// Minimax plays the first move with the highest Negamax value. Each child is
// searched Depth plies deep. Root children are spread over Workers
// goroutines (GOMAXPROCS when zero); the choice does not depend on it.
type Minimax struct {
	Depth   int
	Workers int

	// Stats accumulates over every ChooseMove call when set. A Minimax with
	// Stats must not be shared between goroutines.
	Stats *SearchStats
}

func NewMinimax(depth int) (Minimax, error) {
	if err := checkDepth(depth); err != nil {
		return Minimax{}, err
	}
	return Minimax{Depth: depth}, nil
}

func (s Minimax) Name() string { return fmt.Sprintf("minimax:%d", s.Depth) }

func (s Minimax) ChooseMove(ms *board.MoveSet, _ *rand.Rand) (board.Move, bool) {
	moves := ms.Moves()
	if len(moves) == 0 {
		return board.Move{}, false
	}
	b := ms.Board()
	depth := Clamp(s.Depth, 0, MaxDepth)

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	scores := make([]int, len(moves))
	stats := make([]SearchStats, len(moves))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			scores[i] = -negamax(b.MustPlay(m), depth, &stats[i])
			return nil
		})
	}
	_ = g.Wait()

	if s.Stats != nil {
		for _, st := range stats {
			s.Stats.Add(st)
		}
	}
	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return moves[best], true
}

// AlphaBeta chooses the same move as Minimax at equal depth, searching the
// root sequentially so the window carries over between children.
type AlphaBeta struct {
	Depth int

	// Stats accumulates over every ChooseMove call when set. An AlphaBeta
	// with Stats must not be shared between goroutines.
	Stats *SearchStats
}

func NewAlphaBeta(depth int) (AlphaBeta, error) {
	if err := checkDepth(depth); err != nil {
		return AlphaBeta{}, err
	}
	return AlphaBeta{Depth: depth}, nil
}

func (s AlphaBeta) Name() string { return fmt.Sprintf("alphabeta:%d", s.Depth) }

func (s AlphaBeta) ChooseMove(ms *board.MoveSet, _ *rand.Rand) (board.Move, bool) {
	if ms.IsEmpty() {
		return board.Move{}, false
	}
	b := ms.Board()
	depth := Clamp(s.Depth, 0, MaxDepth)
	stats := s.Stats
	if stats == nil {
		stats = &SearchStats{}
	}

	var bestMove board.Move
	alpha := -MaxScore
	ms.EachMove(func(m board.Move) bool {
		// A child that only ties alpha comes back as a bound <= alpha and
		// does not replace the earlier move.
		score := -alphaBeta(b.MustPlay(m), depth, -MaxScore, -alpha, stats)
		if score > alpha {
			alpha, bestMove = score, m
		}
		return true
	})
	return bestMove, true
}
