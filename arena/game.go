// Package arena plays strategies against each other and keeps Elo standings.
package arena

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"chess-arena/board"
	"chess-arena/engine"
)

// DefaultMaxPlies ends a game as a draw.
const DefaultMaxPlies = 100

// ErrStrategyMove is returned when a strategy answers with a move that was
// not in the move set it was given.
var ErrStrategyMove = errors.New("strategy chose a move outside its move set")

type Outcome uint8

const (
	Draw Outcome = iota
	WhiteWins
	BlackWins
)

func (o Outcome) String() string {
	switch o {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	}
	return "1/2-1/2"
}

type Reason uint8

const (
	PlyLimit Reason = iota
	KingCaptured
	NoMoves
)

func (r Reason) String() string {
	switch r {
	case KingCaptured:
		return "king captured"
	case NoMoves:
		return "no moves"
	}
	return "ply limit"
}

type GameResult struct {
	Outcome Outcome
	Reason  Reason
	Moves   []board.Move
	Final   board.Board
}

// Winner reports the winning color, if the game was decided.
func (r GameResult) Winner() (board.Color, bool) {
	switch r.Outcome {
	case WhiteWins:
		return board.White, true
	case BlackWins:
		return board.Black, true
	}
	return board.White, false
}

func (r GameResult) String() string {
	return fmt.Sprintf("%s (%s) after %d plies", r.Outcome, r.Reason, len(r.Moves))
}

func winFor(c board.Color) Outcome {
	if c == board.White {
		return WhiteWins
	}
	return BlackWins
}

// PlayGame plays white against black from start, whoever start says is to
// move going first. A side loses when its king is gone or it has no move;
// after maxPlies plies (DefaultMaxPlies when not positive) the game is drawn.
func PlayGame(ctx context.Context, white, black engine.Strategy, start board.Board, maxPlies int, rng *rand.Rand) (GameResult, error) {
	if maxPlies <= 0 {
		maxPlies = DefaultMaxPlies
	}
	players := [2]engine.Strategy{board.White: white, board.Black: black}
	res := GameResult{Final: start}
	b := start
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		us := b.ToMove()
		if !b.HasKing(us) {
			res.Outcome, res.Reason = winFor(us.Opponent()), KingCaptured
			break
		}
		if len(res.Moves) >= maxPlies {
			res.Outcome, res.Reason = Draw, PlyLimit
			break
		}
		ms := board.Generate(b)
		m, ok := players[us].ChooseMove(&ms, rng)
		if !ok {
			res.Outcome, res.Reason = winFor(us.Opponent()), NoMoves
			break
		}
		if !ms.Contains(m) {
			return res, fmt.Errorf("%s played %s on %q: %w", players[us].Name(), m, b.FEN(), ErrStrategyMove)
		}
		b = b.MustPlay(m)
		res.Moves = append(res.Moves, m)
		res.Final = b
	}
	return res, nil
}
