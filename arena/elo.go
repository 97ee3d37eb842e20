package arena

import "math"

const (
	StartingElo = 1200.0
	DefaultK    = 1.0
)

// Elo is a single rating.
type Elo struct {
	Score float64
}

func NewElo() Elo { return Elo{Score: StartingElo} }

// WinProbability is the expected score of e against other.
func (e Elo) WinProbability(other Elo) float64 {
	return 1 / (1 + math.Pow(10, (other.Score-e.Score)/400))
}

// Win moves k*(1-P(e beats other)) points from other to e. The total is
// unchanged.
func (e *Elo) Win(other *Elo, k float64) {
	diff := k * (1 - e.WinProbability(*other))
	e.Score += diff
	other.Score -= diff
}
