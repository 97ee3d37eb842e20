package engine

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// factory builds a strategy from the optional ":param" suffix; hasParam is
// false when no suffix was given.
type factory func(param int, hasParam bool) (Strategy, error)

func noParam(s Strategy) factory {
	return func(_ int, hasParam bool) (Strategy, error) {
		if hasParam {
			return nil, fmt.Errorf("%w: %s takes no parameter", ErrInvalidParameter, s.Name())
		}
		return s, nil
	}
}

var registry = map[string]factory{
	"random":        noParam(Random{}),
	"first":         noParam(FirstMove{}),
	"swarm":         noParam(Swarm{}),
	"capture":       noParam(Capture{}),
	"capture+check": noParam(Capture{SearchCheck: true}),
	"montecarlo": func(n int, ok bool) (Strategy, error) {
		if !ok {
			n = DefaultRollouts
		}
		return NewMonteCarlo(n)
	},
	"minimax": func(d int, ok bool) (Strategy, error) {
		if !ok {
			d = 2
		}
		return NewMinimax(d)
	},
	"alphabeta": func(d int, ok bool) (Strategy, error) {
		if !ok {
			d = 3
		}
		return NewAlphaBeta(d)
	},
}

// ParseStrategy builds a strategy from "name" or "name:param", e.g.
// "minimax:3" or "montecarlo:50". The result's Name round-trips.
func ParseStrategy(spec string) (Strategy, error) {
	name, raw, hasParam := strings.Cut(strings.TrimSpace(spec), ":")
	build, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
	}
	var param int
	if hasParam {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidParameter, spec, err)
		}
		param = n
	}
	s, err := build(param, hasParam)
	if err != nil {
		return nil, fmt.Errorf("strategy %q: %w", spec, err)
	}
	return s, nil
}

// ParseStrategies splits a comma-separated list and parses every entry.
func ParseStrategies(list string) ([]Strategy, error) {
	var out []Strategy
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		s, err := ParseStrategy(part)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// StrategyNames lists the registered names in sorted order.
func StrategyNames() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
