package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"chess-arena/board"
	"chess-arena/engine"
)

const defaultStrategy = "capture+check"

func main() {
	strategy := flag.String("strategy", defaultStrategy, "initial strategy, e.g. minimax:3 ("+strings.Join(engine.StrategyNames(), ", ")+")")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	u, err := newUCI(os.Stdout, *strategy, *seed)
	if err != nil {
		log.Fatalf("uci: %v", err)
	}
	u.loop(os.Stdin)
}

// uci is the protocol front end. The GUI's position lives in a dragontoothmg
// board with the full rules; strategies only see legal moves.
type uci struct {
	out        io.Writer
	pos        dragontoothmg.Board
	strategy   engine.Strategy
	rng        *rand.Rand
	printStats bool
}

func newUCI(out io.Writer, strategy string, seed int64) (*uci, error) {
	s, err := engine.ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}
	return &uci{
		out:      out,
		pos:      dragontoothmg.ParseFen(dragontoothmg.Startpos),
		strategy: s,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

func (u *uci) println(a ...any) { fmt.Fprintln(u.out, a...) }

func (u *uci) loop(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		if len(tokens) == 0 { // ignore blank lines
			continue
		}
		switch strings.ToLower(tokens[0]) {
		case "uci":
			u.println("id name chess-arena")
			u.println("id author chess-arena developers")
			u.println("option name Strategy type string default", defaultStrategy)
			u.println("option name PrintStats type check default false")
			u.println("uciok")
		case "isready":
			u.println("readyok")
		case "ucinewgame":
			u.pos = dragontoothmg.ParseFen(dragontoothmg.Startpos)
		case "quit":
			return
		case "stop":
			// searches are synchronous; nothing to stop
		case "d":
			u.println(u.pos.ToFen())
			if b, err := board.ParseFEN(u.pos.ToFen()); err == nil {
				fmt.Fprint(u.out, b)
			}
		case "go":
			u.goCommand(tokens[1:])
		case "position":
			u.position(tokens[1:])
		case "setoption":
			u.setOption(tokens[1:])
		default:
			u.println("info string Unknown command:", line)
		}
	}
}

func (u *uci) goCommand(args []string) {
	depth := -1
	for i := 0; i < len(args); i++ {
		switch strings.ToLower(args[i]) {
		case "infinite":
		case "wtime", "btime", "winc", "binc", "movestogo", "movetime", "nodes":
			i++ // time controls do not apply to fixed-depth strategies
		case "depth":
			if i+1 >= len(args) {
				u.println("info string Malformed go command option depth")
				continue
			}
			i++
			d, err := strconv.Atoi(args[i])
			if err != nil {
				u.println("info string Malformed go command option; could not convert depth")
				continue
			}
			depth = d
		default:
			u.println("info string Unknown go subcommand", args[i])
		}
	}

	s := u.strategy
	if depth >= 0 {
		var err error
		if s, err = withDepth(s, depth); err != nil {
			u.println("info string", err)
			s = u.strategy
		}
	}
	var stats engine.SearchStats
	if u.printStats {
		s = withStats(s, &stats)
	}
	start := time.Now()
	best := u.bestMove(s)
	if u.printStats {
		for _, l := range stats.Lines() {
			u.println(l)
		}
		u.println("info string Time:", time.Since(start).Round(time.Microsecond))
	}
	u.println("bestmove", best)
}

// withDepth returns s searching to depth, for strategies that have one.
func withDepth(s engine.Strategy, depth int) (engine.Strategy, error) {
	switch st := s.(type) {
	case engine.Minimax:
		m, err := engine.NewMinimax(depth)
		m.Workers = st.Workers
		return m, err
	case engine.AlphaBeta:
		return engine.NewAlphaBeta(depth)
	}
	return s, nil
}

func withStats(s engine.Strategy, stats *engine.SearchStats) engine.Strategy {
	switch st := s.(type) {
	case engine.Minimax:
		st.Stats = stats
		return st
	case engine.AlphaBeta:
		st.Stats = stats
		return st
	}
	return s
}

// bestMove asks s for a move among the engine's pseudo-legal moves that are
// also legal in chess. Pawns reaching the last rank promote to a queen. When
// no such move exists, for instance when only castling or en passant are
// legal, the first legal move is played.
func (u *uci) bestMove(s engine.Strategy) string {
	legal := u.pos.GenerateLegalMoves()
	if len(legal) == 0 {
		return "0000"
	}
	b, err := board.ParseFEN(u.pos.ToFen())
	if err != nil {
		u.println("info string", err)
		return legal[0].String()
	}

	ms := board.Generate(b)
	playable := ms.Filter(func(m board.Move) bool {
		return legalIndex(legal, m) >= 0
	})
	m, ok := s.ChooseMove(&playable, u.rng)
	if !ok {
		u.println("info string", s.Name(), "found no move, playing the first legal one")
		return legal[0].String()
	}
	return legal[legalIndex(legal, m)].String()
}

// legalIndex finds m among legal moves, preferring the queen promotion.
func legalIndex(legal []dragontoothmg.Move, m board.Move) int {
	src, dst := uint8(m.Src.Index()), uint8(m.Dst.Index())
	return slices.IndexFunc(legal, func(mv dragontoothmg.Move) bool {
		p := mv.Promote()
		return mv.From() == src && mv.To() == dst && (p == 0 || p == dragontoothmg.Queen)
	})
}

func (u *uci) position(args []string) {
	if len(args) == 0 {
		u.println("info string Malformed position command")
		return
	}
	rest := args[1:]
	switch strings.ToLower(args[0]) {
	case "startpos":
		u.pos = dragontoothmg.ParseFen(dragontoothmg.Startpos)
	case "fen":
		end := slices.IndexFunc(rest, func(s string) bool { return strings.ToLower(s) == "moves" })
		if end < 0 {
			end = len(rest)
		}
		if end == 0 {
			u.println("info string Invalid fen position")
			return
		}
		fen := strings.Join(rest[:end], " ")
		if _, err := board.ParseFEN(fen); err != nil {
			u.println("info string", err)
			return
		}
		u.pos = dragontoothmg.ParseFen(padFEN(fen))
		rest = rest[end:]
	default:
		u.println("info string Invalid position subcommand")
		return
	}
	if len(rest) == 0 || strings.ToLower(rest[0]) != "moves" {
		return
	}
	for _, moveStr := range rest[1:] {
		moveStr = strings.ToLower(moveStr)
		legal := u.pos.GenerateLegalMoves()
		i := slices.IndexFunc(legal, func(mv dragontoothmg.Move) bool { return mv.String() == moveStr })
		if i < 0 {
			u.println("info string Move", moveStr, "not found for position", u.pos.ToFen())
			continue
		}
		u.pos.Apply(legal[i])
	}
}

// padFEN fills in the castling, en passant and move counter fields that
// dragontoothmg requires but board.ParseFEN treats as optional.
func padFEN(fen string) string {
	fields := strings.Fields(fen)
	defaults := [...]string{"", "", "-", "-", "0", "1"}
	for len(fields) < len(defaults) {
		fields = append(fields, defaults[len(fields)])
	}
	return strings.Join(fields, " ")
}

// setOption handles "name <Name> value <Value>"; the value may contain spaces.
func (u *uci) setOption(args []string) {
	var name, value []string
	var cur *[]string
	for _, a := range args {
		switch strings.ToLower(a) {
		case "name":
			cur = &name
		case "value":
			cur = &value
		default:
			if cur != nil {
				*cur = append(*cur, a)
			}
		}
	}
	v := strings.Join(value, " ")
	switch strings.ToLower(strings.Join(name, " ")) {
	case "strategy":
		s, err := engine.ParseStrategy(v)
		if err != nil {
			u.println("info string", err)
			return
		}
		u.strategy = s
	case "printstats":
		u.printStats = strings.EqualFold(v, "true")
	case "seed":
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			u.println("info string Malformed seed", v)
			return
		}
		u.rng = rand.New(rand.NewSource(seed))
	default:
		u.println("info string Unknown option", strings.Join(name, " "))
	}
}
