package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

type perftRun struct {
	label, fen string
	depth      string
}

var perftRuns = []perftRun{
	{"Initial", "", "3"},
	{"Initial", "", "4"},
	{"Initial", "", "5"},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w", "3"},
}

var searchRuns = []string{"minimax:2", "alphabeta:2", "alphabeta:3", "montecarlo:20"}

// Usage: go run ./cmd/benchrun
func main() {
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "./engine", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	for _, p := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", p.depth, "-label", p.label}
		if p.fen != "" {
			args = append(args, "-fen", p.fen)
		}
		run("go", args...)
	}

	fmt.Println("\nStrategy timings:")
	for _, s := range searchRuns {
		run("go", "run", "./cmd/searchbench", "-strategy", s, "-repeat", "3")
	}
}
