package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

// run executes a command and prints its combined output. Returns exit code.
func run(log zerolog.Logger, name string, args ...string) int {
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
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	log.Error().Err(err).Str("cmd", name).Msg("run")
	return 1
}

type perftRun struct {
	label string
	fen   string
	depth int
}

var perftRuns = []perftRun{
	{"Initial", "", 3},
	{"Initial", "", 4},
	{"Initial", "", 5},
	{"Kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3},
	{"Position3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 4},
}

func main() {
	// Usage: go run ./cmd/benchrun
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run(log, "go", "test", "./rules", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	failed := 0
	for _, r := range perftRuns {
		args := []string{"run", "./cmd/perft", "-depth", fmt.Sprint(r.depth), "-label", r.label, "-verify"}
		if r.fen != "" {
			args = append(args, "-fen", r.fen)
		}
		if run(log, "go", args...) != 0 {
			log.Warn().Str("label", r.label).Int("depth", r.depth).Msg("perft run failed")
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}
