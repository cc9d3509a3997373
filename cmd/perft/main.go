package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-rules/oracle"
	"chess-rules/rules"
)

func main() {
	fen := flag.String("fen", rules.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	verify := flag.Bool("verify", false, "Compare against the dragontoothmg reference generator")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := newLogger(*level)

	if *depth <= 0 {
		log.Error().Int("depth", *depth).Msg("-depth must be > 0")
		os.Exit(2)
	}

	pos, err := rules.ParseFEN(*fen)
	if err != nil {
		log.Error().Err(err).Str("fen", *fen).Msg("parse FEN")
		os.Exit(2)
	}
	log.Debug().Str("fen", pos.FEN()).Msg("position loaded\n" + pos.Board.Draw())

	if *divide {
		os.Exit(runDivide(log, pos, *fen, *depth, *verify))
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			log.Error().Err(err).Msg("creating cpuprofile")
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Error().Err(err).Msg("start cpu profile")
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += rules.Perft(pos, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *verify {
		want := oracle.Perft(*fen, *depth) * uint64(*repeat)
		if want != totalNodes {
			log.Error().Uint64("got", totalNodes).Uint64("want", want).Msg("perft mismatch against reference")
			os.Exit(1)
		}
		log.Info().Uint64("nodes", want).Msg("reference generator agrees")
	}

	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			log.Error().Err(err).Msg("creating memprofile")
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Error().Err(err).Msg("write heap profile")
			os.Exit(2)
		}
		_ = f.Close()
	}
}

// runDivide prints per-root-move counts in move order and, with verify,
// reports every move whose count differs from the reference.
func runDivide(log zerolog.Logger, pos rules.Position, fen string, depth int, verify bool) int {
	div := rules.PerftDivide(pos, depth)
	keys := maps.Keys(div)
	slices.Sort(keys)
	var sum uint64
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, div[k])
		sum += div[k]
	}
	fmt.Printf("Total: %d\n", sum)

	if !verify {
		return 0
	}
	ref := oracle.Divide(fen, depth)
	all := append(maps.Keys(ref), keys...)
	slices.Sort(all)
	all = slices.Compact(all)
	bad := 0
	for _, k := range all {
		got, want := div[k], ref[k]
		if got != want {
			log.Warn().Str("move", k).Uint64("got", got).Uint64("want", want).Msg("divide mismatch")
			bad++
		}
	}
	if bad > 0 {
		log.Error().Int("moves", bad).Msg("divide differs from reference")
		return 1
	}
	log.Info().Uint64("nodes", sum).Msg("reference generator agrees")
	return 0
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}
