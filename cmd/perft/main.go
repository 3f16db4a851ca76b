// Command perft runs the perft correctness/performance harness against a
// single position or the full standardized corpus.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/ardenflux/zugzwang"
	"github.com/ardenflux/zugzwang/perft"
)

// batchConfig describes a TOML batch file of positions to run, for
// scripted regression runs outside the Go test suite.
type batchConfig struct {
	Position []struct {
		FEN   string `toml:"fen"`
		Depth int    `toml:"depth"`
	} `toml:"position"`
}

func main() {
	fen := flag.String("fen", zugzwang.StartFEN, "FEN record of the position to run perft on")
	depth := flag.Int("depth", 5, "search depth in plies")
	divide := flag.Bool("divide", false, "report per-root-move node counts")
	corpus := flag.Bool("corpus", false, "run the full standardized perft corpus instead of a single position")
	batchPath := flag.String("batch", "", "path to a TOML batch file of positions to run")
	parallel := flag.Bool("parallel", false, "fan the root moves out across goroutines instead of running serially")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer logger.Sync()

	switch {
	case *batchPath != "":
		runBatch(logger, *batchPath)
	case *corpus:
		runCorpus(logger)
	default:
		runSingle(logger, *fen, *depth, *divide, *parallel)
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "zugzwang: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

func runSingle(logger *zap.Logger, fen string, depth int, divide, parallel bool) {
	b, err := zugzwang.FromFEN(fen)
	if err != nil {
		logger.Fatal("invalid FEN", zap.String("fen", fen), zap.Error(err))
	}

	start := time.Now()
	switch {
	case divide:
		entries := perft.DividedPerft(b, depth, logger)
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move.UCI(), e.Nodes)
		}
		total := perft.Total(entries)
		elapsed := time.Since(start)
		fmt.Printf("\ntotal: %d\n%s\n", total, perftSummary(total, elapsed))
	case parallel:
		nodes, err := perft.ParallelPerft(context.Background(), b, depth, runtime.NumCPU())
		if err != nil {
			logger.Fatal("parallel perft failed", zap.Error(err))
		}
		elapsed := time.Since(start)
		logger.Info("parallel perft complete",
			zap.String("fen", fen),
			zap.Int("depth", depth),
			zap.Uint64("nodes", nodes),
			zap.Duration("elapsed", elapsed),
			zap.Float64("mnps", megaNodesPerSecond(nodes, elapsed)),
		)
		fmt.Println(perftSummary(nodes, elapsed))
	default:
		nodes := perft.Perft(b, depth)
		elapsed := time.Since(start)
		logger.Info("perft complete",
			zap.String("fen", fen),
			zap.Int("depth", depth),
			zap.Uint64("nodes", nodes),
			zap.Duration("elapsed", elapsed),
			zap.Float64("mnps", megaNodesPerSecond(nodes, elapsed)),
		)
		fmt.Println(perftSummary(nodes, elapsed))
	}
}

// megaNodesPerSecond returns the perft throughput in millions of nodes per
// second, 0 if elapsed is too small to divide by meaningfully.
func megaNodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(nodes) / seconds / 1e6
}

// perftSummary formats the pinned human-readable perft report line:
// "<node count> nodes in <duration> - <Mnodes/s>".
func perftSummary(nodes uint64, elapsed time.Duration) string {
	return fmt.Sprintf("%d nodes in %s - %.3f Mnodes/s", nodes, elapsed, megaNodesPerSecond(nodes, elapsed))
}

func runCorpus(logger *zap.Logger) {
	failures := 0
	for _, c := range perft.Corpus {
		b, err := zugzwang.FromFEN(c.FEN)
		if err != nil {
			logger.Error("invalid corpus FEN", zap.String("fen", c.FEN), zap.Error(err))
			failures++
			continue
		}
		start := time.Now()
		got := perft.Perft(b, c.Depth)
		elapsed := time.Since(start)
		if got != c.Nodes {
			logger.Error("perft mismatch",
				zap.String("fen", c.FEN),
				zap.Int("depth", c.Depth),
				zap.Uint64("want", c.Nodes),
				zap.Uint64("got", got),
			)
			failures++
			continue
		}
		logger.Info("perft ok",
			zap.String("fen", c.FEN),
			zap.Int("depth", c.Depth),
			zap.Uint64("nodes", got),
			zap.Duration("elapsed", elapsed),
			zap.Float64("mnps", megaNodesPerSecond(got, elapsed)),
		)
	}
	if failures > 0 {
		logger.Fatal("perft corpus failed", zap.Int("failures", failures))
	}
}

func runBatch(logger *zap.Logger, path string) {
	var cfg batchConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		logger.Fatal("failed to read batch file", zap.String("path", path), zap.Error(err))
	}
	for _, p := range cfg.Position {
		runSingle(logger, p.FEN, p.Depth, false, false)
	}
}
