// Command eqjobs compares computing a slow function over many inputs serially
// and on goroutines that each own an equal part of the inputs.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/WinPooh32/eqparts/internal/jobs"
)

type flags struct {
	config         string
	numJobs        int
	concurrentJobs int
}

func main() {
	var flags flags

	flag.StringVar(&flags.config, "config", "", "path to a YAML config file")
	flag.IntVar(&flags.numJobs, "num-jobs", defaultNumJobs, "number of total jobs to run")
	flag.IntVar(&flags.concurrentJobs, "jobs", defaultConcurrentJobs, "number of parallel jobs, 0 means cpu cores")
	flag.Parse()

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, cfg); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1) //nolint:gocritic // stop is not needed after a failed run
	}
}

// loadConfig merges the config file with the flags set on the command line.
func loadConfig(flags flags) (Config, error) {
	cfg := DefaultConfig()

	if flags.config != "" {
		var err error

		cfg, err = LoadConfig(flags.config)
		if err != nil {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "num-jobs":
			cfg.NumJobs = flags.numJobs
		case "jobs":
			cfg.ConcurrentJobs = flags.concurrentJobs
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func run(ctx context.Context, logger *slog.Logger, cfg Config) error {
	logger.Debug("starting", "num_jobs", cfg.NumJobs, "concurrent_jobs", cfg.ConcurrentJobs)

	serial(logger, newInputs(cfg.NumJobs))

	return parallel(ctx, logger, newInputs(cfg.NumJobs), cfg.ConcurrentJobs)
}

func newInputs(n int) []int {
	inputs := make([]int, n)
	for i := range inputs {
		inputs[i] = i + 1
	}

	return inputs
}

func serial(logger *slog.Logger, inputs []int) {
	start := time.Now()

	results := jobs.Serial(inputs, slowCompute)

	logger.Info("serial completed", "tasks", len(results), "elapsed", time.Since(start))
}

func parallel(ctx context.Context, logger *slog.Logger, inputs []int, concurrentJobs int) error {
	start := time.Now()

	results, err := jobs.Collect(jobs.Dispatch(ctx, inputs, concurrentJobs, slowCompute))
	if err != nil {
		return fmt.Errorf("parallel: %w", err)
	}

	logger.Info("parallel completed", "tasks", len(results), "elapsed", time.Since(start))

	return nil
}
