package prop

import (
	"flag"
	"time"

	"github.com/lucaskalb/proptest/gen"
)

// Config holds runner options, per spec.md §4.5's table: a starting seed
// and size, a cap on successful runs, an optional wall-clock cap, a bound
// on shrink-search descent depth, an optional cap on size growth, and
// parallelism for CheckAllParallel.
type Config struct {
	// Seed seeds generation. Zero means "derive one from the current time".
	Seed int64

	// InitialSize is the starting generation size. Zero means 1.
	InitialSize gen.Size

	// MaxGenerationSize caps how large Size may grow across successful
	// runs. HasMaxGenerationSize false means unbounded.
	MaxGenerationSize    gen.Size
	HasMaxGenerationSize bool

	// MaxRuns caps the number of successful (non-failing) iterations.
	// Zero means 100.
	MaxRuns int

	// MaxRunTime caps wall-clock time across the whole run, checked
	// between iterations (never mid-property). HasMaxRunTime false means
	// unbounded.
	MaxRunTime    time.Duration
	HasMaxRunTime bool

	// MaxShrinkingSteps bounds the shrink search's descent depth. Zero
	// means 100.
	MaxShrinkingSteps int

	// StopOnFirstFailure, when true (the default), returns as soon as one
	// property failure (post-shrink) is found.
	StopOnFirstFailure bool

	// Parallelism is the worker count CheckAllParallel uses. Values <= 1
	// run sequentially.
	Parallelism int
}

var (
	flagSeed        = flag.Int64("proptest.seed", 0, "Seed for property test case generation")
	flagExamples    = flag.Int("proptest.examples", 100, "Number of successful runs to require before passing")
	flagMaxShrink   = flag.Int("proptest.maxshrink", 100, "Maximum shrink-search descent depth")
	flagParallelism = flag.Int("proptest.parallel", 1, "Number of parallel workers for CheckAllParallel")
)

// Default returns a Config sourced from the proptest.* command-line flags,
// the recommended starting point for ForAll and CheckAll callers.
func Default() Config {
	return Config{
		Seed:               *flagSeed,
		MaxRuns:            *flagExamples,
		MaxShrinkingSteps:  *flagMaxShrink,
		StopOnFirstFailure: true,
		Parallelism:        *flagParallelism,
	}
}

func (c Config) effectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c Config) effectiveInitialSize() gen.Size {
	if c.InitialSize == 0 {
		return 1
	}
	return c.InitialSize
}

func (c Config) effectiveMaxRuns() int {
	if c.MaxRuns <= 0 {
		return 100
	}
	return c.MaxRuns
}

func (c Config) effectiveMaxShrink() int {
	if c.MaxShrinkingSteps <= 0 {
		return 100
	}
	return c.MaxShrinkingSteps
}

func (c Config) growSize(sz gen.Size) gen.Size {
	next := sz + 1
	if c.HasMaxGenerationSize && next > c.MaxGenerationSize {
		return c.MaxGenerationSize
	}
	return next
}
