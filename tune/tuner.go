package tune

import (
	"runtime"
	"sync"
	"time"
)

// Config controls the parameter sweep.
type Config struct {
	// Runs is the number of benchmark runs per parameter set (fastest wins).
	Runs int
	// MaxIterations caps how many parameter sets are evaluated; 0 = no cap.
	MaxIterations int
	// RatioPriority weighs ratio against speed in scoring (see Result.Score).
	RatioPriority float64
	// Parallel evaluates parameter sets on all CPUs. Timings become noisier
	// under contention; disable for stable throughput numbers.
	Parallel bool
	// WindowSizes and MinMatchLengths span the search grid; empty slices use
	// the defaults from DefaultConfig.
	WindowSizes     []int
	MinMatchLengths []int
}

// DefaultConfig returns the default sweep: the practical window range,
// common minimum match lengths, 3 runs per set, balanced scoring.
func DefaultConfig() Config {
	return Config{
		Runs:            3,
		MaxIterations:   30,
		RatioPriority:   0.5,
		Parallel:        true,
		WindowSizes:     []int{256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65535},
		MinMatchLengths: []int{2, 3, 4, 8},
	}
}

// TuningResult reports the sweep outcome.
type TuningResult struct {
	// Best is the highest-scoring parameter set for the configured priority.
	Best Result
	// BestRatio is the set with the smallest compressed size.
	BestRatio Result
	// BestSpeed is the set with the highest combined throughput.
	BestSpeed Result
	// All holds every evaluated result in grid order.
	All []Result
	// Elapsed is the wall time of the whole sweep.
	Elapsed time.Duration
	// Iterations is the number of parameter sets evaluated.
	Iterations int
}

// Tune benchmarks every parameter set in the grid against data and picks the
// best overall, best-ratio and best-speed sets.
func Tune(data []byte, cfg Config) (*TuningResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	defaults := DefaultConfig()
	if len(cfg.WindowSizes) == 0 {
		cfg.WindowSizes = defaults.WindowSizes
	}
	if len(cfg.MinMatchLengths) == 0 {
		cfg.MinMatchLengths = defaults.MinMatchLengths
	}
	if cfg.Runs < 1 {
		cfg.Runs = defaults.Runs
	}

	grid := make([]Params, 0, len(cfg.WindowSizes)*len(cfg.MinMatchLengths))
	for _, windowSize := range cfg.WindowSizes {
		for _, minMatch := range cfg.MinMatchLengths {
			grid = append(grid, Params{WindowSize: windowSize, MinMatchLength: minMatch})
		}
	}
	if cfg.MaxIterations > 0 && len(grid) > cfg.MaxIterations {
		grid = grid[:cfg.MaxIterations]
	}

	start := time.Now()
	results := make([]Result, len(grid))
	errs := make([]error, len(grid))

	if cfg.Parallel {
		workers := runtime.GOMAXPROCS(0)
		if workers > len(grid) {
			workers = len(grid)
		}

		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					results[i], errs[i] = Benchmark(data, grid[i], cfg.Runs)
				}
			}()
		}

		for i := range grid {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	} else {
		for i, p := range grid {
			results[i], errs[i] = Benchmark(data, p, cfg.Runs)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	tr := &TuningResult{
		All:        results,
		Elapsed:    time.Since(start),
		Iterations: len(results),
	}

	for i, r := range results {
		if i == 0 {
			tr.Best, tr.BestRatio, tr.BestSpeed = r, r, r
			continue
		}

		if r.Score(cfg.RatioPriority) > tr.Best.Score(cfg.RatioPriority) {
			tr.Best = r
		}
		if r.CompressedSize < tr.BestRatio.CompressedSize {
			tr.BestRatio = r
		}
		if r.CompressThroughput()+r.DecompressThroughput() >
			tr.BestSpeed.CompressThroughput()+tr.BestSpeed.DecompressThroughput() {
			tr.BestSpeed = r
		}
	}

	return tr, nil
}
