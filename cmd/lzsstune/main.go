// Command lzsstune sweeps LZSS parameter sets over a sample file and reports
// which window size and minimum match length suit it best. Optionally renders
// an SVG scatter chart of compressed size by window size.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/woozymasta/lzssx/tune"
)

func main() {
	var (
		runs     = flag.Int("runs", 3, "benchmark runs per parameter set")
		maxIter  = flag.Int("max", 0, "cap on evaluated parameter sets (0 = full grid)")
		priority = flag.Float64("priority", 0.5, "ratio priority in scoring: 1 = ratio only, 0 = speed only")
		serial   = flag.Bool("serial", false, "evaluate parameter sets one at a time (stable timings)")
		chartOut = flag.String("chart", "", "write an SVG scatter chart of compressed size by window size")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *runs, *maxIter, *priority, *serial, *chartOut); err != nil {
		fmt.Fprintf(os.Stderr, "lzsstune: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, runs, maxIter int, priority float64, serial bool, chartOut string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	cfg := tune.DefaultConfig()
	cfg.Runs = runs
	cfg.MaxIterations = maxIter
	cfg.RatioPriority = priority
	cfg.Parallel = !serial

	result, err := tune.Tune(data, cfg)
	if err != nil {
		return err
	}

	sorted := append([]tune.Result(nil), result.All...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Score(priority) > sorted[j].Score(priority)
	})

	fmt.Printf("Tuned %s (%d bytes) over %d parameter sets in %v\n\n",
		path, len(data), result.Iterations, result.Elapsed)
	for _, r := range sorted {
		fmt.Printf("  score=%.3f  %s\n", r.Score(priority), r)
	}

	fmt.Printf("\nBest overall: %s\n", result.Best)
	fmt.Printf("Best ratio:   %s\n", result.BestRatio)
	fmt.Printf("Best speed:   %s\n", result.BestSpeed)

	if chartOut != "" {
		if err := renderChart(chartOut, result.All); err != nil {
			return err
		}
		fmt.Printf("\nChart written to %s\n", chartOut)
	}

	return nil
}

// renderChart plots compressed size against window size, one series per
// minimum match length.
func renderChart(path string, results []tune.Result) error {
	byMinMatch := make(map[int][]tune.Result)
	minMatches := make([]int, 0)
	for _, r := range results {
		m := r.Params.MinMatchLength
		if _, ok := byMinMatch[m]; !ok {
			minMatches = append(minMatches, m)
		}
		byMinMatch[m] = append(byMinMatch[m], r)
	}
	sort.Ints(minMatches)

	series := make([]chart.Series, 0, len(byMinMatch))
	for _, m := range minMatches {
		group := byMinMatch[m]
		sort.Slice(group, func(i, j int) bool {
			return group[i].Params.WindowSize < group[j].Params.WindowSize
		})

		xvals := make([]float64, 0, len(group))
		yvals := make([]float64, 0, len(group))
		for _, r := range group {
			xvals = append(xvals, float64(r.Params.WindowSize))
			yvals = append(yvals, float64(r.CompressedSize))
		}

		// go-chart refuses series with fewer than two points.
		if len(xvals) < 2 {
			continue
		}

		series = append(series, chart.ContinuousSeries{
			Name: fmt.Sprintf("minMatch=%d", m),
			Style: chart.Style{
				DotWidth: 3,
			},
			XValues: xvals,
			YValues: yvals,
		})
	}

	if len(series) == 0 {
		return fmt.Errorf("not enough data points to chart")
	}

	graph := chart.Chart{
		XAxis:  chart.XAxis{Name: "window size"},
		YAxis:  chart.YAxis{Name: "compressed bytes"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	return graph.Render(chart.SVG, fh)
}
