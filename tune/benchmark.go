// Package tune benchmarks LZSS parameter sets against real data and searches
// for the window size and minimum match length that best balance compression
// ratio and throughput for a caller-chosen priority.
package tune

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/woozymasta/lzssx"
)

// Package errors.
var (
	// ErrEmptyInput is returned when there is no data to benchmark against.
	ErrEmptyInput = errors.New("empty input")
	// ErrRoundTrip is returned when a benchmarked parameter set fails to
	// reproduce its input; this indicates a codec bug, never a tuning miss.
	ErrRoundTrip = errors.New("round trip mismatch")
)

// Params is one compression parameter set under evaluation.
type Params struct {
	WindowSize     int
	MinMatchLength int
}

func (p Params) String() string {
	return fmt.Sprintf("window=%d minMatch=%d", p.WindowSize, p.MinMatchLength)
}

// Result holds the measurements for one parameter set on one input.
type Result struct {
	Params         Params
	OriginalSize   int
	CompressedSize int
	CompressTime   time.Duration
	DecompressTime time.Duration
}

// Ratio returns compressed size over original size (lower is better).
func (r Result) Ratio() float64 {
	if r.OriginalSize == 0 {
		return 0
	}

	return float64(r.CompressedSize) / float64(r.OriginalSize)
}

// CompressThroughput returns compression speed in MB/s.
func (r Result) CompressThroughput() float64 {
	return throughput(r.OriginalSize, r.CompressTime)
}

// DecompressThroughput returns decompression speed in MB/s.
func (r Result) DecompressThroughput() float64 {
	return throughput(r.OriginalSize, r.DecompressTime)
}

func throughput(size int, d time.Duration) float64 {
	seconds := d.Seconds()
	if seconds <= 0 {
		return 0
	}

	return float64(size) / (1024 * 1024) / seconds
}

// Score combines ratio and speed into a single figure of merit (higher is
// better). ratioPriority weighs the compression ratio against throughput:
// 1 scores ratio only, 0 scores speed only. Speed is normalized so typical
// throughputs land in the same range as inverted ratios.
func (r Result) Score(ratioPriority float64) float64 {
	if ratioPriority < 0 {
		ratioPriority = 0
	}
	if ratioPriority > 1 {
		ratioPriority = 1
	}

	ratio := r.Ratio()
	ratioScore := 0.0
	if ratio > 0 {
		ratioScore = 1 / ratio
	}

	speedScore := (r.CompressThroughput() + r.DecompressThroughput()) / 2 / 100

	return ratioPriority*ratioScore + (1-ratioPriority)*speedScore
}

func (r Result) String() string {
	return fmt.Sprintf("%s: %d -> %d bytes (%.2f%%), compress %.2f MB/s, decompress %.2f MB/s",
		r.Params, r.OriginalSize, r.CompressedSize, r.Ratio()*100,
		r.CompressThroughput(), r.DecompressThroughput())
}

// Benchmark measures one parameter set over runs iterations, keeping the
// fastest timing of each direction as the steady-state estimate. Every run
// verifies the round trip.
func Benchmark(data []byte, p Params, runs int) (Result, error) {
	if len(data) == 0 {
		return Result{}, ErrEmptyInput
	}
	if runs < 1 {
		runs = 1
	}

	ctx, err := lzssx.New(p.WindowSize, p.MinMatchLength)
	if err != nil {
		return Result{}, err
	}

	res := Result{Params: p, OriginalSize: len(data)}

	for i := 0; i < runs; i++ {
		start := time.Now()
		enc, err := ctx.Compress(data)
		compressTime := time.Since(start)
		if err != nil {
			return Result{}, err
		}

		start = time.Now()
		dec, err := ctx.Decompress(enc)
		decompressTime := time.Since(start)
		if err != nil {
			return Result{}, err
		}

		if !bytes.Equal(dec, data) {
			return Result{}, fmt.Errorf("%w: %s", ErrRoundTrip, p)
		}

		res.CompressedSize = len(enc)
		if i == 0 || compressTime < res.CompressTime {
			res.CompressTime = compressTime
		}
		if i == 0 || decompressTime < res.DecompressTime {
			res.DecompressTime = decompressTime
		}
	}

	return res, nil
}
