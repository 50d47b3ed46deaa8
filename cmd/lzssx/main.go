// Command lzssx compresses and decompresses files using the lzssx container
// format. Compression parameters are taken from flags; decompression reads
// them back from the self-describing header.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/woozymasta/lzssx"
)

const outputSuffix = ".lzsx"

func main() {
	var (
		decompress = flag.Bool("d", false, "decompress instead of compress")
		windowSize = flag.Int("w", 4096, "sliding window size in bytes (1..65535)")
		minMatch   = flag.Int("m", 3, "minimum match length (2..255)")
		output     = flag.String("o", "", "output file (default: input + \".lzsx\", or the suffix stripped with -d)")
		noChecksum = flag.Bool("no-checksum", false, "do not write the content checksum footer")
		lenient    = flag.Bool("lenient", false, "do not fail decompression on checksum mismatch")
		quiet      = flag.Bool("q", false, "suppress the size/timing report")
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

	if err := run(flag.Arg(0), *output, *decompress, *windowSize, *minMatch, *noChecksum, *lenient, *quiet); err != nil {
		fmt.Fprintf(os.Stderr, "lzssx: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath string, decompress bool, windowSize, minMatch int, noChecksum, lenient, quiet bool) error {
	input, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}

	var (
		result  []byte
		elapsed time.Duration
	)

	if decompress {
		if outPath == "" {
			outPath = strings.TrimSuffix(inPath, outputSuffix)
			if outPath == inPath {
				outPath = inPath + ".out"
			}
		}

		// The header carries the parameters, the flags are not needed here.
		if len(input) > 0 {
			windowSize, minMatch, err = lzssx.HeaderParams(input)
			if err != nil {
				return err
			}
		}

		opts := lzssx.DefaultOptions()
		if lenient {
			opts = lzssx.LenientOptions()
		}

		ctx, err := lzssx.NewWithOptions(windowSize, minMatch, opts)
		if err != nil {
			return err
		}

		start := time.Now()
		result, err = ctx.Decompress(input)
		elapsed = time.Since(start)
		if err != nil {
			return err
		}
	} else {
		if outPath == "" {
			outPath = inPath + outputSuffix
		}

		ctx, err := lzssx.NewWithOptions(windowSize, minMatch, &lzssx.Options{
			Checksum:       !noChecksum,
			VerifyChecksum: !lenient,
		})
		if err != nil {
			return err
		}

		start := time.Now()
		result, err = ctx.Compress(input)
		elapsed = time.Since(start)
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(outPath, result, 0o644); err != nil {
		return err
	}

	if !quiet {
		original, compressed := result, input
		if !decompress {
			original, compressed = input, result
		}

		ratio := 0.0
		if len(original) > 0 {
			ratio = float64(len(compressed)) / float64(len(original)) * 100
		}

		fmt.Printf("%s -> %s: %d -> %d bytes (ratio %.2f%%) in %v\n",
			inPath, outPath, len(input), len(result), ratio, elapsed)
	}

	return nil
}
