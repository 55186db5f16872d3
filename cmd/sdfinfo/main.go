// Command sdfinfo prints the structural parameters of a streaming FFT
// pipeline: per-stage widths, delay depths, twiddle table sizes, and
// the resulting latency.
//
// Usage:
//
//	sdfinfo [flags] [transform-size ...]
//
// Transform sizes must be powers of two. Without arguments it prints
// info for a 1024-point pipeline.
//
// Examples:
//
//	sdfinfo 256
//	sdfinfo -width 12 -twiddle 14 1024 4096
package main

import (
	"flag"
	"fmt"
	"math/bits"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-r2sdf/pipeline"
)

func main() {
	width := flag.Int("width", 16, "input sample width in bits")
	coeff := flag.Int("twiddle", 16, "twiddle coefficient width in bits")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sdfinfo [flags] [transform-size ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints structural parameters of streaming FFT pipelines.\n")
		fmt.Fprintf(os.Stderr, "Transform sizes must be powers of two; default is 1024.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sdfinfo 256\n")
		fmt.Fprintf(os.Stderr, "  sdfinfo -width 12 -twiddle 14 1024 4096\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"1024"}
	}

	failed := false
	for _, arg := range args {
		if err := printPipeline(arg, *width, *coeff); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printPipeline(arg string, width, coeff int) error {
	size, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid transform size %q", arg)
	}
	if size < 2 || size&(size-1) != 0 {
		return fmt.Errorf("transform size must be a power of two >= 2: %d", size)
	}
	log2N := bits.TrailingZeros(uint(size))

	p, err := pipeline.New(log2N,
		pipeline.WithInputWidth(width),
		pipeline.WithTwiddleWidth(coeff),
	)
	if err != nil {
		return err
	}

	fmt.Printf("N=%d  stages=%d  input=%d bit  twiddle=%d bit  output=%d bit  latency=%d ticks\n",
		p.Size(), p.StageCount(), p.InputWidth(), p.CoeffWidth(), p.OutputWidth(), p.Latency())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Stage\tWidth\tDelay\tCtrl Bit\tTwiddle Angles")
	fmt.Fprintln(tw, "-----\t-----\t-----\t--------\t--------------")
	for n := 0; n < p.StageCount(); n++ {
		info, err := p.StageInfo(n)
		if err != nil {
			return err
		}
		angles := "-"
		if info.HasRotator {
			angles = strconv.Itoa(1 << info.TwiddleBits)
		}
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%s\n",
			info.Index, info.Width, info.Depth, info.ControlBit, angles)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	fmt.Println()
	return nil
}
