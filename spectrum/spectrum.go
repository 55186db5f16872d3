package spectrum

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-r2sdf/fixed"
	"github.com/cwbudde/algo-r2sdf/pipeline"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// FromFixed converts fixed-point samples to complex128, normalized by
// the full scale of the given width so a full-scale value maps to 1.0.
func FromFixed(in []fixed.Complex, width int) ([]complex128, error) {
	if !fixed.ValidWidth(width) {
		return nil, fmt.Errorf("spectrum: invalid width: %d", width)
	}
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = c.ToComplex128(width)
	}
	return out, nil
}

// FromFixedRaw converts fixed-point samples to complex128 without
// scaling, keeping values in integer steps of the source format.
func FromFixedRaw(in []fixed.Complex) []complex128 {
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = complex(float64(c.Re), float64(c.Im))
	}
	return out
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this
// allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// NaturalOrder reorders a block emitted by the pipeline, where output j
// carries bin BitReverse(j), into natural ascending bin order.
func NaturalOrder(in []complex128, log2N int) ([]complex128, error) {
	if log2N < 1 || len(in) != 1<<log2N {
		return nil, fmt.Errorf("spectrum: length %d does not match 2^%d", len(in), log2N)
	}
	out := make([]complex128, len(in))
	for j, v := range in {
		out[pipeline.BitReverse(j, log2N)] = v
	}
	return out, nil
}

// Reference computes the forward DFT of block in natural bin order
// using an FFT plan, as ground truth for pipeline validation.
func Reference(block []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(block))
	if err != nil {
		return nil, fmt.Errorf("spectrum: reference plan: %w", err)
	}
	out := make([]complex128, len(block))
	if err := plan.Forward(out, block); err != nil {
		return nil, fmt.Errorf("spectrum: reference transform: %w", err)
	}
	return out, nil
}
