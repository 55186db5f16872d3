package pipeline

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-r2sdf/fixed"
	"github.com/cwbudde/algo-r2sdf/twiddle"
)

// Errors returned by the pipeline constructor and accessors.
var (
	ErrBlockLength = errors.New("pipeline: block length does not match transform size")
	ErrStageIndex  = errors.New("pipeline: stage index out of range")
)

// MaxLog2N bounds the transform length exponent; 2^24 points with the
// default widths already exhausts any realistic streaming use.
const MaxLog2N = 24

// Pipeline is a streaming R2SDF FFT of size 2^log2N. It consumes one
// complex sample and produces one complex sample per Tick with a fixed
// latency of Size()-1 ticks.
//
// Inputs must fit the declared input width; for the per-stage width
// growth to bound all intermediate values, the complex magnitude of
// each input must also stay within the input full scale 2^(width-1).
// Blocks are framed by the internal counter: the first sample of each
// block is the one consumed while the counter reads zero.
type Pipeline struct {
	log2N      int
	size       int
	inputWidth int
	coeffWidth int

	ctr    counter
	stages []*stage
}

// New builds a pipeline for a transform of size 2^log2N.
func New(log2N int, opts ...Option) (*Pipeline, error) {
	if log2N < 1 || log2N > MaxLog2N {
		return nil, fmt.Errorf("pipeline: invalid transform length exponent: %d", log2N)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !fixed.ValidWidth(cfg.inputWidth) {
		return nil, fmt.Errorf("pipeline: invalid input width: %d", cfg.inputWidth)
	}
	if !fixed.ValidWidth(cfg.coeffWidth) {
		return nil, fmt.Errorf("pipeline: invalid twiddle width: %d", cfg.coeffWidth)
	}
	// The widest rotator product must fit the int64 container: a
	// width-w sample times a width-c coefficient plus the companion
	// product occupies w+c-1 bits.
	if cfg.inputWidth+log2N+cfg.coeffWidth > fixed.MaxWidth {
		return nil, fmt.Errorf("pipeline: input width %d + exponent %d + twiddle width %d exceeds %d bits",
			cfg.inputWidth, log2N, cfg.coeffWidth, fixed.MaxWidth)
	}

	p := &Pipeline{
		log2N:      log2N,
		size:       1 << log2N,
		inputWidth: cfg.inputWidth,
		coeffWidth: cfg.coeffWidth,
		ctr:        newCounter(log2N),
		stages:     make([]*stage, log2N),
	}

	for n := 0; n < log2N; n++ {
		s := &stage{
			index:   n,
			ctrlBit: log2N - n - 1,
			delay:   newDelayLine(1 << (log2N - n - 1)),
			bfly:    butterfly{width: cfg.inputWidth + n + 1},
		}
		if n < log2N-1 {
			table, err := twiddle.New(log2N-n-1, cfg.coeffWidth)
			if err != nil {
				return nil, fmt.Errorf("pipeline: stage %d: %w", n, err)
			}
			s.rot = newRotator(table)
		}
		p.stages[n] = s
	}

	return p, nil
}

// Tick advances the pipeline by one clock: it consumes one input
// sample, advances every stage in lock step, and returns the output
// sample for this clock. Output is valid once Latency() ticks have
// elapsed since the corresponding input (or since the last Reset).
func (p *Pipeline) Tick(in fixed.Complex) fixed.Complex {
	x := in
	for _, s := range p.stages {
		ctrl := p.ctr.bit(s.ctrlBit)
		x = s.tick(x, ctrl, p.ctr.low(s.ctrlBit))
	}
	p.ctr.tick()
	return x
}

// Reset forces the control counter back to zero. Delay line contents
// are left to drain, matching a synchronous hardware reset: output must
// not be trusted until Latency() ticks after release.
func (p *Pipeline) Reset() {
	p.ctr.reset()
}

// Size returns the transform length N.
func (p *Pipeline) Size() int { return p.size }

// StageCount returns the number of stages, log2(N).
func (p *Pipeline) StageCount() int { return p.log2N }

// Latency returns the fixed input-to-output delay in ticks, N-1.
func (p *Pipeline) Latency() int { return p.size - 1 }

// InputWidth returns the declared input sample width in bits.
func (p *Pipeline) InputWidth() int { return p.inputWidth }

// CoeffWidth returns the twiddle coefficient width in bits.
func (p *Pipeline) CoeffWidth() int { return p.coeffWidth }

// OutputWidth returns the output sample width, input width + log2(N).
func (p *Pipeline) OutputWidth() int { return p.inputWidth + p.log2N }

// OutputBin returns the frequency bin delivered by the j-th output of a
// block. The decimation-in-frequency wiring emits bins in bit-reversed
// order: output j carries bin BitReverse(j, log2N).
func (p *Pipeline) OutputBin(j int) int {
	return BitReverse(j&(p.size-1), p.log2N)
}

// StageInfo describes the structural parameters of one stage.
type StageInfo struct {
	Index       int  // stage position, 0 is the input stage
	Width       int  // internal sample width in bits
	Depth       int  // delay line depth in samples
	ControlBit  int  // counter bit driving the phase swap
	TwiddleBits int  // rotation index width, 0 when HasRotator is false
	HasRotator  bool // false only for the last stage
}

// StageInfo returns the structural parameters of stage n.
func (p *Pipeline) StageInfo(n int) (StageInfo, error) {
	if n < 0 || n >= len(p.stages) {
		return StageInfo{}, ErrStageIndex
	}
	s := p.stages[n]
	info := StageInfo{
		Index:      s.index,
		Width:      s.width(),
		Depth:      s.delay.depth(),
		ControlBit: s.ctrlBit,
		HasRotator: s.rot != nil,
	}
	if s.rot != nil {
		info.TwiddleBits = s.rot.table.IndexBits()
	}
	return info, nil
}

// Transform runs a single block through the pipeline and returns the
// transform in natural bin order. It clears all pipeline state first
// and leaves the tail of the block draining afterwards, so it is a
// one-shot convenience for block use, not part of a continuous stream.
func (p *Pipeline) Transform(block []fixed.Complex) ([]fixed.Complex, error) {
	if len(block) != p.size {
		return nil, ErrBlockLength
	}

	p.ctr.reset()
	for _, s := range p.stages {
		s.delay.reset()
	}

	out := make([]fixed.Complex, p.size)
	total := 2*p.size - 1
	for t := 0; t < total; t++ {
		var in fixed.Complex
		if t < p.size {
			in = block[t]
		}
		y := p.Tick(in)
		if j := t - (p.size - 1); j >= 0 {
			out[BitReverse(j, p.log2N)] = y
		}
	}
	return out, nil
}
