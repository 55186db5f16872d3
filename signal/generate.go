// Package signal generates deterministic fixed-point complex test and
// measurement stimuli for the pipeline: impulses, single-bin tones,
// full-scale alternating sequences, and seeded white noise.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-r2sdf/fixed"
)

// Generator creates deterministic signals quantized to a shared width.
type Generator struct {
	width int
	seed  int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator quantizing to the given sample width.
func NewGenerator(width int, opts ...Option) (*Generator, error) {
	if !fixed.ValidWidth(width) {
		return nil, fmt.Errorf("signal: invalid width: %d", width)
	}
	g := &Generator{width: width, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g, nil
}

// Width returns the generator sample width.
func (g *Generator) Width() int {
	return g.width
}

// Impulse generates a unit impulse of the given amplitude: sample zero
// carries the quantized amplitude on the real part, the rest are zero.
func (g *Generator) Impulse(amplitude float64, samples int) ([]fixed.Complex, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: impulse samples must be > 0: %d", samples)
	}
	v, err := fixed.FromFloat64(amplitude, g.width)
	if err != nil {
		return nil, err
	}
	out := make([]fixed.Complex, samples)
	out[0] = fixed.Complex{Re: v}
	return out, nil
}

// Tone generates a complex exponential concentrated at the given bin of
// a samples-point transform: x[t] = amplitude * exp(+j*2*pi*bin*t/samples).
func (g *Generator) Tone(bin, samples int, amplitude float64) ([]fixed.Complex, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: tone samples must be > 0: %d", samples)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("signal: tone amplitude must be in [0, 1]: %f", amplitude)
	}

	out := make([]fixed.Complex, samples)
	step := 2 * math.Pi * float64(bin) / float64(samples)
	for t := range out {
		c, err := fixed.FromComplex128(complex(
			amplitude*math.Cos(step*float64(t)),
			amplitude*math.Sin(step*float64(t)),
		), g.width)
		if err != nil {
			return nil, err
		}
		out[t] = c
	}
	return out, nil
}

// AlternatingFullScale generates the worst-case magnitude-growth input:
// real parts alternating between the positive and negative full-scale
// extremes, concentrating all energy at bin samples/2.
func (g *Generator) AlternatingFullScale(samples int) ([]fixed.Complex, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: alternating samples must be > 0: %d", samples)
	}
	hi := fixed.MaxValue(g.width)
	lo := -hi
	out := make([]fixed.Complex, samples)
	for t := range out {
		if t%2 == 0 {
			out[t] = fixed.Complex{Re: hi}
		} else {
			out[t] = fixed.Complex{Re: lo}
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic complex white noise with both
// parts uniform in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]fixed.Complex, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("signal: noise amplitude must be in [0, 1]: %f", amplitude)
	}

	out := make([]fixed.Complex, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for t := range out {
		c, err := fixed.FromComplex128(complex(
			amplitude*(2*rng.Float64()-1),
			amplitude*(2*rng.Float64()-1),
		), g.width)
		if err != nil {
			return nil, err
		}
		out[t] = c
	}
	return out, nil
}
