package pipeline

import "github.com/cwbudde/algo-r2sdf/fixed"

// stage is one delay/butterfly/table/rotator quadruple of the pipeline.
type stage struct {
	index   int
	ctrlBit int // counter bit driving the phase swap
	delay   *delayLine
	bfly    butterfly
	rot     *rotator // nil for the last stage
}

// width is the stage's internal sample width, set by the butterfly's
// one-bit growth over the previous stage.
func (s *stage) width() int {
	return s.bfly.width
}

// tick advances the stage by one clock.
//
// With ctrl high the stage is in its combine phase: the operand stored
// half a block ago leaves the delay line, the butterfly sum continues
// downstream unrotated, and the difference re-enters the delay path.
// With ctrl low the roles swap: the fresh sample is stored while the
// previously computed difference is released through the rotator at
// the angle selected by twiddleIndex.
func (s *stage) tick(in fixed.Complex, ctrl bool, twiddleIndex int) fixed.Complex {
	if ctrl {
		upper := s.delay.head()
		sum, diff := s.bfly.combine(upper, in)
		s.delay.shift(diff)
		return sum
	}

	out := s.delay.shift(in)
	if s.rot != nil {
		out = s.rot.rotate(out, false, twiddleIndex)
	}
	return out
}
