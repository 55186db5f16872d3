package pipeline

import "github.com/cwbudde/algo-r2sdf/fixed"

// delayLine is a fixed-depth feedback queue of complex samples backed
// by a circular buffer. The sample shifted in at tick t is shifted out
// at tick t+depth. Depth 1 covers the last stage's single-sample
// register; there is no separate degenerate case.
type delayLine struct {
	buf []fixed.Complex
	pos int
}

func newDelayLine(depth int) *delayLine {
	return &delayLine{buf: make([]fixed.Complex, depth)}
}

func (d *delayLine) depth() int {
	return len(d.buf)
}

// head returns the sample that the next shift will release.
func (d *delayLine) head() fixed.Complex {
	return d.buf[d.pos]
}

// shift stores in and releases the sample stored depth ticks ago.
func (d *delayLine) shift(in fixed.Complex) fixed.Complex {
	out := d.buf[d.pos]
	d.buf[d.pos] = in
	d.pos++
	if d.pos >= len(d.buf) {
		d.pos = 0
	}
	return out
}

// reset zeroes the queue contents.
func (d *delayLine) reset() {
	for i := range d.buf {
		d.buf[i] = fixed.Complex{}
	}
	d.pos = 0
}
