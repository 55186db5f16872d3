package pipeline

import "github.com/cwbudde/algo-r2sdf/fixed"

// butterfly is the radix-2 combinator of one stage. It adds and
// subtracts the delayed upper-path sample and the freshly arrived
// lower-path sample; both results occupy one bit more than the inputs.
type butterfly struct {
	// width is the output width in bits, one above the input width.
	width int
}

// combine returns sum = upper + lower, which continues downstream, and
// diff = upper - lower, which re-enters the stage's delay path.
func (b butterfly) combine(upper, lower fixed.Complex) (sum, diff fixed.Complex) {
	return upper.Add(lower), upper.Sub(lower)
}
