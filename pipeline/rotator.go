package pipeline

import (
	"github.com/cwbudde/algo-r2sdf/fixed"
	"github.com/cwbudde/algo-r2sdf/twiddle"
)

// rotator multiplies passing samples by exp(-j*angle) using the
// four-multiply, two-add form. Products are scaled back by the
// coefficient full scale with round-to-nearest (ties toward +infinity);
// the same policy applies at every stage. A zero index in the first
// half period is a unity rotation and bypasses the multiplier entirely,
// so butterfly sums and zero-angle differences pass through exactly.
type rotator struct {
	table *twiddle.Table
	shift uint
}

func newRotator(table *twiddle.Table) *rotator {
	return &rotator{table: table, shift: uint(table.Width() - 1)}
}

func (r *rotator) rotate(x fixed.Complex, half bool, index int) fixed.Complex {
	if !half && index&(r.table.Len()-1) == 0 {
		return x
	}
	cos, sin := r.table.At(half, index)
	return fixed.Complex{
		Re: fixed.RoundShift(x.Re*cos+x.Im*sin, r.shift),
		Im: fixed.RoundShift(x.Im*cos-x.Re*sin, r.shift),
	}
}
