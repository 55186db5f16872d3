package fixed

import (
	"fmt"
	"math"
)

// MaxWidth is the widest representable sample width. One container bit
// is reserved so intermediate products never overflow int64.
const MaxWidth = 63

// MinValue returns the smallest value representable in width bits.
func MinValue(width int) int64 {
	return -(int64(1) << (width - 1))
}

// MaxValue returns the largest value representable in width bits.
func MaxValue(width int) int64 {
	return int64(1)<<(width-1) - 1
}

// Fits reports whether v is representable in width bits.
func Fits(v int64, width int) bool {
	if width <= 0 || width > MaxWidth {
		return false
	}
	return v >= MinValue(width) && v <= MaxValue(width)
}

// ValidWidth reports whether width is a usable sample width.
func ValidWidth(width int) bool {
	return width >= 2 && width <= MaxWidth
}

// FromFloat64 quantizes x in [-1, 1] to width bits with full scale at
// 2^(width-1). Rounding is to nearest, ties away from zero; +1.0
// saturates to the largest representable value.
func FromFloat64(x float64, width int) (int64, error) {
	if !ValidWidth(width) {
		return 0, fmt.Errorf("fixed: invalid width: %d", width)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("fixed: value not finite: %f", x)
	}
	v := int64(math.Round(x * float64(int64(1)<<(width-1))))
	if v > MaxValue(width) {
		v = MaxValue(width)
	}
	if v < MinValue(width) {
		v = MinValue(width)
	}
	return v, nil
}

// ToFloat64 converts a width-bit value back to the [-1, 1) range using
// the same 2^(width-1) full-scale convention as FromFloat64.
func ToFloat64(v int64, width int) float64 {
	return float64(v) / float64(int64(1)<<(width-1))
}

// RoundShift arithmetically shifts v right by shift bits, rounding to
// nearest with ties toward +infinity. This is the single rounding
// primitive used by every rotator stage.
func RoundShift(v int64, shift uint) int64 {
	if shift == 0 {
		return v
	}
	return (v + int64(1)<<(shift-1)) >> shift
}

// Complex is one fixed-point complex sample.
type Complex struct {
	Re int64
	Im int64
}

// Add returns c + o. The caller accounts for the one-bit width growth.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Sub returns c - o. The caller accounts for the one-bit width growth.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Fits reports whether both parts are representable in width bits.
func (c Complex) Fits(width int) bool {
	return Fits(c.Re, width) && Fits(c.Im, width)
}

// FromComplex128 quantizes both parts of x to width bits.
func FromComplex128(x complex128, width int) (Complex, error) {
	re, err := FromFloat64(real(x), width)
	if err != nil {
		return Complex{}, err
	}
	im, err := FromFloat64(imag(x), width)
	if err != nil {
		return Complex{}, err
	}
	return Complex{Re: re, Im: im}, nil
}

// ToComplex128 converts c back to a normalized complex128.
func (c Complex) ToComplex128(width int) complex128 {
	return complex(ToFloat64(c.Re, width), ToFloat64(c.Im, width))
}
