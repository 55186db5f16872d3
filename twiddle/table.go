// Package twiddle provides the per-stage rotation coefficient tables of
// the pipeline. Each table stores one quarter period of a fixed-point
// sine wave and reconstructs full (cosine, sine) pairs by sign and
// argument reflection, the same way a hardware coefficient ROM would.
package twiddle

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-r2sdf/fixed"
)

// MaxIndexBits bounds the table size to something sane (2^30 angles).
const MaxIndexBits = 30

// Table is a read-only coefficient store for one pipeline stage.
//
// An indexBits-wide index together with the half-period select covers
// the angles 2*pi*k/2^(indexBits+1) for k in [0, 2^(indexBits+1)).
// Coefficients are quantized to width bits with full scale at
// 2^(width-1); the single +1.0 value saturates to 2^(width-1)-1.
type Table struct {
	indexBits int
	width     int

	// sin(2*pi*k/2^(indexBits+1)) for k in [0, 2^(indexBits-1)],
	// endpoints included.
	quarter []int64
}

// New builds the coefficient table for the given index and coefficient
// widths. indexBits must be at least 1.
func New(indexBits, width int) (*Table, error) {
	if indexBits < 1 || indexBits > MaxIndexBits {
		return nil, fmt.Errorf("twiddle: invalid index width: %d", indexBits)
	}
	if !fixed.ValidWidth(width) {
		return nil, fmt.Errorf("twiddle: invalid coefficient width: %d", width)
	}

	quarterLen := 1 << (indexBits - 1)
	period := float64(int64(1) << (indexBits + 1))
	scale := float64(int64(1) << (width - 1))
	limit := fixed.MaxValue(width)

	quarter := make([]int64, quarterLen+1)
	for k := range quarter {
		v := int64(math.Round(math.Sin(2*math.Pi*float64(k)/period) * scale))
		if v > limit {
			v = limit
		}
		quarter[k] = v
	}

	return &Table{indexBits: indexBits, width: width, quarter: quarter}, nil
}

// IndexBits returns the angle index width in bits.
func (t *Table) IndexBits() int { return t.indexBits }

// Width returns the coefficient width in bits.
func (t *Table) Width() int { return t.width }

// Len returns the number of distinct angles per half period.
func (t *Table) Len() int { return 1 << t.indexBits }

// At returns the (cosine, sine) pair for the angle
// 2*pi*(h*2^indexBits + index)/2^(indexBits+1), where h is 1 when half
// is set. Indices are taken modulo 2^indexBits; the composition derives
// them from the control counter so they are in range by construction.
func (t *Table) At(half bool, index int) (cos, sin int64) {
	index &= t.Len() - 1
	quarterLen := len(t.quarter) - 1

	if index < quarterLen {
		cos = t.quarter[quarterLen-index]
		sin = t.quarter[index]
	} else {
		// Second quadrant: reflect about pi/2.
		i := index - quarterLen
		cos = -t.quarter[i]
		sin = t.quarter[quarterLen-i]
	}

	if half {
		cos = -cos
		sin = -sin
	}
	return cos, sin
}

// Angle returns the angle in radians selected by (half, index), mostly
// useful for diagnostics and tests.
func (t *Table) Angle(half bool, index int) float64 {
	index &= t.Len() - 1
	k := index
	if half {
		k += t.Len()
	}
	return 2 * math.Pi * float64(k) / float64(2*t.Len())
}
