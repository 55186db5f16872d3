package pipeline

import "math/bits"

// BitReverse returns i with its lowest width bits reversed. It maps a
// block-relative output position to the frequency bin it carries, and
// is its own inverse.
func BitReverse(i, width int) int {
	u := uint64(i) & (uint64(1)<<width - 1)
	return int(bits.Reverse64(u) >> (64 - width))
}
