package pipeline

// counter is the single free-running control counter. It increments
// once per tick and wraps modulo 2^width. Every stage reads the same
// value, which keeps butterfly phases and twiddle angles consistent
// across the whole structure without any handshaking.
type counter struct {
	value uint64
	mask  uint64
}

func newCounter(width int) counter {
	return counter{mask: uint64(1)<<width - 1}
}

func (c *counter) tick() {
	c.value = (c.value + 1) & c.mask
}

func (c *counter) reset() {
	c.value = 0
}

// bit returns counter bit i as the stage-local control signal.
func (c *counter) bit(i int) bool {
	return c.value>>uint(i)&1 == 1
}

// low returns the lowest bits of the counter as a twiddle index.
func (c *counter) low(bits int) int {
	return int(c.value & (uint64(1)<<bits - 1))
}
