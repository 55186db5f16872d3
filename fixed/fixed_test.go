package fixed

import (
	"math"
	"testing"
)

func TestMinMaxValue(t *testing.T) {
	cases := []struct {
		width    int
		min, max int64
	}{
		{2, -2, 1},
		{8, -128, 127},
		{16, -32768, 32767},
		{24, -8388608, 8388607},
	}
	for _, c := range cases {
		if got := MinValue(c.width); got != c.min {
			t.Errorf("MinValue(%d): got %d want %d", c.width, got, c.min)
		}
		if got := MaxValue(c.width); got != c.max {
			t.Errorf("MaxValue(%d): got %d want %d", c.width, got, c.max)
		}
	}
}

func TestFits(t *testing.T) {
	if !Fits(127, 8) || !Fits(-128, 8) {
		t.Fatal("8-bit extremes must fit")
	}
	if Fits(128, 8) || Fits(-129, 8) {
		t.Fatal("values beyond 8-bit extremes must not fit")
	}
	if Fits(0, 0) || Fits(0, 64) {
		t.Fatal("invalid widths must not fit anything")
	}
}

func TestFromFloat64(t *testing.T) {
	if _, err := FromFloat64(0.5, 1); err == nil {
		t.Fatal("expected error for width=1")
	}
	if _, err := FromFloat64(math.NaN(), 16); err == nil {
		t.Fatal("expected error for NaN")
	}

	v, err := FromFloat64(0.5, 16)
	if err != nil {
		t.Fatal(err)
	}
	if v != 16384 {
		t.Fatalf("0.5 at width 16: got %d want 16384", v)
	}

	// Full scale saturates rather than wrapping.
	v, err = FromFloat64(1.0, 16)
	if err != nil {
		t.Fatal(err)
	}
	if v != 32767 {
		t.Fatalf("1.0 at width 16: got %d want 32767", v)
	}

	v, err = FromFloat64(-1.0, 16)
	if err != nil {
		t.Fatal(err)
	}
	if v != -32768 {
		t.Fatalf("-1.0 at width 16: got %d want -32768", v)
	}
}

func TestToFloat64RoundTrip(t *testing.T) {
	for _, x := range []float64{-1, -0.75, -0.125, 0, 0.125, 0.5, 0.984375} {
		v, err := FromFloat64(x, 16)
		if err != nil {
			t.Fatal(err)
		}
		back := ToFloat64(v, 16)
		if math.Abs(back-x) > 1.0/32768 {
			t.Errorf("round trip %f: got %f", x, back)
		}
	}
}

func TestRoundShift(t *testing.T) {
	cases := []struct {
		v     int64
		shift uint
		want  int64
	}{
		{0, 4, 0},
		{8, 4, 1},  // 0.5 rounds up
		{7, 4, 0},  // just below 0.5
		{24, 4, 2}, // 1.5 rounds toward +inf
		{-8, 4, 0}, // -0.5 rounds toward +inf
		{-9, 4, -1},
		{-24, 4, -1}, // -1.5 rounds toward +inf
		{5, 0, 5},
	}
	for _, c := range cases {
		if got := RoundShift(c.v, c.shift); got != c.want {
			t.Errorf("RoundShift(%d, %d): got %d want %d", c.v, c.shift, got, c.want)
		}
	}
}

func TestComplexAddSub(t *testing.T) {
	a := Complex{Re: 3, Im: -4}
	b := Complex{Re: -1, Im: 2}

	sum := a.Add(b)
	if sum.Re != 2 || sum.Im != -2 {
		t.Fatalf("Add: got %+v", sum)
	}

	diff := a.Sub(b)
	if diff.Re != 4 || diff.Im != -6 {
		t.Fatalf("Sub: got %+v", diff)
	}
}

func TestComplexFits(t *testing.T) {
	c := Complex{Re: 127, Im: -128}
	if !c.Fits(8) {
		t.Fatal("8-bit extremes must fit")
	}
	if c.Fits(7) {
		t.Fatal("must not fit in 7 bits")
	}
}

func TestFromComplex128(t *testing.T) {
	c, err := FromComplex128(complex(0.25, -0.5), 16)
	if err != nil {
		t.Fatal(err)
	}
	if c.Re != 8192 || c.Im != -16384 {
		t.Fatalf("got %+v", c)
	}

	if _, err := FromComplex128(complex(math.Inf(1), 0), 16); err == nil {
		t.Fatal("expected error for infinite part")
	}
}
