package numfmt

import (
	"math"
	"testing"
)

func TestFormatUintBases(t *testing.T) {
	buf := make([]byte, MaxDigits(2))

	tests := []struct {
		v    uint64
		base int
		want string
	}{
		{0, 10, "0"},
		{255, 16, "ff"},
		{255, 2, "11111111"},
		{35, 36, "z"},
		{math.MaxUint64, 10, "18446744073709551615"},
	}
	for _, tt := range tests {
		n := FormatUint(buf, tt.v, tt.base)
		if got := string(buf[:n]); got != tt.want {
			t.Errorf("FormatUint(%d, base %d) = %q, want %q", tt.v, tt.base, got, tt.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	buf := make([]byte, MaxDigits(2))

	n := FormatInt(buf, -42, 10)
	if got := string(buf[:n]); got != "-42" {
		t.Errorf("expected -42, got %q", got)
	}
	n = FormatInt(buf, math.MinInt64, 10)
	if got := string(buf[:n]); got != "-9223372036854775808" {
		t.Errorf("min int64 formatted as %q", got)
	}
}

func TestIntRoundTripAllBases(t *testing.T) {
	buf := make([]byte, MaxDigits(2))
	values := []int64{0, 1, -1, 7, -7, 12345, -12345, math.MaxInt64, math.MinInt64}

	for base := 2; base <= 36; base++ {
		for _, v := range values {
			n := FormatInt(buf, v, base)
			got, err := ParseInt(buf[:n], base)
			if err != nil {
				t.Fatalf("base %d value %d: parse error %v", base, v, err)
			}
			if got != v {
				t.Errorf("base %d: round trip of %d gave %d", base, v, got)
			}
		}
	}
}

func TestUintRoundTripAllBases(t *testing.T) {
	buf := make([]byte, MaxDigits(2))
	values := []uint64{0, 1, 255, 1 << 40, math.MaxUint64}

	for base := 2; base <= 36; base++ {
		for _, v := range values {
			n := FormatUint(buf, v, base)
			got, err := ParseUint(buf[:n], base)
			if err != nil {
				t.Fatalf("base %d value %d: parse error %v", base, v, err)
			}
			if got != v {
				t.Errorf("base %d: round trip of %d gave %d", base, v, got)
			}
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	buf := make([]byte, MaxFloatDigits)
	values := []float64{0, 1, -1, 0.1, 1e-300, 1e300, math.Pi, 1.0 / 3.0, math.SmallestNonzeroFloat64, math.MaxFloat64}

	for _, v := range values {
		n := FormatFloat(buf, v, -1)
		got, err := ParseFloat(buf[:n])
		if err != nil {
			t.Fatalf("value %g: parse error %v on %q", v, err, buf[:n])
		}
		if got != v {
			t.Errorf("round trip of %g gave %g", v, got)
		}
	}
}

func TestParseUintPrefixes(t *testing.T) {
	tests := []struct {
		in   string
		base int
		want uint64
	}{
		{"123", 0, 123},
		{"0x1f", 0, 31},
		{"0X1F", 0, 31},
		{"x1f", 0, 31},
		{"017", 0, 15},
		{"0", 0, 0},
		{"  42  ", 0, 42},
		{"+42", 10, 42},
		{"ff", 16, 255},
		{"0xff", 16, 255},
	}
	for _, tt := range tests {
		got, err := ParseUint([]byte(tt.in), tt.base)
		if err != nil {
			t.Errorf("ParseUint(%q, %d): unexpected error %v", tt.in, tt.base, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUint(%q, %d) = %d, want %d", tt.in, tt.base, got, tt.want)
		}
	}
}

func TestParseUintErrors(t *testing.T) {
	if _, err := ParseUint([]byte("-5"), 10); err != ErrInvalid {
		t.Errorf("negative unsigned: expected ErrInvalid, got %v", err)
	}
	if _, err := ParseUint([]byte(""), 10); err != ErrInvalid {
		t.Errorf("empty input: expected ErrInvalid, got %v", err)
	}
	if _, err := ParseUint([]byte("12g"), 10); err != ErrInvalid {
		t.Errorf("bad digit: expected ErrInvalid, got %v", err)
	}
	if _, err := ParseUint([]byte("18446744073709551616"), 10); err != ErrOverflow {
		t.Errorf("overflow: expected ErrOverflow, got %v", err)
	}
}

func TestParseIntBounds(t *testing.T) {
	v, err := ParseInt([]byte("-9223372036854775808"), 10)
	if err != nil || v != math.MinInt64 {
		t.Errorf("min int64: got %d, %v", v, err)
	}
	if _, err := ParseInt([]byte("-9223372036854775809"), 10); err != ErrOverflow {
		t.Errorf("below min: expected ErrOverflow, got %v", err)
	}
	if _, err := ParseInt([]byte("9223372036854775808"), 10); err != ErrOverflow {
		t.Errorf("above max: expected ErrOverflow, got %v", err)
	}
	if v, err := ParseInt([]byte("-0"), 10); err != nil || v != 0 {
		t.Errorf("-0: got %d, %v", v, err)
	}
}

func TestParseFloatSpecials(t *testing.T) {
	if v, err := ParseFloat([]byte("NaN")); err != nil || !math.IsNaN(v) {
		t.Errorf("NaN: got %g, %v", v, err)
	}
	if v, err := ParseFloat([]byte("-inf")); err != nil || !math.IsInf(v, -1) {
		t.Errorf("-inf: got %g, %v", v, err)
	}
	if v, err := ParseFloat([]byte(" 1.5e3 ")); err != nil || v != 1500 {
		t.Errorf("1.5e3: got %g, %v", v, err)
	}
	if _, err := ParseFloat([]byte("1.5e")); err != ErrInvalid {
		t.Errorf("dangling exponent: expected ErrInvalid, got %v", err)
	}
	if _, err := ParseFloat([]byte(".")); err != ErrInvalid {
		t.Errorf("lone dot: expected ErrInvalid, got %v", err)
	}
	if _, err := ParseFloat([]byte("1e9999")); err != ErrOverflow {
		t.Errorf("huge exponent: expected ErrOverflow, got %v", err)
	}
}

func TestParseBool(t *testing.T) {
	truthy := []string{"on", "ON", "yes", "true", "T", "1", "42", "-1"}
	for _, s := range truthy {
		v, err := ParseBool([]byte(s))
		if err != nil || !v {
			t.Errorf("ParseBool(%q) = %v, %v; want true", s, v, err)
		}
	}

	falsy := []string{"off", "no", "FALSE", "f", "0"}
	for _, s := range falsy {
		v, err := ParseBool([]byte(s))
		if err != nil || v {
			t.Errorf("ParseBool(%q) = %v, %v; want false", s, v, err)
		}
	}

	if _, err := ParseBool([]byte("maybe")); err != ErrInvalid {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestMaxDigitsReservation(t *testing.T) {
	for base := 2; base <= 36; base++ {
		buf := make([]byte, MaxDigits(base))
		if n := FormatInt(buf, math.MinInt64, base); n > len(buf) {
			t.Errorf("base %d: MaxDigits %d too small for %d bytes", base, len(buf), n)
		}
	}
}
