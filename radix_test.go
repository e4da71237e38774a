package slimfmt

import (
	"strconv"
	"testing"
)

func TestCountDigitsMatchesWriteDigitsLength(t *testing.T) {
	values := []uint64{0, 1, 9, 10, 42, 255, 789942, 1<<32 - 1, 1<<64 - 1}
	for base := 2; base <= 32; base++ {
		for _, v := range values {
			buf := NewSmallBuf(80)
			WriteDigits(buf, v, base, false)
			want := CountDigits(v, base)
			if got := buf.Len(); got != want {
				t.Errorf("base %d v %d: CountDigits=%d but WriteDigits emitted %d bytes", base, v, want, got)
			}
		}
	}
}

func TestWriteDigitsKnownBases(t *testing.T) {
	cases := []struct {
		v    uint64
		base int
		want string
	}{
		{42, 2, "101010"},
		{42, 8, "52"},
		{42, 16, "2a"},
		{789942, 5, "200234232"},
		{0, 10, "0"},
		{0, 2, "0"},
	}
	for _, c := range cases {
		buf := NewSmallBuf(64)
		WriteDigits(buf, c.v, c.base, false)
		if got := buf.String(); got != c.want {
			t.Errorf("WriteDigits(%d, base %d) = %q, want %q", c.v, c.base, got, c.want)
		}
	}
}

func TestWriteDigitsUppercase(t *testing.T) {
	buf := NewSmallBuf(16)
	WriteDigits(buf, 42, 16, true)
	if got, want := buf.String(), "2A"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteDigitsRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 17, 255, 65535, 123456789}
	for base := 2; base <= 16; base++ {
		for _, v := range values {
			buf := NewSmallBuf(80)
			WriteDigits(buf, v, base, false)
			got, err := strconv.ParseUint(buf.String(), base, 64)
			if err != nil {
				t.Fatalf("base %d v %d: parse error: %v", base, v, err)
			}
			if got != v {
				t.Errorf("base %d: round trip got %d, want %d", base, got, v)
			}
		}
	}
}

func TestWriteUnaryTruncatesWithEllipsis(t *testing.T) {
	buf := NewSmallBuf(80)
	WriteDigits(buf, 100, 1, false)
	got := buf.String()
	want := 64 + len("...")
	if len(got) != want {
		t.Fatalf("expected truncated unary run of length %d, got %d (%q)", want, len(got), got)
	}
	if got[64:] != "..." {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
	if got := CountDigits(100, 1); got != want {
		t.Errorf("CountDigits(100,1) = %d, want %d", got, want)
	}
}

func TestWriteUnaryZero(t *testing.T) {
	buf := NewSmallBuf(8)
	WriteDigits(buf, 0, 1, false)
	if got, want := buf.String(), "0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteSignedDigitsNegative(t *testing.T) {
	buf := NewSmallBuf(16)
	WriteSignedDigits(buf, -123, 16, false)
	if got, want := buf.String(), "-7b"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCountSignedDigitsMinInt64NoOverflow(t *testing.T) {
	const minInt64 = -1 << 63
	n := CountSignedDigits(minInt64, 10)
	buf := NewSmallBuf(32)
	WriteSignedDigits(buf, minInt64, 10, false)
	if buf.Len() != n {
		t.Errorf("CountSignedDigits=%d but WriteSignedDigits emitted %d bytes", n, buf.Len())
	}
	if got, want := buf.String(), "-9223372036854775808"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
