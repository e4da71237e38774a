package slimfmt

const digitAlphabetLower = "0123456789abcdefghijklmnopqrstuv"
const digitAlphabetUpper = "0123456789ABCDEFGHIJKLMNOPQRSTUV"

// maxRadixDigits bounds the scratch buffer used when reversing digits
// for any supported base; base 2 of a 64-bit value needs at most 64.
const maxRadixDigits = 64

// unaryCap is the hard cap spec.md places on base-1 (unary) rendering:
// past this many marks, the run is truncated and an ellipsis appended.
const unaryCap = 64

// CountDigits predicts the number of bytes WriteDigits will emit for v
// in the given base, without doing the rendering. base must be in
// [1, 32]; anything else returns 0.
func CountDigits(v uint64, base int) int {
	if base < 1 || base > 32 {
		return 0
	}
	if base == 1 {
		return countUnary(v)
	}
	if v == 0 {
		return 1
	}
	n := 0
	b := uint64(base)
	for v > 0 {
		n++
		v /= b
	}
	return n
}

// countUnary mirrors the truncation writeUnary applies: up to unaryCap
// '1' marks, plus a three-byte "..." suffix once v exceeds the cap.
func countUnary(v uint64) int {
	if v == 0 {
		return 1
	}
	marks := v
	if marks > unaryCap {
		marks = unaryCap
	}
	n := int(marks)
	if v > unaryCap {
		n += 3
	}
	return n
}

// WriteDigits renders v in the given base and appends it to buf. base
// must be in [1, 32]; a base outside that range is a no-op. Letter
// digits (base > 10) are rendered lowercase unless upper is set.
func WriteDigits(buf *SmallBuf, v uint64, base int, upper bool) {
	if base < 1 || base > 32 {
		return
	}
	if base == 1 {
		writeUnary(buf, v)
		return
	}
	alphabet := digitAlphabetLower
	if upper {
		alphabet = digitAlphabetUpper
	}
	if v == 0 {
		buf.Push('0')
		return
	}

	var scratch [maxRadixDigits]byte
	i := len(scratch)
	b := uint64(base)
	for v > 0 {
		i--
		scratch[i] = alphabet[v%b]
		v /= b
	}
	buf.Append(scratch[i:])
}

// writeUnary emits v copies of '1', capped at unaryCap marks, appending
// a three-dot ellipsis when v exceeds the cap. v=0 emits a single '0'.
func writeUnary(buf *SmallBuf, v uint64) {
	if v == 0 {
		buf.Push('0')
		return
	}
	marks := v
	if marks > unaryCap {
		marks = unaryCap
	}
	buf.Fill(int(marks), '1')
	if v > unaryCap {
		buf.AppendString("...")
	}
}

// WriteSignedDigits renders a signed value's magnitude with a leading
// '-' when negative, using the unsigned two's-complement-safe negation
// that avoids overflow on MinInt64.
func WriteSignedDigits(buf *SmallBuf, v int64, base int, upper bool) {
	if v < 0 {
		buf.Push('-')
		mag := uint64(-(v + 1)) + 1
		WriteDigits(buf, mag, base, upper)
		return
	}
	WriteDigits(buf, uint64(v), base, upper)
}

// CountSignedDigits predicts the byte count WriteSignedDigits will emit,
// including the sign byte for negative values.
func CountSignedDigits(v int64, base int) int {
	if v < 0 {
		mag := uint64(-(v + 1)) + 1
		return 1 + CountDigits(mag, base)
	}
	return CountDigits(uint64(v), base)
}
