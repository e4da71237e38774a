package slimfmt

import (
	"io"
	"sync"
	"unsafe"
)

// defaultInlineCap is the inline capacity used by the pooled buffers that
// back Format, Print, Println, and Null. It mirrors the "typical values
// 64, 128, 256" inline sizes called out for small buffers in general.
const defaultInlineCap = 128

// SmallBuf is an append-only byte buffer. It starts backed by an inline
// block sized at construction and silently promotes to a heap-allocated
// block the first time an append would overflow it. Once promoted, Wipe
// is the only way back to the inline block.
//
// A zero SmallBuf is not usable; construct one with NewSmallBuf.
type SmallBuf struct {
	buf        []byte
	inlineData *byte
	inlineCap  int
}

// NewSmallBuf constructs an empty buffer with the given inline capacity.
// A non-positive capacity is promoted to 1 so the buffer's data pointer
// is never nil.
func NewSmallBuf(inlineCap int) *SmallBuf {
	if inlineCap <= 0 {
		inlineCap = 1
	}
	inline := make([]byte, 0, inlineCap)
	return &SmallBuf{
		buf:        inline,
		inlineData: unsafe.SliceData(inline),
		inlineCap:  inlineCap,
	}
}

// isInline reports whether the buffer is still backed by its original
// inline block. This is a pointer-identity test, not an explicit
// discriminator field, matching the data pointer comparison the small
// buffer's identity check is specified against.
func (b *SmallBuf) isInline() bool {
	return unsafe.SliceData(b.buf) == b.inlineData
}

// Len returns the number of bytes currently stored.
func (b *SmallBuf) Len() int { return len(b.buf) }

// Cap returns the buffer's current capacity.
func (b *SmallBuf) Cap() int { return cap(b.buf) }

// Bytes returns the stored bytes. The returned slice is only valid until
// the next mutating call.
func (b *SmallBuf) Bytes() []byte { return b.buf }

// String copies the stored bytes into a new string.
func (b *SmallBuf) String() string { return string(b.buf) }

// Reserve grows the buffer's capacity to at least n, if it isn't already.
// Growth doubles the existing capacity unless n demands more.
func (b *SmallBuf) Reserve(n int) {
	if n <= cap(b.buf) {
		return
	}
	newCap := cap(b.buf) * 2
	if newCap < n {
		newCap = n
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// ReserveBack ensures there is room for n more bytes past the current
// length without reallocating again.
func (b *SmallBuf) ReserveBack(n int) {
	b.Reserve(len(b.buf) + n)
}

// Push appends a single byte.
func (b *SmallBuf) Push(c byte) {
	b.Reserve(len(b.buf) + 1)
	b.buf = append(b.buf, c)
}

// Append appends the contents of p.
func (b *SmallBuf) Append(p []byte) {
	if len(p) == 0 {
		return
	}
	b.Reserve(len(b.buf) + len(p))
	b.buf = append(b.buf, p...)
}

// AppendString appends the contents of s.
func (b *SmallBuf) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	b.Reserve(len(b.buf) + len(s))
	b.buf = append(b.buf, s...)
}

// Fill appends n copies of c to the tail of the buffer.
func (b *SmallBuf) Fill(n int, c byte) {
	if n <= 0 {
		return
	}
	b.Resize(len(b.buf)+n, c)
}

// Resize sets the buffer's length to n. If n is larger than the current
// length, the new tail bytes are set to fill (or zero, if omitted); if
// n is smaller, the trailing bytes are dropped.
func (b *SmallBuf) Resize(n int, fill ...byte) {
	if n < 0 {
		n = 0
	}
	old := len(b.buf)
	b.Reserve(n)
	b.buf = b.buf[:n]
	if n > old {
		fillByte := byte(0)
		if len(fill) > 0 {
			fillByte = fill[0]
		}
		for i := old; i < n; i++ {
			b.buf[i] = fillByte
		}
	}
}

// Wipe drops any heap block and restores the inline backing, resetting
// the length to 0.
func (b *SmallBuf) Wipe() {
	inline := make([]byte, 0, b.inlineCap)
	b.buf = inline
	b.inlineData = unsafe.SliceData(inline)
}

// Absorb takes the contents of other, leaving other empty. If other has
// already promoted to a heap block, that block is taken directly;
// otherwise the inline bytes are copied. Absorbing self is a no-op.
func (b *SmallBuf) Absorb(other *SmallBuf) {
	if b == other {
		return
	}
	if !other.isInline() {
		b.buf = other.buf
		other.Wipe()
		return
	}
	b.buf = b.buf[:0]
	b.Append(other.buf)
	other.buf = other.buf[:0]
}

// WriteTo writes the stored bytes to w, satisfying io.WriterTo.
func (b *SmallBuf) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.buf)
	return int64(n), err
}

var smallBufPool = sync.Pool{
	New: func() any {
		return NewSmallBuf(defaultInlineCap)
	},
}

func getPooledBuf() *SmallBuf {
	return smallBufPool.Get().(*SmallBuf)
}

// Free returns the buffer to the pool after resetting its length to 0.
// Buffers that grew past maxPooledCap are dropped instead of pooled, to
// keep peak pool memory bounded.
func (b *SmallBuf) Free() {
	const maxPooledCap = 16 << 10
	b.Resize(0)
	if b.Cap() <= maxPooledCap {
		smallBufPool.Put(b)
	}
}
