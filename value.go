package slimfmt

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"
)

// Kind discriminates the payload carried by a Value.
type Kind uint8

const (
	KindChar Kind = iota
	KindI32
	KindU32
	KindI64
	KindU64
	KindPtr
	KindCStr
	KindOwnedStr
	KindStrView
	KindGeneric
)

// GenericFunc is the free-function extension hook: a callback invoked
// with a Formatter handle and the opaque value it was paired with. It is
// the Go mapping of the "formatter handle plus opaque data" contract a
// user-defined type exposes to the core.
type GenericFunc func(f *Formatter, data any)

// GenericWriter is the interface-based alternative to GenericFunc. Types
// that implement it can be passed directly to Format/Print/Println and
// will have FormatSlim invoked with the active Formatter handle.
type GenericWriter interface {
	FormatSlim(f *Formatter)
}

type genericValue struct {
	data any
	fn   GenericFunc
}

// Value is a tagged union over the scalar, string, pointer, and
// user-defined categories the formatting engine understands. String and
// pointer variants are non-owning: their referent must outlive the
// format call that uses them.
type Value struct {
	kind Kind
	i64  int64
	u64  uint64
	ch   byte
	str  string
	ptr  uintptr
	gen  genericValue
}

// Char wraps a single byte as a character value.
func Char(c byte) Value { return Value{kind: KindChar, ch: c} }

// Int32 wraps a 32-bit signed integer.
func Int32(v int32) Value { return Value{kind: KindI32, i64: int64(v)} }

// Uint32 wraps a 32-bit unsigned integer.
func Uint32(v uint32) Value { return Value{kind: KindU32, u64: uint64(v)} }

// Int64 wraps a 64-bit signed integer.
func Int64(v int64) Value { return Value{kind: KindI64, i64: v} }

// Uint64 wraps a 64-bit unsigned integer.
func Uint64(v uint64) Value { return Value{kind: KindU64, u64: v} }

// Int wraps a platform int as a 64-bit signed integer.
func Int(v int) Value { return Int64(int64(v)) }

// Uint wraps a platform uint as a 64-bit unsigned integer.
func Uint(v uint) Value { return Uint64(uint64(v)) }

// PtrAddr wraps a raw address as a pointer value.
func PtrAddr(addr uintptr) Value { return Value{kind: KindPtr, ptr: addr} }

// Ptr wraps a pointer-like Go value (pointer, slice, map, channel, func,
// or unsafe.Pointer) as a pointer value. Anything else becomes a null
// pointer.
func Ptr(v any) Value {
	if v == nil {
		return PtrAddr(0)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return PtrAddr(rv.Pointer())
	default:
		return PtrAddr(0)
	}
}

// CStr wraps a string as a C-style string: its effective length is
// scanned up to the first NUL byte, not its full Go length.
func CStr(s string) Value { return Value{kind: KindCStr, str: s} }

// Str wraps a string as an owned-string value.
func Str(s string) Value { return Value{kind: KindOwnedStr, str: s} }

// View wraps a string as a non-owning string-view value.
func View(s string) Value { return Value{kind: KindStrView, str: s} }

// Generic pairs an opaque value with the callback that knows how to
// render it, for use by user-defined types.
func Generic(data any, fn GenericFunc) Value {
	return Value{kind: KindGeneric, gen: genericValue{data: data, fn: fn}}
}

// ValueOf adapts an arbitrary Go value into a Value. A Value passes
// through unchanged; a GenericWriter is wrapped as a Generic value that
// calls its FormatSlim; scalar and string kinds map directly; nil and
// pointer-like kinds (pointer, slice, map, channel, func,
// unsafe.Pointer) become pointer values; anything else falls back to
// its fmt.Sprint rendering as an owned string.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return PtrAddr(0)
	case byte: // also covers uint8
		return Char(t)
	case int:
		return Int64(int64(t))
	case int8:
		return Int64(int64(t))
	case int16:
		return Int64(int64(t))
	case rune: // also covers int32
		return Int32(t)
	case int64:
		return Int64(t)
	case uint:
		return Uint64(uint64(t))
	case uint16:
		return Uint64(uint64(t))
	case uint32:
		return Uint32(t)
	case uint64:
		return Uint64(t)
	case uintptr:
		return PtrAddr(t)
	case string:
		return Str(t)
	case GenericWriter:
		return Generic(t, func(f *Formatter, data any) {
			data.(GenericWriter).FormatSlim(f)
		})
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Ptr, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
			return Ptr(v)
		default:
			return Str(fmt.Sprint(v))
		}
	}
}

func (v Value) isStrKind() bool {
	return v.kind == KindCStr || v.kind == KindOwnedStr || v.kind == KindStrView
}

// IsSignedInt reports whether v is a signed integer. In permissive mode,
// a Char is also treated as one.
func (v Value) IsSignedInt(permissive bool) bool {
	if v.kind == KindI32 || v.kind == KindI64 {
		return true
	}
	return permissive && v.kind == KindChar
}

// IsUnsignedInt reports whether v is an unsigned integer. In permissive
// mode, a Char is also treated as one.
func (v Value) IsUnsignedInt(permissive bool) bool {
	if v.kind == KindU32 || v.kind == KindU64 {
		return true
	}
	return permissive && v.kind == KindChar
}

// IsInt reports whether v is any integer kind.
func (v Value) IsInt(permissive bool) bool {
	return v.IsSignedInt(permissive) || v.IsUnsignedInt(permissive)
}

// IsChar reports whether v is a Char. In permissive mode, any string
// kind is also treated as one.
func (v Value) IsChar(permissive bool) bool {
	if v.kind == KindChar {
		return true
	}
	return permissive && v.isStrKind()
}

// IsStr reports whether v is a string kind. In permissive mode, a Char
// is also treated as a length-1 string.
func (v Value) IsStr(permissive bool) bool {
	if v.isStrKind() {
		return true
	}
	return permissive && v.kind == KindChar
}

// IsPtr reports whether v is a pointer. In permissive mode, a CStr is
// also treated as one.
func (v Value) IsPtr(permissive bool) bool {
	if v.kind == KindPtr {
		return true
	}
	return permissive && v.kind == KindCStr
}

// IsGeneric reports whether v carries a user-defined formatting hook.
func (v Value) IsGeneric() bool {
	return v.kind == KindGeneric
}

// cstrContent truncates s at its first NUL byte, emulating strlen over a
// C-style string. An empty result stands in for a null pointer.
func cstrContent(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// AsI64 extracts v as a signed 64-bit integer, widening or
// two's-complement-reinterpreting as needed. Returns 0 on a category
// mismatch.
func (v Value) AsI64(permissive bool) int64 {
	if !v.IsInt(permissive) {
		return 0
	}
	switch v.kind {
	case KindI32, KindI64:
		return v.i64
	case KindU32, KindU64:
		return int64(v.u64)
	case KindChar:
		return int64(v.ch)
	default:
		return 0
	}
}

// AsU64 extracts v as an unsigned 64-bit integer. Returns 0 on a
// category mismatch.
func (v Value) AsU64(permissive bool) uint64 {
	if !v.IsInt(permissive) {
		return 0
	}
	switch v.kind {
	case KindU32, KindU64:
		return v.u64
	case KindI32, KindI64:
		return uint64(v.i64)
	case KindChar:
		return uint64(v.ch)
	default:
		return 0
	}
}

// AsChar extracts v as a single byte: the Char itself, or (in permissive
// mode) the first byte of a string, falling back to ' ' when empty.
// Returns 0 on a category mismatch.
func (v Value) AsChar(permissive bool) byte {
	if v.kind == KindChar {
		return v.ch
	}
	if !permissive || !v.isStrKind() {
		return 0
	}
	s := v.str
	if v.kind == KindCStr {
		s = cstrContent(s)
	}
	if len(s) == 0 {
		return ' '
	}
	return s[0]
}

// AsStr extracts v's string content. For CStr this stops at the first
// NUL byte; for Char (permissive), it's a length-1 view over the stored
// byte. Returns "" on a category mismatch.
func (v Value) AsStr(permissive bool) string {
	if !v.IsStr(permissive) {
		return ""
	}
	switch v.kind {
	case KindCStr:
		return cstrContent(v.str)
	case KindOwnedStr, KindStrView:
		return v.str
	case KindChar:
		return string([]byte{v.ch})
	default:
		return ""
	}
}

// AsPtr extracts v as a raw address. For CStr (permissive), this is the
// address of the string's backing data. Returns 0 on a category
// mismatch.
func (v Value) AsPtr(permissive bool) uintptr {
	if v.kind == KindPtr {
		return v.ptr
	}
	if permissive && v.kind == KindCStr {
		return stringAddr(cstrContent(v.str))
	}
	return 0
}

func stringAddr(s string) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// AsGeneric extracts v's opaque data and formatting callback. ok is
// false on a category mismatch.
func (v Value) AsGeneric() (data any, fn GenericFunc, ok bool) {
	if v.kind != KindGeneric {
		return nil, nil, false
	}
	return v.gen.data, v.gen.fn, true
}

// TypeName returns a fixed diagnostic name for v's active kind.
func (v Value) TypeName() string {
	switch v.kind {
	case KindChar:
		return "Char"
	case KindI32:
		return "Signed"
	case KindI64:
		return "SignedLL"
	case KindU32:
		return "Unsigned"
	case KindU64:
		return "UnsignedLL"
	case KindPtr:
		return "Ptr"
	case KindCStr:
		return "CString"
	case KindOwnedStr:
		return "StdString"
	case KindStrView:
		return "StringView"
	default:
		return "Generic"
	}
}
