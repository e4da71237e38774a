package slimfmt

import (
	"strconv"
	"strings"
)

// Align selects which side of a field's rendered value receives the
// padding bytes.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// extraKind is the trailing p/P/c/C/uppercase-letter modifier recorded
// against a parsed options part.
type extraKind int

const (
	extraNone extraKind = iota
	extraUppercase
	extraChar
	extraPtr
)

// invalidBase marks a syntactically well-formed but out-of-range r<n>
// radix (BadBase): the field still consumes an argument at dispatch
// time but renders nothing besides padding.
const invalidBase = -1

type fieldKind int

const (
	kindEmpty fieldKind = iota
	kindLiteral
	kindFormat
)

// replacement is the parser's output for one `{...}` token or literal
// run: a Literal carries the raw bytes to copy; a Format carries the
// parsed alignment and options. An Empty replacement is dropped by the
// engine without consuming an argument.
type replacement struct {
	kind     fieldKind
	data     string
	base     int
	extra    extraKind
	side     Align
	width    int
	dynWidth bool
	pad      byte
}

// upper reports whether this field's numeric rendering should use
// uppercase digit letters. A Ptr extra always renders uppercase
// regardless of which of p/P produced it.
func (r replacement) upper() bool {
	return r.extra == extraUppercase || r.extra == extraPtr
}

// fieldScanner walks a format string left to right, handing back one
// literal run or parsed replacement at a time.
type fieldScanner struct {
	rest      string
	truncated bool
}

func newFieldScanner(s string) *fieldScanner {
	return &fieldScanner{rest: s}
}

// next produces the next token. ok is false once the input is
// exhausted (or once an unterminated field has forced early stop,
// signaled by s.truncated).
func (s *fieldScanner) next() (replacement, bool) {
	if len(s.rest) == 0 {
		return replacement{}, false
	}

	if s.rest[0] != '{' {
		i := strings.IndexByte(s.rest, '{')
		if i < 0 {
			i = len(s.rest)
		}
		lit := s.rest[:i]
		s.rest = s.rest[i:]
		return replacement{kind: kindLiteral, data: lit}, true
	}

	run := leadingBraceRun(s.rest)
	if run > 1 {
		n := run / 2
		consumed := run - (run % 2)
		s.rest = s.rest[consumed:]
		return replacement{kind: kindLiteral, data: strings.Repeat("{", n)}, true
	}

	closeIdx := strings.IndexByte(s.rest, '}')
	if closeIdx < 0 {
		assertf(false, "unterminated format specifier; use {{ to escape a brace")
		s.rest = ""
		s.truncated = true
		return replacement{}, false
	}

	nextOpen := strings.IndexByte(s.rest[1:], '{')
	if nextOpen >= 0 {
		nextOpen++
		if nextOpen < closeIdx {
			lit := s.rest[:nextOpen]
			s.rest = s.rest[nextOpen:]
			return replacement{kind: kindLiteral, data: lit}, true
		}
	}

	spec := s.rest[1:closeIdx]
	s.rest = s.rest[closeIdx+1:]
	r, ok := parseReplacementSpec(spec)
	if !ok {
		return replacement{kind: kindEmpty}, true
	}
	return r, true
}

func leadingBraceRun(s string) int {
	n := 0
	for n < len(s) && s[n] == '{' {
		n++
	}
	return n
}

// parseReplacementSpec parses the bytes between `{` and `}`. ok is
// false on a BadSpec condition (the caller turns this into a dropped
// Empty field); a BadBase condition (out-of-range r<n>) is still ok,
// with base set to invalidBase.
func parseReplacementSpec(spec string) (replacement, bool) {
	r := replacement{kind: kindFormat, side: AlignLeft, pad: ' ', base: 10}
	if spec == "" {
		return r, true
	}

	rest := spec
	if rest[0] == ':' {
		if len(rest) <= 1 {
			assertf(false, "alignment part truncated after ':'")
			return replacement{}, false
		}
		pad := rest[1]
		if pad < ' ' || pad > '~' {
			assertf(false, "pad byte is not printable ASCII")
			pad = ' '
		}
		r.pad = pad
		rest = rest[2:]

		r.side = parseSide(&rest)

		width, dyn, ok := parseWidth(&rest)
		if !ok {
			assertf(false, "invalid width specifier")
			return replacement{}, false
		}
		r.width = width
		r.dynWidth = dyn

		if rest == "" {
			return r, true
		}
	}

	if rest[0] != '%' || len(rest) <= 1 {
		assertf(false, "expected '%' to begin the options part")
		return replacement{}, false
	}

	if !parseOptions(rest[1:], &r) {
		assertf(false, "invalid options part")
		return replacement{}, false
	}
	return r, true
}

// parseSide consumes the side byte only if the next byte in *rest
// matches one of the side alphabet characters; otherwise it leaves
// *rest untouched and defaults to Left. This is a deliberate departure
// from a byte-always-consumed reading of the original grammar, in favor
// of the documented peek-then-conditionally-consume behavior.
func parseSide(rest *string) Align {
	if *rest == "" {
		return AlignLeft
	}
	switch (*rest)[0] {
	case '<', '+':
		*rest = (*rest)[1:]
		return AlignLeft
	case '>', '-':
		*rest = (*rest)[1:]
		return AlignRight
	case ' ', '=':
		*rest = (*rest)[1:]
		return AlignCenter
	default:
		return AlignLeft
	}
}

// parseWidth consumes either "*" (dynamic width) or a run of decimal
// digits up to the next '%' or end of string.
func parseWidth(rest *string) (width int, dynamic bool, ok bool) {
	if *rest == "" {
		return 0, false, true
	}
	if (*rest)[0] == '*' {
		*rest = (*rest)[1:]
		return 0, true, true
	}

	end := strings.IndexByte(*rest, '%')
	if end < 0 {
		end = len(*rest)
	}
	digits := (*rest)[:end]
	*rest = (*rest)[end:]
	if digits == "" {
		return 0, false, true
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false, false
	}
	return n, false, true
}

// alphaBases enumerates the single-letter base specifiers, and
// whether the letter's uppercase form marks extraUppercase (only hex's
// X/H do, per the grammar's "Hex uppercase if letter is upper" note).
var alphaBases = map[byte]struct {
	base       int
	upperCased bool
}{
	'b': {2, false}, 'B': {2, false},
	'o': {8, false}, 'O': {8, false},
	'd': {10, false}, 'D': {10, false},
	'x': {16, true}, 'X': {16, true},
	'h': {16, true}, 'H': {16, true},
}

// parseOptions parses the tail of the options part (after the leading
// '%' has already been stripped), working from the end of the string
// forward: a trailing p/P/c/C is peeled off first, then the remaining
// head is an alpha_base letter or an r<n> radix.
func parseOptions(opts string, r *replacement) bool {
	if opts == "" {
		return false
	}

	switch opts[len(opts)-1] {
	case 'p', 'P':
		r.extra = extraPtr
		r.base = 16
		opts = opts[:len(opts)-1]
	case 'c', 'C':
		r.extra = extraChar
		opts = opts[:len(opts)-1]
	}

	if opts == "" {
		// A bare p/P/c/C with no base letter is valid: Ptr defaults to
		// hex, Char doesn't need a base at all.
		return r.extra == extraPtr || r.extra == extraChar
	}

	first := opts[0]
	if first == 'r' || first == 'R' {
		n, err := strconv.Atoi(opts[1:])
		if err != nil {
			return false
		}
		if first == 'R' {
			r.extra = combineUppercase(r.extra)
		}
		if n < 1 || n > 32 {
			r.base = invalidBase
			return true
		}
		r.base = n
		return true
	}

	alpha, known := alphaBases[first]
	if !known || len(opts) > 1 {
		return false
	}
	r.base = alpha.base
	if alpha.upperCased && first >= 'A' && first <= 'Z' {
		r.extra = combineUppercase(r.extra)
	}
	return true
}

func combineUppercase(e extraKind) extraKind {
	if e == extraNone {
		return extraUppercase
	}
	return e
}
