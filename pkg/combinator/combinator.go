// Package combinator implements a small parser-combinator library over an
// immutable input cursor. A Parser[T] consumes a prefix of its input and
// yields a value together with the remaining input, or fails. Failure
// carries no diagnostics: a failed branch reports ok=false and alternation
// retries the next branch from the original input.
package combinator

import (
	"strconv"
	"strings"
)

// Input is an immutable cursor over source text. Advancing never mutates
// an Input held by a caller; combinators return a new cursor positioned
// further along the same string.
type Input struct {
	src string
	pos int
}

func (in Input) rest() string { return in.src[in.pos:] }

// Parser consumes a prefix of in and returns the parsed value, the
// remaining input, and whether the parse succeeded. The Input returned on
// failure carries no meaning.
type Parser[T any] func(in Input) (T, Input, bool)

// Run applies p to src and requires total consumption: after p succeeds,
// only trailing whitespace may remain. A partial match is a failure.
func Run[T any](p Parser[T], src string) (T, bool) {
	v, rest, ok := p(Input{src: src})
	if !ok {
		var zero T
		return zero, false
	}
	rest = skipSpace(rest)
	if rest.pos != len(rest.src) {
		var zero T
		return zero, false
	}
	return v, true
}

// Succeed consumes nothing and yields v.
func Succeed[T any](v T) Parser[T] {
	return func(in Input) (T, Input, bool) {
		return v, in, true
	}
}

// Fail consumes nothing and never succeeds.
func Fail[T any]() Parser[T] {
	return func(in Input) (T, Input, bool) {
		var zero T
		return zero, in, false
	}
}

// Item consumes a single byte. It fails only at end of input.
var Item Parser[byte] = func(in Input) (byte, Input, bool) {
	if in.pos >= len(in.src) {
		return 0, in, false
	}
	c := in.src[in.pos]
	in.pos++
	return c, in, true
}

// Sat consumes one byte satisfying pred.
func Sat(pred func(byte) bool) Parser[byte] {
	return func(in Input) (byte, Input, bool) {
		c, rest, ok := Item(in)
		if !ok || !pred(c) {
			return 0, in, false
		}
		return c, rest, true
	}
}

// Char consumes exactly the byte c.
func Char(c byte) Parser[byte] {
	return Sat(func(b byte) bool { return b == c })
}

// Lit consumes exactly the literal string s.
func Lit(s string) Parser[string] {
	return func(in Input) (string, Input, bool) {
		if !strings.HasPrefix(in.rest(), s) {
			return "", in, false
		}
		in.pos += len(s)
		return s, in, true
	}
}

// Bind runs p, then runs the parser f builds from p's value on the
// remaining input. Any failure aborts the whole sequence.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(in Input) (B, Input, bool) {
		a, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, in, false
		}
		return f(a)(rest)
	}
}

// Map runs p and transforms its value with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (B, Input, bool) {
		a, rest, ok := p(in)
		if !ok {
			var zero B
			return zero, in, false
		}
		return f(a), rest, true
	}
}

// Alt tries each parser in turn on the same input and the first success
// wins. A failed branch consumes nothing, so every branch starts from the
// original position.
func Alt[T any](parsers ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, bool) {
		for _, p := range parsers {
			if v, rest, ok := p(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, in, false
	}
}

// Many applies p zero or more times, collecting the results; it always
// succeeds. p must consume input on every success — a zero-width success
// would repeat forever, so Many panics on one.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, bool) {
		var vs []T
		for {
			v, rest, ok := p(in)
			if !ok {
				return vs, in, true
			}
			if rest.pos == in.pos {
				panic("combinator: Many applied to a parser that consumes no input")
			}
			vs = append(vs, v)
			in = rest
		}
	}
}

// SepBy parses zero or more p separated by sep, discarding the
// separators. A separator not followed by p is left unconsumed.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(in Input) ([]T, Input, bool) {
		first, rest, ok := p(in)
		if !ok {
			return nil, in, true
		}
		vs := []T{first}
		in = rest
		for {
			_, afterSep, ok := sep(in)
			if !ok {
				return vs, in, true
			}
			next, afterItem, ok := p(afterSep)
			if !ok {
				return vs, in, true
			}
			vs = append(vs, next)
			in = afterItem
		}
	}
}

// Space consumes a possibly empty run of whitespace.
var Space Parser[string] = func(in Input) (string, Input, bool) {
	rest := skipSpace(in)
	return in.src[in.pos:rest.pos], rest, true
}

// Ctrl matches the punctuation literal s after skipping leading whitespace.
func Ctrl(s string) Parser[string] {
	lit := Lit(s)
	return func(in Input) (string, Input, bool) {
		return lit(skipSpace(in))
	}
}

// Ident parses an identifier after skipping leading whitespace: a letter
// or underscore followed by the longest run of letters, digits and
// underscores. Words listed in reserved never parse as identifiers.
func Ident(reserved ...string) Parser[string] {
	rw := make(map[string]bool, len(reserved))
	for _, w := range reserved {
		rw[w] = true
	}
	return func(in Input) (string, Input, bool) {
		name, rest, ok := scanIdent(skipSpace(in))
		if !ok || rw[name] {
			return "", in, false
		}
		return name, rest, true
	}
}

// Number parses a decimal integer after skipping leading whitespace: the
// longest nonempty digit run.
func Number() Parser[int] {
	return func(in Input) (int, Input, bool) {
		in = skipSpace(in)
		start := in.pos
		for in.pos < len(in.src) && isDigit(in.src[in.pos]) {
			in.pos++
		}
		if in.pos == start {
			return 0, in, false
		}
		n, err := strconv.Atoi(in.src[start:in.pos])
		if err != nil {
			return 0, in, false
		}
		return n, in, true
	}
}

// Keyword matches the reserved word k after skipping leading whitespace.
// The match must cover a whole identifier, so Keyword("if") does not
// match the prefix of "ifx".
func Keyword(k string) Parser[string] {
	return func(in Input) (string, Input, bool) {
		name, rest, ok := scanIdent(skipSpace(in))
		if !ok || name != k {
			return "", in, false
		}
		return k, rest, true
	}
}

func skipSpace(in Input) Input {
	for in.pos < len(in.src) && isSpace(in.src[in.pos]) {
		in.pos++
	}
	return in
}

func scanIdent(in Input) (string, Input, bool) {
	if in.pos >= len(in.src) || !isLetter(in.src[in.pos]) {
		return "", in, false
	}
	start := in.pos
	for in.pos < len(in.src) && (isLetter(in.src[in.pos]) || isDigit(in.src[in.pos])) {
		in.pos++
	}
	return in.src[start:in.pos], in, true
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
