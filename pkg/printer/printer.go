// Package printer renders expression and command trees back to canonical
// source text. The output is minimal: parentheses appear only where the
// grammar would otherwise rebuild a different tree, and command layout
// follows fixed indentation rules. Printing a parse of the printer's own
// output reproduces the text exactly.
package printer

import (
	"strconv"
	"strings"

	"implang/pkg/ast"
)

// binopPrec orders operators from loosest to tightest binding.
var binopPrec = [...]int{
	ast.Or:     1,
	ast.And:    2,
	ast.Less:   3,
	ast.LessEq: 3,
	ast.Equal:  3,
	ast.Plus:   4,
	ast.Minus:  4,
	ast.Times:  5,
	ast.Div:    5,
}

const cmpPrec = 3

const indent = "  "

// Exp renders e with minimal parentheses and no spaces around operators.
func Exp(e ast.Exp) string {
	var b strings.Builder
	writeExp(&b, e, 0)
	return b.String()
}

// Com renders c using newline separators and two-space indentation, with
// no trailing newline.
func Com(c ast.Com) string {
	var b strings.Builder
	writeCom(&b, c, 0)
	return b.String()
}

// writeExp renders e inside a surrounding operator of precedence ctx;
// ctx 0 means no surrounding operator. A binary node is parenthesized
// exactly when its precedence does not exceed ctx.
func writeExp(b *strings.Builder, e ast.Exp, ctx int) {
	switch e := e.(type) {
	case *ast.Var:
		b.WriteString(e.Name)
	case *ast.Const:
		b.WriteString(strconv.Itoa(e.Value))
	case *ast.Uminus:
		if v, ok := e.Operand.(*ast.Var); ok {
			b.WriteByte('-')
			b.WriteString(v.Name)
			return
		}
		b.WriteString("-(")
		writeExp(b, e.Operand, 0)
		b.WriteByte(')')
	case *ast.BinExp:
		p := binopPrec[e.Op]
		if p <= ctx {
			b.WriteByte('(')
			writeBin(b, e, p)
			b.WriteByte(')')
			return
		}
		writeBin(b, e, p)
	}
}

func writeBin(b *strings.Builder, e *ast.BinExp, p int) {
	left := p - 1
	if p == cmpPrec {
		// Comparisons do not chain, so a comparison in left-operand
		// position needs parentheses even at equal precedence.
		left = p
	}
	writeExp(b, e.Left, left)
	b.WriteString(e.Op.String())
	writeExp(b, e.Right, p)
}

// writeCom renders c at the given indentation level. The caller writes
// any padding for the first line; continuation lines pad themselves.
func writeCom(b *strings.Builder, c ast.Com, level int) {
	switch c := c.(type) {
	case *ast.Assign:
		b.WriteString(c.Name)
		b.WriteString(" = ")
		writeExp(b, c.Value, 0)
	case *ast.Seq:
		writeSeq(b, c, level)
	case *ast.While:
		b.WriteString("while ")
		writeExp(b, c.Cond, 0)
		b.WriteString(" do")
		if s, ok := c.Body.(*ast.Seq); ok {
			b.WriteByte(' ')
			writeSeq(b, s, level)
			return
		}
		writeIndented(b, c.Body, level)
	case *ast.If:
		b.WriteString("if ")
		writeExp(b, c.Cond, 0)
		b.WriteString(" then")
		if s, ok := c.Then.(*ast.Seq); ok {
			// A block hugs its keyword, and else stays on the
			// closing-brace line.
			b.WriteByte(' ')
			writeSeq(b, s, level)
			b.WriteString(" else")
		} else {
			writeIndented(b, c.Then, level)
			b.WriteByte('\n')
			b.WriteString(pad(level))
			b.WriteString("else")
		}
		switch els := c.Else.(type) {
		case *ast.Seq:
			b.WriteByte(' ')
			writeSeq(b, els, level)
		case *ast.If:
			// else-if chains stay flat.
			b.WriteByte(' ')
			writeCom(b, els, level)
		default:
			writeIndented(b, c.Else, level)
		}
	}
}

func writeSeq(b *strings.Builder, s *ast.Seq, level int) {
	if len(s.Commands) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for i, c := range s.Commands {
		b.WriteString(pad(level + 1))
		writeCom(b, c, level+1)
		if i < len(s.Commands)-1 {
			b.WriteByte(';')
		}
		b.WriteByte('\n')
	}
	b.WriteString(pad(level))
	b.WriteByte('}')
}

// writeIndented puts c on its own line, one level deeper.
func writeIndented(b *strings.Builder, c ast.Com, level int) {
	b.WriteByte('\n')
	b.WriteString(pad(level + 1))
	writeCom(b, c, level+1)
}

func pad(level int) string {
	return strings.Repeat(indent, level)
}
