package ast

import (
	"strconv"
	"strings"
)

type Node interface {
	String() string
}

type Exp interface {
	Node
	expNode()
}

type Com interface {
	Node
	comNode()
}

// Binop identifies a binary operator. The zero value is Or.
type Binop int

const (
	Or Binop = iota
	And
	Less
	LessEq
	Equal
	Plus
	Minus
	Times
	Div
)

var binopSyms = [...]string{
	Or:     "||",
	And:    "&&",
	Less:   "<",
	LessEq: "<=",
	Equal:  "==",
	Plus:   "+",
	Minus:  "-",
	Times:  "*",
	Div:    "/",
}

func (op Binop) String() string {
	if op < 0 || int(op) >= len(binopSyms) {
		return "Binop(" + strconv.Itoa(int(op)) + ")"
	}
	return binopSyms[op]
}

// Expressions

type Var struct {
	Name string
}

func (v *Var) expNode()       {}
func (v *Var) String() string { return v.Name }

type Const struct {
	Value int
}

func (c *Const) expNode()       {}
func (c *Const) String() string { return strconv.Itoa(c.Value) }

type Uminus struct {
	Operand Exp
}

func (u *Uminus) expNode() {}
func (u *Uminus) String() string {
	return "(-" + u.Operand.String() + ")"
}

type BinExp struct {
	Op    Binop
	Left  Exp
	Right Exp
}

func (b *BinExp) expNode() {}
func (b *BinExp) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

// Commands

type Assign struct {
	Name  string
	Value Exp
}

func (a *Assign) comNode() {}
func (a *Assign) String() string {
	return a.Name + " = " + a.Value.String()
}

type Seq struct {
	Commands []Com
}

func (s *Seq) comNode() {}
func (s *Seq) String() string {
	if len(s.Commands) == 0 {
		return "{}"
	}
	parts := []string{}
	for _, c := range s.Commands {
		parts = append(parts, c.String())
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// If always carries both branches; the grammar has no single-branch form.
type If struct {
	Cond Exp
	Then Com
	Else Com
}

func (i *If) comNode() {}
func (i *If) String() string {
	return "if " + i.Cond.String() + " then " + i.Then.String() + " else " + i.Else.String()
}

type While struct {
	Cond Exp
	Body Com
}

func (w *While) comNode() {}
func (w *While) String() string {
	return "while " + w.Cond.String() + " do " + w.Body.String()
}
