package parser

import (
	"implang/pkg/ast"
	"implang/pkg/combinator"
)

// reserved words of the command language; they never parse as identifiers.
var reserved = []string{"if", "then", "else", "while", "do"}

// ParseExp parses src as a single expression. The whole input must be
// consumed, trailing whitespace aside; any other outcome reports ok=false.
func ParseExp(src string) (ast.Exp, bool) {
	return combinator.Run(pExp, src)
}

// ParseCom parses src as a single command under the same total-consumption
// rule as ParseExp.
func ParseCom(src string) (ast.Com, bool) {
	return combinator.Run(pCom, src)
}

var pExp, pCom = grammar()

func grammar() (combinator.Parser[ast.Exp], combinator.Parser[ast.Com]) {
	exp := expGrammar()
	return exp, comGrammar(exp)
}

// expGrammar builds the expression parser as a tower of precedence tiers,
// lowest binding strength first. Each tier takes its operands from the
// next tier up and folds (operator, operand) pairs leftward, so a-b-c
// parses as (a-b)-c.
func expGrammar() combinator.Parser[ast.Exp] {
	var exp combinator.Parser[ast.Exp]
	expRef := func(in combinator.Input) (ast.Exp, combinator.Input, bool) { return exp(in) }

	variable := combinator.Map(combinator.Ident(reserved...), func(name string) ast.Exp {
		return &ast.Var{Name: name}
	})
	constant := combinator.Map(combinator.Number(), func(n int) ast.Exp {
		return &ast.Const{Value: n}
	})
	group := parens(expRef)
	atom := combinator.Alt(group, variable, constant)

	// Unary minus takes a bare variable, a parenthesized constant or a
	// parenthesized expression. A bare literal like -5 is not accepted;
	// it must be written -(5).
	minus := combinator.Ctrl("-")
	negTarget := combinator.Alt(variable, parens(constant), group)
	neg := func(in combinator.Input) (ast.Exp, combinator.Input, bool) {
		_, rest, ok := minus(in)
		if !ok {
			return nil, in, false
		}
		e, rest, ok := negTarget(rest)
		if !ok {
			return nil, in, false
		}
		return &ast.Uminus{Operand: e}, rest, true
	}
	unary := combinator.Alt(neg, atom)

	mul := binTier(unary, ast.Times, ast.Div)
	add := binTier(mul, ast.Plus, ast.Minus)
	cmp := cmpTier(add, ast.Less, ast.LessEq, ast.Equal)
	and := binTier(cmp, ast.And)
	exp = binTier(and, ast.Or)
	return exp
}

// comGrammar builds the command parser: assignment, if-else, while and
// braced sequence, tried in that order.
func comGrammar(exp combinator.Parser[ast.Exp]) combinator.Parser[ast.Com] {
	var com combinator.Parser[ast.Com]
	comRef := func(in combinator.Input) (ast.Com, combinator.Input, bool) { return com(in) }

	ident := combinator.Ident(reserved...)
	eq := combinator.Ctrl("=")
	lbrace := combinator.Ctrl("{")
	rbrace := combinator.Ctrl("}")
	kwIf := combinator.Keyword("if")
	kwThen := combinator.Keyword("then")
	kwElse := combinator.Keyword("else")
	kwWhile := combinator.Keyword("while")
	kwDo := combinator.Keyword("do")
	blockBody := combinator.SepBy(comRef, combinator.Ctrl(";"))

	assign := func(in combinator.Input) (ast.Com, combinator.Input, bool) {
		name, rest, ok := ident(in)
		if !ok {
			return nil, in, false
		}
		_, rest, ok = eq(rest)
		if !ok {
			return nil, in, false
		}
		v, rest, ok := exp(rest)
		if !ok {
			return nil, in, false
		}
		return &ast.Assign{Name: name, Value: v}, rest, true
	}

	ifCom := func(in combinator.Input) (ast.Com, combinator.Input, bool) {
		_, rest, ok := kwIf(in)
		if !ok {
			return nil, in, false
		}
		cond, rest, ok := exp(rest)
		if !ok {
			return nil, in, false
		}
		_, rest, ok = kwThen(rest)
		if !ok {
			return nil, in, false
		}
		thn, rest, ok := comRef(rest)
		if !ok {
			return nil, in, false
		}
		_, rest, ok = kwElse(rest)
		if !ok {
			return nil, in, false
		}
		els, rest, ok := comRef(rest)
		if !ok {
			return nil, in, false
		}
		return &ast.If{Cond: cond, Then: thn, Else: els}, rest, true
	}

	whileCom := func(in combinator.Input) (ast.Com, combinator.Input, bool) {
		_, rest, ok := kwWhile(in)
		if !ok {
			return nil, in, false
		}
		cond, rest, ok := exp(rest)
		if !ok {
			return nil, in, false
		}
		_, rest, ok = kwDo(rest)
		if !ok {
			return nil, in, false
		}
		b, rest, ok := comRef(rest)
		if !ok {
			return nil, in, false
		}
		return &ast.While{Cond: cond, Body: b}, rest, true
	}

	seq := func(in combinator.Input) (ast.Com, combinator.Input, bool) {
		_, rest, ok := lbrace(in)
		if !ok {
			return nil, in, false
		}
		cs, rest, _ := blockBody(rest)
		_, rest, ok = rbrace(rest)
		if !ok {
			return nil, in, false
		}
		return &ast.Seq{Commands: cs}, rest, true
	}

	com = combinator.Alt(assign, ifCom, whileCom, seq)
	return com
}

type opPair struct {
	op  ast.Binop
	rhs ast.Exp
}

func pairOf(operand combinator.Parser[ast.Exp], op ast.Binop) combinator.Parser[opPair] {
	sym := combinator.Ctrl(op.String())
	return combinator.Bind(sym, func(string) combinator.Parser[opPair] {
		return combinator.Map(operand, func(rhs ast.Exp) opPair {
			return opPair{op: op, rhs: rhs}
		})
	})
}

// binTier builds one left-associative precedence tier: a single operand,
// then any number of (operator, operand) pairs folded into a left-leaning
// tree. Operators are tried in the order given.
func binTier(operand combinator.Parser[ast.Exp], ops ...ast.Binop) combinator.Parser[ast.Exp] {
	pairs := make([]combinator.Parser[opPair], 0, len(ops))
	for _, op := range ops {
		pairs = append(pairs, pairOf(operand, op))
	}
	more := combinator.Many(combinator.Alt(pairs...))
	return combinator.Bind(operand, func(a ast.Exp) combinator.Parser[ast.Exp] {
		return combinator.Map(more, func(ps []opPair) ast.Exp {
			for _, p := range ps {
				a = &ast.BinExp{Op: p.op, Left: a, Right: p.rhs}
			}
			return a
		})
	})
}

// cmpTier builds the comparison tier, which does not chain: one operand
// followed by at most one (operator, operand) pair. Each pair is tried as
// a unit, so when < matches but no operand follows (as in a<=b), the
// alternation retries <= from the original position.
func cmpTier(operand combinator.Parser[ast.Exp], ops ...ast.Binop) combinator.Parser[ast.Exp] {
	pairs := make([]combinator.Parser[opPair], 0, len(ops))
	for _, op := range ops {
		pairs = append(pairs, pairOf(operand, op))
	}
	tail := combinator.Alt(pairs...)
	return combinator.Bind(operand, func(a ast.Exp) combinator.Parser[ast.Exp] {
		return combinator.Alt(
			combinator.Map(tail, func(p opPair) ast.Exp {
				return &ast.BinExp{Op: p.op, Left: a, Right: p.rhs}
			}),
			combinator.Succeed(a),
		)
	})
}

func parens[T any](p combinator.Parser[T]) combinator.Parser[T] {
	open := combinator.Ctrl("(")
	closing := combinator.Ctrl(")")
	return func(in combinator.Input) (T, combinator.Input, bool) {
		var zero T
		_, rest, ok := open(in)
		if !ok {
			return zero, in, false
		}
		v, rest, ok := p(rest)
		if !ok {
			return zero, in, false
		}
		_, rest, ok = closing(rest)
		if !ok {
			return zero, in, false
		}
		return v, rest, true
	}
}
