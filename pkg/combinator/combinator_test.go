package combinator

import "testing"

func TestItem(t *testing.T) {
	c, rest, ok := Item(Input{src: "ab"})
	if !ok {
		t.Fatalf("Item failed on nonempty input")
	}
	if c != 'a' {
		t.Fatalf("Item value wrong. expected=%q, got=%q", byte('a'), c)
	}
	if rest.pos != 1 {
		t.Fatalf("Item position wrong. expected=%d, got=%d", 1, rest.pos)
	}
	if _, _, ok := Item(Input{src: ""}); ok {
		t.Fatalf("Item succeeded on empty input")
	}
}

func TestSatAndChar(t *testing.T) {
	if c, _, ok := Sat(isDigit)(Input{src: "7x"}); !ok || c != '7' {
		t.Fatalf("Sat(isDigit) on %q: expected=%q ok, got=%q %t", "7x", byte('7'), c, ok)
	}
	if _, _, ok := Sat(isDigit)(Input{src: "x7"}); ok {
		t.Fatalf("Sat(isDigit) succeeded on %q", "x7")
	}
	if _, _, ok := Char('(')(Input{src: "(y"}); !ok {
		t.Fatalf("Char('(') failed on %q", "(y")
	}
	if _, _, ok := Char('(')(Input{src: ")y"}); ok {
		t.Fatalf("Char('(') succeeded on %q", ")y")
	}
}

func TestLit(t *testing.T) {
	s, rest, ok := Lit("<=")(Input{src: "<=1"})
	if !ok || s != "<=" {
		t.Fatalf("Lit(%q) on %q failed. got=%q %t", "<=", "<=1", s, ok)
	}
	if rest.pos != 2 {
		t.Fatalf("Lit(%q) position wrong. expected=%d, got=%d", "<=", 2, rest.pos)
	}
	if _, _, ok := Lit("<=")(Input{src: "<1"}); ok {
		t.Fatalf("Lit(%q) succeeded on %q", "<=", "<1")
	}
}

func TestBindThreadsRemainingInput(t *testing.T) {
	p := Bind(Number(), func(n int) Parser[int] {
		return Map(Number(), func(m int) int { return n*100 + m })
	})
	v, rest, ok := p(Input{src: "12 34 tail"})
	if !ok {
		t.Fatalf("Bind failed on %q", "12 34 tail")
	}
	if v != 1234 {
		t.Fatalf("Bind value wrong. expected=%d, got=%d", 1234, v)
	}
	if rest.rest() != " tail" {
		t.Fatalf("Bind remaining input wrong. expected=%q, got=%q", " tail", rest.rest())
	}
	if _, _, ok := p(Input{src: "12 x"}); ok {
		t.Fatalf("Bind succeeded although the second parser failed")
	}
}

func TestAltFirstMatchWins(t *testing.T) {
	p := Alt(Lit("a"), Lit("ab"))
	s, rest, ok := p(Input{src: "ab"})
	if !ok || s != "a" {
		t.Fatalf("Alt did not take the first branch. got=%q %t", s, ok)
	}
	if rest.rest() != "b" {
		t.Fatalf("Alt remaining input wrong. expected=%q, got=%q", "b", rest.rest())
	}
}

func TestAltRetriesFromOriginalInput(t *testing.T) {
	// The first branch consumes "a" before failing; the second must still
	// see the full input.
	first := Bind(Lit("a"), func(string) Parser[string] { return Lit("x") })
	p := Alt(first, Lit("ab"))
	s, _, ok := p(Input{src: "ab"})
	if !ok || s != "ab" {
		t.Fatalf("Alt did not retry from the original input. got=%q %t", s, ok)
	}
	if _, _, ok := p(Input{src: "zz"}); ok {
		t.Fatalf("Alt succeeded although every branch failed")
	}
}

func TestMany(t *testing.T) {
	digits := Many(Sat(isDigit))
	vs, rest, ok := digits(Input{src: "123x"})
	if !ok {
		t.Fatalf("Many failed")
	}
	if len(vs) != 3 || vs[0] != '1' || vs[2] != '3' {
		t.Fatalf("Many collected wrong values. got=%q", vs)
	}
	if rest.rest() != "x" {
		t.Fatalf("Many remaining input wrong. expected=%q, got=%q", "x", rest.rest())
	}
	vs, _, ok = digits(Input{src: "x"})
	if !ok || len(vs) != 0 {
		t.Fatalf("Many on no match: expected empty success, got len=%d ok=%t", len(vs), ok)
	}
}

func TestManyPanicsOnZeroWidthParser(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Many accepted a parser that consumes no input")
		}
	}()
	Many(Succeed(0))(Input{src: "x"})
}

func TestSepBy(t *testing.T) {
	p := SepBy(Number(), Ctrl(";"))

	vs, _, ok := p(Input{src: "1; 2 ;3"})
	if !ok {
		t.Fatalf("SepBy failed")
	}
	if len(vs) != 3 || vs[0] != 1 || vs[1] != 2 || vs[2] != 3 {
		t.Fatalf("SepBy values wrong. got=%v", vs)
	}

	vs, rest, ok := p(Input{src: "}"})
	if !ok || len(vs) != 0 {
		t.Fatalf("SepBy on zero occurrences: expected empty success, got len=%d ok=%t", len(vs), ok)
	}
	if rest.pos != 0 {
		t.Fatalf("SepBy consumed input on zero occurrences. pos=%d", rest.pos)
	}

	// A trailing separator stays unconsumed so the caller sees it.
	vs, rest, ok = p(Input{src: "1;"})
	if !ok || len(vs) != 1 {
		t.Fatalf("SepBy on trailing separator: expected one value, got len=%d ok=%t", len(vs), ok)
	}
	if rest.rest() != ";" {
		t.Fatalf("SepBy consumed the trailing separator. remaining=%q", rest.rest())
	}
}

func TestCtrlSkipsLeadingWhitespace(t *testing.T) {
	s, rest, ok := Ctrl("{")(Input{src: "  \n\t{x"})
	if !ok || s != "{" {
		t.Fatalf("Ctrl failed after whitespace. got=%q %t", s, ok)
	}
	if rest.rest() != "x" {
		t.Fatalf("Ctrl remaining input wrong. expected=%q, got=%q", "x", rest.rest())
	}
	if _, _, ok := Ctrl("{")(Input{src: "x"}); ok {
		t.Fatalf("Ctrl succeeded on %q", "x")
	}
}

func TestIdent(t *testing.T) {
	p := Ident("if", "then", "else", "while", "do")
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{" foo_1 bar", "foo_1", true},
		{"_x", "_x", true},
		{"ifx", "ifx", true},
		{"if", "", false},
		{"while", "", false},
		{"9a", "", false},
		{"", "", false},
	}
	for i, tt := range tests {
		got, _, ok := p(Input{src: tt.input})
		if ok != tt.ok {
			t.Fatalf("tests[%d] - Ident(%q) ok wrong. expected=%t, got=%t", i, tt.input, tt.ok, ok)
		}
		if got != tt.want {
			t.Fatalf("tests[%d] - Ident(%q) wrong. expected=%q, got=%q", i, tt.input, tt.want, got)
		}
	}
}

func TestNumber(t *testing.T) {
	n, rest, ok := Number()(Input{src: " 42ab"})
	if !ok || n != 42 {
		t.Fatalf("Number failed. got=%d %t", n, ok)
	}
	if rest.rest() != "ab" {
		t.Fatalf("Number remaining input wrong. expected=%q, got=%q", "ab", rest.rest())
	}
	if n, _, ok := Number()(Input{src: "007"}); !ok || n != 7 {
		t.Fatalf("Number on %q wrong. got=%d %t", "007", n, ok)
	}
	if _, _, ok := Number()(Input{src: "x"}); ok {
		t.Fatalf("Number succeeded on %q", "x")
	}
}

func TestKeywordRequiresWordBoundary(t *testing.T) {
	tests := []struct {
		kw    string
		input string
		ok    bool
	}{
		{"if", "if x", true},
		{"if", "if(", true},
		{"if", "ifx", false},
		{"do", "  do{}", true},
		{"do", "done", false},
		{"while", "whil", false},
	}
	for i, tt := range tests {
		_, _, ok := Keyword(tt.kw)(Input{src: tt.input})
		if ok != tt.ok {
			t.Fatalf("tests[%d] - Keyword(%q) on %q: expected=%t, got=%t", i, tt.kw, tt.input, tt.ok, ok)
		}
	}
}

func TestSucceedAndFail(t *testing.T) {
	v, rest, ok := Succeed(7)(Input{src: "abc"})
	if !ok || v != 7 || rest.pos != 0 {
		t.Fatalf("Succeed wrong. got=%d pos=%d ok=%t", v, rest.pos, ok)
	}
	if _, _, ok := Fail[int]()(Input{src: "abc"}); ok {
		t.Fatalf("Fail succeeded")
	}
}

func TestSpace(t *testing.T) {
	s, rest, ok := Space(Input{src: " \t\nx"})
	if !ok || s != " \t\n" {
		t.Fatalf("Space wrong. got=%q %t", s, ok)
	}
	if rest.rest() != "x" {
		t.Fatalf("Space remaining input wrong. got=%q", rest.rest())
	}
	if s, _, ok := Space(Input{src: "x"}); !ok || s != "" {
		t.Fatalf("Space on no whitespace wrong. got=%q %t", s, ok)
	}
}

func TestRunRequiresTotalConsumption(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"42", 42, true},
		{"  42  ", 42, true},
		{"42 extra", 0, false},
		{"", 0, false},
	}
	for i, tt := range tests {
		got, ok := Run(Number(), tt.input)
		if ok != tt.ok {
			t.Fatalf("tests[%d] - Run(%q) ok wrong. expected=%t, got=%t", i, tt.input, tt.ok, ok)
		}
		if got != tt.want {
			t.Fatalf("tests[%d] - Run(%q) wrong. expected=%d, got=%d", i, tt.input, tt.want, got)
		}
	}
}
