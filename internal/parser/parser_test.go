package parser_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hyper-lang/hyper/internal/ast"
	"github.com/hyper-lang/hyper/internal/astdump"
	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/parser"
	"github.com/hyper-lang/hyper/internal/source"
)

type tree = astdump.Tree

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := parser.Parse(source.New("test.hy", src))
	if err != nil {
		t.Fatalf("unexpected parse error for %q: %v", src, err)
	}
	if prog == nil {
		t.Fatalf("program is nil")
	}

	return prog
}

func parseError(t *testing.T, src string) *diag.Error {
	t.Helper()

	prog, err := parser.Parse(source.New("test.hy", src))
	if err == nil {
		t.Fatalf("expected an error for %q", src)
	}
	if prog != nil {
		t.Fatalf("expected no program alongside an error for %q", src)
	}

	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *diag.Error, got %T: %v", err, err)
	}

	return de
}

// dumpStmt parses src, expects exactly one statement and returns its dump.
func dumpStmt(t *testing.T, src string) tree {
	t.Helper()

	prog := parseProgram(t, src)
	if prog.Len() != 1 {
		t.Fatalf("expected 1 statement in %q, got %d", src, prog.Len())
	}

	return astdump.Program(prog, astdump.Options{})[0].(tree)
}

// dumpExpr parses src as a single expression statement and returns the
// dump of its expression.
func dumpExpr(t *testing.T, src string) tree {
	t.Helper()

	stmt := dumpStmt(t, src)
	if stmt["kind"] != "Expression" {
		t.Fatalf("expected an expression statement for %q, got %v", src, stmt["kind"])
	}

	return stmt["expr"].(tree)
}

func assertTree(t *testing.T, src string, got, want any) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tree for %q:\n got %v\nwant %v", src, got, want)
	}
}

func name(n string) tree { return tree{"kind": "Name", "name": n} }

func num(v int) tree { return tree{"kind": "Value", "type": "int", "value": v} }

func str(s string) tree { return tree{"kind": "Value", "type": "str", "value": s} }

func typ(s string) tree { return tree{"kind": "Type", "type": s} }

func binary(op string, left, right tree) tree {
	return tree{"kind": "Binary", "op": op, "left": left, "right": right}
}

func TestParseEmptyProgram(t *testing.T) {
	prog := parseProgram(t, "  // nothing here\n")

	if prog.Len() != 0 {
		t.Fatalf("expected no statements, got %d", prog.Len())
	}
}

func TestParseBinaryPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"1 + 2 * 3;", binary("+", num(1), binary("*", num(2), num(3)))},
		{"a - b - c;", binary("-", binary("-", name("a"), name("b")), name("c"))},
		{"a || b && c;", binary("||", name("a"), binary("&&", name("b"), name("c")))},
		{"a | b ^ c & d;", binary("|", name("a"), binary("^", name("b"), binary("&", name("c"), name("d"))))},
		{"a == b < c;", binary("==", name("a"), binary("<", name("b"), name("c")))},
		{"a < b in c;", binary("<", name("a"), binary("in", name("b"), name("c")))},
		{"a !in b;", binary("!in", name("a"), name("b"))},
		{"a..b + 1;", binary("..", name("a"), binary("+", name("b"), num(1)))},
		{"a...b;", binary("...", name("a"), name("b"))},
		{"a << b + c;", binary("<<", name("a"), binary("+", name("b"), name("c")))},
		{"a >>> b;", binary(">>>", name("a"), name("b"))},
		{"(1 + 2) * 3;", binary("*", binary("+", num(1), num(2)), num(3))},
		{"a % b / c;", binary("/", binary("%", name("a"), name("b")), name("c"))},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseTypeOperands(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"x as i32;", binary("as", name("x"), typ("i32"))},
		{"x as i32 * 2;", binary("*", binary("as", name("x"), typ("i32")), num(2))},
		{"x as i32 .. y;", binary("..", binary("as", name("x"), typ("i32")), name("y"))},
		{"v is str;", binary("is", name("v"), typ("str"))},
		{"v !is Point;", binary("!is", name("v"), typ("Point"))},
		{"v is i32[] == ok;", binary("==", binary("is", name("v"), typ("i32[]")), name("ok"))},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParsePrefixAndPostfix(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"-a;", tree{"kind": "Prefix", "op": "-", "operand": name("a")}},
		{"!!a;", tree{"kind": "Prefix", "op": "!", "operand": tree{"kind": "Prefix", "op": "!", "operand": name("a")}}},
		{"#xs;", tree{"kind": "Prefix", "op": "#", "operand": name("xs")}},
		{"~a * b;", binary("*", tree{"kind": "Prefix", "op": "~", "operand": name("a")}, name("b"))},
		{"++i;", tree{"kind": "Prefix", "op": "++", "operand": name("i")}},
		{"i--;", tree{"kind": "Postfix", "op": "--", "operand": name("i")}},
		{"-a.b++;", tree{"kind": "Prefix", "op": "-", "operand": tree{
			"kind":    "Postfix",
			"op":      "++",
			"operand": tree{"kind": "GetMember", "target": name("a"), "member": "b"},
		}}},
		{"Color::Red;", tree{"kind": "GetMember", "target": name("Color"), "member": "Red", "scoped": true}},
		{"m[i, j];", tree{
			"kind":   "GetIndex",
			"target": tree{"kind": "GetIndex", "target": name("m"), "index": name("i")},
			"index":  name("j"),
		}},
		{"self.x;", tree{"kind": "GetMember", "target": name("self"), "member": "x"}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseInvoke(t *testing.T) {
	input := `f(1, *xs, key = "v",);`

	want := tree{
		"kind":   "Invoke",
		"target": name("f"),
		"args": []any{
			tree{"value": num(1)},
			tree{"value": name("xs"), "spread": true},
			tree{"value": str("v"), "name": "key"},
		},
	}

	assertTree(t, input, dumpExpr(t, input), want)

	empty := dumpExpr(t, "f()();")
	assertTree(t, "f()();", empty, tree{
		"kind":   "Invoke",
		"target": tree{"kind": "Invoke", "target": name("f"), "args": []any{}},
		"args":   []any{},
	})
}

func TestParseInfixCall(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"a max b;", tree{
			"kind":   "Invoke",
			"target": tree{"kind": "GetMember", "target": name("a"), "member": "max"},
			"args":   []any{tree{"value": name("b")}},
		}},
		{"a max b + 1 == c;", binary("==", tree{
			"kind":   "Invoke",
			"target": tree{"kind": "GetMember", "target": name("a"), "member": "max"},
			"args":   []any{tree{"value": binary("+", name("b"), num(1))}},
		}, name("c"))},
		{"a zip b..c;", tree{
			"kind":   "Invoke",
			"target": tree{"kind": "GetMember", "target": name("a"), "member": "zip"},
			"args":   []any{tree{"value": binary("..", name("b"), name("c"))}},
		}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"a = 1;", tree{"kind": "Assign", "target": name("a"), "value": num(1)}},
		{"a += b;", tree{"kind": "Assign", "target": name("a"), "value": binary("+", name("a"), name("b"))}},
		{"a >>>= 2;", tree{"kind": "Assign", "target": name("a"), "value": binary(">>>", name("a"), num(2))}},
		{"xs[i] = 0;", tree{"kind": "SetIndex", "target": name("xs"), "index": name("i"), "value": num(0)}},
		{"xs[i] *= 2;", tree{
			"kind":   "SetIndex",
			"target": name("xs"),
			"index":  name("i"),
			"value":  binary("*", tree{"kind": "GetIndex", "target": name("xs"), "index": name("i")}, num(2)),
		}},
		{"p.x = 1;", tree{"kind": "SetMember", "target": name("p"), "member": "x", "value": num(1)}},
		{"p.x -= 1;", tree{
			"kind":   "SetMember",
			"target": name("p"),
			"member": "x",
			"value":  binary("-", tree{"kind": "GetMember", "target": name("p"), "member": "x"}, num(1)),
		}},
		{"a = b || c;", tree{"kind": "Assign", "target": name("a"), "value": binary("||", name("b"), name("c"))}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseAssignmentDoesNotShareTarget(t *testing.T) {
	inputs := []string{
		"a += 1;",
		"xs[i] += 1;",
		"p.x -= 1;",
		"xs[i][j] *= 2;",
		"m[f(k)].v <<= g(|a| -> a + 1);",
	}

	for _, input := range inputs {
		seen := map[ast.Node]int{}
		ast.Walk(parseProgram(t, input), func(n ast.Node) bool {
			seen[n]++
			return true
		})

		for n, count := range seen {
			if count > 1 {
				t.Fatalf("%q: node %T %p reached %d times", input, n, n, count)
			}
		}
	}
}

func TestParseCompoundAssignmentCopiesTarget(t *testing.T) {
	set := parseProgram(t, "xs[i] += 1;").Stmts[0].(*ast.ExpressionStmt).Expr.(*ast.SetIndexExpr)
	get := set.Value.(*ast.BinaryExpr).Left.(*ast.GetIndexExpr)

	if set.Target == get.Target || set.Index == get.Index {
		t.Fatalf("index target and operand must be distinct nodes")
	}
	if set.Target.(*ast.NameExpr).Value != "xs" || get.Target.(*ast.NameExpr).Value != "xs" {
		t.Fatalf("expected both targets to name xs")
	}
	if get.Span() != set.Value.(*ast.BinaryExpr).Left.Span() || get.Target.Span() != set.Target.Span() {
		t.Fatalf("copied operand must keep the target's locations")
	}
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"let x = 5;", tree{"kind": "Declare", "constant": true, "name": "x", "type": "_", "init": num(5)}},
		{"var y: i32;", tree{"kind": "Declare", "name": "y", "type": "i32"}},
		{"var mut z: str = \"s\";", tree{"kind": "Declare", "mutable": true, "name": "z", "type": "str", "init": str("s")}},
		{"let a: i32[3][];", tree{"kind": "Declare", "constant": true, "name": "a", "type": "i32[3][]"}},
		{"let r: i64..;", tree{"kind": "Declare", "constant": true, "name": "r", "type": "i64.."}},
		{"let c: char..;", tree{"kind": "Declare", "constant": true, "name": "c", "type": "char.."}},
		{"let f: (i32, str -> bool);", tree{"kind": "Declare", "constant": true, "name": "f", "type": "(i32, str -> bool)"}},
		{"let g: ();", tree{"kind": "Declare", "constant": true, "name": "g", "type": "( -> none)"}},
		{"let p: Point[n];", tree{"kind": "Declare", "constant": true, "name": "p", "type": "Point[?]"}},
		{"let q: u8[, 4];", tree{"kind": "Declare", "constant": true, "name": "q", "type": "u8[][4]"}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpStmt(t, tt.input), tt.want)
	}
}

func TestParseArraySizesOutermostFirst(t *testing.T) {
	stmt := parseProgram(t, "let a: i32[2][3];").Stmts[0].(*ast.DeclareStmt)

	outer, ok := stmt.Type.Type.(ast.ArrayType)
	if !ok {
		t.Fatalf("expected array type, got %T", stmt.Type.Type)
	}
	if size := outer.Size.(*ast.ValueExpr).Value; size != 2 {
		t.Fatalf("expected outer size 2, got %v", size)
	}

	inner := outer.Elem.(ast.ArrayType)
	if size := inner.Size.(*ast.ValueExpr).Value; size != 3 {
		t.Fatalf("expected inner size 3, got %v", size)
	}
	if inner.Elem.String() != "i32" {
		t.Fatalf("expected i32 elements, got %s", inner.Elem)
	}
}

func TestParseControlFlow(t *testing.T) {
	emptyBlock := tree{"kind": "Block", "stmts": []any{}}

	tests := []struct {
		input string
		want  tree
	}{
		{"while i < 10 { i++; }", tree{
			"kind": "While",
			"cond": binary("<", name("i"), num(10)),
			"body": tree{"kind": "Block", "stmts": []any{
				tree{"kind": "Expression", "expr": tree{"kind": "Postfix", "op": "++", "operand": name("i")}},
			}},
		}},
		{"until done { }", tree{"kind": "Until", "cond": name("done"), "body": emptyBlock}},
		{"loop { }", tree{"kind": "Loop", "body": emptyBlock}},
		{"for x : xs { }", tree{"kind": "For", "name": "x", "iterable": name("xs"), "body": emptyBlock}},
		{"if a { } else if b { } else { }", tree{
			"kind": "If",
			"cond": name("a"),
			"then": emptyBlock,
			"else": tree{"kind": "If", "cond": name("b"), "then": emptyBlock, "else": emptyBlock},
		}},
		{"if a { }", tree{"kind": "If", "cond": name("a"), "then": emptyBlock}},
		{"match x { }", tree{"kind": "Match", "subject": name("x")}},
		{"{ a; }", tree{"kind": "Block", "stmts": []any{tree{"kind": "Expression", "expr": name("a")}}}},
		{"break;", tree{"kind": "Break"}},
		{"break :outer 1;", tree{"kind": "Break", "label": "outer", "value": num(1)}},
		{"continue :outer;", tree{"kind": "Continue", "label": "outer"}},
		{"return;", tree{"kind": "Return"}},
		{"return a + 1;", tree{"kind": "Return", "value": binary("+", name("a"), num(1))}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpStmt(t, tt.input), tt.want)
	}
}

func TestParseExpressionForms(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"x = if c { 1 } else { 2 };", tree{"kind": "Assign", "target": name("x"), "value": tree{
			"kind": "If",
			"cond": name("c"),
			"then": tree{"kind": "Block", "exprs": []any{num(1)}},
			"else": tree{"kind": "Block", "exprs": []any{num(2)}},
		}}},
		{"x = if c { let y = 1; y };", tree{"kind": "Assign", "target": name("x"), "value": tree{
			"kind": "If",
			"cond": name("c"),
			"then": tree{"kind": "Block", "exprs": []any{
				tree{"kind": "Statement", "stmt": tree{"kind": "Declare", "constant": true, "name": "y", "type": "_", "init": num(1)}},
				name("y"),
			}},
		}}},
		{"x = if a { 1 } else if b { 2 };", tree{"kind": "Assign", "target": name("x"), "value": tree{
			"kind": "If",
			"cond": name("a"),
			"then": tree{"kind": "Block", "exprs": []any{num(1)}},
			"else": tree{
				"kind": "If",
				"cond": name("b"),
				"then": tree{"kind": "Block", "exprs": []any{num(2)}},
			},
		}}},
		{"a || break;", binary("||", name("a"), tree{"kind": "Statement", "stmt": tree{"kind": "Break"}})},
		{"a && continue :outer;", binary("&&", name("a"), tree{"kind": "Statement", "stmt": tree{"kind": "Continue", "label": "outer"}})},
		{"x = match y { };", tree{"kind": "Assign", "target": name("x"), "value": tree{"kind": "Match", "subject": name("y")}}},
		{"\"a`x`b\";", tree{"kind": "Template", "parts": []any{str("a"), name("x"), str("b")}}},
		{"\"`a`-`b + 1`\";", tree{"kind": "Template", "parts": []any{
			str(""), name("a"), str("-"), binary("+", name("b"), num(1)), str(""),
		}}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseLists(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"[];", tree{"kind": "ListLiteral", "elements": []any{}}},
		{"[1, *rest,];", tree{"kind": "ListLiteral", "elements": []any{
			num(1),
			tree{"kind": "Spread", "expr": name("rest")},
		}}},
		{"[0 loop n];", tree{"kind": "ListLoop", "element": num(0), "count": name("n")}},
		{"[x * 2 for x in xs if x > 1];", tree{
			"kind":     "ListFor",
			"element":  binary("*", name("x"), num(2)),
			"bindings": []any{"x"},
			"iterable": name("xs"),
			"filter":   binary(">", name("x"), num(1)),
		}},
		{"[v for (k, v) in m];", tree{
			"kind":         "ListFor",
			"element":      name("v"),
			"destructured": true,
			"bindings":     []any{"k", "v"},
			"iterable":     name("m"),
		}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseFunctions(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"fun f(self, a: i32): i32 { return a; }", tree{
			"kind":    "Fun",
			"name":    "f",
			"self":    true,
			"params":  []any{tree{"name": "a", "type": "i32"}},
			"returns": "i32",
			"body": tree{"kind": "Block", "stmts": []any{
				tree{"kind": "Return", "value": name("a")},
			}},
		}},
		{"fun g(xs: i32*) -> 1;", tree{
			"kind":    "Fun",
			"name":    "g",
			"params":  []any{tree{"name": "xs", "type": "i32*"}},
			"returns": "none",
			"body":    tree{"kind": "Return", "value": num(1)},
		}},
		{"fun h(self);", tree{
			"kind":    "Fun",
			"name":    "h",
			"self":    true,
			"params":  []any{},
			"returns": "none",
			"body":    tree{"kind": "Empty"},
		}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpStmt(t, tt.input), tt.want)
	}
}

func TestParseLambdas(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"|a, b: i32| -> a + b;", tree{"kind": "Lambda", "fun": tree{
			"kind":    "Fun",
			"params":  []any{tree{"name": "a", "type": "_"}, tree{"name": "b", "type": "i32"}},
			"returns": "_",
			"body":    tree{"kind": "Return", "value": binary("+", name("a"), name("b"))},
		}}},
		{"||: i32 { return 1; };", tree{"kind": "Lambda", "fun": tree{
			"kind":    "Fun",
			"params":  []any{},
			"returns": "i32",
			"body":    tree{"kind": "Block", "stmts": []any{tree{"kind": "Return", "value": num(1)}}},
		}}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpExpr(t, tt.input), tt.want)
	}
}

func TestParseTypeDeclarations(t *testing.T) {
	tests := []struct {
		input string
		want  tree
	}{
		{"struct Point { x: i32, y: f64 }", tree{
			"kind":   "Struct",
			"name":   "Point",
			"fields": []any{tree{"name": "x", "type": "i32"}, tree{"name": "y", "type": "f64"}},
		}},
		{"struct Unit { }", tree{"kind": "Struct", "name": "Unit", "fields": []any{}}},
		{"enum Shape { Empty, Circle(f64), Rect(f64, f64), }", tree{
			"kind": "Enum",
			"name": "Shape",
			"variants": []any{
				tree{"name": "Empty"},
				tree{"name": "Circle", "types": []any{"f64"}},
				tree{"name": "Rect", "types": []any{"f64", "f64"}},
			},
		}},
		{"def Point { fun len(self): f64 -> 0.0; }", tree{
			"kind":   "Def",
			"target": "Point",
			"funs": []any{tree{
				"kind":    "Fun",
				"name":    "len",
				"self":    true,
				"params":  []any{},
				"returns": "f64",
				"body":    tree{"kind": "Return", "value": tree{"kind": "Value", "type": "f64", "value": 0.0}},
			}},
		}},
		{"def Show for Point { }", tree{"kind": "Def", "trait": "Show", "target": "Point", "funs": []any{}}},
	}

	for _, tt := range tests {
		assertTree(t, tt.input, dumpStmt(t, tt.input), tt.want)
	}
}

func TestParseSingleVariantKeepsItsOwnName(t *testing.T) {
	stmt := parseProgram(t, "enum E { A, B }").Stmts[0].(*ast.EnumStmt)

	for i, want := range []string{"A", "B"} {
		v, ok := stmt.Variants[i].(*ast.SingleVariant)
		if !ok {
			t.Fatalf("variants[%d] - expected single variant, got %T", i, stmt.Variants[i])
		}
		if v.Name.Value != want {
			t.Fatalf("variants[%d] - expected %q, got %q", i, want, v.Name.Value)
		}
	}
}

func TestParseSpans(t *testing.T) {
	prog := parseProgram(t, "let x = 5;\n  a + b;")

	if got := prog.Span(); got.Start != 0 || got.End != 19 {
		t.Fatalf("expected program span 0..19, got %d..%d", got.Start, got.End)
	}

	decl := prog.Stmts[0].(*ast.DeclareStmt)
	if span := decl.Span(); span.Row != 1 || span.Column != 1 || span.Start != 0 || span.End != 13 {
		t.Fatalf("unexpected declaration span %+v", span)
	}
	if span := decl.Init.Span(); span.Start != 8 || span.End != 9 {
		t.Fatalf("unexpected literal span %+v", span)
	}

	expr := prog.Stmts[1].(*ast.ExpressionStmt).Expr
	span := expr.Span()
	if span.Name != "test.hy" || span.Row != 2 || span.Column != 3 {
		t.Fatalf("unexpected binary location %s", span)
	}
	if span.Start != 13 || span.End != 18 {
		t.Fatalf("expected binary span 13..18, got %d..%d", span.Start, span.End)
	}
}

func TestParseIsAllOrNothing(t *testing.T) {
	de := parseError(t, "let a = 1;\nlet b = ;")

	if de.Stage != diag.StageParser {
		t.Fatalf("expected parser stage, got %q", de.Stage)
	}
	if de.Location.Row != 2 {
		t.Fatalf("expected error on row 2, got %s", de.Location)
	}
}

func TestParseReusesParser(t *testing.T) {
	p := parser.New(source.New("", "a; b;"))

	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prog.Len() != 2 {
		t.Fatalf("expected 2 statements, got %d", prog.Len())
	}

	var names []string
	for stmt := range prog.All() {
		names = append(names, stmt.(*ast.ExpressionStmt).Expr.(*ast.NameExpr).Value)
	}
	if !reflect.DeepEqual(names, []string{"a", "b"}) {
		t.Fatalf("unexpected statement order %v", names)
	}
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		"let x = 5;",
		"fun f(self, a: i32): i32 { return a; }",
		"[x for (k, x) in m if k > 0];",
		"\"a`b`c\";",
		"a += b;",
		"enum E { A, B(i32) }",
		"|a| -> a;",
		"if a { 1 } else { 2 };",
		"a = b += c;",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		prog, err := parser.Parse(source.New("fuzz", src))
		if (prog == nil) == (err == nil) {
			t.Fatalf("expected exactly one of program or error, got %v and %v", prog, err)
		}
		if err != nil {
			var de *diag.Error
			if !errors.As(err, &de) {
				t.Fatalf("expected *diag.Error, got %T", err)
			}
		}
	})
}
