package lexer

import "testing"

func TestTokenTypeStrings(t *testing.T) {
	tests := []struct {
		typ  TokenType
		want string
	}{
		{Let, "let"},
		{Continue, "continue"},
		{I64, "i64"},
		{None, "none"},
		{TripleGreaterEqual, ">>>="},
		{ExclamationIn, "!in"},
		{EndOfFile, "<EOF>"},
		{Identifier{"count"}, "count"},
		{Value{"hi"}, `"hi"`},
		{Value{42}, "42"},
		{Value{Character('a')}, "'a'"},
		{LeftTemplate{"a"}, `LeftTemplate("a")`},
		{MiddleTemplate{""}, `MiddleTemplate("")`},
		{RightTemplate{"\n"}, `RightTemplate("\n")`},
	}

	for i, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Fatalf("tests[%d] - expected %q, got %q", i, tt.want, got)
		}
	}
}

func TestLookupPrimitive(t *testing.T) {
	if p, ok := LookupPrimitive("u16"); !ok || p != U16 {
		t.Fatalf("expected u16, got %v %v", p, ok)
	}
	if _, ok := LookupPrimitive("int"); ok {
		t.Fatalf("int is not a primitive name")
	}
}

func TestPrimitiveIsSignedInteger(t *testing.T) {
	for _, p := range []Primitive{I8, I16, I32, I64} {
		if !p.IsSignedInteger() {
			t.Fatalf("%v should be a signed integer", p)
		}
	}
	for _, p := range []Primitive{U8, U64, F32, Char, Bool, Str} {
		if p.IsSignedInteger() {
			t.Fatalf("%v should not be a signed integer", p)
		}
	}
}

func TestSymbolSpelling(t *testing.T) {
	if EndOfFile.Spelling() != "" {
		t.Fatalf("EOF should have no spelling")
	}
	if Arrow.Spelling() != "->" {
		t.Fatalf("expected ->, got %q", Arrow.Spelling())
	}
}
