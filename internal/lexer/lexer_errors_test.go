package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/source"
)

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    diag.Code
		message string
	}{
		{"unterminated string", `"hello`, diag.CodeLexerUnterminated, "Reached end of file inside of a string!"},
		{"newline in string", "\"hello\nworld\"", diag.CodeLexerMultiline, "String cannot be multiline!"},
		{"unterminated block comment", "a /* abc", diag.CodeLexerUnterminatedBlock, "Reached end of file inside of a block comment!"},
		{"invalid character", "a $ b", diag.CodeLexerInvalidCharacter, "Character '$' is invalid!"},
		{"prefix without digits", "0x", diag.CodeLexerInvalidNumber, "Numeric literal '0x' is invalid!"},
		{"binary digit out of range", "0b12", diag.CodeLexerInvalidNumber, "Numeric literal '0b12' is invalid!"},
		{"unknown suffix", "12abc", diag.CodeLexerInvalidNumber, "Numeric literal '12abc' is invalid!"},
		{"long suffix on decimal", "5L", diag.CodeLexerInvalidNumber, "Numeric literal '5L' is invalid!"},
		{"out of range", "256u8", diag.CodeLexerInvalidNumber, "Numeric literal '256u8' is invalid!"},
		{"float suffix on integer", "1f", diag.CodeLexerInvalidNumber, "Numeric literal '1f' is invalid!"},
		{"unsuffixed hex beyond int", "0xFFFFFFFFFFFFFFFF", diag.CodeLexerInvalidNumber, "Numeric literal '0xFFFFFFFFFFFFFFFF' is invalid!"},
		{"unsuffixed binary beyond int", "0b1" + strings.Repeat("0", 63), diag.CodeLexerInvalidNumber, "Numeric literal '0b1" + strings.Repeat("0", 63) + "' is invalid!"},
		{"unknown escape", `"\q"`, diag.CodeLexerInvalidEscape, `Character escape '\q' is invalid!`},
		{"short hex escape", `"\xZZ"`, diag.CodeLexerInvalidEscape, "Unicode value 'Z' is invalid!"},
		{"bad digit after hex digits", `"\u12G4"`, diag.CodeLexerInvalidEscape, "Unicode value '12G' is invalid!"},
		{"out of range rune", `'\UFFFFFFFF'`, diag.CodeLexerInvalidEscape, "Unicode value 'FFFFFFFF' is invalid!"},
		{"unknown rune name", `"\(NOT A REAL NAME)"`, diag.CodeLexerInvalidEscape, "Unicode name 'NOT A REAL NAME' is invalid!"},
		{"empty char", `''`, diag.CodeLexerInvalidChar, "Character literal is empty or unterminated!"},
		{"long char", `'ab'`, diag.CodeLexerInvalidChar, "Character literal must contain exactly one character!"},
		{"stray backtick", "a ` b", diag.CodeLexerTemplateMismatch, "Template end quotes mismatched!"},
		{"open template at eof", "\"a`b", diag.CodeLexerTemplateMismatch, `Reached end of file inside of a template; expected "!`},
		{"open continuation at eof", "\"a`b`c", diag.CodeLexerTemplateMismatch, `Template end quotes mismatched; expected " before end of file!`},
		{"verbatim template closed by single quote", "\"\"\"a`x`b\"", diag.CodeLexerTemplateMismatch, `Template end quotes mismatched; expected """ before end of file!`},
		{"inner template closed by verbatim quote", "\"\"\"x`\"in`y`ner\"\"\"", diag.CodeLexerTemplateMismatch, `Reached end of file inside of a template; expected """!`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(source.New("test", tt.input))
			if err == nil {
				t.Fatalf("expected error for %q, got tokens %v", tt.input, tokens)
			}
			if tokens != nil {
				t.Fatalf("expected no tokens alongside an error, got %v", tokens)
			}

			var de *diag.Error
			if !errors.As(err, &de) {
				t.Fatalf("expected *diag.Error, got %T", err)
			}
			if de.Stage != diag.StageLexer {
				t.Fatalf("expected lexer stage, got %q", de.Stage)
			}
			if de.Code != tt.code {
				t.Fatalf("expected code %s, got %s (%s)", tt.code, de.Code, de.Message)
			}
			if de.Message != tt.message {
				t.Fatalf("expected message %q, got %q", tt.message, de.Message)
			}
		})
	}
}

func TestLexerErrors_Locations(t *testing.T) {
	tests := []struct {
		input  string
		row    int
		column int
	}{
		{"a /* abc", 1, 3},
		{"x\n  $", 2, 3},
		{"\"ab\ncd\"", 1, 4},
		{"let s = `;", 1, 9},
	}

	for i, tt := range tests {
		_, err := Tokenize(source.New("loc", tt.input))

		var de *diag.Error
		if !errors.As(err, &de) {
			t.Fatalf("tests[%d] - expected *diag.Error, got %v", i, err)
		}
		if de.Location.Row != tt.row || de.Location.Column != tt.column {
			t.Fatalf("tests[%d] - expected %d:%d, got %d:%d", i, tt.row, tt.column, de.Location.Row, de.Location.Column)
		}
		if de.Location.Name != "loc" {
			t.Fatalf("tests[%d] - expected source name on location, got %q", i, de.Location.Name)
		}
	}
}

func TestLexerErrors_StopAtFirstError(t *testing.T) {
	l := New(source.New("", "a $ b"))

	tok, err := l.Next()
	if err != nil || tok.Type != (Identifier{"a"}) {
		t.Fatalf("expected identifier a, got %v, %v", tok, err)
	}

	if _, err := l.Next(); err == nil {
		t.Fatalf("expected error for '$'")
	}
}
