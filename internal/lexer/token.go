package lexer

import (
	"fmt"
	"strconv"

	"github.com/hyper-lang/hyper/internal/source"
)

// TokenType is the closed set of token kinds. It is implemented by Keyword,
// Primitive, Symbol, Value, Identifier and the three template fragment types.
type TokenType interface {
	fmt.Stringer
	tokenType()
}

// Token is a lexical unit tagged with its source location.
type Token struct {
	Location source.Location
	Type     TokenType
}

// String returns a debugging representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s @ %s", t.Type, t.Location)
}

// IsEOF reports whether t is the end-of-file token.
func (t Token) IsEOF() bool {
	return t.Type == EndOfFile
}

// Keyword is a reserved word.
type Keyword uint8

const (
	Let Keyword = iota
	Var
	Mut
	If
	Else
	Match
	Loop
	While
	Until
	For
	Def
	Fun
	Struct
	Enum
	Break
	Continue
	Return
	In
	Is
	As
	Self
)

var keywordNames = [...]string{
	Let:      "let",
	Var:      "var",
	Mut:      "mut",
	If:       "if",
	Else:     "else",
	Match:    "match",
	Loop:     "loop",
	While:    "while",
	Until:    "until",
	For:      "for",
	Def:      "def",
	Fun:      "fun",
	Struct:   "struct",
	Enum:     "enum",
	Break:    "break",
	Continue: "continue",
	Return:   "return",
	In:       "in",
	Is:       "is",
	As:       "as",
	Self:     "self",
}

func (k Keyword) String() string { return keywordNames[k] }

func (Keyword) tokenType() {}

// Primitive is a built-in type name. None doubles as the void type.
type Primitive uint8

const (
	None Primitive = iota
	Bool
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	Char
	Str
	Any
)

var primitiveNames = [...]string{
	None: "none",
	Bool: "bool",
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	F32:  "f32",
	F64:  "f64",
	Char: "char",
	Str:  "str",
	Any:  "any",
}

func (p Primitive) String() string { return primitiveNames[p] }

func (Primitive) tokenType() {}

// IsSignedInteger reports whether p is one of the signed integer types.
func (p Primitive) IsSignedInteger() bool {
	switch p {
	case I8, I16, I32, I64:
		return true
	default:
		return false
	}
}

// Symbol is an operator or punctuation mark. Each symbol has a canonical
// spelling returned by String.
type Symbol uint8

const (
	EqualSign Symbol = iota
	PlusEqual
	DashEqual
	StarEqual
	SlashEqual
	PercentEqual
	AmpersandEqual
	CaretEqual
	PipeEqual
	DoubleLessEqual
	DoubleGreaterEqual
	TripleGreaterEqual
	DoublePipe
	DoubleAmpersand
	Pipe
	Caret
	Ampersand
	DoubleEqual
	ExclamationEqual
	LessSign
	LessEqualSign
	GreaterSign
	GreaterEqualSign
	ExclamationIn
	ExclamationIs
	DoubleDot
	TripleDot
	DoubleLess
	DoubleGreater
	TripleGreater
	Plus
	Dash
	Star
	Slash
	Percent
	Exclamation
	Tilde
	Pound
	DoublePlus
	DoubleDash
	Dot
	Colon
	DoubleColon
	Arrow
	LeftParen
	RightParen
	LeftSquare
	RightSquare
	LeftBrace
	RightBrace
	Comma
	Semicolon
	At
	EndOfFile
)

var symbolSpellings = [...]string{
	EqualSign:          "=",
	PlusEqual:          "+=",
	DashEqual:          "-=",
	StarEqual:          "*=",
	SlashEqual:         "/=",
	PercentEqual:       "%=",
	AmpersandEqual:     "&=",
	CaretEqual:         "^=",
	PipeEqual:          "|=",
	DoubleLessEqual:    "<<=",
	DoubleGreaterEqual: ">>=",
	TripleGreaterEqual: ">>>=",
	DoublePipe:         "||",
	DoubleAmpersand:    "&&",
	Pipe:               "|",
	Caret:              "^",
	Ampersand:          "&",
	DoubleEqual:        "==",
	ExclamationEqual:   "!=",
	LessSign:           "<",
	LessEqualSign:      "<=",
	GreaterSign:        ">",
	GreaterEqualSign:   ">=",
	ExclamationIn:      "!in",
	ExclamationIs:      "!is",
	DoubleDot:          "..",
	TripleDot:          "...",
	DoubleLess:         "<<",
	DoubleGreater:      ">>",
	TripleGreater:      ">>>",
	Plus:               "+",
	Dash:               "-",
	Star:               "*",
	Slash:              "/",
	Percent:            "%",
	Exclamation:        "!",
	Tilde:              "~",
	Pound:              "#",
	DoublePlus:         "++",
	DoubleDash:         "--",
	Dot:                ".",
	Colon:              ":",
	DoubleColon:        "::",
	Arrow:              "->",
	LeftParen:          "(",
	RightParen:         ")",
	LeftSquare:         "[",
	RightSquare:        "]",
	LeftBrace:          "{",
	RightBrace:         "}",
	Comma:              ",",
	Semicolon:          ";",
	At:                 "@",
	EndOfFile:          "",
}

// String returns the canonical spelling. The end-of-file symbol has no
// spelling and prints as "<EOF>".
func (s Symbol) String() string {
	if s == EndOfFile {
		return "<EOF>"
	}
	return symbolSpellings[s]
}

// Spelling returns the exact source text of the symbol.
func (s Symbol) Spelling() string { return symbolSpellings[s] }

func (Symbol) tokenType() {}

// CompoundAssignOperators lists the assignment symbols recognised by the
// assignment tier, plain '=' first.
var CompoundAssignOperators = []Symbol{
	EqualSign,
	PlusEqual,
	DashEqual,
	StarEqual,
	SlashEqual,
	PercentEqual,
	AmpersandEqual,
	CaretEqual,
	PipeEqual,
	DoubleLessEqual,
	DoubleGreaterEqual,
	TripleGreaterEqual,
}

// Character is a decoded character literal. It is distinct from int32 so
// that character and i32 values stay apart.
type Character rune

func (c Character) String() string { return strconv.QuoteRune(rune(c)) }

// Value is a decoded literal. Its payload is one of bool, uint8, uint16,
// uint32, uint64, int8, int16, int32, int64, int, float32, float64, Character or
// string.
type Value struct {
	Value any
}

func (v Value) String() string {
	if s, ok := v.Value.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", v.Value)
}

func (Value) tokenType() {}

// Identifier is a user-chosen name.
type Identifier struct {
	Name string
}

func (i Identifier) String() string { return i.Name }

func (Identifier) tokenType() {}

// LeftTemplate is the literal text before the first interpolation of a
// string template.
type LeftTemplate struct {
	Text string
}

func (t LeftTemplate) String() string { return "LeftTemplate(" + strconv.Quote(t.Text) + ")" }

func (LeftTemplate) tokenType() {}

// MiddleTemplate is the literal text between two interpolations.
type MiddleTemplate struct {
	Text string
}

func (t MiddleTemplate) String() string { return "MiddleTemplate(" + strconv.Quote(t.Text) + ")" }

func (MiddleTemplate) tokenType() {}

// RightTemplate is the literal text after the last interpolation.
type RightTemplate struct {
	Text string
}

func (t RightTemplate) String() string { return "RightTemplate(" + strconv.Quote(t.Text) + ")" }

func (RightTemplate) tokenType() {}

var (
	keywords   = make(map[string]Keyword, len(keywordNames))
	primitives = make(map[string]Primitive, len(primitiveNames))
	symbols    = make(map[string]Symbol, len(symbolSpellings))
	literals   = map[string]bool{"true": true, "false": false}
)

func init() {
	for k, name := range keywordNames {
		keywords[name] = Keyword(k)
	}
	for p, name := range primitiveNames {
		primitives[name] = Primitive(p)
	}
	for s, spelling := range symbolSpellings {
		if spelling != "" {
			symbols[spelling] = Symbol(s)
		}
	}
}

// LookupWord classifies a scanned word as a keyword, primitive type name,
// boolean literal or identifier.
func LookupWord(word string) TokenType {
	if k, ok := keywords[word]; ok {
		return k
	}
	if p, ok := primitives[word]; ok {
		return p
	}
	if b, ok := literals[word]; ok {
		return Value{b}
	}
	return Identifier{word}
}

// LookupPrimitive returns the primitive named by word.
func LookupPrimitive(word string) (Primitive, bool) {
	p, ok := primitives[word]
	return p, ok
}
