// Package lexer turns Hyper source text into a stream of tokens.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hyper-lang/hyper/internal/diag"
	"github.com/hyper-lang/hyper/internal/source"
)

const verbatimQuote = `"""`

// Lexer is a pull-based scanner over a fully materialised source unit.
// Callers ask for one token at a time with Next; once the end of input is
// reached every further call returns the end-of-file token again.
type Lexer struct {
	src    source.Source
	input  []rune
	pos    int // index of the current rune
	row    int // current line number (1-based)
	column int // current column number (1-based)

	// quotes holds the delimiters of the string templates that are currently
	// open, innermost last.
	quotes []string

	done bool
}

// New creates a lexer for the given source unit.
func New(src source.Source) *Lexer {
	return &Lexer{
		src:    src,
		input:  []rune(src.Text),
		row:    1,
		column: 1,
	}
}

// HasNext reports whether the end-of-file token has not been produced yet.
func (l *Lexer) HasNext() bool {
	return !l.done
}

// Next returns the next token. Scanning stops at the first lexical error.
func (l *Lexer) Next() (Token, error) {
	for !l.atEOF() {
		if unicode.IsSpace(l.peek(0)) {
			l.skipWhitespace()
			continue
		}

		if l.match("//") {
			l.skipLineComment()
			continue
		}

		if l.match("/*") {
			if err := l.skipBlockComment(); err != nil {
				return Token{}, err
			}
			continue
		}

		ch := l.peek(0)
		switch {
		case isDigit(ch):
			return l.number()
		case isWordStart(ch):
			return l.word(), nil
		case ch == '\'':
			return l.char()
		case ch == '"':
			return l.string()
		case ch == '`':
			return l.template()
		default:
			return l.symbol()
		}
	}

	if n := len(l.quotes); n > 0 {
		return Token{}, diag.ForLexer(diag.CodeLexerTemplateMismatch, l.here(),
			"Reached end of file inside of a template; expected %s!", l.quotes[n-1])
	}

	l.done = true
	return l.makeToken(l.here(), EndOfFile), nil
}

// Tokenize scans src to the end and returns every token, the end-of-file
// token included.
func Tokenize(src source.Source) ([]Token, error) {
	l := New(src)

	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens, nil
		}
	}
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// here returns a zero-width location at the cursor.
func (l *Lexer) here() source.Location {
	return source.Location{
		Name:   l.src.Name,
		Row:    l.row,
		Column: l.column,
		Start:  l.pos,
		End:    l.pos,
	}
}

// makeToken closes a token that started at start and ends at the cursor.
func (l *Lexer) makeToken(start source.Location, typ TokenType) Token {
	start.End = l.pos
	return Token{Location: start, Type: typ}
}

// peek returns the rune offset runes ahead of the cursor, or 0 past the end.
func (l *Lexer) peek(offset int) rune {
	if i := l.pos + offset; i >= 0 && i < len(l.input) {
		return l.input[i]
	}
	return 0
}

// look returns up to n runes starting at the cursor.
func (l *Lexer) look(n int) string {
	end := min(l.pos+n, len(l.input))
	return string(l.input[l.pos:end])
}

func (l *Lexer) match(s string) bool {
	i := l.pos
	for _, r := range s {
		if i >= len(l.input) || l.input[i] != r {
			return false
		}
		i++
	}
	return true
}

// step advances the cursor by one rune, keeping row and column in sync.
func (l *Lexer) step() {
	if l.atEOF() {
		return
	}
	if l.input[l.pos] == '\n' {
		l.row++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) stepN(n int) {
	for range n {
		l.step()
	}
}

func (l *Lexer) text(start source.Location) string {
	return string(l.input[start.Start:l.pos])
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && unicode.IsSpace(l.peek(0)) {
		l.step()
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.peek(0) != '\n' {
		l.step()
	}
	l.step()
}

// skipBlockComment skips a /* ... */ comment. Block comments do not nest.
func (l *Lexer) skipBlockComment() error {
	start := l.here()
	l.stepN(2)

	for !l.match("*/") {
		if l.atEOF() {
			return diag.ForLexer(diag.CodeLexerUnterminatedBlock, start, "Reached end of file inside of a block comment!")
		}
		l.step()
	}

	l.stepN(2)
	return nil
}

func (l *Lexer) word() Token {
	start := l.here()
	for isWord(l.peek(0)) {
		l.step()
	}
	return l.makeToken(start, LookupWord(l.text(start)))
}

func (l *Lexer) char() (Token, error) {
	start := l.here()
	l.step() // opening quote

	var r rune
	switch ch := l.peek(0); {
	case l.atEOF(), ch == '\'', ch == '\n', ch == '\r':
		return Token{}, diag.ForLexer(diag.CodeLexerInvalidChar, l.here(), "Character literal is empty or unterminated!")
	case ch == '\\':
		var err error
		if r, err = l.escape(); err != nil {
			return Token{}, err
		}
	default:
		r = ch
		l.step()
	}

	if l.peek(0) != '\'' || l.atEOF() {
		return Token{}, diag.ForLexer(diag.CodeLexerInvalidChar, l.here(), "Character literal must contain exactly one character!")
	}
	l.step() // closing quote

	return l.makeToken(start, Value{Character(r)}), nil
}

// escape decodes one escape sequence; the cursor is on the backslash.
func (l *Lexer) escape() (rune, error) {
	loc := l.here()
	l.step() // '\'

	if l.atEOF() {
		return 0, diag.ForLexer(diag.CodeLexerUnterminated, l.here(), "Reached end of file inside of an escape sequence!")
	}

	ch := l.peek(0)
	l.step()

	switch ch {
	case '\\', '\'', '"', '`':
		return ch, nil
	case '0':
		return 0, nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'x':
		return l.unicode(2)
	case 'u':
		return l.unicode(4)
	case 'U':
		return l.unicode(8)
	case '(':
		return l.namedEscape()
	default:
		loc.End = l.pos
		return 0, diag.ForLexer(diag.CodeLexerInvalidEscape, loc, "Character escape '\\%c' is invalid!", ch)
	}
}

// unicode reads exactly size hex digits and returns the code point.
func (l *Lexer) unicode(size int) (rune, error) {
	loc := l.here()

	var value rune
	for range size {
		ch := l.peek(0)
		if l.atEOF() || !isHexDigit(ch) {
			// Report the digits read so far and the rune that stopped them.
			text := l.text(loc)
			if !l.atEOF() && ch != '\n' {
				text += string(ch)
				loc.End = l.pos + 1
			} else {
				loc.End = l.pos
			}
			return 0, diag.ForLexer(diag.CodeLexerInvalidEscape, loc, "Unicode value '%s' is invalid!", text)
		}
		value = value*16 + hexValue(ch)
		l.step()
	}

	if !utf8.ValidRune(value) {
		loc.End = l.pos
		return 0, diag.ForLexer(diag.CodeLexerInvalidEscape, loc, "Unicode value '%s' is invalid!", l.text(loc))
	}

	return value, nil
}

// namedEscape decodes \(NAME); the cursor is just past the '('.
func (l *Lexer) namedEscape() (rune, error) {
	loc := l.here()

	var name strings.Builder
	for l.peek(0) != ')' {
		if l.atEOF() || l.peek(0) == '\n' {
			return 0, diag.ForLexer(diag.CodeLexerInvalidEscape, l.here(), "Unicode name escape is not closed!")
		}
		name.WriteRune(l.peek(0))
		l.step()
	}
	loc.End = l.pos
	l.step() // ')'

	r, ok := lookupRuneName(name.String())
	if !ok {
		return 0, diag.ForLexer(diag.CodeLexerInvalidEscape, loc, "Unicode name '%s' is invalid!", name.String())
	}
	return r, nil
}

// string scans a string literal. An unescaped backtick ends the literal part
// early and opens a template; the delimiter is pushed so the continuation
// knows which quote closes it.
func (l *Lexer) string() (Token, error) {
	start := l.here()

	quote := `"`
	if l.match(verbatimQuote) {
		quote = verbatimQuote
	}
	l.stepN(utf8.RuneCountInString(quote))

	text, opened, err := l.fragment(quote, false)
	if err != nil {
		return Token{}, err
	}

	if opened {
		l.quotes = append(l.quotes, quote)
		return l.makeToken(start, LeftTemplate{text}), nil
	}

	return l.makeToken(start, Value{text}), nil
}

// template resumes the innermost open template after an interpolated
// expression. The cursor is on the backtick.
func (l *Lexer) template() (Token, error) {
	start := l.here()

	n := len(l.quotes)
	if n == 0 {
		return Token{}, diag.ForLexer(diag.CodeLexerTemplateMismatch, start, "Template end quotes mismatched!")
	}
	quote := l.quotes[n-1]

	l.step() // '`'

	text, opened, err := l.fragment(quote, true)
	if err != nil {
		return Token{}, err
	}

	if opened {
		return l.makeToken(start, MiddleTemplate{text}), nil
	}

	l.quotes = l.quotes[:n-1]
	return l.makeToken(start, RightTemplate{text}), nil
}

// fragment decodes literal text up to the closing quote or an unescaped
// backtick. opened reports which of the two stopped it; the stopper is
// consumed either way. Verbatim quotes keep backslashes and line breaks.
func (l *Lexer) fragment(quote string, continuation bool) (text string, opened bool, err error) {
	verbatim := quote == verbatimQuote

	var sb strings.Builder
	for {
		if l.atEOF() {
			if continuation {
				return "", false, diag.ForLexer(diag.CodeLexerTemplateMismatch, l.here(),
					"Template end quotes mismatched; expected %s before end of file!", quote)
			}
			return "", false, diag.ForLexer(diag.CodeLexerUnterminated, l.here(), "Reached end of file inside of a string!")
		}

		if l.match(quote) {
			l.stepN(utf8.RuneCountInString(quote))
			return sb.String(), false, nil
		}

		ch := l.peek(0)

		if ch == '`' {
			l.step()
			return sb.String(), true, nil
		}

		if !verbatim {
			if ch == '\n' || ch == '\r' {
				return "", false, diag.ForLexer(diag.CodeLexerMultiline, l.here(), "String cannot be multiline!")
			}

			if ch == '\\' {
				r, err := l.escape()
				if err != nil {
					return "", false, err
				}
				sb.WriteRune(r)
				continue
			}
		}

		sb.WriteRune(ch)
		l.step()
	}
}

// symbol matches the longest operator or punctuation spelling at the cursor.
func (l *Lexer) symbol() (Token, error) {
	start := l.here()

	// "!in" and "!is" only count when a space follows, so "!isEmpty" stays
	// a negation of an identifier.
	if l.match("!in") || l.match("!is") {
		if unicode.IsSpace(l.peek(3)) {
			l.stepN(3)
			return l.makeToken(start, symbols[l.text(start)]), nil
		}
	}

	for n := 4; n >= 1; n-- {
		text := l.look(n)
		if utf8.RuneCountInString(text) < n {
			continue
		}
		sym, ok := symbols[text]
		if !ok || sym == ExclamationIn || sym == ExclamationIs {
			continue
		}
		l.stepN(n)
		return l.makeToken(start, sym), nil
	}

	start.End = start.Start + 1
	return Token{}, diag.ForLexer(diag.CodeLexerInvalidCharacter, start, "Character '%c' is invalid!", l.peek(0))
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}

func isBinaryDigit(ch rune) bool {
	return ch == '0' || ch == '1'
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') ||
		(ch >= 'a' && ch <= 'f') ||
		(ch >= 'A' && ch <= 'F')
}

func hexValue(ch rune) rune {
	switch {
	case ch >= 'a':
		return ch - 'a' + 10
	case ch >= 'A':
		return ch - 'A' + 10
	default:
		return ch - '0'
	}
}

func isWordStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isWord(ch rune) bool {
	return isWordStart(ch) || unicode.IsDigit(ch)
}
