package lexer

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hyper-lang/hyper/internal/diag"
)

// integerKind describes how a suffixed integer literal is decoded.
type integerKind struct {
	bits     int
	signed   bool
	hexOnly  bool
	fromInt  func(int64) any
	fromUint func(uint64) any
}

// integerSuffixes maps lower-cased suffixes to their integer kind. The empty
// suffix yields a platform int.
var integerSuffixes = map[string]integerKind{
	"": {
		bits: strconv.IntSize, signed: true,
		fromInt:  func(v int64) any { return int(v) },
		fromUint: func(v uint64) any { return int(v) },
	},
	"u8":  {bits: 8, fromUint: func(v uint64) any { return uint8(v) }},
	"u16": {bits: 16, fromUint: func(v uint64) any { return uint16(v) }},
	"u32": {bits: 32, fromUint: func(v uint64) any { return uint32(v) }},
	"u":   {bits: 32, fromUint: func(v uint64) any { return uint32(v) }},
	"u64": {bits: 64, fromUint: func(v uint64) any { return v }},
	"i8": {
		bits: 8, signed: true,
		fromInt:  func(v int64) any { return int8(v) },
		fromUint: func(v uint64) any { return int8(uint8(v)) },
	},
	"i16": {
		bits: 16, signed: true,
		fromInt:  func(v int64) any { return int16(v) },
		fromUint: func(v uint64) any { return int16(uint16(v)) },
	},
	"i32": {
		bits: 32, signed: true,
		fromInt:  func(v int64) any { return int32(v) },
		fromUint: func(v uint64) any { return int32(uint32(v)) },
	},
	"i64": {
		bits: 64, signed: true,
		fromInt:  func(v int64) any { return v },
		fromUint: func(v uint64) any { return int64(v) },
	},
	"l": {
		bits: 64, signed: true, hexOnly: true,
		fromUint: func(v uint64) any { return int64(v) },
	},
}

var errUnknownSuffix = errors.New("unknown suffix")

// decodeInteger converts digits in the given base. Signed kinds written in
// hex or binary take the unsigned bit pattern and reinterpret it, so 0xFFi8
// is -1. Without a suffix the value must fit a positive int in every base.
func decodeInteger(digits string, base int, suffix string) (any, error) {
	kind, ok := integerSuffixes[strings.ToLower(suffix)]
	if !ok || (kind.hexOnly && base == 10) {
		return nil, errUnknownSuffix
	}

	if kind.signed && (base == 10 || suffix == "") {
		v, err := strconv.ParseInt(digits, base, kind.bits)
		if err != nil {
			return nil, err
		}
		return kind.fromInt(v), nil
	}

	v, err := strconv.ParseUint(digits, base, kind.bits)
	if err != nil {
		return nil, err
	}
	return kind.fromUint(v), nil
}

func decodeFloat(text, suffix string) (any, error) {
	switch strings.ToLower(suffix) {
	case "f", "f32":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	case "", "f64":
		return strconv.ParseFloat(text, 64)
	default:
		return nil, errUnknownSuffix
	}
}

// number scans a numeric literal. Underscores between digits are ignored and
// the trailing run of word characters is taken as the type suffix.
func (l *Lexer) number() (Token, error) {
	start := l.here()

	invalid := func() (Token, error) {
		loc := start
		loc.End = l.pos
		return Token{}, diag.ForLexer(diag.CodeLexerInvalidNumber, loc, "Numeric literal '%s' is invalid!", l.text(start))
	}

	base := 10
	if l.peek(0) == '0' {
		switch l.peek(1) {
		case 'b', 'B':
			base = 2
		case 'x', 'X':
			base = 16
		}
	}

	if base != 10 {
		l.stepN(2)

		valid := isBinaryDigit
		if base == 16 {
			valid = isHexDigit
		}

		digits := l.digits(valid)
		suffix := l.suffix()
		if digits == "" {
			return invalid()
		}

		v, err := decodeInteger(digits, base, suffix)
		if err != nil {
			return invalid()
		}
		return l.makeToken(start, Value{v}), nil
	}

	text := l.digits(isDigit)
	float := false

	if l.peek(0) == '.' && isDigit(l.peek(1)) {
		l.step()
		text += "." + l.digits(isDigit)
		float = true
	}

	if e := l.peek(0); e == 'e' || e == 'E' {
		sign := l.peek(1)
		if isDigit(sign) || ((sign == '+' || sign == '-') && isDigit(l.peek(2))) {
			l.step()
			text += "e"
			if !isDigit(sign) {
				text += string(sign)
				l.step()
			}
			text += l.digits(isDigit)
			float = true
		}
	}

	suffix := l.suffix()

	var (
		v   any
		err error
	)
	if float {
		v, err = decodeFloat(text, suffix)
	} else {
		v, err = decodeInteger(text, 10, suffix)
	}
	if err != nil {
		return invalid()
	}

	return l.makeToken(start, Value{v}), nil
}

// digits collects runes accepted by valid, dropping '_' separators.
func (l *Lexer) digits(valid func(rune) bool) string {
	var sb strings.Builder
	for {
		ch := l.peek(0)
		switch {
		case ch == '_':
		case valid(ch):
			sb.WriteRune(ch)
		default:
			return sb.String()
		}
		l.step()
	}
}

func (l *Lexer) suffix() string {
	start := l.pos
	for isWord(l.peek(0)) {
		l.step()
	}
	return string(l.input[start:l.pos])
}
