// Package diag defines the structured errors raised by the Hyper front end.
package diag

import (
	"fmt"

	"github.com/hyper-lang/hyper/internal/source"
)

// Stage identifies which phase produced the error.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
	StageScript Stage = "script"
)

// Severity captures how impactful the diagnostic is. Every front-end
// failure is an error.
type Severity string

const SeverityError Severity = "error"

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerInvalidCharacter  Code = "LEXER_INVALID_CHARACTER"
	CodeLexerInvalidNumber     Code = "LEXER_INVALID_NUMBER"
	CodeLexerInvalidEscape     Code = "LEXER_INVALID_ESCAPE"
	CodeLexerInvalidChar       Code = "LEXER_INVALID_CHAR_LITERAL"
	CodeLexerUnterminated      Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerMultiline         Code = "LEXER_MULTILINE_STRING"
	CodeLexerUnterminatedBlock Code = "LEXER_UNTERMINATED_BLOCK_COMMENT"
	CodeLexerTemplateMismatch  Code = "LEXER_TEMPLATE_MISMATCH"

	// Parser errors
	CodeParserUnexpectedToken Code = "PARSER_UNEXPECTED_TOKEN"
	CodeParserMissingInit     Code = "PARSER_MISSING_TYPE_OR_INITIALIZER"
	CodeParserMissingBody     Code = "PARSER_MISSING_BODY"
	CodeParserInvalidType     Code = "PARSER_INVALID_TYPE"
	CodeParserInvalidTarget   Code = "PARSER_INVALID_ASSIGNMENT_TARGET"
	CodeParserInvalidArgument Code = "PARSER_INVALID_ARGUMENT"
	CodeParserUnsupported     Code = "PARSER_UNSUPPORTED_SYNTAX"

	// Script errors are raised by downstream stages.
	CodeScript Code = "SCRIPT_ERROR"
)

// Error is the structured failure returned by the lexer and the parser. No
// partial result accompanies it.
type Error struct {
	Stage    Stage
	Code     Code
	Message  string
	Location source.Location
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Location.IsNone() {
		return fmt.Sprintf("Error @ %s: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("Error @ %s: %s (%s)", e.Stage, e.Message, e.Location)
}

// ForLexer builds a lexer-stage error.
func ForLexer(code Code, loc source.Location, format string, args ...any) *Error {
	return newError(StageLexer, code, loc, format, args...)
}

// ForParser builds a parser-stage error.
func ForParser(code Code, loc source.Location, format string, args ...any) *Error {
	return newError(StageParser, code, loc, format, args...)
}

// ForScript builds an error on behalf of a downstream stage.
func ForScript(loc source.Location, format string, args ...any) *Error {
	return newError(StageScript, CodeScript, loc, format, args...)
}

func newError(stage Stage, code Code, loc source.Location, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{
		Stage:    stage,
		Code:     code,
		Message:  msg,
		Location: loc,
	}
}
