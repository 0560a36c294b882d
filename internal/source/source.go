// Package source describes named source units and positions within them.
package source

import "fmt"

// Source is a named unit of source text. The name is only used for diagnostics.
type Source struct {
	Name string
	Text string
}

// New returns a source unit with the given name and text.
func New(name, text string) Source {
	return Source{Name: name, Text: text}
}

// Location describes where a token or node appears in a source unit.
type Location struct {
	Name   string // source name, empty for synthesized nodes
	Row    int    // 1-based line number
	Column int    // 1-based column number
	Start  int    // rune offset of the first character
	End    int    // exclusive rune offset
}

// None marks nodes that have no real source position.
var None = Location{}

// IsNone reports whether l carries no source position.
func (l Location) IsNone() bool {
	return l == None
}

// Len returns the number of runes covered by l.
func (l Location) Len() int {
	return l.End - l.Start
}

// Join returns a location that starts where l starts and ends where end ends.
// Name, row and column are taken from l.
func (l Location) Join(end Location) Location {
	if l.IsNone() {
		return end
	}
	span := l
	if end.End > span.End {
		span.End = end.End
	}
	return span
}

// Until returns a location that starts where l starts and stops right before
// end begins. Nodes are closed against the parser's lookahead this way.
func (l Location) Until(end Location) Location {
	if l.IsNone() {
		return end
	}
	span := l
	if end.IsNone() {
		return span
	}
	span.End = max(l.Start, end.Start)
	return span
}

// String returns a human-readable "name:row:column" form.
func (l Location) String() string {
	if l.Name != "" {
		return fmt.Sprintf("%s:%d:%d", l.Name, l.Row, l.Column)
	}
	return fmt.Sprintf("%d:%d", l.Row, l.Column)
}
