package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hyper-lang/hyper/internal/source"
)

// Formatter renders errors in a Rust-style layout with a source snippet.
type Formatter struct {
	sources map[string]string // source text by name
	color   bool

	header lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
}

// NewFormatter creates a formatter. Colors are only emitted when color is true.
func NewFormatter(color bool) *Formatter {
	f := &Formatter{
		sources: make(map[string]string),
		color:   color,
	}
	if color {
		f.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
		f.gutter = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
		f.caret = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	}
	return f
}

// AddSource registers source text so snippets can be printed for it.
func (f *Formatter) AddSource(src source.Source) {
	f.sources[src.Name] = src.Text
}

// Format writes e to w. Errors without a registered source fall back to a
// single header line plus the location.
func (f *Formatter) Format(w io.Writer, e *Error) {
	f.printHeader(w, e)

	text, ok := f.sources[e.Location.Name]
	if !ok || e.Location.Row <= 0 {
		if !e.Location.IsNone() {
			fmt.Fprintf(w, "  --> %s\n", e.Location)
		}
		return
	}

	f.printSnippet(w, text, e.Location)
}

func (f *Formatter) render(style lipgloss.Style, s string) string {
	if !f.color {
		return s
	}
	return style.Render(s)
}

// printHeader prints the header line (error[CODE]: message).
func (f *Formatter) printHeader(w io.Writer, e *Error) {
	head := string(SeverityError)
	if e.Code != "" {
		head = fmt.Sprintf("%s[%s]", head, e.Code)
	}
	fmt.Fprintf(w, "%s: %s\n", f.render(f.header, head), e.Message)
}

// printSnippet prints the offending line with one line of context before it
// and underlines the location.
func (f *Formatter) printSnippet(w io.Writer, text string, loc source.Location) {
	lines := strings.Split(text, "\n")
	if loc.Row > len(lines) {
		fmt.Fprintf(w, "  --> %s\n", loc)
		return
	}

	first := max(1, loc.Row-1)
	width := len(fmt.Sprintf("%d", loc.Row))
	pad := strings.Repeat(" ", width)

	fmt.Fprintf(w, "  --> %s\n", loc)
	fmt.Fprintf(w, " %s %s\n", pad, f.render(f.gutter, "|"))

	for row := first; row <= loc.Row; row++ {
		num := fmt.Sprintf("%*d", width, row)
		fmt.Fprintf(w, " %s %s\n", f.render(f.gutter, num+" |"), lines[row-1])
	}

	line := []rune(lines[loc.Row-1])
	col := max(0, loc.Column-1)
	if col > len(line) {
		col = len(line)
	}
	length := max(1, loc.Len())
	if col+length > len(line)+1 {
		length = max(1, len(line)+1-col)
	}

	underline := strings.Repeat(" ", col) + f.render(f.caret, strings.Repeat("^", length))
	fmt.Fprintf(w, " %s %s %s\n", pad, f.render(f.gutter, "|"), underline)
}
