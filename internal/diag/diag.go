// Package diag renders the front end's typed AnalysisError values as
// leveled, colorized terminal reports for the CLI and the playground
// server's JSON error bodies — presentation only, never a second
// source of error classification.
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/rebar-lang/rebar/internal/rebarerr"
)

// Level is the severity a report is rendered at. Every AnalysisError
// renders as LevelError; LevelWarning and LevelInfo are available for
// reports built directly as a Report value.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
)

// Report is a fully formed diagnostic: a problem statement, optional
// source excerpt, and optional near-miss suggestions.
type Report struct {
	Level       Level
	Kind        string // e.g. "unbalanced brackets"; empty for non-AnalysisError reports
	Problem     string
	Excerpt     string // one line of source context, already trimmed
	Column      int    // 1-based column within Excerpt the caret points at, 0 if unknown
	Suggestions []string
	NoColor     bool
}

// FromAnalysisError builds a Report from one of rebarerr's five error
// kinds, slicing a one-line excerpt out of source around the byte
// offset when the offset is known.
func FromAnalysisError(err *rebarerr.AnalysisError, source []byte, noColor bool) Report {
	r := Report{
		Level:   LevelError,
		Kind:    err.Kind.String(),
		Problem: err.Message,
		NoColor: noColor,
	}
	if err.Offset >= 0 && err.Offset < len(source) {
		r.Excerpt, r.Column = excerpt(source, err.Offset)
	}
	return r
}

// excerpt returns the source line containing offset, with its column
// (1-based, byte count within the line) of offset.
func excerpt(source []byte, offset int) (string, int) {
	lineStart := offset
	for lineStart > 0 && source[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := offset
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	return string(source[lineStart:lineEnd]), offset - lineStart + 1
}

// WithSuggestions attaches near-miss symbol-table lexemes to a report
// that names an unrecognized lexeme, so the CLI can print "did you
// mean: ...?".
func (r Report) WithSuggestions(badLexeme string, known []string) Report {
	r.Suggestions = suggestLexemes(badLexeme, known)
	return r
}

// Format renders the report as a multi-line string, colorized by
// Level unless NoColor is set.
func (r Report) Format() string {
	var b strings.Builder

	headerColor, symbol := levelStyle(r.Level)
	if r.NoColor {
		headerColor.DisableColor()
	}

	if r.Kind != "" {
		headerColor.Fprintf(&b, "%s %s: %s\n", symbol, strings.ToUpper(r.Kind), r.Problem)
	} else {
		headerColor.Fprintf(&b, "%s %s\n", symbol, r.Problem)
	}

	if r.Excerpt != "" {
		fmt.Fprintf(&b, "    %s\n", r.Excerpt)
		if r.Column > 0 {
			fmt.Fprintf(&b, "    %s^\n", strings.Repeat(" ", r.Column-1))
		}
	}

	if len(r.Suggestions) > 0 {
		yellow := color.New(color.FgYellow)
		if r.NoColor {
			yellow.DisableColor()
		}
		yellow.Fprintf(&b, "    did you mean: %s?\n", strings.Join(r.Suggestions, ", "))
	}

	return b.String()
}

func levelStyle(l Level) (*color.Color, string) {
	switch l {
	case LevelWarning:
		return color.New(color.FgYellow, color.Bold), "warning:"
	case LevelInfo:
		return color.New(color.FgCyan, color.Bold), "info:"
	default:
		return color.New(color.FgRed, color.Bold), "error:"
	}
}
