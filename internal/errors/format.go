package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI escape sequences for terminal output.
const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiBlue  = "\033[34m"
	ansiCyan  = "\033[36m"
	ansiGray  = "\033[90m"
	ansiBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + ansiReset
}

// Format renders the error for terminal display: header, location with the
// surrounding input lines, detail, hint, example and documentation link.
func (e *Error) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(paint(ansiRed+ansiBold, "ERROR"))
	if e.Code != "" {
		b.WriteString(paint(ansiBold, " "+e.Code))
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	b.WriteString("\n\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", paint(ansiCyan, e.Location.String()))
		if len(e.Context) > 0 {
			writeContext(&b, e.Location, e.Context)
			b.WriteString("\n")
		}
	}

	for _, line := range wrapText(e.Detail, 70) {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	if e.Detail != "" {
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(ansiCyan, "Hint: "), e.Suggestion)
	}

	if e.Example != "" {
		fmt.Fprintf(&b, "  %s\n", paint(ansiCyan, "Example:"))
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteString("\n")
	}

	if e.Wrapped != nil {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(ansiGray, "Cause: "), e.Wrapped.Error())
	}

	if e.DocURL != "" {
		fmt.Fprintf(&b, "  %s%s\n", paint(ansiGray, "Learn more: "), paint(ansiBlue, e.DocURL))
	}

	return b.String()
}

// writeContext prints the input lines around loc, marking the failing line.
func writeContext(b *strings.Builder, loc *Location, lines []string) {
	first := loc.Line - contextSize/2
	if first < 1 {
		first = 1
	}
	for i, line := range lines {
		n := first + i
		if n != loc.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, paint(ansiGray, " │ "), line)
			continue
		}
		fmt.Fprintf(b, "  %s%4d%s%s\n", paint(ansiRed, "→ "), n, paint(ansiGray, " │ "), line)
		if loc.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n", paint(ansiGray, "│ "), strings.Repeat(" ", loc.Column-1), paint(ansiRed, "^"))
		}
	}
}

// FormatCompact returns a single-line "location: code: message" form.
func (e *Error) FormatCompact() string {
	var parts []string
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	msg := e.Message
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	parts = append(parts, msg)
	return strings.Join(parts, ": ")
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	DocURL     string        `json:"docUrl,omitempty"`
}

// FormatJSON returns the error as a JSON object.
func (e *Error) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
		DocURL:     e.DocURL,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{File: e.Location.File, Line: e.Location.Line, Column: e.Location.Column}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Message)
	}
	return string(data)
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var lines []string
	var current strings.Builder
	for _, word := range strings.Fields(text) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}

// Fprint writes a formatted error to w.
func Fprint(w io.Writer, err error) {
	if e, ok := err.(*Error); ok {
		fmt.Fprint(w, e.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint(ansiRed+ansiBold, "ERROR:"), err.Error())
}

// PrintError prints a formatted error to stderr.
func PrintError(err error) {
	Fprint(os.Stderr, err)
}
