// Package report renders fatal errors and diagnostics with source context,
// a caret marker under the offending region, and colored severity labels.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/source"
	"quill/internal/token"
)

type Reporter struct {
	src   source.Source
	lines []string
}

func NewReporter(src source.Source) *Reporter {
	return &Reporter{
		src:   src,
		lines: strings.Split(src.Text, "\n"),
	}
}

// Locate extracts the source position a fatal error points at. Sentinel
// errors (unfinished string/char) carry no position and report false.
func Locate(err error) (token.Position, int, bool) {
	switch e := err.(type) {
	case *lexer.UnexpectedByteError:
		return e.Position, 1, true
	case *parser.UnexpectedError:
		length := len(e.Found.Lexeme)
		if length == 0 {
			length = 1
		}
		return e.Found.Position, length, true
	}
	return token.Position{}, 0, false
}

// FormatError renders a fatal scan or parse error.
func (r *Reporter) FormatError(err error) string {
	label := color.New(color.FgRed, color.Bold).SprintFunc()

	pos, length, ok := Locate(err)
	if !ok {
		return fmt.Sprintf("%s: %v\n", label("error"), err)
	}
	return r.format(label("error"), color.FgRed, err.Error(), pos, length)
}

// FormatDiagnostic renders a nonfatal diagnostic with its own severity.
func (r *Reporter) FormatDiagnostic(d diag.Diagnostic) string {
	level := d.Type.Level()
	label := color.New(levelAttr(level), color.Bold).SprintFunc()
	return r.format(label(level.String()), levelAttr(level), d.Type.Message(), d.Position, 2)
}

func (r *Reporter) format(label string, attr color.Attribute, message string, pos token.Position, length int) string {
	var lineContent string
	if pos.Line-1 >= 0 && pos.Line-1 < len(r.lines) {
		lineContent = r.lines[pos.Line-1]
	}

	marker := strings.Repeat(" ", max(0, pos.Column-1)) +
		color.New(attr, color.Bold).Sprint(strings.Repeat("^", max(1, length)))

	dim := color.New(color.Faint).SprintFunc()

	lineNumberWidth := len(fmt.Sprintf("%d", pos.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	return fmt.Sprintf(
		"%s: %s\n%s%s %s:%d:%d\n%s%s\n%*d%s%s\n%s%s%s\n\n",
		label, message,
		indent, dim("┌─"), r.src.Name, pos.Line, pos.Column,
		indent, dim("│"),
		lineNumberWidth, pos.Line, dim("│"), lineContent,
		indent, dim("│"), marker,
	)
}

func levelAttr(l diag.Level) color.Attribute {
	switch l {
	case diag.Error:
		return color.FgRed
	case diag.Warning:
		return color.FgYellow
	case diag.Info:
		return color.FgBlue
	default:
		return color.Faint
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
