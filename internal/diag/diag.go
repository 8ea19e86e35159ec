// Package diag carries nonfatal diagnostics. They travel in a caller-owned
// Bag injected into the tokenizer, independent of the error values that
// abort scanning or parsing.
package diag

import (
	"fmt"

	"quill/internal/token"
)

type Level int

const (
	Debug Level = iota
	Info
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "unknown"
}

type Type int

const (
	UnclosedMultilineComment Type = iota
)

func (t Type) Level() Level {
	switch t {
	case UnclosedMultilineComment:
		return Info
	}
	return Error
}

func (t Type) Message() string {
	switch t {
	case UnclosedMultilineComment:
		return "multiline comment is never closed"
	}
	return "unknown diagnostic"
}

// Diagnostic records a single detected issue. It is created once and never
// revised.
type Diagnostic struct {
	Type     Type
	Position token.Position
}

func New(t Type, pos token.Position) Diagnostic {
	return Diagnostic{Type: t, Position: pos}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s at %d:%d",
		d.Type.Level(), d.Type.Message(), d.Position.Line, d.Position.Column)
}

// Bag is an append-only diagnostic sink. Diagnostics arrive in strict scan
// order.
type Bag struct {
	diags []Diagnostic
}

func NewBag() *Bag {
	return &Bag{}
}

func (b *Bag) Add(d Diagnostic) {
	b.diags = append(b.diags, d)
}

func (b *Bag) All() []Diagnostic {
	return b.diags
}

func (b *Bag) Len() int {
	return len(b.diags)
}
