package lexer

import (
	"errors"
	"fmt"

	"quill/internal/token"
)

// Fatal scan errors. The parser propagates these unchanged.
var (
	ErrUnfinishedString = errors.New("unfinished string literal")
	ErrUnfinishedChar   = errors.New("unfinished character literal")
)

// UnexpectedByteError reports a leading byte no scanning rule matches.
type UnexpectedByteError struct {
	Byte     byte
	Position token.Position
}

func (e *UnexpectedByteError) Error() string {
	return fmt.Sprintf("unexpected byte %#02x (%q) at %d:%d",
		e.Byte, e.Byte, e.Position.Line, e.Position.Column)
}
