package parser

import (
	"errors"
	"fmt"

	"quill/internal/token"
)

// ErrUnexpectedEnd means the token stream ran out where an expression was
// required.
var ErrUnexpectedEnd = errors.New("unexpected end of expression")

// UnexpectedError names the token actually found and what was expected
// instead. Tokenizer errors are not wrapped; they propagate unchanged.
type UnexpectedError struct {
	Found    token.Token
	Expected string
}

func (e *UnexpectedError) Error() string {
	if e.Found.Type == token.EOF {
		return fmt.Sprintf("unexpected end of input instead of %s", e.Expected)
	}
	return fmt.Sprintf("unexpected token %s (%q) instead of %s",
		e.Found.Type, e.Found.Lexeme, e.Expected)
}

func unexpected(found token.Token, expected string) error {
	return &UnexpectedError{Found: found, Expected: expected}
}
