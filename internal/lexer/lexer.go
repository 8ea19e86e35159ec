// Package lexer turns a source buffer into a lazy stream of tokens.
//
// The tokenizer scans one token per Next call over a byte window
// [pos, lookahead). Nonfatal findings go into the injected diagnostic bag;
// fatal ones abort the pull with an error.
package lexer

import (
	"strings"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

type Tokenizer struct {
	src   source.Source
	diags *diag.Bag

	done bool

	pos       int // start of the current token
	lookahead int // one past the last byte claimed for the current token

	line        int // line of the current token start, 1-based
	lastNewline int // offset of the newline preceding pos, -1 before any

	// Whitespace and comment tokens are suppressed unless enabled.
	EmitWhitespace bool
	EmitComments   bool
}

func New(src source.Source, diags *diag.Bag) *Tokenizer {
	return &Tokenizer{
		src:   src,
		diags: diags,

		done: len(src.Text) == 0,

		pos:       0,
		lookahead: 1,

		line:        1,
		lastNewline: -1,
	}
}

// Next pulls the next token. Once input is exhausted it returns an EOF
// token with a nil error, repeatably. Suppressed whitespace/comment tokens
// are scanned and discarded, never yielded.
func (t *Tokenizer) Next() (token.Token, error) {
	for {
		if t.done {
			return token.Token{Type: token.EOF, Position: t.position()}, nil
		}

		tok, err := t.scan()
		t.consume()
		if err != nil {
			return token.Token{}, err
		}

		if tok.Type == token.WHITESPACE && !t.EmitWhitespace {
			continue
		}
		if tok.Type.IsComment() && !t.EmitComments {
			continue
		}
		return tok, nil
	}
}

// position reports the start of the current scan window.
func (t *Tokenizer) position() token.Position {
	return token.Position{
		Line:   t.line,
		Column: t.pos - t.lastNewline,
		Offset: t.pos,
	}
}

func (t *Tokenizer) curr() byte {
	return t.src.Text[t.pos]
}

func (t *Tokenizer) peek() (byte, bool) {
	if t.lookahead >= len(t.src.Text) {
		return 0, false
	}
	return t.src.Text[t.lookahead], true
}

// peekNext returns the lookahead byte and claims it for the current token.
func (t *Tokenizer) peekNext() (byte, bool) {
	b, ok := t.peek()
	t.step()
	return b, ok
}

func (t *Tokenizer) step() {
	if !t.done {
		t.lookahead++
		if t.lookahead >= len(t.src.Text) {
			t.done = true
		}
	}
}

// eat claims the lookahead byte when it matches.
func (t *Tokenizer) eat(b byte) bool {
	if c, ok := t.peek(); ok && c == b {
		t.step()
		return true
	}
	return false
}

// consume commits the current window and recomputes line/column bookkeeping
// from the newlines it covered.
func (t *Tokenizer) consume() {
	end := t.lookahead
	if end > len(t.src.Text) {
		end = len(t.src.Text)
	}
	for i := t.pos; i < end; i++ {
		if t.src.Text[i] == '\n' {
			t.line++
			t.lastNewline = i
		}
	}

	t.pos = t.lookahead
	t.done = t.pos >= len(t.src.Text)
	t.lookahead = t.pos + 1
}

func (t *Tokenizer) lexeme() string {
	end := t.lookahead
	if end > len(t.src.Text) {
		end = len(t.src.Text)
	}
	return t.src.Text[t.pos:end]
}

func (t *Tokenizer) make(ty token.TokenType) token.Token {
	return token.Token{
		Type:     ty,
		Lexeme:   t.lexeme(),
		Position: t.position(),
	}
}

func (t *Tokenizer) scan() (token.Token, error) {
	switch c := t.curr(); c {
	case '(':
		return t.make(token.LEFT_PAREN), nil
	case ')':
		return t.make(token.RIGHT_PAREN), nil
	case '[':
		return t.make(token.LEFT_BRACKET), nil
	case ']':
		return t.make(token.RIGHT_BRACKET), nil
	case '{':
		return t.make(token.LEFT_BRACE), nil
	case '}':
		return t.make(token.RIGHT_BRACE), nil

	case ';':
		return t.make(token.SEMICOLON), nil
	case ',':
		return t.make(token.COMMA), nil
	case '@':
		return t.make(token.AT), nil
	case '#':
		return t.make(token.POUND), nil
	case '?':
		return t.make(token.QUESTION), nil

	case ':':
		if t.eat(':') {
			return t.make(token.DOUBLE_COLON), nil
		}
		return t.make(token.COLON), nil

	case '$':
		if t.eat('$') {
			return t.make(token.DOUBLE_DOLLAR), nil
		}
		return t.make(token.DOLLAR), nil

	case '.':
		if t.eat('.') {
			if t.eat('.') {
				return t.make(token.ELLIPSIS), nil
			}
			return t.make(token.DOT_DOT), nil
		}
		return t.make(token.DOT), nil

	case '=':
		if t.eat('>') {
			return t.make(token.FAT_ARROW), nil
		}
		if t.eat('=') {
			return t.make(token.EQUAL_EQUAL), nil
		}
		return t.make(token.EQUAL), nil

	case ' ', '\t', '\r', '\n':
		return t.whitespace(), nil

	case '\'':
		return t.charLit()
	case '"':
		return t.stringLit()

	case '+':
		if t.eat('=') {
			return t.make(token.PLUS_EQUAL), nil
		}
		if t.eat('+') {
			return t.make(token.INCREMENT), nil
		}
		return t.make(token.PLUS), nil

	case '-':
		if t.eat('=') {
			return t.make(token.MINUS_EQUAL), nil
		}
		if t.eat('-') {
			return t.make(token.DECREMENT), nil
		}
		return t.make(token.MINUS), nil

	case '*':
		if t.eat('*') {
			if t.eat('=') {
				return t.make(token.STAR_STAR_EQUAL), nil
			}
			return t.make(token.STAR_STAR), nil
		}
		if t.eat('=') {
			return t.make(token.STAR_EQUAL), nil
		}
		return t.make(token.STAR), nil

	case '!':
		if t.eat('=') {
			return t.make(token.BANG_EQUAL), nil
		}
		return t.make(token.BANG), nil

	case '~':
		if t.eat('=') {
			return t.make(token.TILDE_EQUAL), nil
		}
		return t.make(token.TILDE), nil

	case '^':
		if t.eat('=') {
			return t.make(token.CARET_EQUAL), nil
		}
		return t.make(token.CARET), nil

	case '%':
		if t.eat('=') {
			return t.make(token.PERCENT_EQUAL), nil
		}
		return t.make(token.PERCENT), nil

	case '/':
		if b, ok := t.peek(); ok && b == '*' {
			return t.blockComment(), nil
		}
		if b, ok := t.peek(); ok && b == '/' {
			return t.lineComment(), nil
		}
		if t.eat('=') {
			return t.make(token.SLASH_EQUAL), nil
		}
		return t.make(token.SLASH), nil

	case '&':
		if t.eat('&') {
			if t.eat('=') {
				return t.make(token.AND_EQUAL), nil
			}
			return t.make(token.AND), nil
		}
		if t.eat('=') {
			return t.make(token.AMPERSAND_EQUAL), nil
		}
		return t.make(token.AMPERSAND), nil

	case '|':
		if t.eat('|') {
			if t.eat('=') {
				return t.make(token.OR_EQUAL), nil
			}
			return t.make(token.OR), nil
		}
		if t.eat('=') {
			return t.make(token.PIPE_EQUAL), nil
		}
		return t.make(token.PIPE), nil

	case '<':
		if t.eat('=') {
			return t.make(token.LESS_EQUAL), nil
		}
		if t.eat('<') {
			if t.eat('=') {
				return t.make(token.LEFT_SHIFT_EQUAL), nil
			}
			return t.make(token.LEFT_SHIFT), nil
		}
		return t.make(token.LESS), nil

	case '>':
		if t.eat('=') {
			return t.make(token.GREATER_EQUAL), nil
		}
		if t.eat('>') {
			if t.eat('=') {
				return t.make(token.RIGHT_SHIFT_EQUAL), nil
			}
			return t.make(token.RIGHT_SHIFT), nil
		}
		return t.make(token.GREATER), nil

	default:
		switch {
		case isDigit(c):
			return t.number(c), nil
		case isAlpha(c):
			return t.identifier(), nil
		default:
			return token.Token{}, &UnexpectedByteError{Byte: c, Position: t.position()}
		}
	}
}

func (t *Tokenizer) whitespace() token.Token {
	for {
		b, ok := t.peek()
		if !ok || !isSpace(b) {
			break
		}
		t.step()
	}
	return t.make(token.WHITESPACE)
}

func (t *Tokenizer) identifier() token.Token {
	for {
		b, ok := t.peek()
		if !ok || (!isAlpha(b) && !isDigit(b)) {
			break
		}
		t.step()
	}

	tok := t.make(token.IDENTIFIER)
	tok.Type = token.LookupIdentifier(tok.Lexeme)
	return tok
}

// number scans a digit run with `_` separators, then an optional `.` and a
// second run. Integer accumulation is base-10, most significant digit
// first; fraction digits add descending powers of 0.1.
func (t *Tokenizer) number(first byte) token.Token {
	intPart := uint64(first - '0')
	for {
		b, ok := t.peek()
		if !ok {
			break
		}
		if isDigit(b) {
			intPart = intPart*10 + uint64(b-'0')
		} else if b != '_' {
			break
		}
		t.step()
	}

	if !t.eat('.') {
		tok := t.make(token.INTEGER)
		tok.Integer = intPart
		return tok
	}

	fracPart := 0.0
	pow := 0.1
	for {
		b, ok := t.peek()
		if !ok {
			break
		}
		if isDigit(b) {
			fracPart += float64(b-'0') * pow
			pow *= 0.1
		} else if b != '_' {
			break
		}
		t.step()
	}

	tok := t.make(token.FLOAT)
	tok.Real = float64(intPart) + fracPart
	return tok
}

// charLit scans one (possibly backslash-guarded) byte and a mandatory
// closing quote. The backslash guards the next byte but is not translated
// through the string escape table.
func (t *Tokenizer) charLit() (token.Token, error) {
	b, ok := t.peek()
	if !ok {
		return token.Token{}, ErrUnfinishedChar
	}

	if b == '\\' {
		t.step()
		b, ok = t.peekNext()
		if !ok {
			return token.Token{}, ErrUnfinishedChar
		}
	} else {
		t.step()
	}

	if !t.eat('\'') {
		return token.Token{}, ErrUnfinishedChar
	}

	tok := t.make(token.CHAR)
	tok.Char = b
	return tok, nil
}

// stringLit scans to the next unescaped quote, decoding escapes as it goes.
// The decoded value is an owned copy in Token.Text.
func (t *Tokenizer) stringLit() (token.Token, error) {
	var sb strings.Builder
	escaped := false

	for {
		b, ok := t.peekNext()
		if !ok {
			return token.Token{}, ErrUnfinishedString
		}

		switch {
		case b == '"' && !escaped:
			tok := t.make(token.STRING)
			tok.Text = sb.String()
			return tok, nil

		case b == '\\' && !escaped:
			escaped = true

		case escaped:
			sb.WriteString(escape(b))
			escaped = false

		default:
			sb.WriteByte(b)
		}
	}
}

// blockComment scans a nestable /* ... */ comment. An unclosed comment
// still yields a token, plus one diagnostic tagged with the comment start.
func (t *Tokenizer) blockComment() token.Token {
	t.step() // the '*'

	pc, ok := t.peekNext()
	if !ok {
		t.diags.Add(diag.New(diag.UnclosedMultilineComment, t.position()))
		return t.make(token.BLOCK_COMMENT)
	}

	nest := 1
	closed := false
	for {
		c, ok := t.peekNext()
		if !ok {
			break
		}

		// A byte claimed by a matched pair cannot start or end the next
		// one, so pc resets instead of chaining.
		switch {
		case pc == '*' && c == '/':
			nest--
			if nest == 0 {
				closed = true
			}
			pc = 0
		case pc == '/' && c == '*':
			nest++
			pc = 0
		default:
			pc = c
		}

		if closed {
			break
		}
	}

	if !closed {
		t.diags.Add(diag.New(diag.UnclosedMultilineComment, t.position()))
	}
	return t.make(token.BLOCK_COMMENT)
}

func (t *Tokenizer) lineComment() token.Token {
	for {
		b, ok := t.peek()
		if !ok || b == '\n' {
			break
		}
		t.step()
	}
	return t.make(token.COMMENT)
}

func escape(c byte) string {
	switch c {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case '0':
		return "\x00"
	}
	return string(c)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
