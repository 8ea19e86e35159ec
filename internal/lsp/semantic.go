package lsp

import (
	"strings"

	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

// Indices into SemanticTokenTypes.
const (
	tokenVariable = iota
	tokenNumber
	tokenString
	tokenOperator
	tokenComment
)

type semanticToken struct {
	Line      uint32 // 0-based
	StartChar uint32 // 0-based
	Length    uint32
	TokenType int
}

// collectSemanticTokens classifies the document's lexemes for highlighting.
// Scanning stops at the first fatal error; everything before it still
// highlights. Tokens spanning multiple lines are skipped because the wire
// format encodes single-line spans.
func collectSemanticTokens(src source.Source) []semanticToken {
	tz := lexer.New(src, diag.NewBag())
	tz.EmitComments = true

	var tokens []semanticToken
	for {
		tok, err := tz.Next()
		if err != nil || tok.Type == token.EOF {
			return tokens
		}

		kind, ok := classify(tok.Type)
		if !ok || strings.ContainsRune(tok.Lexeme, '\n') {
			continue
		}

		tokens = append(tokens, semanticToken{
			Line:      uint32(tok.Position.Line - 1),
			StartChar: uint32(tok.Position.Column - 1),
			Length:    uint32(len(tok.Lexeme)),
			TokenType: kind,
		})
	}
}

func classify(ty token.TokenType) (int, bool) {
	switch {
	case ty == token.IDENTIFIER || ty == token.UNDERSCORE:
		return tokenVariable, true
	case ty == token.INTEGER || ty == token.FLOAT:
		return tokenNumber, true
	case ty == token.STRING || ty == token.CHAR:
		return tokenString, true
	case ty.IsOperator():
		return tokenOperator, true
	case ty.IsComment():
		return tokenComment, true
	}
	return 0, false
}
