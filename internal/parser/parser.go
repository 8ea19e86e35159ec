// Package parser assembles expression ASTs from the token stream using
// precedence climbing.
//
// Based on: https://matklad.github.io/2020/04/13/simple-but-powerful-pratt-parsing.html
package parser

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

// Parser consumes the tokenizer through a one-token-lookahead cursor. The
// first fatal error unwinds the whole parse; there is no recovery.
type Parser struct {
	tz    *lexer.Tokenizer
	diags *diag.Bag // reserved for grammar-level advisories; nothing emits yet

	have bool
	tok  token.Token
	err  error
}

func New(tz *lexer.Tokenizer, diags *diag.Bag) *Parser {
	return &Parser{tz: tz, diags: diags}
}

// ParseSource runs the full pull chain over one source buffer and returns
// the root expression.
func ParseSource(src source.Source, diags *diag.Bag) (ast.Expr, error) {
	return New(lexer.New(src, diags), diags).ParseExpr()
}

func (p *Parser) ParseExpr() (ast.Expr, error) {
	return p.exprBP(0)
}

func (p *Parser) peek() (token.Token, error) {
	if !p.have {
		p.tok, p.err = p.tz.Next()
		p.have = true
	}
	return p.tok, p.err
}

func (p *Parser) advance() (token.Token, error) {
	tok, err := p.peek()
	p.have = false
	return tok, err
}

// eat consumes the lookahead token when it has the given type.
func (p *Parser) eat(ty token.TokenType) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Type != ty {
		return false, nil
	}
	p.have = false
	return true, nil
}

func (p *Parser) exprPrimary() (ast.Expr, error) {
	tok, err := p.advance()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Type == token.EOF:
		return nil, ErrUnexpectedEnd

	case tok.Type.IsLiteral():
		return &ast.LiteralExpr{Pos: tok.Position, EndPos: tok.End(), Tok: tok}, nil

	case tok.Type == token.IDENTIFIER:
		return p.nameOrCall(tok)

	case tok.Type == token.LEFT_PAREN:
		lhs, err := p.exprBP(0)
		if err != nil {
			return nil, err
		}

		closing, err := p.advance()
		if err != nil {
			return nil, err
		}
		if closing.Type != token.RIGHT_PAREN {
			return nil, unexpected(closing, "a matching right parenthesis")
		}
		return lhs, nil

	default:
		if rbp, ok := prefixBindingPower(tok.Type); ok {
			operand, err := p.exprBP(rbp)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryExpr{
				Pos:    tok.Position,
				EndPos: operand.NodeEndPos(),
				Op:     tok.Type,
				Value:  operand,
			}, nil
		}
		return nil, unexpected(tok, "a literal or an identifier")
	}
}

// nameOrCall builds a possibly scoped path from an identifier token and
// continues into a call when an argument list follows.
func (p *Parser) nameOrCall(first token.Token) (ast.Expr, error) {
	head := ast.Ident{Pos: first.Position, EndPos: first.End(), Value: first.Lexeme}
	path := &ast.Path{Pos: head.Pos, EndPos: head.EndPos, Parts: []ast.Ident{head}}

	sep, err := p.eat(token.DOUBLE_COLON)
	if err != nil {
		return nil, err
	}
	for sep {
		tok, err := p.advance()
		if err != nil {
			return nil, err
		}
		if tok.Type != token.IDENTIFIER {
			return nil, unexpected(tok, "an identifier after '::'")
		}

		part := ast.Ident{Pos: tok.Position, EndPos: tok.End(), Value: tok.Lexeme}
		path.Parts = append(path.Parts, part)
		path.EndPos = part.EndPos

		sep, err = p.eat(token.DOUBLE_COLON)
		if err != nil {
			return nil, err
		}
	}

	open, err := p.eat(token.LEFT_PAREN)
	if err != nil {
		return nil, err
	}
	if open {
		return p.callExpr(path)
	}
	return path, nil
}

// callExpr parses the argument list after the opening parenthesis has been
// consumed. Zero-argument calls are allowed.
func (p *Parser) callExpr(callee *ast.Path) (ast.Expr, error) {
	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Type == token.RIGHT_PAREN {
		p.advance()
		return &ast.CallExpr{Pos: callee.Pos, EndPos: next.End(), Callee: callee}, nil
	}

	var args []ast.Expr
	for {
		arg, err := p.exprBP(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, err := p.advance()
		if err != nil {
			return nil, err
		}

		switch tok.Type {
		case token.RIGHT_PAREN:
			return &ast.CallExpr{
				Pos:    callee.Pos,
				EndPos: tok.End(),
				Callee: callee,
				Args:   args,
			}, nil

		case token.COMMA:
			continue

		default:
			return nil, unexpected(tok,
				"a comma after the argument, or a parenthesis closing the argument list")
		}
	}
}
