package parser

import (
	"quill/internal/ast"
	"quill/internal/token"
)

// Binding powers: higher binds tighter; an infix pair (l, r) with l < r is
// left-associative, l > r right-associative.
//
//	assignment forms          (2, 1)   right
//	||                        (3, 4)
//	&&                        (5, 6)
//	== !=                     (7, 8)
//	< > <= >=                 (9, 10)
//	|                         (11, 12)
//	^                         (13, 14)
//	&                         (15, 16)
//	<< >>                     (17, 18)
//	+ -                       (19, 20)
//	* / %                     (21, 22)
//	**                        (24, 23)  right
//	prefix + - ++ --          25
//	postfix ! and index [     27
func infixBindingPower(t token.TokenType) (int, int, bool) {
	switch t {
	case token.EQUAL, token.PLUS_EQUAL, token.MINUS_EQUAL, token.STAR_EQUAL,
		token.SLASH_EQUAL, token.TILDE_EQUAL, token.STAR_STAR_EQUAL,
		token.AND_EQUAL, token.OR_EQUAL, token.CARET_EQUAL,
		token.PERCENT_EQUAL, token.AMPERSAND_EQUAL, token.PIPE_EQUAL,
		token.LEFT_SHIFT_EQUAL, token.RIGHT_SHIFT_EQUAL:
		return 2, 1, true
	case token.OR:
		return 3, 4, true
	case token.AND:
		return 5, 6, true
	case token.EQUAL_EQUAL, token.BANG_EQUAL:
		return 7, 8, true
	case token.LESS, token.GREATER, token.LESS_EQUAL, token.GREATER_EQUAL:
		return 9, 10, true
	case token.PIPE:
		return 11, 12, true
	case token.CARET:
		return 13, 14, true
	case token.AMPERSAND:
		return 15, 16, true
	case token.LEFT_SHIFT, token.RIGHT_SHIFT:
		return 17, 18, true
	case token.PLUS, token.MINUS:
		return 19, 20, true
	case token.STAR, token.SLASH, token.PERCENT:
		return 21, 22, true
	case token.STAR_STAR:
		return 24, 23, true
	}
	return 0, 0, false
}

func prefixBindingPower(t token.TokenType) (int, bool) {
	switch t {
	case token.PLUS, token.MINUS, token.INCREMENT, token.DECREMENT:
		return 25, true
	}
	return 0, false
}

func postfixBindingPower(t token.TokenType) (int, bool) {
	switch t {
	case token.BANG, token.LEFT_BRACKET:
		return 27, true
	}
	return 0, false
}

// exprBP is the climbing loop: it extends the primary expression with
// postfix and infix operators whose left power clears minBP.
func (p *Parser) exprBP(minBP int) (ast.Expr, error) {
	lhs, err := p.exprPrimary()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		if lbp, ok := postfixBindingPower(tok.Type); ok {
			if lbp < minBP {
				break
			}
			p.advance()

			if tok.Type == token.LEFT_BRACKET {
				index, err := p.exprBP(0)
				if err != nil {
					return nil, err
				}

				closing, err := p.advance()
				if err != nil {
					return nil, err
				}
				if closing.Type != token.RIGHT_BRACKET {
					return nil, unexpected(closing, "a matching right square bracket")
				}

				lhs = &ast.IndexExpr{
					Pos:    lhs.NodePos(),
					EndPos: closing.End(),
					Target: lhs,
					Index:  index,
				}
			} else {
				lhs = &ast.PostfixExpr{
					Pos:    lhs.NodePos(),
					EndPos: tok.End(),
					Value:  lhs,
					Op:     tok.Type,
				}
			}
			continue
		}

		if lbp, rbp, ok := infixBindingPower(tok.Type); ok {
			if lbp < minBP {
				break
			}
			p.advance()

			rhs, err := p.exprBP(rbp)
			if err != nil {
				return nil, err
			}
			lhs = &ast.BinaryExpr{
				Pos:    lhs.NodePos(),
				EndPos: rhs.NodeEndPos(),
				Op:     tok.Type,
				Left:   lhs,
				Right:  rhs,
			}
			continue
		}

		break
	}

	return lhs, nil
}
