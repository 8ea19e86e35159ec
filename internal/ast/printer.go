package ast

import (
	"fmt"
	"strconv"
	"strings"

	"quill/internal/token"
)

// Canonical bracketed rendering: every composite form is parenthesized so
// the tree shape is unambiguous.

func (i *Ident) String() string {
	return i.Value
}

func (p *Path) String() string {
	parts := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		parts[i] = part.Value
	}
	return strings.Join(parts, "::")
}

func (u *UnaryExpr) String() string {
	return fmt.Sprintf("(%s%s)", u.Op.Symbol(), u.Value.String())
}

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op.Symbol(), b.Right.String())
}

func (p *PostfixExpr) String() string {
	return fmt.Sprintf("(%s%s)", p.Value.String(), p.Op.Symbol())
}

func (i *IndexExpr) String() string {
	return fmt.Sprintf("(%s[%s])", i.Target.String(), i.Index.String())
}

func (c *CallExpr) String() string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(c.Callee.String())
	b.WriteByte('(')
	for i, a := range c.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString("))")
	return b.String()
}

func (l *LiteralExpr) String() string {
	switch l.Tok.Type {
	case token.INTEGER:
		return strconv.FormatUint(l.Tok.Integer, 10)
	case token.FLOAT:
		return strconv.FormatFloat(l.Tok.Real, 'g', -1, 64)
	case token.STRING:
		return strconv.Quote(l.Tok.Text)
	case token.CHAR:
		return strconv.QuoteRune(rune(l.Tok.Char))
	}
	return l.Tok.Lexeme
}
