package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quill/internal/token"
)

func ident(name string) Ident {
	return Ident{Value: name}
}

func name(parts ...string) *Path {
	p := &Path{}
	for _, part := range parts {
		p.Parts = append(p.Parts, ident(part))
	}
	return p
}

func intLit(v uint64) *LiteralExpr {
	return &LiteralExpr{Tok: token.Token{Type: token.INTEGER, Integer: v}}
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "a", name("a").String())
	assert.Equal(t, "a::b::c", name("a", "b", "c").String())
}

func TestOperatorString(t *testing.T) {
	neg := &UnaryExpr{Op: token.MINUS, Value: intLit(1)}
	assert.Equal(t, "(-1)", neg.String())

	sum := &BinaryExpr{Op: token.PLUS, Left: neg, Right: intLit(2)}
	assert.Equal(t, "((-1) + 2)", sum.String())

	bang := &PostfixExpr{Value: name("x"), Op: token.BANG}
	assert.Equal(t, "(x!)", bang.String())

	index := &IndexExpr{Target: name("a"), Index: intLit(0)}
	assert.Equal(t, "(a[0])", index.String())
}

func TestCallString(t *testing.T) {
	empty := &CallExpr{Callee: name("f")}
	assert.Equal(t, "(f())", empty.String())

	call := &CallExpr{
		Callee: name("math", "max"),
		Args:   []Expr{intLit(1), intLit(2)},
	}
	assert.Equal(t, "(math::max(1, 2))", call.String())
}

func TestLiteralString(t *testing.T) {
	assert.Equal(t, "42", intLit(42).String())

	f := &LiteralExpr{Tok: token.Token{Type: token.FLOAT, Real: 2.5}}
	assert.Equal(t, "2.5", f.String())

	s := &LiteralExpr{Tok: token.Token{Type: token.STRING, Text: "a\nb"}}
	assert.Equal(t, `"a\nb"`, s.String())

	c := &LiteralExpr{Tok: token.Token{Type: token.CHAR, Char: 'q'}}
	assert.Equal(t, "'q'", c.String())
}
