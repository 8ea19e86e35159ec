package ast

import "quill/internal/token"

// Ident is a single identifier segment.
type Ident struct {
	Pos    token.Position
	EndPos token.Position
	Value  string
}

// Path is a scoped name: one or more identifier segments joined by `::`.
// A bare identifier is a single-part path. A Path is itself the name
// expression.
type Path struct {
	Pos    token.Position
	EndPos token.Position
	Parts  []Ident
}

// UnaryExpr is a prefix operator applied to its operand.
type UnaryExpr struct {
	Pos    token.Position
	EndPos token.Position
	Op     token.TokenType
	Value  Expr
}

// BinaryExpr is an infix operator with two operands.
type BinaryExpr struct {
	Pos    token.Position
	EndPos token.Position
	Op     token.TokenType
	Left   Expr
	Right  Expr
}

// PostfixExpr is a unary operator written after its operand.
type PostfixExpr struct {
	Pos    token.Position
	EndPos token.Position
	Value  Expr
	Op     token.TokenType
}

// IndexExpr is subscript access: target[index].
type IndexExpr struct {
	Pos    token.Position
	EndPos token.Position
	Target Expr
	Index  Expr
}

// CallExpr invokes a path with ordered arguments.
type CallExpr struct {
	Pos    token.Position
	EndPos token.Position
	Callee *Path
	Args   []Expr
}

// LiteralExpr wraps a literal token; the token payload carries the value.
type LiteralExpr struct {
	Pos    token.Position
	EndPos token.Position
	Tok    token.Token
}

func (i *Ident) NodePos() token.Position    { return i.Pos }
func (i *Ident) NodeEndPos() token.Position { return i.EndPos }

func (p *Path) NodePos() token.Position    { return p.Pos }
func (p *Path) NodeEndPos() token.Position { return p.EndPos }

func (u *UnaryExpr) NodePos() token.Position    { return u.Pos }
func (u *UnaryExpr) NodeEndPos() token.Position { return u.EndPos }

func (b *BinaryExpr) NodePos() token.Position    { return b.Pos }
func (b *BinaryExpr) NodeEndPos() token.Position { return b.EndPos }

func (p *PostfixExpr) NodePos() token.Position    { return p.Pos }
func (p *PostfixExpr) NodeEndPos() token.Position { return p.EndPos }

func (i *IndexExpr) NodePos() token.Position    { return i.Pos }
func (i *IndexExpr) NodeEndPos() token.Position { return i.EndPos }

func (c *CallExpr) NodePos() token.Position    { return c.Pos }
func (c *CallExpr) NodeEndPos() token.Position { return c.EndPos }

func (l *LiteralExpr) NodePos() token.Position    { return l.Pos }
func (l *LiteralExpr) NodeEndPos() token.Position { return l.EndPos }
