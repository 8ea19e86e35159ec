package ast

import "quill/internal/token"

type Node interface {
	NodePos() token.Position
	NodeEndPos() token.Position
	String() string
}

type Expr interface {
	Node
	isExpr()
}

func (*UnaryExpr) isExpr() {}

func (*BinaryExpr) isExpr() {}

func (*PostfixExpr) isExpr() {}

func (*IndexExpr) isExpr() {}

func (*CallExpr) isExpr() {}

func (*Path) isExpr() {}

func (*LiteralExpr) isExpr() {}
