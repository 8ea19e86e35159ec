package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

func parseString(t *testing.T, input string) (ast.Expr, error) {
	t.Helper()
	return ParseSource(source.New("test", input), diag.NewBag())
}

func mustParse(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := parseString(t, input)
	require.NoError(t, err, "input: %s", input)
	require.NotNil(t, expr)
	return expr
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 + 2 + 3", "((1 + 2) + 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"1 + 2 % 3", "(1 + (2 % 3))"},
		{"a + b << c", "((a + b) << c)"},
		{"a << b + c", "(a << (b + c))"},
		{"a & b | c", "((a & b) | c)"},
		{"a | b ^ c", "(a | (b ^ c))"},
		{"a == b && c != d", "((a == b) && (c != d))"},
		{"a || b && c", "(a || (b && c))"},
		{"1 < 2 == x", "((1 < 2) == x)"},
		{"a <= b >= c", "((a <= b) >= c)"},
	}

	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		assert.Equal(t, tt.want, expr.String(), "input: %s", tt.input)
	}
}

func TestRightAssociativity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2 ** 3 ** 2", "(2 ** (3 ** 2))"},
		{"a = b = c", "(a = (b = c))"},
		{"a += b -= c", "(a += (b -= c))"},
		{"x = y || z", "(x = (y || z))"},
	}

	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		assert.Equal(t, tt.want, expr.String(), "input: %s", tt.input)
	}
}

func TestPrefixOperators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-1", "(-1)"},
		{"-1 + 2", "((-1) + 2)"},
		{"- -1", "(-(-1))"},
		{"--x", "(--x)"},
		{"++x + 1", "((++x) + 1)"},
		// Prefix operators bind tighter than every infix tier, ** included.
		{"-x ** 2", "((-x) ** 2)"},
		{"-(x ** 2)", "(-(x ** 2))"},
		{"+x * -y", "((+x) * (-y))"},
	}

	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		assert.Equal(t, tt.want, expr.String(), "input: %s", tt.input)
	}
}

func TestPostfixOperators(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x!", "(x!)"},
		{"x! + 1", "((x!) + 1)"},
		{"-x!", "(-(x!))"},
		{"a[0]", "(a[0])"},
		{"a[i + 1]", "(a[(i + 1)])"},
		{"a[0][1]", "((a[0])[1])"},
		{"a[i]!", "((a[i])!)"},
		{"a[b[0]]", "(a[(b[0])])"},
	}

	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		assert.Equal(t, tt.want, expr.String(), "input: %s", tt.input)
	}
}

func TestPathsAndCalls(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "a"},
		{"a::b", "a::b"},
		{"a::b::c", "a::b::c"},
		{"f()", "(f())"},
		{"f(1)", "(f(1))"},
		{"a::b::c(1, 2)", "(a::b::c(1, 2))"},
		{"f(g(), 2 + 3)", "(f((g()), (2 + 3)))"},
		{"math::max(a, b) + 1", "((math::max(a, b)) + 1)"},
		{"f(x)[0]", "((f(x))[0])"},
	}

	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		assert.Equal(t, tt.want, expr.String(), "input: %s", tt.input)
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"1_000", "1000"},
		{"2.5", "2.5"},
		{`"hi\n"`, `"hi\n"`},
		{"'a'", "'a'"},
	}

	for _, tt := range tests {
		expr := mustParse(t, tt.input)
		assert.Equal(t, tt.want, expr.String(), "input: %s", tt.input)
	}
}

func TestNodeSpans(t *testing.T) {
	expr := mustParse(t, "1 + 23")

	assert.Equal(t, token.Position{Line: 1, Column: 1, Offset: 0}, expr.NodePos())
	assert.Equal(t, token.Position{Line: 1, Column: 7, Offset: 6}, expr.NodeEndPos())

	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, bin.Op)
}

func TestCallStructure(t *testing.T) {
	expr := mustParse(t, "a::b(1, 2)")

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok)
	require.Len(t, call.Callee.Parts, 2)
	assert.Equal(t, "a", call.Callee.Parts[0].Value)
	assert.Equal(t, "b", call.Callee.Parts[1].Value)
	require.Len(t, call.Args, 2)

	expr = mustParse(t, "f()")
	call, ok = expr.(*ast.CallExpr)
	require.True(t, ok)
	assert.Empty(t, call.Args)
}

func TestUnexpectedEnd(t *testing.T) {
	for _, input := range []string{"", "1 +", "f(", "a = ", "(", "-"} {
		_, err := parseString(t, input)
		assert.ErrorIs(t, err, ErrUnexpectedEnd, "input: %s", input)
	}
}

func TestUnexpectedTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(1 + 2", "a matching right parenthesis"},
		{"a[1", "a matching right square bracket"},
		{"a::", "an identifier after '::'"},
		{"a::1", "an identifier after '::'"},
		{"f(1 2)", "a comma after the argument, or a parenthesis closing the argument list"},
		{")", "a literal or an identifier"},
		{"*", "a literal or an identifier"},
	}

	for _, tt := range tests {
		_, err := parseString(t, tt.input)
		require.Error(t, err, "input: %s", tt.input)

		var ue *UnexpectedError
		require.True(t, errors.As(err, &ue), "input: %s, err: %v", tt.input, err)
		assert.Equal(t, tt.expected, ue.Expected, "input: %s", tt.input)
	}
}

func TestTokenizerErrorsPropagate(t *testing.T) {
	_, err := parseString(t, `1 + "oops`)
	assert.ErrorIs(t, err, lexer.ErrUnfinishedString)

	_, err = parseString(t, "1 + `")
	var ub *lexer.UnexpectedByteError
	assert.True(t, errors.As(err, &ub))
}

func TestCommentsAreInvisible(t *testing.T) {
	expr := mustParse(t, "1 + /* nested /* deep */ ok */ 2 // tail")
	assert.Equal(t, "(1 + 2)", expr.String())
}

func TestTrailingInputIsLeftAlone(t *testing.T) {
	// The parser consumes exactly one expression; what follows stays in
	// the stream for the caller.
	src := source.New("test", "1 + 2 ; rest")
	bag := diag.NewBag()
	tz := lexer.New(src, bag)
	p := New(tz, bag)

	expr, err := p.ParseExpr()
	require.NoError(t, err)
	assert.Equal(t, "(1 + 2)", expr.String())

	next, err := p.advance()
	require.NoError(t, err)
	assert.Equal(t, token.SEMICOLON, next.Type)
}
