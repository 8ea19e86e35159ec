package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"quill/internal/source"
)

func TestCollectCleanDocument(t *testing.T) {
	diags := Collect(source.New("file:///t.ql", "1 + 2 * 3"))
	assert.Empty(t, diags)
	assert.NotNil(t, diags, "an empty slice is still published to clear old diagnostics")
}

func TestCollectParseError(t *testing.T) {
	diags := Collect(source.New("file:///t.ql", "1 + (2"))

	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Contains(t, diags[0].Message, "a matching right parenthesis")
}

func TestCollectAdvisory(t *testing.T) {
	diags := Collect(source.New("file:///t.ql", "1 /* open comment"))

	// The unclosed comment is nonfatal: the literal before it still parses,
	// so the advisory is the only diagnostic.
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityInformation, *diags[0].Severity)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(2), diags[0].Range.Start.Character)
}

func TestSemanticTokenClassification(t *testing.T) {
	tokens := collectSemanticTokens(source.New("file:///t.ql", `x + 1 // c`))

	require.Len(t, tokens, 4)
	assert.Equal(t, tokenVariable, tokens[0].TokenType)
	assert.Equal(t, tokenOperator, tokens[1].TokenType)
	assert.Equal(t, tokenNumber, tokens[2].TokenType)
	assert.Equal(t, tokenComment, tokens[3].TokenType)

	assert.Equal(t, uint32(0), tokens[0].Line)
	assert.Equal(t, uint32(0), tokens[0].StartChar)
	assert.Equal(t, uint32(4), tokens[2].StartChar)
}
