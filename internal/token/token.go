package token

type TokenType int

const (
	// Special tokens
	EOF TokenType = iota

	// Identifiers + literals
	IDENTIFIER
	INTEGER
	FLOAT
	STRING
	CHAR

	// Keywords
	UNDERSCORE

	// Trivia
	WHITESPACE
	COMMENT
	BLOCK_COMMENT

	// Punctuation
	SEMICOLON
	COMMA
	COLON
	DOUBLE_COLON
	FAT_ARROW
	DOT
	DOT_DOT
	ELLIPSIS
	POUND
	AT
	QUESTION
	DOLLAR
	DOUBLE_DOLLAR

	// Delimiters
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE

	// Operators
	PLUS
	MINUS
	INCREMENT
	DECREMENT
	TILDE
	BANG
	STAR
	STAR_STAR
	SLASH
	PERCENT
	CARET
	AMPERSAND
	PIPE
	AND
	OR
	EQUAL_EQUAL
	BANG_EQUAL
	LESS
	GREATER
	LEFT_SHIFT
	RIGHT_SHIFT

	// Assignment operators
	EQUAL
	PLUS_EQUAL
	MINUS_EQUAL
	STAR_EQUAL
	SLASH_EQUAL
	TILDE_EQUAL
	STAR_STAR_EQUAL
	AND_EQUAL
	OR_EQUAL
	LESS_EQUAL
	GREATER_EQUAL
	CARET_EQUAL
	PERCENT_EQUAL
	AMPERSAND_EQUAL
	PIPE_EQUAL
	LEFT_SHIFT_EQUAL
	RIGHT_SHIFT_EQUAL
)

// Position locates a token in its source buffer.
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute byte index in input
}

// Token is a single lexical unit. Lexeme is a slice of the original source
// text covering exactly this token; it is never a copy. Literal values are
// carried in the payload fields matching Type.
type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position

	Integer uint64 // INTEGER
	Real    float64
	Text    string // STRING, with escapes decoded
	Char    byte
}

// End returns the position one past the last byte of the token.
func (t Token) End() Position {
	return Position{
		Line:   t.Position.Line,
		Column: t.Position.Column + len(t.Lexeme),
		Offset: t.Position.Offset + len(t.Lexeme),
	}
}

func (t TokenType) IsLiteral() bool {
	switch t {
	case INTEGER, FLOAT, STRING, CHAR:
		return true
	}
	return false
}

func (t TokenType) IsComment() bool {
	return t == COMMENT || t == BLOCK_COMMENT
}

func (t TokenType) IsOperator() bool {
	return t >= PLUS && t <= RIGHT_SHIFT_EQUAL
}

var tokenNames = map[TokenType]string{
	EOF:               "EOF",
	IDENTIFIER:        "IDENTIFIER",
	INTEGER:           "INTEGER",
	FLOAT:             "FLOAT",
	STRING:            "STRING",
	CHAR:              "CHAR",
	UNDERSCORE:        "UNDERSCORE",
	WHITESPACE:        "WHITESPACE",
	COMMENT:           "COMMENT",
	BLOCK_COMMENT:     "BLOCK_COMMENT",
	SEMICOLON:         "SEMICOLON",
	COMMA:             "COMMA",
	COLON:             "COLON",
	DOUBLE_COLON:      "DOUBLE_COLON",
	FAT_ARROW:         "FAT_ARROW",
	DOT:               "DOT",
	DOT_DOT:           "DOT_DOT",
	ELLIPSIS:          "ELLIPSIS",
	POUND:             "POUND",
	AT:                "AT",
	QUESTION:          "QUESTION",
	DOLLAR:            "DOLLAR",
	DOUBLE_DOLLAR:     "DOUBLE_DOLLAR",
	LEFT_PAREN:        "LEFT_PAREN",
	RIGHT_PAREN:       "RIGHT_PAREN",
	LEFT_BRACKET:      "LEFT_BRACKET",
	RIGHT_BRACKET:     "RIGHT_BRACKET",
	LEFT_BRACE:        "LEFT_BRACE",
	RIGHT_BRACE:       "RIGHT_BRACE",
	PLUS:              "PLUS",
	MINUS:             "MINUS",
	INCREMENT:         "INCREMENT",
	DECREMENT:         "DECREMENT",
	TILDE:             "TILDE",
	BANG:              "BANG",
	STAR:              "STAR",
	STAR_STAR:         "STAR_STAR",
	SLASH:             "SLASH",
	PERCENT:           "PERCENT",
	CARET:             "CARET",
	AMPERSAND:         "AMPERSAND",
	PIPE:              "PIPE",
	AND:               "AND",
	OR:                "OR",
	EQUAL_EQUAL:       "EQUAL_EQUAL",
	BANG_EQUAL:        "BANG_EQUAL",
	LESS:              "LESS",
	GREATER:           "GREATER",
	LEFT_SHIFT:        "LEFT_SHIFT",
	RIGHT_SHIFT:       "RIGHT_SHIFT",
	EQUAL:             "EQUAL",
	PLUS_EQUAL:        "PLUS_EQUAL",
	MINUS_EQUAL:       "MINUS_EQUAL",
	STAR_EQUAL:        "STAR_EQUAL",
	SLASH_EQUAL:       "SLASH_EQUAL",
	TILDE_EQUAL:       "TILDE_EQUAL",
	STAR_STAR_EQUAL:   "STAR_STAR_EQUAL",
	AND_EQUAL:         "AND_EQUAL",
	OR_EQUAL:          "OR_EQUAL",
	LESS_EQUAL:        "LESS_EQUAL",
	GREATER_EQUAL:     "GREATER_EQUAL",
	CARET_EQUAL:       "CARET_EQUAL",
	PERCENT_EQUAL:     "PERCENT_EQUAL",
	AMPERSAND_EQUAL:   "AMPERSAND_EQUAL",
	PIPE_EQUAL:        "PIPE_EQUAL",
	LEFT_SHIFT_EQUAL:  "LEFT_SHIFT_EQUAL",
	RIGHT_SHIFT_EQUAL: "RIGHT_SHIFT_EQUAL",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

var tokenSymbols = map[TokenType]string{
	UNDERSCORE:        "_",
	SEMICOLON:         ";",
	COMMA:             ",",
	COLON:             ":",
	DOUBLE_COLON:      "::",
	FAT_ARROW:         "=>",
	DOT:               ".",
	DOT_DOT:           "..",
	ELLIPSIS:          "...",
	POUND:             "#",
	AT:                "@",
	QUESTION:          "?",
	DOLLAR:            "$",
	DOUBLE_DOLLAR:     "$$",
	LEFT_PAREN:        "(",
	RIGHT_PAREN:       ")",
	LEFT_BRACKET:      "[",
	RIGHT_BRACKET:     "]",
	LEFT_BRACE:        "{",
	RIGHT_BRACE:       "}",
	PLUS:              "+",
	MINUS:             "-",
	INCREMENT:         "++",
	DECREMENT:         "--",
	TILDE:             "~",
	BANG:              "!",
	STAR:              "*",
	STAR_STAR:         "**",
	SLASH:             "/",
	PERCENT:           "%",
	CARET:             "^",
	AMPERSAND:         "&",
	PIPE:              "|",
	AND:               "&&",
	OR:                "||",
	EQUAL_EQUAL:       "==",
	BANG_EQUAL:        "!=",
	LESS:              "<",
	GREATER:           ">",
	LEFT_SHIFT:        "<<",
	RIGHT_SHIFT:       ">>",
	EQUAL:             "=",
	PLUS_EQUAL:        "+=",
	MINUS_EQUAL:       "-=",
	STAR_EQUAL:        "*=",
	SLASH_EQUAL:       "/=",
	TILDE_EQUAL:       "~=",
	STAR_STAR_EQUAL:   "**=",
	AND_EQUAL:         "&&=",
	OR_EQUAL:          "||=",
	LESS_EQUAL:        "<=",
	GREATER_EQUAL:     ">=",
	CARET_EQUAL:       "^=",
	PERCENT_EQUAL:     "%=",
	AMPERSAND_EQUAL:   "&=",
	PIPE_EQUAL:        "|=",
	LEFT_SHIFT_EQUAL:  "<<=",
	RIGHT_SHIFT_EQUAL: ">>=",
}

// Symbol returns the source spelling of fixed-text tokens (operators,
// punctuation, delimiters, keywords). For everything else it falls back to
// the token name.
func (t TokenType) Symbol() string {
	if sym, ok := tokenSymbols[t]; ok {
		return sym
	}
	return t.String()
}

var keywords = map[string]TokenType{
	"_": UNDERSCORE,
}

// LookupIdentifier maps an identifier run to its keyword token type, or
// IDENTIFIER when the text is not a keyword.
func LookupIdentifier(text string) TokenType {
	if t, ok := keywords[text]; ok {
		return t
	}
	return IDENTIFIER
}
