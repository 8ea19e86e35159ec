package source

// Source is a named, immutable view of an input text. Tokens and AST nodes
// slice into Text and must not outlive it.
type Source struct {
	Name string
	Text string
}

func New(name, text string) Source {
	return Source{Name: name, Text: text}
}

func (s Source) Len() int {
	return len(s.Text)
}
