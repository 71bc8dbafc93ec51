package internal

import "fmt"

// ParseError reports a first-wins parse failure together with the byte
// offset of the offending tag, mirroring the teacher's ParserError/LexerError
// position-bearing error types.
type ParseError struct {
	Message  string
	Position int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d", e.Message, e.Position)
}

func newUnclosedTagError(pos int) error {
	return &ParseError{Message: "Unclosed tag", Position: pos}
}

func newInvalidSetDelimiterError(pos int) error {
	return &ParseError{Message: "Invalid set delimiter tag", Position: pos}
}

func newUnopenedSectionError(name string, pos int) error {
	return &ParseError{Message: fmt.Sprintf("Unopened section %q", name), Position: pos}
}

func newUnclosedSectionError(name string, pos int) error {
	return &ParseError{Message: fmt.Sprintf("Unclosed section %q", name), Position: pos}
}
