package internal

import "fmt"

// TagKind classifies a parsed tag. KindInvalid marks a component as a
// plain text node rather than a tag.
type TagKind int

const (
	KindInvalid TagKind = iota
	KindVariable
	KindUnescapedVariable
	KindSectionBegin
	KindSectionEnd
	KindSectionBeginInverted
	KindComment
	KindPartial
	KindSetDelimiter
)

func (k TagKind) String() string {
	switch k {
	case KindVariable:
		return "Variable"
	case KindUnescapedVariable:
		return "UnescapedVariable"
	case KindSectionBegin:
		return "SectionBegin"
	case KindSectionEnd:
		return "SectionEnd"
	case KindSectionBeginInverted:
		return "SectionBeginInverted"
	case KindComment:
		return "Comment"
	case KindPartial:
		return "Partial"
	case KindSetDelimiter:
		return "SetDelimiter"
	default:
		return "Invalid"
	}
}

// Delimiters is a begin/end marker pair. It is duplicated here (rather
// than imported from the public package) to keep internal free of a
// dependency on its own importer.
type Delimiters struct {
	Begin string
	End   string
}

// DefaultDelimiters returns the Mustache default "{{" / "}}" pair.
func DefaultDelimiters() Delimiters {
	return Delimiters{Begin: "{{", End: "}}"}
}

// Tag holds the parsed metadata for a tag component.
type Tag struct {
	Name        string
	Kind        TagKind
	SectionText string      // verbatim body source, set only on section-begin tags
	Delims      *Delimiters // snapshot, set only on KindSetDelimiter
}

// Component is a node in the parsed template tree: either a text node
// (Tag.Kind == KindInvalid) or a tag node, optionally owning children.
type Component struct {
	Text     string
	Tag      Tag
	Children []*Component
	Position int
}

// IsText reports whether this component is a literal text node.
func (c *Component) IsText() bool {
	return c.Tag.Kind == KindInvalid
}

// NewTextComponent creates a text node.
func NewTextComponent(text string, pos int) *Component {
	return &Component{Text: text, Position: pos}
}

// NewTagComponent creates a tag node with the given name/kind.
func NewTagComponent(name string, kind TagKind, pos int) *Component {
	return &Component{Tag: Tag{Name: name, Kind: kind}, Position: pos}
}

func (c *Component) String() string {
	if c.IsText() {
		return fmt.Sprintf("Text(%q)@%d", c.Text, c.Position)
	}
	return fmt.Sprintf("Tag(%s %q, children=%d)@%d", c.Tag.Kind, c.Tag.Name, len(c.Children), c.Position)
}
