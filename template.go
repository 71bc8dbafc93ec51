package mustache

import (
	"go.uber.org/zap"

	"github.com/itsatony/go-mustache/internal"
)

// Template is a parsed component tree plus any parse error (§3). A
// Template with a non-empty ErrorMessage has a nil root and must not be
// rendered.
type Template struct {
	source       string
	root         *internal.Component
	errorMessage string
}

// Compile parses source with the default delimiters and returns a
// Template. Inspect IsValid/ErrorMessage before rendering; compiling the
// same source twice yields Templates with equal render output (§8
// property 12).
func Compile(source string) *Template {
	return compileWithLogger(source, internal.DefaultDelimiters(), nil)
}

// CompileWithDelimiters parses source using begin as the initial
// DelimiterSet rather than the Mustache default.
func CompileWithDelimiters(source string, begin DelimiterSet) *Template {
	return compileWithLogger(source, begin.toInternal(), nil)
}

func compileWithLogger(source string, delims internal.Delimiters, logger *zap.Logger) *Template {
	root, err := internal.Parse(source, delims, logger)
	if err != nil {
		return &Template{source: source, errorMessage: err.Error()}
	}
	return &Template{source: source, root: root}
}

// IsValid reports whether parsing succeeded.
func (t *Template) IsValid() bool {
	return t.errorMessage == ""
}

// ErrorMessage returns the parse error, or "" if parsing succeeded.
func (t *Template) ErrorMessage() string {
	return t.errorMessage
}

// Source returns the original template source.
func (t *Template) Source() string {
	return t.source
}
