package mustache

import (
	"errors"
	"strings"

	"github.com/itsatony/go-mustache/internal"
)

// WriteCallback receives rendered output chunks in order (§6).
type WriteCallback func(chunk string)

// Render renders tmpl under data using the default renderer
// configuration (no engine-level partial store, unlimited recursion
// depth). Returns the sub-template's error message verbatim, wrapped
// with the render error code, if a lambda or partial output fails to
// parse or render (§7 PropagatedSubTemplateError).
func Render(tmpl *Template, data Data) (string, error) {
	var sb strings.Builder
	if err := RenderTo(tmpl, data, func(chunk string) { sb.WriteString(chunk) }); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// RenderTo renders tmpl under data, invoking write for each output chunk.
func RenderTo(tmpl *Template, data Data, write WriteCallback) error {
	if !tmpl.IsValid() {
		return newParseError(errors.New(tmpl.errorMessage))
	}
	renderer := internal.NewRenderer(nil, 0, nil)
	ctx := NewScopedContext(data)
	out, err := renderer.Render(tmpl.root, ctx)
	if err != nil {
		return newRenderError(err)
	}
	write(out)
	return nil
}
