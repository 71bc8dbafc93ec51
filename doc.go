// Package mustache implements a logic-less template engine conforming to
// Mustache templating semantics.
//
// Mustache tags are delimited by configurable markers (default "{{" and
// "}}"). Given a template source string and a hierarchical Data context,
// Compile parses the source into a Template and Render walks it against
// the context, resolving dotted names up a stack of data frames,
// HTML-escaping values by default, expanding sections and inverted
// sections over truthy values and lists, invoking lambdas, and inlining
// partials.
//
// # Basic usage
//
//	tmpl := mustache.Compile("Hello, {{name}}!")
//	if !tmpl.IsValid() {
//	    // tmpl.ErrorMessage() describes the parse failure
//	}
//	data := mustache.NewObject()
//	data.Set("name", mustache.NewString("World"))
//	out, err := mustache.Render(tmpl, data)
//	// out == "Hello, World!"
//
// # Sections, partials, lambdas
//
// Sections iterate lists, gate on truthy/falsy values, or invoke a
// lambda with the section's verbatim source. Partials splice a named
// subtemplate, resolved either from a literal Data of kind Partial on
// the context stack or, if the Engine is configured with a PartialStore
// (see WithPartialStore), from that backend.
//
// # Engine, delimiters, and the ambient stack
//
// Use New with functional options to customize default delimiters,
// maximum recursion depth, logging (go.uber.org/zap), and a partial
// store backend:
//
//	engine := mustache.MustNew(
//	    mustache.WithMaxDepth(50),
//	    mustache.WithPartialStore(mustache.NewMemoryPartialStore()),
//	)
//	out, err := engine.Execute(ctx, source, data)
package mustache
