package mustache

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/itsatony/go-mustache/internal"
)

// Engine bundles a default DelimiterSet, logger, recursion-depth limit,
// and partial store so callers don't have to thread them through every
// Compile/Render call (§11).
type Engine struct {
	delims   internal.Delimiters
	logger   *zap.Logger
	maxDepth int
	partials PartialStore
}

// Option configures an Engine constructed by New.
type Option func(*Engine) error

// WithDelimiters sets the DelimiterSet new Templates are compiled with.
// Defaults to "{{"/"}}".
func WithDelimiters(begin, end string) Option {
	return func(e *Engine) error {
		d := DelimiterSet{Begin: begin, End: end}
		if !d.Valid() {
			return newConfigError("delimiters must be non-empty and contain no whitespace or '='")
		}
		e.delims = d.toInternal()
		return nil
	}
}

// WithLogger sets the zap.Logger used for parse/render debug logging.
// A nil logger (the default) disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) error {
		e.logger = logger
		return nil
	}
}

// WithMaxDepth bounds lambda/partial re-parse recursion. n <= 0 means
// unlimited, bounded only by the data graph itself (§9).
func WithMaxDepth(n int) Option {
	return func(e *Engine) error {
		e.maxDepth = n
		return nil
	}
}

// WithPartialStore configures the backend consulted when a partial name
// is not found as a literal Data.Partial on the context stack (§12).
func WithPartialStore(store PartialStore) Option {
	return func(e *Engine) error {
		e.partials = store
		return nil
	}
}

// New creates an Engine applying opts in order over the default
// configuration (default delimiters, no logger, unlimited depth, no
// partial store).
func New(opts ...Option) (*Engine, error) {
	e := &Engine{delims: internal.DefaultDelimiters()}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// MustNew is like New but panics on error, for use in package-level
// initialization.
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Compile parses source using the Engine's configured delimiters and
// logger.
func (e *Engine) Compile(source string) *Template {
	return compileWithLogger(source, e.delims, e.logger)
}

// Execute compiles source and renders it against data using the
// Engine's configured logger, recursion-depth limit, and partial store.
// ctx governs cancellation of any configured PartialStore's backend
// calls; it does not bound rendering itself.
func (e *Engine) Execute(ctx context.Context, source string, data Data) (string, error) {
	tmpl := e.Compile(source)
	return e.Render(ctx, tmpl, data)
}

// Render renders an already-compiled Template against data using the
// Engine's configuration.
func (e *Engine) Render(ctx context.Context, tmpl *Template, data Data) (string, error) {
	if !tmpl.IsValid() {
		return "", newParseError(errors.New(tmpl.errorMessage))
	}

	var loader internal.PartialLoader
	if e.partials != nil {
		loader = internalPartialAdapter{ctx: ctx, store: e.partials}
	}

	renderer := internal.NewRenderer(e.logger, e.maxDepth, loader)
	rctx := NewScopedContext(data)
	out, err := renderer.Render(tmpl.root, rctx)
	if err != nil {
		return "", newRenderError(err)
	}
	return out, nil
}
