package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DataAccessor is the capability surface the renderer needs from a data
// variant (§4.2 of the spec). The public mustache.Data type implements it.
type DataAccessor interface {
	IsObject() bool
	IsString() bool
	IsList() bool
	IsTrue() bool
	IsFalse() bool
	IsEmptyList() bool
	IsNonEmptyList() bool
	IsPartial() bool
	IsLambda() bool
	Get(name string) (DataAccessor, bool)
	List() []DataAccessor
	StringValue() string
	Partial() (string, error)
	CallLambda(text string) (DataAccessor, error)
}

// ContextAccessor is the capability surface the renderer needs from the
// context stack (§4.4). The public mustache.Context type implements it.
type ContextAccessor interface {
	Get(name string) (DataAccessor, bool)
	GetPartial(name string) (DataAccessor, bool)
	Push(d DataAccessor)
	Pop()
	Delimiters() Delimiters
	SetDelimiters(d Delimiters)
}

// PartialLoader is consulted when a partial name's innermost binding on
// the context stack is absent or is not a literal Data.Partial (§12
// domain stack).
type PartialLoader interface {
	Load(name string) (source string, found bool, err error)
}

// Renderer walks a parsed component tree and produces output text.
type Renderer struct {
	logger   *zap.Logger
	maxDepth int
	partials PartialLoader
}

// NewRenderer creates a renderer. maxDepth <= 0 means unlimited
// lambda/partial recursion (bounded only by the user's data, per §9).
func NewRenderer(logger *zap.Logger, maxDepth int, partials PartialLoader) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger, maxDepth: maxDepth, partials: partials}
}

// Render walks root's children under ctx and returns the rendered output.
func (r *Renderer) Render(root *Component, ctx ContextAccessor) (string, error) {
	r.logger.Debug("mustache: render start")
	var sb strings.Builder
	write := func(s string) { sb.WriteString(s) }
	if err := r.renderChildren(root.Children, ctx, write, 0); err != nil {
		return "", err
	}
	r.logger.Debug("mustache: render end", zap.Int("bytes", sb.Len()))
	return sb.String(), nil
}

func (r *Renderer) renderChildren(children []*Component, ctx ContextAccessor, write func(string), depth int) error {
	return Walk(children, func(c *Component) (WalkAction, error) {
		if c.IsText() {
			write(c.Text)
			return WalkSkip, nil
		}
		switch c.Tag.Kind {
		case KindVariable, KindUnescapedVariable:
			return WalkSkip, r.renderVariable(c, ctx, write, depth)
		case KindSectionBegin:
			return WalkSkip, r.renderSection(c, ctx, write, depth)
		case KindSectionBeginInverted:
			return WalkSkip, r.renderInverted(c, ctx, write, depth)
		case KindPartial:
			return WalkSkip, r.renderPartial(c, ctx, write, depth)
		case KindSetDelimiter:
			ctx.SetDelimiters(*c.Tag.Delims)
			return WalkSkip, nil
		case KindComment:
			return WalkSkip, nil
		default:
			return WalkSkip, nil
		}
	})
}

func (r *Renderer) renderVariable(c *Component, ctx ContextAccessor, write func(string), depth int) error {
	val, ok := ctx.Get(c.Tag.Name)
	if !ok {
		return nil
	}

	escape := c.Tag.Kind == KindVariable

	switch {
	case val.IsString():
		s := val.StringValue()
		if escape {
			write(Escape(s))
		} else {
			write(s)
		}
		return nil

	case val.IsLambda():
		r.logger.Debug("mustache: lambda invoked", zap.String("tag", c.Tag.Name))
		result, err := val.CallLambda("")
		if err != nil {
			return err
		}
		out, err := r.renderSubTemplate(result.StringValue(), DefaultDelimiters(), ctx, depth)
		if err != nil {
			return err
		}
		if escape {
			write(Escape(out))
		} else {
			write(out)
		}
		return nil

	default:
		// Object/List/True/False/Partial resolved by a Variable tag: no
		// rendering form is defined for them, so nothing is written.
		return nil
	}
}

func (r *Renderer) renderSection(c *Component, ctx ContextAccessor, write func(string), depth int) error {
	val, ok := ctx.Get(c.Tag.Name)
	if !ok || val.IsFalse() || val.IsEmptyList() {
		return nil
	}

	if val.IsLambda() {
		r.logger.Debug("mustache: section lambda invoked", zap.String("tag", c.Tag.Name))
		result, err := val.CallLambda(c.Tag.SectionText)
		if err != nil {
			return err
		}
		out, err := r.renderSubTemplate(result.StringValue(), ctx.Delimiters(), ctx, depth)
		if err != nil {
			return err
		}
		write(out)
		return nil
	}

	if val.IsList() {
		for _, item := range val.List() {
			ctx.Push(item)
			err := r.renderChildren(c.Children, ctx, write, depth)
			ctx.Pop()
			if err != nil {
				return err
			}
		}
		return nil
	}

	ctx.Push(val)
	err := r.renderChildren(c.Children, ctx, write, depth)
	ctx.Pop()
	return err
}

func (r *Renderer) renderInverted(c *Component, ctx ContextAccessor, write func(string), depth int) error {
	val, ok := ctx.Get(c.Tag.Name)
	falsy := !ok
	if ok && (val.IsFalse() || val.IsEmptyList()) {
		falsy = true
	}
	if !falsy {
		return nil
	}
	return r.renderChildren(c.Children, ctx, write, depth)
}

func (r *Renderer) renderPartial(c *Component, ctx ContextAccessor, write func(string), depth int) error {
	var source string

	if val, ok := ctx.GetPartial(c.Tag.Name); ok && val.IsPartial() {
		s, err := val.Partial()
		if err != nil {
			return err
		}
		source = s
	} else if r.partials != nil {
		s, found, err := r.partials.Load(c.Tag.Name)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		source = s
	} else {
		return nil
	}

	r.logger.Debug("mustache: partial resolved", zap.String("tag", c.Tag.Name))
	out, err := r.renderSubTemplate(source, DefaultDelimiters(), ctx, depth)
	if err != nil {
		return err
	}
	write(out)
	return nil
}

// renderSubTemplate re-enters the parser on lambda/partial output and
// renders the result under the same context, one recursion level deeper.
func (r *Renderer) renderSubTemplate(source string, delims Delimiters, ctx ContextAccessor, depth int) (string, error) {
	if r.maxDepth > 0 && depth+1 > r.maxDepth {
		return "", fmt.Errorf("maximum template recursion depth (%d) exceeded", r.maxDepth)
	}
	root, err := Parse(source, delims, r.logger)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	write := func(s string) { sb.WriteString(s) }
	if err := r.renderChildren(root.Children, ctx, write, depth+1); err != nil {
		return "", err
	}
	return sb.String(), nil
}
