package mustache

import (
	"strings"

	"github.com/itsatony/go-mustache/internal"
)

// Context is the frame stack the renderer resolves dotted names against
// (§4.4). Frames are pushed for each section iteration and popped on
// exit. The last element of frames is innermost (a stack, not the
// front-is-innermost list the spec describes — an implementation detail
// that does not change observable lookup order; see DESIGN.md).
type Context struct {
	frames []internal.DataAccessor
	delims internal.Delimiters
}

// NewScopedContext creates a context with root pushed as the sole frame.
func NewScopedContext(root Data) *Context {
	return &Context{
		frames: []internal.DataAccessor{root},
		delims: internal.DefaultDelimiters(),
	}
}

// Push adds a new innermost frame (at the end of the frames slice).
func (c *Context) Push(d internal.DataAccessor) {
	c.frames = append(c.frames, d)
}

// Pop removes the innermost frame. Popping a context that has no frames
// left is a caller error and panics; well-formed section/render code
// always pairs Push with Pop.
func (c *Context) Pop() {
	if len(c.frames) == 0 {
		panic("mustache: Context.Pop on empty context")
	}
	c.frames = c.frames[:len(c.frames)-1]
}

// PushScoped pushes d and returns a function that pops it, for use with
// defer to guarantee pop on every exit path (§4.4, §9).
func (c *Context) PushScoped(d internal.DataAccessor) func() {
	c.Push(d)
	return c.Pop
}

// Get resolves a dotted name against the frame stack (§4.4). "." always
// returns the innermost frame. Otherwise, for each frame from innermost
// outward, the full segment list is walked from the head; resolution
// commits to the first frame where every segment resolves.
func (c *Context) Get(name string) (internal.DataAccessor, bool) {
	if name == "." {
		return c.frames[len(c.frames)-1], true
	}

	segments := strings.Split(name, ".")
	for i := len(c.frames) - 1; i >= 0; i-- {
		cur := c.frames[i]
		ok := true
		for _, seg := range segments {
			next, found := cur.Get(seg)
			if !found {
				ok = false
				break
			}
			cur = next
		}
		if ok {
			return cur, true
		}
	}
	return nil, false
}

// GetPartial is a single-segment (no dotting) lookup scanning frames
// innermost-out, used to resolve {{> name}} (§4.4, §4.5).
func (c *Context) GetPartial(name string) (internal.DataAccessor, bool) {
	for i := len(c.frames) - 1; i >= 0; i-- {
		if v, ok := c.frames[i].Get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Delimiters returns the DelimiterSet currently in force for sub-parses.
func (c *Context) Delimiters() internal.Delimiters {
	return c.delims
}

// SetDelimiters replaces the context's current DelimiterSet. Only
// observable by sub-parses performed while this context is in scope
// (§4.5 SetDelimiter).
func (c *Context) SetDelimiters(d internal.Delimiters) {
	c.delims = d
}
