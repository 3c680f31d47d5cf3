// Package modelctx carries grouping and view state through nested type
// resolution.
//
// A Context is immutable. Resolving the element type of a container or the
// value type of a map derives a child with [FromParent]; the child keeps the
// parent's group, view and return-type flag and records one more level of
// depth. The reference builder only threads contexts through; name resolvers
// are free to inspect them.
package modelctx

import "github.com/erraggy/modelref/restype"

// DefaultGroup is the group name used when none is configured.
const DefaultGroup = "default"

// Context is an immutable resolution context.
type Context struct {
	parent     *Context
	typ        restype.ResolvedType
	group      string
	view       string
	returnType bool
	depth      int
}

// Option configures a root Context.
type Option func(*Context)

// WithGroup sets the documentation group the resolution belongs to.
func WithGroup(group string) Option {
	return func(c *Context) {
		c.group = group
	}
}

// WithView sets the serialization view in effect.
func WithView(view string) Option {
	return func(c *Context) {
		c.view = view
	}
}

// AsReturnType marks the context as resolving a return value rather than an
// input parameter.
func AsReturnType() Option {
	return func(c *Context) {
		c.returnType = true
	}
}

// New returns a root context for t.
func New(t restype.ResolvedType, opts ...Option) *Context {
	c := &Context{typ: t, group: DefaultGroup}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromParent derives the context for resolving t nested inside parent.
// A nil parent yields a root context with default settings.
func FromParent(parent *Context, t restype.ResolvedType) *Context {
	if parent == nil {
		return New(t)
	}
	return &Context{
		parent:     parent,
		typ:        t,
		group:      parent.group,
		view:       parent.view,
		returnType: parent.returnType,
		depth:      parent.depth + 1,
	}
}

// Type returns the type this context resolves.
func (c *Context) Type() restype.ResolvedType { return c.typ }

// Parent returns the enclosing context, or nil for a root.
func (c *Context) Parent() *Context { return c.parent }

// Group returns the documentation group.
func (c *Context) Group() string { return c.group }

// View returns the serialization view, or "" when none is set.
func (c *Context) View() string { return c.view }

// IsReturnType reports whether a return value is being resolved.
func (c *Context) IsReturnType() bool { return c.returnType }

// Depth returns the nesting depth; a root context has depth 0.
func (c *Context) Depth() int { return c.depth }

// HasAncestor reports whether a strict ancestor of c resolves a type with
// the same signature as t. Name resolvers use it to detect cycles.
func (c *Context) HasAncestor(t restype.ResolvedType) bool {
	if t == nil {
		return false
	}
	sig := t.Signature()
	for p := c.parent; p != nil; p = p.parent {
		if p.typ != nil && p.typ.Signature() == sig {
			return true
		}
	}
	return false
}
