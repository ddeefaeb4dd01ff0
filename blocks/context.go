package blocks

import "maps"

// Context is the read-only view a render function gets of one node's place in
// the tree: its type tag, its siblings' contexts, its parent's context, and
// the type-specific fields extracted during the context phase. A context is
// only handed out after its whole sibling list has been built, so Previous,
// Next and Parent are always resolvable (nil only at the real boundaries).
type Context struct {
	blockType string
	fields    map[string]any
	parent    *Context
	previous  *Context
	next      *Context
	linked    bool
}

// Type returns the node's type tag.
func (c *Context) Type() string { return c.blockType }

// Previous returns the previous sibling's context, nil for the first sibling.
func (c *Context) Previous() *Context { return c.previous }

// Parent returns the parent node's context, nil at the tree root.
func (c *Context) Parent() *Context { return c.parent }

// Next returns the next sibling's context, nil for the last sibling. Calling
// it before the sibling list finished linking is a bug in the engine, not in
// caller input, and panics accordingly.
func (c *Context) Next() *Context {
	if !c.linked {
		panic("blocks: context accessed before its sibling list was fully built")
	}
	return c.next
}

// Fields returns a copy of the type-specific extracted fields. Nodes whose
// type has no extractor yield an empty map.
func (c *Context) Fields() map[string]any {
	copied := make(map[string]any, len(c.fields))
	maps.Copy(copied, c.fields)
	return copied
}

// Field returns a single extracted field.
func (c *Context) Field(key string) (any, bool) {
	value, ok := c.fields[key]
	return value, ok
}

// BoolField returns a boolean extracted field, false when absent or not a bool.
func (c *Context) BoolField(key string) bool {
	value, ok := c.fields[key].(bool)
	return ok && value
}

// StringField returns a string extracted field, empty when absent.
func (c *Context) StringField(key string) string {
	value, _ := c.fields[key].(string)
	return value
}

// IntField returns an integer extracted field, zero when absent.
func (c *Context) IntField(key string) int {
	value, _ := c.fields[key].(int)
	return value
}

// SameTypeAsPrevious reports whether the previous sibling shares this node's
// type tag. Render functions use it to decide whether to open a group wrapper.
func (c *Context) SameTypeAsPrevious() bool {
	return c.previous != nil && c.previous.blockType == c.blockType
}

// SameTypeAsNext reports whether the next sibling shares this node's type tag.
// Render functions use it to decide whether to close a group wrapper.
func (c *Context) SameTypeAsNext() bool {
	next := c.Next()
	return next != nil && next.blockType == c.blockType
}

// BuildContexts derives a context for every node in a sibling list. The walk
// is two-phase: the first pass creates each context in order, wiring previous
// and parent and running the type's extractor; the second pass links next
// pointers, which cannot be known until the whole list exists. The returned
// slice mirrors the input order exactly.
func BuildContexts(nodes []*Node, parent *Context, extractors Extractors) ([]*Context, error) {
	contexts := make([]*Context, 0, len(nodes))

	var previous *Context
	for _, node := range nodes {
		if node == nil {
			return nil, ErrNilNode
		}
		ctx := &Context{
			blockType: node.Type,
			parent:    parent,
			previous:  previous,
		}
		if extractor, ok := extractors[node.Type]; ok && extractor != nil {
			ctx.fields = extractor(node, previous)
		}
		if ctx.fields == nil {
			ctx.fields = map[string]any{}
		}
		contexts = append(contexts, ctx)
		previous = ctx
	}

	for i, ctx := range contexts {
		if i+1 < len(contexts) {
			ctx.next = contexts[i+1]
		}
		ctx.linked = true
	}

	return contexts, nil
}
