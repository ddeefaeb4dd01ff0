package blocks

import (
	"sort"
	"sync"
)

// RenderFunc turns one node into output markup. It receives the node's own
// rendered inline text (empty when the node carries none), the concatenated
// rendered output of its children, and the node's context. Grouping decisions
// (opening a list container when the previous sibling differs, closing it
// when the next one does) belong here, never in the engine.
type RenderFunc func(content string, body string, ctx *Context) string

// Registry maps block type tags to render functions. Construct via
// NewRegistry or Merge; the zero value is not usable.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]RenderFunc
}

// NewRegistry builds a registry from the supplied entries. A nil render
// function is a construction-time error naming the offending type.
func NewRegistry(entries map[string]RenderFunc) (*Registry, error) {
	r := &Registry{entries: make(map[string]RenderFunc, len(entries))}
	for tag, fn := range entries {
		if fn == nil {
			return nil, &MalformedOverrideError{BlockType: tag}
		}
		r.entries[tag] = fn
	}
	return r, nil
}

// Merge returns a new registry combining defaults with overrides. Override
// entries replace same-keyed defaults; unspecified defaults are kept.
func Merge(defaults map[string]RenderFunc, overrides map[string]RenderFunc) (*Registry, error) {
	merged := make(map[string]RenderFunc, len(defaults)+len(overrides))
	for tag, fn := range defaults {
		merged[tag] = fn
	}
	for tag, fn := range overrides {
		merged[tag] = fn
	}
	return NewRegistry(merged)
}

// Register stores or replaces the render function for a type tag.
func (r *Registry) Register(tag string, fn RenderFunc) error {
	if fn == nil {
		return &MalformedOverrideError{BlockType: tag}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[tag] = fn
	return nil
}

// Get returns the render function for a type tag.
func (r *Registry) Get(tag string) (RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[tag]
	return fn, ok
}

// Types returns the registered type tags in lexical order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
