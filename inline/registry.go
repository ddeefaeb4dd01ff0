package inline

import (
	"sort"
	"sync"
)

// RenderFunc wraps already-rendered inner content in the markup for one style
// kind. Value carries the style's payload (URL, color name) and is empty for
// boolean kinds. Implementations must be pure.
type RenderFunc func(content string, value string) string

// Registry maps style kinds to render functions and tracks which kinds must
// carry a payload in Style.Value. Construct via NewRegistry or Merge; the
// zero value is not usable.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]RenderFunc
	valueKinds map[string]struct{}
}

// Kinds whose annotations are meaningless without a payload: a link needs its
// URL, a color its name. Custom kinds opt in through RequireValue.
var defaultValueKinds = []string{StyleLink, StyleColor}

// NewRegistry builds a registry from the supplied entries. A nil render
// function is a construction-time error naming the offending kind.
func NewRegistry(entries map[string]RenderFunc) (*Registry, error) {
	r := &Registry{
		entries:    make(map[string]RenderFunc, len(entries)),
		valueKinds: make(map[string]struct{}, len(defaultValueKinds)),
	}
	for kind, fn := range entries {
		if fn == nil {
			return nil, &MalformedOverrideError{Kind: kind}
		}
		r.entries[kind] = fn
	}
	for _, kind := range defaultValueKinds {
		r.valueKinds[kind] = struct{}{}
	}
	return r, nil
}

// Merge returns a new registry combining defaults with overrides. Override
// entries replace same-keyed defaults; unspecified defaults are kept. Neither
// input is modified.
func Merge(defaults map[string]RenderFunc, overrides map[string]RenderFunc) (*Registry, error) {
	merged := make(map[string]RenderFunc, len(defaults)+len(overrides))
	for kind, fn := range defaults {
		merged[kind] = fn
	}
	for kind, fn := range overrides {
		merged[kind] = fn
	}
	return NewRegistry(merged)
}

// Register stores or replaces the render function for a kind.
func (r *Registry) Register(kind string, fn RenderFunc) error {
	if fn == nil {
		return &MalformedOverrideError{Kind: kind}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[kind] = fn
	return nil
}

// RequireValue marks kinds whose annotations must carry a non-empty Value.
// The built-in link and color kinds are marked on construction.
func (r *Registry) RequireValue(kinds ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, kind := range kinds {
		r.valueKinds[kind] = struct{}{}
	}
}

// ValueRequired reports whether annotations of this kind must carry a payload.
func (r *Registry) ValueRequired(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.valueKinds[kind]
	return ok
}

// Get returns the render function for a kind.
func (r *Registry) Get(kind string) (RenderFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.entries[kind]
	return fn, ok
}

// Kinds returns the registered style kinds in lexical order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.entries))
	for kind := range r.entries {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
