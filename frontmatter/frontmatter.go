// Package frontmatter builds and serialises document front matter. Values are
// declared as dotted leaf paths and assembled bottom-up into an immutable
// nested map; overlapping paths are rejected when declared instead of being
// resolved by mutating a shared object.
package frontmatter

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyPath indicates a blank path or path segment.
	ErrEmptyPath = errors.New("frontmatter: empty key path")
	// ErrPathConflict indicates two declared paths that cannot coexist in one
	// nested map (one is a prefix of the other, or both name the same leaf).
	ErrPathConflict = errors.New("frontmatter: conflicting key paths")
)

// PathConflictError names the two paths that collide.
type PathConflictError struct {
	Path     string
	Existing string
}

func (e *PathConflictError) Error() string {
	if e == nil {
		return ErrPathConflict.Error()
	}
	return fmt.Sprintf("%s: %q vs %q", ErrPathConflict.Error(), e.Path, e.Existing)
}

func (e *PathConflictError) Unwrap() error {
	return ErrPathConflict
}

// Builder accumulates leaf values keyed by dotted paths. Not safe for
// concurrent use; build once, then share the resulting Doc.
type Builder struct {
	leaves map[string]any
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{leaves: map[string]any{}}
}

// Set declares one leaf value at a dotted path ("author.name"). A map value
// is expanded into its own leaf paths so conflicts stay detectable. Declaring
// a path that overlaps an existing one fails; nothing is partially applied on
// error for map values declared through a single Set call.
func (b *Builder) Set(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	if nested, ok := value.(map[string]any); ok {
		for _, key := range sortedKeys(nested) {
			if err := b.Set(strings.Join(append(segments, key), "."), nested[key]); err != nil {
				return err
			}
		}
		return nil
	}

	canonical := strings.Join(segments, ".")
	for existing := range b.leaves {
		if pathsOverlap(canonical, existing) {
			return &PathConflictError{Path: canonical, Existing: existing}
		}
	}

	b.leaves[canonical] = value
	return nil
}

// SetAll declares every entry of the map as a top-level path.
func (b *Builder) SetAll(values map[string]any) error {
	for _, key := range sortedKeys(values) {
		if err := b.Set(key, values[key]); err != nil {
			return err
		}
	}
	return nil
}

// Build assembles the declared leaves into an immutable Doc. The builder can
// keep accumulating afterwards without affecting the returned value.
func (b *Builder) Build() Doc {
	return Doc{values: assemble(b.leaves)}
}

// Doc is an immutable front matter value.
type Doc struct {
	values map[string]any
}

// Len returns the number of top-level keys.
func (d Doc) Len() int { return len(d.values) }

// Values returns a deep copy of the nested map.
func (d Doc) Values() map[string]any {
	return deepCopy(d.values)
}

// Render serialises the document as a YAML front matter block, including the
// delimiters. An empty document renders to an empty string.
func (d Doc) Render() (string, error) {
	if len(d.values) == 0 {
		return "", nil
	}
	encoded, err := yaml.Marshal(d.values)
	if err != nil {
		return "", fmt.Errorf("frontmatter: marshal: %w", err)
	}
	return "---\n" + string(encoded) + "---\n", nil
}

// Parse splits a source file into its front matter and remaining body.
func Parse(source []byte) (Doc, []byte, error) {
	values := map[string]any{}
	body, err := frontmatter.Parse(strings.NewReader(string(source)), &values)
	if err != nil {
		return Doc{}, nil, fmt.Errorf("frontmatter: parse: %w", err)
	}
	return Doc{values: deepCopy(values)}, body, nil
}

func splitPath(path string) ([]string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, ErrEmptyPath
	}
	segments := strings.Split(trimmed, ".")
	for i, segment := range segments {
		segments[i] = strings.TrimSpace(segment)
		if segments[i] == "" {
			return nil, ErrEmptyPath
		}
	}
	return segments, nil
}

// pathsOverlap reports whether two dotted paths name the same leaf or one
// names an ancestor of the other.
func pathsOverlap(a, b string) bool {
	if a == b {
		return true
	}
	return strings.HasPrefix(a, b+".") || strings.HasPrefix(b, a+".")
}

// assemble builds the nested map bottom-up: leaves are grouped by their first
// segment and each group becomes a child map.
func assemble(leaves map[string]any) map[string]any {
	out := make(map[string]any, len(leaves))
	grouped := map[string]map[string]any{}

	for path, value := range leaves {
		head, rest, nested := strings.Cut(path, ".")
		if !nested {
			out[head] = value
			continue
		}
		if grouped[head] == nil {
			grouped[head] = map[string]any{}
		}
		grouped[head][rest] = value
	}

	for head, children := range grouped {
		out[head] = assemble(children)
	}
	return out
}

func deepCopy(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		if nested, ok := value.(map[string]any); ok {
			out[key] = deepCopy(nested)
			continue
		}
		out[key] = value
	}
	return out
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
