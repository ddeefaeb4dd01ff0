package blocks

import (
	"strings"

	"github.com/goliatone/go-richtext/inline"
)

// RendererOption configures a Renderer instance.
type RendererOption func(*Renderer)

// Renderer walks a block tree top-down, renders inline text and child bodies
// bottom-up, and dispatches each node to its registered render function. It
// is pure: no state survives a Render call, and rendering the same tree with
// the same registries twice yields identical output.
type Renderer struct {
	styles     *inline.Registry
	blocks     *Registry
	extractors Extractors
}

// NewRenderer builds a renderer over the given style and block registries.
// Extractors default to DefaultExtractors.
func NewRenderer(styles *inline.Registry, blocks *Registry, opts ...RendererOption) *Renderer {
	if styles == nil {
		panic("blocks: renderer requires a style registry")
	}
	if blocks == nil {
		panic("blocks: renderer requires a block registry")
	}
	r := &Renderer{
		styles:     styles,
		blocks:     blocks,
		extractors: DefaultExtractors(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithExtractors overrides entries in the default extractor set.
func WithExtractors(overrides Extractors) RendererOption {
	return func(r *Renderer) {
		r.extractors = r.extractors.Merge(overrides)
	}
}

// Render renders a single root node.
func (r *Renderer) Render(node *Node) (string, error) {
	return r.renderList([]*Node{node}, nil)
}

// RenderAll renders a list of root siblings and concatenates their output in
// input order.
func (r *Renderer) RenderAll(nodes []*Node) (string, error) {
	return r.renderList(nodes, nil)
}

// renderList is the two-phase sibling walk: build every context first so
// next-sibling links exist, then render each node in order.
func (r *Renderer) renderList(nodes []*Node, parent *Context) (string, error) {
	if len(nodes) == 0 {
		return "", nil
	}

	contexts, err := BuildContexts(nodes, parent, r.extractors)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for i, node := range nodes {
		rendered, err := r.renderNode(node, contexts[i])
		if err != nil {
			return "", err
		}
		out.WriteString(rendered)
	}
	return out.String(), nil
}

func (r *Renderer) renderNode(node *Node, ctx *Context) (string, error) {
	fn, ok := r.blocks.Get(node.Type)
	if !ok {
		return "", &UnsupportedBlockTypeError{BlockType: node.Type}
	}

	content := ""
	if len(node.Text) > 0 {
		rendered, err := inline.Render(node.Text, r.styles)
		if err != nil {
			return "", err
		}
		content = rendered.Rich
	}

	body, err := r.renderList(node.Children, ctx)
	if err != nil {
		return "", err
	}

	return fn(content, body, ctx), nil
}

// PlainText concatenates the raw text of a node and all its descendants,
// discarding styling and structure. It fails on unsupported run types, like
// the rich projection does.
func (r *Renderer) PlainText(node *Node) (string, error) {
	if node == nil {
		return "", ErrNilNode
	}

	var out strings.Builder
	plain, err := inline.PlainText(node.Text)
	if err != nil {
		return "", err
	}
	out.WriteString(plain)

	for _, child := range node.Children {
		text, err := r.PlainText(child)
		if err != nil {
			return "", err
		}
		out.WriteString(text)
	}
	return out.String(), nil
}
