// Package richtext converts hierarchical rich-content documents (trees of
// typed block nodes carrying independently styled text runs) into markup
// strings. Output is driven by per-type render functions: two built-in
// flavors (HTML, Markdown) supply defaults, and callers override any style
// kind or block type through the configuration builder.
package richtext

import (
	"errors"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/flavors"
	"github.com/goliatone/go-richtext/inline"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// ErrNilDocument indicates a render request for a nil document.
var ErrNilDocument = errors.New("richtext: document is nil")

// Convenience aliases so hosts can depend on the root package alone for the
// common paths.
type (
	Node     = blocks.Node
	Context  = blocks.Context
	Run      = inline.Run
	Style    = inline.Style
	Document = document.Document
	Flavor   = flavors.Flavor
)

// Built-in flavors.
const (
	FlavorHTML     = flavors.FlavorHTML
	FlavorMarkdown = flavors.FlavorMarkdown
)

// Engine renders block trees with a frozen configuration. Safe for concurrent
// use: renders share no mutable state.
type Engine struct {
	config   Config
	styles   *inline.Registry
	blocks   *blocks.Registry
	renderer *blocks.Renderer
	logger   interfaces.Logger
}

// New assembles an engine from a frozen configuration: flavor defaults merged
// with the configured overrides. Malformed overrides surface here, before any
// rendering begins.
func New(cfg Config) (*Engine, error) {
	styleDefaults, err := flavors.StyleDefaults(cfg.Flavor())
	if err != nil {
		return nil, err
	}
	blockDefaults, err := flavors.BlockDefaults(cfg.Flavor())
	if err != nil {
		return nil, err
	}

	styles, err := inline.Merge(styleDefaults, cfg.StyleOverrides())
	if err != nil {
		return nil, err
	}
	registry, err := blocks.Merge(blockDefaults, cfg.BlockOverrides())
	if err != nil {
		return nil, err
	}

	return &Engine{
		config:   cfg,
		styles:   styles,
		blocks:   registry,
		renderer: blocks.NewRenderer(styles, registry, blocks.WithExtractors(cfg.ExtractorOverrides())),
		logger:   logging.EngineLogger(cfg.Logging().Provider),
	}, nil
}

// Flavor returns the engine's output flavor.
func (e *Engine) Flavor() flavors.Flavor {
	return e.config.Flavor()
}

// Render renders a list of root sibling nodes and concatenates their output
// in input order.
func (e *Engine) Render(nodes ...*blocks.Node) (string, error) {
	out, err := e.renderer.RenderAll(nodes)
	if err != nil {
		e.logger.Error("render.failed", "error", err, "blocks", len(nodes))
		return "", err
	}
	e.logger.Debug("render.success", "blocks", len(nodes), "bytes", len(out))
	return out, nil
}

// RenderDocument renders a document's block tree.
func (e *Engine) RenderDocument(doc *document.Document) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	logger := logging.WithFields(e.logger, map[string]any{"document": doc.ID.String()})
	out, err := e.renderer.RenderAll(doc.Blocks)
	if err != nil {
		logger.Error("render.failed", "error", err)
		return "", err
	}
	logger.Debug("render.success", "bytes", len(out))
	return out, nil
}

// PlainText returns the styling-independent text of the given nodes.
func (e *Engine) PlainText(nodes ...*blocks.Node) (string, error) {
	var out string
	for _, node := range nodes {
		text, err := e.renderer.PlainText(node)
		if err != nil {
			return "", err
		}
		out += text
	}
	return out, nil
}

// Styles exposes the merged style registry, e.g. for late registration of
// host-specific kinds.
func (e *Engine) Styles() *inline.Registry { return e.styles }

// Blocks exposes the merged block registry.
func (e *Engine) Blocks() *blocks.Registry { return e.blocks }
