// Package preview converts rendered Markdown into HTML so a document can be
// inspected in a browser without a second render pass through the HTML flavor.
package preview

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Options control how Markdown is converted.
type Options struct {
	// HardWraps renders single newlines as <br> elements.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough. The engine's own output uses
	// inline HTML for underline and color, so the default leaves it off.
	SafeMode bool
	// Extensions names the goldmark extensions to enable. Empty means the
	// GFM set the built-in flavors rely on (tables, strikethrough, task
	// lists, autolinks). Unknown names are ignored.
	Extensions []string
}

// Previewer converts Markdown into HTML. Stateless; a single instance can be
// shared across goroutines.
type Previewer struct {
	defaults Options
}

// New constructs a previewer with the given default options.
func New(defaults Options) *Previewer {
	return &Previewer{defaults: defaults}
}

// Convert renders Markdown into HTML using the previewer's defaults.
func (p *Previewer) Convert(markdown []byte) ([]byte, error) {
	return p.ConvertWithOptions(markdown, p.defaults)
}

// ConvertWithOptions renders Markdown into HTML using the provided options.
func (p *Previewer) ConvertWithOptions(markdown []byte, opts Options) ([]byte, error) {
	engine := newEngine(opts)
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("preview convert: %w", err)
	}
	return buf.Bytes(), nil
}

func newEngine(opts Options) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
