// Package exporter writes rendered documents to disk. Filenames are slugged
// from the document title, and Markdown output is prefixed with a YAML front
// matter block carrying the document identity and metadata.
package exporter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/flavors"
	"github.com/goliatone/go-richtext/frontmatter"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var (
	// ErrNilRenderer indicates an exporter constructed without a renderer.
	ErrNilRenderer = errors.New("exporter: renderer is required")
	// ErrNilDocument indicates an export request for a nil document.
	ErrNilDocument = errors.New("exporter: document is nil")
	// ErrOutputDirRequired indicates an exporter constructed without a target
	// directory.
	ErrOutputDirRequired = errors.New("exporter: output directory is required")
)

// DocumentRenderer is the engine surface the exporter depends on.
type DocumentRenderer interface {
	RenderDocument(doc *document.Document) (string, error)
	Flavor() flavors.Flavor
}

// WriteFileFunc persists one exported file. The default implementation
// creates the parent directory and writes through os.WriteFile.
type WriteFileFunc func(path string, data []byte) error

// Result describes one completed export.
type Result struct {
	Path  string
	Bytes int
}

// Exporter renders documents and writes them under a configured directory.
// Safe for concurrent use once constructed.
type Exporter struct {
	renderer  DocumentRenderer
	outputDir string
	extension string
	writeFile WriteFileFunc
	logger    interfaces.Logger
}

// Option configures an Exporter during construction.
type Option func(*Exporter)

// WithLogger attaches a logging provider.
func WithLogger(provider interfaces.LoggerProvider) Option {
	return func(e *Exporter) {
		e.logger = logging.ExporterLogger(provider)
	}
}

// WithWriteFile replaces the file writer, e.g. to capture output in tests.
func WithWriteFile(fn WriteFileFunc) Option {
	return func(e *Exporter) {
		if fn != nil {
			e.writeFile = fn
		}
	}
}

// New builds an exporter from the frozen export settings. The extension
// falls back to the renderer flavor's conventional one when unset.
func New(renderer DocumentRenderer, cfg runtimeconfig.ExportConfig, opts ...Option) (*Exporter, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		return nil, ErrOutputDirRequired
	}

	extension := cfg.Extension
	if extension == "" {
		extension = flavors.Extension(renderer.Flavor())
	}

	e := &Exporter{
		renderer:  renderer,
		outputDir: cfg.OutputDir,
		extension: extension,
		writeFile: defaultWriteFile,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Export renders the document and writes it to <outputDir>/<slug><ext>.
func (e *Exporter) Export(doc *document.Document) (Result, error) {
	if doc == nil {
		return Result{}, ErrNilDocument
	}

	body, err := e.renderer.RenderDocument(doc)
	if err != nil {
		e.logger.Error("export.render_failed", "document", doc.ID.String(), "error", err)
		return Result{}, err
	}

	content := body
	if e.renderer.Flavor() == flavors.FlavorMarkdown {
		matter, err := buildFrontMatter(doc)
		if err != nil {
			return Result{}, err
		}
		content = matter + body
	}

	path := filepath.Join(e.outputDir, Filename(doc)+e.extension)
	if err := e.writeFile(path, []byte(content)); err != nil {
		e.logger.Error("export.write_failed", "path", path, "error", err)
		return Result{}, err
	}

	e.logger.Debug("export.success", "path", path, "bytes", len(content))
	return Result{Path: path, Bytes: len(content)}, nil
}

// ExportAll exports every document, stopping at the first failure.
func (e *Exporter) ExportAll(docs []*document.Document) ([]Result, error) {
	results := make([]Result, 0, len(docs))
	for _, doc := range docs {
		result, err := e.Export(doc)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Filename returns the slugged file name for a document, without extension.
// Documents whose titles normalise to nothing fall back to their ID.
func Filename(doc *document.Document) string {
	normalized, err := slug.Normalize(doc.Title)
	if err != nil || normalized == "" {
		return doc.ID.String()
	}
	return normalized
}

// buildFrontMatter serialises the document identity and metadata. Metadata
// keys that collide with the reserved title/id keys fail the export instead
// of silently overwriting them.
func buildFrontMatter(doc *document.Document) (string, error) {
	builder := frontmatter.NewBuilder()
	if err := builder.Set("title", doc.Title); err != nil {
		return "", err
	}
	if err := builder.Set("id", doc.ID.String()); err != nil {
		return "", err
	}
	if err := builder.SetAll(doc.Metadata); err != nil {
		return "", err
	}
	return builder.Build().Render()
}

func defaultWriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
