// Package runtimeconfig separates engine configuration into two value types:
// a mutable, setter-only Builder used while wiring the host application, and
// an immutable Config produced by Build. Nothing consults a "running" flag;
// once a Config exists it cannot change.
package runtimeconfig

import (
	"errors"
	"strings"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/flavors"
	"github.com/goliatone/go-richtext/inline"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var (
	// ErrOutputDirRequired indicates export was enabled without a target
	// directory.
	ErrOutputDirRequired = errors.New("richtext config: exporter output directory is required when export is enabled")
	// ErrLoggingLevelInvalid indicates an unknown logging level.
	ErrLoggingLevelInvalid = errors.New("richtext config: logging level is invalid")
	// ErrLoggingFormatInvalid indicates an unknown logging format.
	ErrLoggingFormatInvalid = errors.New("richtext config: logging format is invalid")
	// ErrNilOverride indicates an override registered without a function.
	ErrNilOverride = errors.New("richtext config: override entry has no function")
)

// LoggingConfig wires go-logger options through the engine wrapper.
type LoggingConfig struct {
	Provider interfaces.LoggerProvider
	Level    string
	Format   string
}

// ExportConfig captures file-export behaviour for the exporter package.
type ExportConfig struct {
	Enabled   bool
	OutputDir string
	// Extension overrides the flavor's conventional file extension.
	Extension string
}

// Builder accumulates engine settings. It is not safe for concurrent use;
// build once during startup and share the resulting Config.
type Builder struct {
	flavor             string
	styleOverrides     map[string]inline.RenderFunc
	blockOverrides     map[string]blocks.RenderFunc
	extractorOverrides blocks.Extractors
	logging            LoggingConfig
	export             ExportConfig
}

// NewBuilder returns a builder preset to the Markdown flavor.
func NewBuilder() *Builder {
	return &Builder{
		flavor:             string(flavors.FlavorMarkdown),
		styleOverrides:     map[string]inline.RenderFunc{},
		blockOverrides:     map[string]blocks.RenderFunc{},
		extractorOverrides: blocks.Extractors{},
	}
}

// Flavor selects which default render-function set the engine merges
// overrides into.
func (b *Builder) Flavor(flavor string) *Builder {
	b.flavor = flavor
	return b
}

// StyleOverride replaces or adds the render function for one style kind.
func (b *Builder) StyleOverride(kind string, fn inline.RenderFunc) *Builder {
	b.styleOverrides[kind] = fn
	return b
}

// BlockOverride replaces or adds the render function for one block type.
func (b *Builder) BlockOverride(blockType string, fn blocks.RenderFunc) *Builder {
	b.blockOverrides[blockType] = fn
	return b
}

// Extractor replaces or adds the context-field extractor for one block type.
func (b *Builder) Extractor(blockType string, fn blocks.Extractor) *Builder {
	b.extractorOverrides[blockType] = fn
	return b
}

// Logging sets the logging provider and formatting options.
func (b *Builder) Logging(cfg LoggingConfig) *Builder {
	b.logging = cfg
	return b
}

// Export enables file export into the given directory.
func (b *Builder) Export(cfg ExportConfig) *Builder {
	b.export = cfg
	return b
}

// Build validates the accumulated settings and freezes them into a Config.
// The builder can keep being modified afterwards without affecting the
// returned value.
func (b *Builder) Build() (Config, error) {
	flavor, err := flavors.Parse(b.flavor)
	if err != nil {
		return Config{}, err
	}

	for kind, fn := range b.styleOverrides {
		if fn == nil {
			return Config{}, &inline.MalformedOverrideError{Kind: kind}
		}
	}
	for blockType, fn := range b.blockOverrides {
		if fn == nil {
			return Config{}, &blocks.MalformedOverrideError{BlockType: blockType}
		}
	}
	for _, fn := range b.extractorOverrides {
		if fn == nil {
			return Config{}, ErrNilOverride
		}
	}

	if err := validateLogging(b.logging); err != nil {
		return Config{}, err
	}

	if b.export.Enabled && strings.TrimSpace(b.export.OutputDir) == "" {
		return Config{}, ErrOutputDirRequired
	}

	export := b.export
	if export.Extension == "" {
		export.Extension = flavors.Extension(flavor)
	}

	return Config{
		flavor:             flavor,
		styleOverrides:     cloneStyleOverrides(b.styleOverrides),
		blockOverrides:     cloneBlockOverrides(b.blockOverrides),
		extractorOverrides: b.extractorOverrides.Merge(nil),
		logging:            b.logging,
		export:             export,
	}, nil
}

// Config is the frozen runtime configuration. All accessors return copies of
// mutable state, so a Config can be shared across renders and goroutines.
type Config struct {
	flavor             flavors.Flavor
	styleOverrides     map[string]inline.RenderFunc
	blockOverrides     map[string]blocks.RenderFunc
	extractorOverrides blocks.Extractors
	logging            LoggingConfig
	export             ExportConfig
}

// Flavor returns the selected output flavor.
func (c Config) Flavor() flavors.Flavor { return c.flavor }

// StyleOverrides returns a copy of the style override map.
func (c Config) StyleOverrides() map[string]inline.RenderFunc {
	return cloneStyleOverrides(c.styleOverrides)
}

// BlockOverrides returns a copy of the block override map.
func (c Config) BlockOverrides() map[string]blocks.RenderFunc {
	return cloneBlockOverrides(c.blockOverrides)
}

// ExtractorOverrides returns a copy of the extractor override set.
func (c Config) ExtractorOverrides() blocks.Extractors {
	return c.extractorOverrides.Merge(nil)
}

// Logging returns the logging settings.
func (c Config) Logging() LoggingConfig { return c.logging }

// Export returns the export settings.
func (c Config) Export() ExportConfig { return c.export }

func validateLogging(cfg LoggingConfig) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}
	return nil
}

func cloneStyleOverrides(in map[string]inline.RenderFunc) map[string]inline.RenderFunc {
	out := make(map[string]inline.RenderFunc, len(in))
	for kind, fn := range in {
		out[kind] = fn
	}
	return out
}

func cloneBlockOverrides(in map[string]blocks.RenderFunc) map[string]blocks.RenderFunc {
	out := make(map[string]blocks.RenderFunc, len(in))
	for blockType, fn := range in {
		out[blockType] = fn
	}
	return out
}
