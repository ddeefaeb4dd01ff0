// Package exportcmd exposes document export as a go-command message so hosts
// can dispatch renders through their existing command bus.
package exportcmd

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/exporter"
	"github.com/goliatone/go-richtext/internal/commands"
	"github.com/goliatone/go-richtext/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const exportDocumentMessageType = "richtext.document.export"

// ExportDocumentCommand renders one document and writes the result to disk.
type ExportDocumentCommand struct {
	Document *document.Document `json:"document"`
}

// Type implements command.Message.
func (ExportDocumentCommand) Type() string { return exportDocumentMessageType }

// Validate ensures the command payload is well-formed.
func (m ExportDocumentCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Document, validation.By(func(any) error {
			if m.Document == nil {
				return validation.NewError("richtext.document.export.document_required", "document is required")
			}
			if len(m.Document.Blocks) == 0 {
				return validation.NewError("richtext.document.export.blocks_required", "document has no blocks")
			}
			return nil
		})),
	)
}

// ExportDocumentHandler runs ExportDocumentCommand messages against an exporter.
type ExportDocumentHandler struct {
	exporter *exporter.Exporter
	logger   interfaces.Logger
	timeout  time.Duration
	results  []exporter.Result
}

// HandlerOption customises the export handler.
type HandlerOption func(*ExportDocumentHandler)

// WithTimeout overrides the default execution timeout.
func WithTimeout(timeout time.Duration) HandlerOption {
	return func(h *ExportDocumentHandler) {
		h.timeout = timeout
	}
}

// NewExportDocumentHandler constructs a handler wired to the provided exporter.
func NewExportDocumentHandler(exp *exporter.Exporter, logger interfaces.Logger, opts ...HandlerOption) *ExportDocumentHandler {
	handler := &ExportDocumentHandler{
		exporter: exp,
		logger:   commands.EnsureLogger(logger),
		timeout:  commands.DefaultCommandTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Execute satisfies command.Commander[ExportDocumentCommand].
func (h *ExportDocumentHandler) Execute(ctx context.Context, msg ExportDocumentCommand) error {
	if err := commands.WrapValidationError(command.ValidateMessage(msg)); err != nil {
		return err
	}
	ctx = commands.EnsureContext(ctx)
	ctx, cancel := commands.WithCommandTimeout(ctx, h.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return commands.WrapContextError(err)
	}

	result, err := h.exporter.Export(msg.Document)
	if err != nil {
		h.logger.Error("export.command.failed", "document", msg.Document.ID.String(), "error", err)
		return commands.WrapExecuteError(err)
	}

	h.results = append(h.results, result)
	h.logger.Info("export.command.success", "path", result.Path, "bytes", result.Bytes)
	return nil
}

// Results returns the exports completed so far, in execution order.
func (h *ExportDocumentHandler) Results() []exporter.Result {
	out := make([]exporter.Result, len(h.results))
	copy(out, h.results)
	return out
}
