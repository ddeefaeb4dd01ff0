package exporter

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/flavors"
	"github.com/goliatone/go-richtext/inline"
	"github.com/goliatone/go-richtext/internal/runtimeconfig"
)

type stubRenderer struct {
	flavor flavors.Flavor
	output string
	err    error
}

func (s *stubRenderer) RenderDocument(*document.Document) (string, error) {
	return s.output, s.err
}

func (s *stubRenderer) Flavor() flavors.Flavor { return s.flavor }

type capturedWrite struct {
	path string
	data []byte
}

func captureWrites(writes *[]capturedWrite) WriteFileFunc {
	return func(path string, data []byte) error {
		*writes = append(*writes, capturedWrite{path: path, data: data})
		return nil
	}
}

func sampleDocument() *document.Document {
	doc := document.New("Meeting Notes",
		blocks.NewNode(blocks.TypeParagraph).WithText(inline.Text("body")),
	)
	doc.Metadata = map[string]any{"author": "ada"}
	return doc
}

func TestExporter_MarkdownCarriesFrontMatter(t *testing.T) {
	var writes []capturedWrite
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorMarkdown, output: "body\n\n"},
		runtimeconfig.ExportConfig{OutputDir: "out"},
		WithWriteFile(captureWrites(&writes)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc := sampleDocument()
	result, err := exp.Export(doc)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if len(writes) != 1 {
		t.Fatalf("expected one write, got %d", len(writes))
	}
	if want := "out/meeting-notes.md"; writes[0].path != want {
		t.Fatalf("path = %q, want %q", writes[0].path, want)
	}
	content := string(writes[0].data)
	if !strings.HasPrefix(content, "---\n") {
		t.Fatalf("content missing front matter: %q", content)
	}
	for _, fragment := range []string{"title: Meeting Notes", "author: ada", "id: " + doc.ID.String()} {
		if !strings.Contains(content, fragment) {
			t.Fatalf("content missing %q: %q", fragment, content)
		}
	}
	if !strings.HasSuffix(content, "body\n\n") {
		t.Fatalf("content does not end with rendered body: %q", content)
	}
	if result.Bytes != len(content) {
		t.Fatalf("Result.Bytes = %d, want %d", result.Bytes, len(content))
	}
}

func TestExporter_HTMLSkipsFrontMatter(t *testing.T) {
	var writes []capturedWrite
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorHTML, output: "<p>body</p>"},
		runtimeconfig.ExportConfig{OutputDir: "out"},
		WithWriteFile(captureWrites(&writes)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := exp.Export(sampleDocument()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := "out/meeting-notes.html"; writes[0].path != want {
		t.Fatalf("path = %q, want %q", writes[0].path, want)
	}
	if got := string(writes[0].data); got != "<p>body</p>" {
		t.Fatalf("content = %q, want bare body", got)
	}
}

func TestExporter_ExtensionOverride(t *testing.T) {
	var writes []capturedWrite
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorMarkdown, output: "body"},
		runtimeconfig.ExportConfig{OutputDir: "out", Extension: ".markdown"},
		WithWriteFile(captureWrites(&writes)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := exp.Export(sampleDocument()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := "out/meeting-notes.markdown"; writes[0].path != want {
		t.Fatalf("path = %q, want %q", writes[0].path, want)
	}
}

func TestExporter_MetadataConflictFails(t *testing.T) {
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorMarkdown, output: "body"},
		runtimeconfig.ExportConfig{OutputDir: "out"},
		WithWriteFile(func(string, []byte) error { return nil }),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc := sampleDocument()
	doc.Metadata = map[string]any{"title": "shadowed"}
	if _, err := exp.Export(doc); err == nil {
		t.Fatal("Export() expected error for metadata shadowing the title key")
	}
}

func TestExporter_UntitledFallsBackToID(t *testing.T) {
	var writes []capturedWrite
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorHTML, output: "x"},
		runtimeconfig.ExportConfig{OutputDir: "out"},
		WithWriteFile(captureWrites(&writes)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc := document.New("")
	if _, err := exp.Export(doc); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if want := "out/" + doc.ID.String() + ".html"; writes[0].path != want {
		t.Fatalf("path = %q, want %q", writes[0].path, want)
	}
}

func TestExporter_RenderFailurePropagates(t *testing.T) {
	renderErr := errors.New("boom")
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorMarkdown, err: renderErr},
		runtimeconfig.ExportConfig{OutputDir: "out"},
		WithWriteFile(func(string, []byte) error {
			t.Fatal("write should not happen when rendering fails")
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := exp.Export(sampleDocument()); !errors.Is(err, renderErr) {
		t.Fatalf("Export() error = %v, want render error", err)
	}
}

func TestExporter_ConstructionGuards(t *testing.T) {
	if _, err := New(nil, runtimeconfig.ExportConfig{OutputDir: "out"}); !errors.Is(err, ErrNilRenderer) {
		t.Fatalf("New(nil renderer) error = %v, want ErrNilRenderer", err)
	}
	if _, err := New(&stubRenderer{flavor: flavors.FlavorMarkdown}, runtimeconfig.ExportConfig{}); !errors.Is(err, ErrOutputDirRequired) {
		t.Fatalf("New(no dir) error = %v, want ErrOutputDirRequired", err)
	}
}

func TestExporter_ExportAllStopsOnFailure(t *testing.T) {
	calls := 0
	exp, err := New(
		&stubRenderer{flavor: flavors.FlavorHTML, output: "x"},
		runtimeconfig.ExportConfig{OutputDir: "out"},
		WithWriteFile(func(string, []byte) error {
			calls++
			if calls == 2 {
				return errors.New("disk full")
			}
			return nil
		}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	docs := []*document.Document{
		document.New("one"),
		document.New("two"),
		document.New("three"),
	}
	results, err := exp.ExportAll(docs)
	if err == nil {
		t.Fatal("ExportAll() expected error from second write")
	}
	if len(results) != 1 {
		t.Fatalf("ExportAll() results = %d, want 1 before failure", len(results))
	}
}
