// Command preview renders a JSON block document to stdout, optionally passing
// Markdown output through goldmark to approximate how a host site would show it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	richtext "github.com/goliatone/go-richtext"
	"github.com/goliatone/go-richtext/document"
	"github.com/goliatone/go-richtext/exporter"
	"github.com/goliatone/go-richtext/internal/logging/gologger"
	"github.com/goliatone/go-richtext/internal/preview"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

var readFile = os.ReadFile

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer) error {
	flags := flag.NewFlagSet("preview", flag.ContinueOnError)
	var (
		filePath   = flags.String("file", "", "Path to the JSON block document")
		flavorName = flags.String("flavor", "markdown", "Output flavor (markdown or html)")
		renderHTML = flags.Bool("html", false, "Convert Markdown output to HTML for browser preview")
		exportDir  = flags.String("export-dir", "", "Write the rendered document under this directory instead of stdout")
		logLevel   = flags.String("log-level", "", "Log level (debug, info, warn, error); empty disables logging")
		logFormat  = flags.String("log-format", "console", "Log format (json, console, pretty)")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *filePath == "" {
		return fmt.Errorf("-file is required")
	}

	data, err := readFile(*filePath)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	doc, err := document.Decode(data)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	var provider interfaces.LoggerProvider
	if *logLevel != "" {
		provider, err = gologger.NewProvider(gologger.Config{Level: *logLevel, Format: *logFormat})
		if err != nil {
			return err
		}
	}

	cfg, err := richtext.NewConfig().
		Flavor(*flavorName).
		Logging(richtext.LoggingConfig{Provider: provider, Level: *logLevel, Format: *logFormat}).
		Build()
	if err != nil {
		return err
	}
	engine, err := richtext.New(cfg)
	if err != nil {
		return err
	}

	if *exportDir != "" {
		exp, err := exporter.New(engine, richtext.ExportConfig{Enabled: true, OutputDir: *exportDir})
		if err != nil {
			return err
		}
		result, err := exp.Export(doc)
		if err != nil {
			return fmt.Errorf("export document: %w", err)
		}
		fmt.Fprintf(stdout, "Exported: %s (%d bytes)\n", result.Path, result.Bytes)
		return nil
	}

	out, err := engine.RenderDocument(doc)
	if err != nil {
		return fmt.Errorf("render document: %w", err)
	}

	if *renderHTML && engine.Flavor() == richtext.FlavorMarkdown {
		converted, err := preview.New(preview.Options{}).Convert([]byte(out))
		if err != nil {
			return fmt.Errorf("convert preview: %w", err)
		}
		out = string(converted)
	}

	fmt.Fprintf(stdout, "Title: %s\nID: %s\n\n%s", doc.Title, doc.ID, out)
	return nil
}
