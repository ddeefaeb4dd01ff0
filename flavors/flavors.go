// Package flavors ships the two built-in render-function sets: one tuned for
// HTML output, one for Markdown. A flavor only selects defaults; callers
// merge their own overrides on top through the registries.
package flavors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/inline"
)

// Flavor identifies a default render-function set.
type Flavor string

const (
	// FlavorHTML renders into HTML fragments.
	FlavorHTML Flavor = "html"
	// FlavorMarkdown renders into GitHub-flavored Markdown.
	FlavorMarkdown Flavor = "markdown"
)

// ErrUnknownFlavor indicates a flavor identifier with no default set.
var ErrUnknownFlavor = errors.New("flavors: unknown flavor")

// Parse normalizes a flavor identifier.
func Parse(value string) (Flavor, error) {
	switch Flavor(strings.ToLower(strings.TrimSpace(value))) {
	case FlavorHTML:
		return FlavorHTML, nil
	case FlavorMarkdown, Flavor("md"):
		return FlavorMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFlavor, value)
	}
}

// StyleDefaults returns the flavor's inline style render functions.
func StyleDefaults(flavor Flavor) (map[string]inline.RenderFunc, error) {
	switch flavor {
	case FlavorHTML:
		return htmlStyleDefaults(), nil
	case FlavorMarkdown:
		return markdownStyleDefaults(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlavor, flavor)
	}
}

// BlockDefaults returns the flavor's block render functions.
func BlockDefaults(flavor Flavor) (map[string]blocks.RenderFunc, error) {
	switch flavor {
	case FlavorHTML:
		return htmlBlockDefaults(), nil
	case FlavorMarkdown:
		return markdownBlockDefaults(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlavor, flavor)
	}
}

// Extension returns the conventional file extension for the flavor's output.
func Extension(flavor Flavor) string {
	if flavor == FlavorHTML {
		return ".html"
	}
	return ".md"
}
