package inline

// Run types understood by the renderer. Source adapters map whatever the
// upstream document exposes onto these; anything else fails the render.
const (
	RunTypeText = "text"
)

// Style kinds used by the built-in flavors. The registry is an open map, so
// callers can register additional kinds without touching this list.
const (
	StyleBold          = "bold"
	StyleItalic        = "italic"
	StyleStrikethrough = "strikethrough"
	StyleUnderline     = "underline"
	StyleCode          = "code"
	StyleLink          = "link"
	StyleColor         = "color"
)

// Style is a single inline annotation on a run. Boolean kinds (bold, italic,
// strikethrough, underline, code) leave Value empty; value-carrying kinds
// (link, color) store the URL or color name in Value.
type Style struct {
	Kind  string
	Value string
}

// Run is an atomic segment of text plus the ordered set of styles active on
// it. Runs are immutable: the renderer copies before stripping annotations.
// Style order is significant — it is the tie-break order when two kinds span
// the same number of runs.
type Run struct {
	Type   string
	Text   string
	Styles []Style
}

// Text returns a plain text run with the given styles applied.
func Text(text string, styles ...Style) Run {
	return Run{Type: RunTypeText, Text: text, Styles: styles}
}

// Bold annotates a run with the bold style.
func Bold() Style { return Style{Kind: StyleBold} }

// Italic annotates a run with the italic style.
func Italic() Style { return Style{Kind: StyleItalic} }

// Strikethrough annotates a run with the strikethrough style.
func Strikethrough() Style { return Style{Kind: StyleStrikethrough} }

// Underline annotates a run with the underline style.
func Underline() Style { return Style{Kind: StyleUnderline} }

// Code annotates a run with the inline code style.
func Code() Style { return Style{Kind: StyleCode} }

// Link annotates a run with a link to the given URL.
func Link(url string) Style { return Style{Kind: StyleLink, Value: url} }

// Color annotates a run with the named color.
func Color(name string) Style { return Style{Kind: StyleColor, Value: name} }

// Rendered carries both projections of a run sequence: Plain is the raw text
// with all styling discarded, Rich is the markup produced by the registry's
// render functions.
type Rendered struct {
	Plain string
	Rich  string
}
