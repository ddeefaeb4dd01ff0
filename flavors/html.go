package flavors

import (
	"strings"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/inline"
)

func htmlStyleDefaults() map[string]inline.RenderFunc {
	return map[string]inline.RenderFunc{
		inline.StyleBold: func(content, _ string) string {
			return "<strong>" + content + "</strong>"
		},
		inline.StyleItalic: func(content, _ string) string {
			return "<em>" + content + "</em>"
		},
		inline.StyleStrikethrough: func(content, _ string) string {
			return "<del>" + content + "</del>"
		},
		inline.StyleUnderline: func(content, _ string) string {
			return "<u>" + content + "</u>"
		},
		inline.StyleCode: func(content, _ string) string {
			return "<code>" + content + "</code>"
		},
		inline.StyleLink: func(content, value string) string {
			return `<a href="` + value + `">` + content + "</a>"
		},
		inline.StyleColor: func(content, value string) string {
			return `<span style="color:` + value + `">` + content + "</span>"
		},
	}
}

func htmlBlockDefaults() map[string]blocks.RenderFunc {
	return map[string]blocks.RenderFunc{
		blocks.TypeParagraph: func(content, body string, _ *blocks.Context) string {
			return "<p>" + content + "</p>" + body
		},
		blocks.TypeHeading1: htmlHeading("h1"),
		blocks.TypeHeading2: htmlHeading("h2"),
		blocks.TypeHeading3: htmlHeading("h3"),
		blocks.TypeBulletedListItem: func(content, body string, ctx *blocks.Context) string {
			return htmlGrouped(ctx, "<ul>", "</ul>", "<li>"+content+body+"</li>")
		},
		blocks.TypeNumberedListItem: func(content, body string, ctx *blocks.Context) string {
			return htmlGrouped(ctx, "<ol>", "</ol>", "<li>"+content+body+"</li>")
		},
		blocks.TypeToDo: func(content, body string, ctx *blocks.Context) string {
			checkbox := `<input type="checkbox" disabled>`
			if ctx.BoolField(blocks.FieldChecked) {
				checkbox = `<input type="checkbox" checked disabled>`
			}
			item := "<li>" + checkbox + " " + content + body + "</li>"
			return htmlGrouped(ctx, `<ul class="to-do-list">`, "</ul>", item)
		},
		blocks.TypeToggle: func(content, body string, _ *blocks.Context) string {
			return "<details><summary>" + content + "</summary>" + body + "</details>"
		},
		blocks.TypeQuote: func(content, body string, _ *blocks.Context) string {
			return "<blockquote>" + content + body + "</blockquote>"
		},
		blocks.TypeCallout: func(content, body string, ctx *blocks.Context) string {
			icon := ctx.StringField(blocks.FieldIcon)
			if icon != "" {
				icon += " "
			}
			return "<aside>" + icon + content + body + "</aside>"
		},
		blocks.TypeDivider: func(_, _ string, _ *blocks.Context) string {
			return "<hr/>"
		},
		blocks.TypeCode: func(content, _ string, ctx *blocks.Context) string {
			class := ""
			if language := ctx.StringField(blocks.FieldLanguage); language != "" {
				class = ` class="language-` + language + `"`
			}
			return "<pre><code" + class + ">" + content + "</code></pre>"
		},
		blocks.TypeImage: func(_, _ string, ctx *blocks.Context) string {
			url := ctx.StringField(blocks.FieldURL)
			caption := ctx.StringField(blocks.FieldCaption)
			img := `<img src="` + url + `" alt="` + caption + `"/>`
			if caption == "" {
				return img
			}
			return "<figure>" + img + "<figcaption>" + caption + "</figcaption></figure>"
		},
		blocks.TypeBookmark: func(_, _ string, ctx *blocks.Context) string {
			url := ctx.StringField(blocks.FieldURL)
			label := ctx.StringField(blocks.FieldCaption)
			if label == "" {
				label = url
			}
			return `<a href="` + url + `">` + label + "</a>"
		},
		blocks.TypeTable: func(_, body string, _ *blocks.Context) string {
			return "<table>" + body + "</table>"
		},
		blocks.TypeTableRow: func(_, body string, _ *blocks.Context) string {
			return "<tr>" + body + "</tr>"
		},
		blocks.TypeTableCell: func(content, _ string, ctx *blocks.Context) string {
			tag := "td"
			if htmlCellIsHeader(ctx) {
				tag = "th"
			}
			return "<" + tag + ">" + content + "</" + tag + ">"
		},
		blocks.TypeChildPage: func(_, _ string, ctx *blocks.Context) string {
			return "<p><strong>" + ctx.StringField(blocks.FieldTitle) + "</strong></p>"
		},
	}
}

func htmlHeading(tag string) blocks.RenderFunc {
	return func(content, body string, _ *blocks.Context) string {
		return "<" + tag + ">" + content + "</" + tag + ">" + body
	}
}

// htmlGrouped wraps an item in its container only at group boundaries: the
// container opens when the previous sibling has a different type and closes
// when the next one does.
func htmlGrouped(ctx *blocks.Context, open, close, item string) string {
	var out strings.Builder
	if !ctx.SameTypeAsPrevious() {
		out.WriteString(open)
	}
	out.WriteString(item)
	if !ctx.SameTypeAsNext() {
		out.WriteString(close)
	}
	return out.String()
}

// htmlCellIsHeader resolves the cell's header role from its row and table
// ancestor contexts: first row under a column header, first cell under a row
// header.
func htmlCellIsHeader(cell *blocks.Context) bool {
	row := cell.Parent()
	if row == nil {
		return false
	}
	table := row.Parent()
	if table == nil {
		return false
	}
	if table.BoolField(blocks.FieldHasColumnHeader) && row.Previous() == nil {
		return true
	}
	if table.BoolField(blocks.FieldHasRowHeader) && cell.Previous() == nil {
		return true
	}
	return false
}
