package flavors

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/inline"
)

func markdownStyleDefaults() map[string]inline.RenderFunc {
	return map[string]inline.RenderFunc{
		inline.StyleBold: func(content, _ string) string {
			return "**" + content + "**"
		},
		inline.StyleItalic: func(content, _ string) string {
			return "*" + content + "*"
		},
		inline.StyleStrikethrough: func(content, _ string) string {
			return "~~" + content + "~~"
		},
		inline.StyleUnderline: func(content, _ string) string {
			// Markdown has no underline; inline HTML is the convention.
			return "<u>" + content + "</u>"
		},
		inline.StyleCode: func(content, _ string) string {
			return "`" + content + "`"
		},
		inline.StyleLink: func(content, value string) string {
			return "[" + content + "](" + value + ")"
		},
		inline.StyleColor: func(content, value string) string {
			return `<span style="color:` + value + `">` + content + "</span>"
		},
	}
}

func markdownBlockDefaults() map[string]blocks.RenderFunc {
	return map[string]blocks.RenderFunc{
		blocks.TypeParagraph: func(content, body string, _ *blocks.Context) string {
			return content + "\n\n" + body
		},
		blocks.TypeHeading1: markdownHeading("# "),
		blocks.TypeHeading2: markdownHeading("## "),
		blocks.TypeHeading3: markdownHeading("### "),
		blocks.TypeBulletedListItem: func(content, body string, ctx *blocks.Context) string {
			return markdownListItem(ctx, "- "+content, body)
		},
		blocks.TypeNumberedListItem: func(content, body string, ctx *blocks.Context) string {
			marker := strconv.Itoa(ctx.IntField(blocks.FieldIndex)) + ". "
			return markdownListItem(ctx, marker+content, body)
		},
		blocks.TypeToDo: func(content, body string, ctx *blocks.Context) string {
			marker := "- [ ] "
			if ctx.BoolField(blocks.FieldChecked) {
				marker = "- [x] "
			}
			return markdownListItem(ctx, marker+content, body)
		},
		blocks.TypeToggle: func(content, body string, _ *blocks.Context) string {
			return "<details>\n<summary>" + content + "</summary>\n\n" + body + "</details>\n\n"
		},
		blocks.TypeQuote: func(content, body string, _ *blocks.Context) string {
			return "> " + content + "\n\n" + body
		},
		blocks.TypeCallout: func(content, body string, ctx *blocks.Context) string {
			icon := ctx.StringField(blocks.FieldIcon)
			if icon != "" {
				icon += " "
			}
			return "> " + icon + content + "\n\n" + body
		},
		blocks.TypeDivider: func(_, _ string, _ *blocks.Context) string {
			return "---\n\n"
		},
		blocks.TypeCode: func(content, _ string, ctx *blocks.Context) string {
			return "```" + ctx.StringField(blocks.FieldLanguage) + "\n" + content + "\n```\n\n"
		},
		blocks.TypeImage: func(_, _ string, ctx *blocks.Context) string {
			return "![" + ctx.StringField(blocks.FieldCaption) + "](" + ctx.StringField(blocks.FieldURL) + ")\n\n"
		},
		blocks.TypeBookmark: func(_, _ string, ctx *blocks.Context) string {
			url := ctx.StringField(blocks.FieldURL)
			label := ctx.StringField(blocks.FieldCaption)
			if label == "" {
				label = url
			}
			return "[" + label + "](" + url + ")\n\n"
		},
		blocks.TypeTable: func(_, body string, _ *blocks.Context) string {
			return body + "\n"
		},
		blocks.TypeTableRow: func(_, body string, ctx *blocks.Context) string {
			row := body + "\n"
			// GFM requires the separator after the first row regardless of
			// whether the source marks it as a header.
			if ctx.Previous() == nil {
				if parent := ctx.Parent(); parent != nil {
					row += markdownTableSeparator(parent.IntField(blocks.FieldWidth))
				}
			}
			return row
		},
		blocks.TypeTableCell: func(content, _ string, ctx *blocks.Context) string {
			if ctx.Previous() == nil {
				return "| " + content + " |"
			}
			return " " + content + " |"
		},
		blocks.TypeChildPage: func(_, _ string, ctx *blocks.Context) string {
			return "**" + ctx.StringField(blocks.FieldTitle) + "**\n\n"
		},
	}
}

func markdownHeading(prefix string) blocks.RenderFunc {
	return func(content, body string, _ *blocks.Context) string {
		return prefix + content + "\n\n" + body
	}
}

// markdownListItem emits one list line, indents any child body under it, and
// leaves a blank line after the last item of the group.
func markdownListItem(ctx *blocks.Context, line, body string) string {
	out := line + "\n"
	if body != "" {
		out += indentMarkdown(body)
	}
	if !ctx.SameTypeAsNext() {
		out += "\n"
	}
	return out
}

func indentMarkdown(body string) string {
	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	var out strings.Builder
	for _, line := range lines {
		if line == "" {
			out.WriteString("\n")
			continue
		}
		out.WriteString("    " + line + "\n")
	}
	return out.String()
}

func markdownTableSeparator(width int) string {
	if width <= 0 {
		return ""
	}
	var out strings.Builder
	out.WriteString("|")
	for i := 0; i < width; i++ {
		out.WriteString(" --- |")
	}
	out.WriteString("\n")
	return out.String()
}
