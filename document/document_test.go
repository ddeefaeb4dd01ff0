package document

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/blocks"
	"github.com/goliatone/go-richtext/inline"
)

const sampleJSON = `{
  "title": "Meeting Notes",
  "metadata": {"author": "ada", "tags": ["work"]},
  "blocks": [
    {
      "type": "heading_1",
      "text": [{"text": "Agenda"}]
    },
    {
      "type": "paragraph",
      "text": [
        {"text": "Wait!", "styles": [{"kind": "strikethrough"}, {"kind": "bold"}]},
        {"text": " Scratch that", "styles": [{"kind": "strikethrough"}]}
      ]
    },
    {
      "type": "to_do",
      "attrs": {"checked": true},
      "text": [{"text": "send recap"}],
      "children": [
        {"type": "paragraph", "text": [{"text": "cc the team"}]}
      ]
    }
  ]
}`

func TestDecode_BuildsTree(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if doc.Title != "Meeting Notes" {
		t.Fatalf("Title = %q", doc.Title)
	}
	if doc.ID == uuid.Nil {
		t.Fatalf("Decode() left document ID unset")
	}
	if len(doc.Blocks) != 3 {
		t.Fatalf("Decode() produced %d blocks, want 3", len(doc.Blocks))
	}

	todo := doc.Blocks[2]
	if todo.Type != blocks.TypeToDo {
		t.Fatalf("block 2 type = %q", todo.Type)
	}
	if checked, _ := todo.Attrs["checked"].(bool); !checked {
		t.Fatalf("to_do attrs not decoded: %v", todo.Attrs)
	}
	if len(todo.Children) != 1 || todo.Children[0].Type != blocks.TypeParagraph {
		t.Fatalf("to_do children not decoded: %v", todo.Children)
	}
	if todo.ID == uuid.Nil || todo.Children[0].ID == uuid.Nil {
		t.Fatalf("Decode() left node IDs unset")
	}
}

func TestDecode_StyleOrderPreserved(t *testing.T) {
	doc, err := Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	runs := doc.Blocks[1].Text
	if len(runs) != 2 {
		t.Fatalf("paragraph runs = %d, want 2", len(runs))
	}
	styles := runs[0].Styles
	if len(styles) != 2 || styles[0].Kind != inline.StyleStrikethrough || styles[1].Kind != inline.StyleBold {
		t.Fatalf("style order not preserved: %v", styles)
	}
}

func TestDecode_DeterministicIDs(t *testing.T) {
	first, err := Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	second, err := Decode([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("document IDs differ across decodes: %s vs %s", first.ID, second.ID)
	}
	if first.Blocks[0].ID != second.Blocks[0].ID {
		t.Fatalf("node IDs differ across decodes")
	}
	if first.Blocks[0].ID == first.Blocks[1].ID {
		t.Fatalf("sibling nodes share an ID")
	}
}

func TestDecode_SchemaViolations(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing title", `{"blocks": []}`},
		{"missing block type", `{"title": "x", "blocks": [{"text": []}]}`},
		{"style without kind", `{"title": "x", "blocks": [{"type": "paragraph", "text": [{"text": "y", "styles": [{"value": "z"}]}]}]}`},
		{"not json", `{`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("Decode() error = %v, want ErrInvalidDocument", err)
			}
		})
	}
}

func TestDecode_ValidationIssuesNamed(t *testing.T) {
	_, err := Decode([]byte(`{"blocks": []}`))

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Decode() error = %v, want *ValidationError", err)
	}
	if len(validationErr.Issues) == 0 {
		t.Fatalf("ValidationError carries no issues")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	doc := New("Round Trip",
		blocks.NewNode(blocks.TypeParagraph).WithText(
			inline.Text("plain "),
			inline.Text("bold link", inline.Bold(), inline.Link("https://example.com")),
		),
		blocks.NewNode(blocks.TypeCode).
			WithText(inline.Text("x := 1")).
			WithAttrs(map[string]any{blocks.FieldLanguage: "go"}),
	)

	encoded, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	if decoded.Title != doc.Title || decoded.ID != doc.ID {
		t.Fatalf("round trip changed identity: %+v", decoded)
	}
	runs := decoded.Blocks[0].Text
	if len(runs) != 2 {
		t.Fatalf("round trip changed runs: %v", runs)
	}
	styles := runs[1].Styles
	if len(styles) != 2 || styles[0].Kind != inline.StyleBold || styles[1].Kind != inline.StyleLink {
		t.Fatalf("round trip changed style order: %v", styles)
	}
	if styles[1].Value != "https://example.com" {
		t.Fatalf("round trip dropped style value: %v", styles)
	}
}

func TestEncode_NilDocument(t *testing.T) {
	if _, err := Encode(nil); !errors.Is(err, ErrNilDocument) {
		t.Fatalf("Encode(nil) error = %v, want ErrNilDocument", err)
	}
}
