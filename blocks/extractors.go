package blocks

// Extracted field keys produced by the default extractors.
const (
	FieldChecked         = "checked"
	FieldLanguage        = "language"
	FieldURL             = "url"
	FieldCaption         = "caption"
	FieldTitle           = "title"
	FieldIcon            = "icon"
	FieldIndex           = "index"
	FieldWidth           = "width"
	FieldRows            = "rows"
	FieldHasColumnHeader = "has_column_header"
	FieldHasRowHeader    = "has_row_header"
)

// Extractor derives type-specific fields for one node during the context
// phase. The previous sibling's context is available for fields that depend
// on position, such as ordered-list indexes; it may be nil. Extractors run
// before the sibling list is linked, so calling Next on the previous context
// panics; only Previous, Parent, and the field accessors are usable here.
type Extractor func(node *Node, previous *Context) map[string]any

// Extractors keys extractor functions by block type tag. Types without an
// entry get an empty field map.
type Extractors map[string]Extractor

// DefaultExtractors returns the extractor set backing the built-in flavors:
// table dimensions and header flags, code language, to-do checkbox state,
// asset URL and caption, and ordered-list indexes.
func DefaultExtractors() Extractors {
	return Extractors{
		TypeToDo: func(node *Node, _ *Context) map[string]any {
			return map[string]any{FieldChecked: attrBool(node, FieldChecked)}
		},
		TypeCode: func(node *Node, _ *Context) map[string]any {
			return map[string]any{FieldLanguage: attrString(node, FieldLanguage)}
		},
		TypeImage: func(node *Node, _ *Context) map[string]any {
			return map[string]any{
				FieldURL:     attrString(node, FieldURL),
				FieldCaption: attrString(node, FieldCaption),
			}
		},
		TypeBookmark: func(node *Node, _ *Context) map[string]any {
			return map[string]any{
				FieldURL:     attrString(node, FieldURL),
				FieldCaption: attrString(node, FieldCaption),
			}
		},
		TypeChildPage: func(node *Node, _ *Context) map[string]any {
			return map[string]any{FieldTitle: attrString(node, FieldTitle)}
		},
		TypeCallout: func(node *Node, _ *Context) map[string]any {
			return map[string]any{FieldIcon: attrString(node, FieldIcon)}
		},
		TypeNumberedListItem: func(_ *Node, previous *Context) map[string]any {
			index := 1
			if previous != nil && previous.Type() == TypeNumberedListItem {
				index = previous.IntField(FieldIndex) + 1
			}
			return map[string]any{FieldIndex: index}
		},
		TypeTable: func(node *Node, _ *Context) map[string]any {
			width := 0
			if len(node.Children) > 0 {
				width = len(node.Children[0].Children)
			}
			return map[string]any{
				FieldWidth:           width,
				FieldRows:            len(node.Children),
				FieldHasColumnHeader: attrBool(node, FieldHasColumnHeader),
				FieldHasRowHeader:    attrBool(node, FieldHasRowHeader),
			}
		},
	}
}

// Merge returns a new extractor set with overrides applied over the receiver.
func (e Extractors) Merge(overrides Extractors) Extractors {
	merged := make(Extractors, len(e)+len(overrides))
	for tag, extractor := range e {
		merged[tag] = extractor
	}
	for tag, extractor := range overrides {
		merged[tag] = extractor
	}
	return merged
}

func attrString(node *Node, key string) string {
	value, _ := node.Attrs[key].(string)
	return value
}

func attrBool(node *Node, key string) bool {
	value, ok := node.Attrs[key].(bool)
	return ok && value
}
