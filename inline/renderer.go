package inline

import "strings"

// Render turns a sequence of styled runs into both a plain-text and a rich
// markup projection. Rich output is produced by resolving the longest
// consecutive span of a shared style first, so overlapping styles nest with
// the fewest possible wrappers. Pure: the input runs are never modified.
func Render(runs []Run, registry *Registry) (Rendered, error) {
	plain, err := PlainText(runs)
	if err != nil {
		return Rendered{}, err
	}

	rich, err := renderRuns(runs, registry)
	if err != nil {
		return Rendered{}, err
	}

	return Rendered{Plain: plain, Rich: rich}, nil
}

// PlainText returns the styling-independent concatenation of the runs' text.
// Unsupported run types fail here too: a reference to external content has no
// literal text to fall back on.
func PlainText(runs []Run) (string, error) {
	var plain strings.Builder
	for _, run := range runs {
		if run.Type != "" && run.Type != RunTypeText {
			return "", &UnsupportedRunTypeError{RunType: run.Type}
		}
		plain.WriteString(run.Text)
	}
	return plain.String(), nil
}

// renderRuns resolves the head of the sequence and recurses on the rest.
func renderRuns(runs []Run, registry *Registry) (string, error) {
	if len(runs) == 0 {
		return "", nil
	}

	first := runs[0]
	if len(first.Styles) == 0 {
		rest, err := renderRuns(runs[1:], registry)
		if err != nil {
			return "", err
		}
		return first.Text + rest, nil
	}

	// Pick the style whose identical annotation covers the most consecutive
	// runs from the head. Ties keep the run's own declared order: a later
	// style must be strictly longer to win.
	selected := first.Styles[0]
	span := spanLength(runs, selected)
	for _, style := range first.Styles[1:] {
		if length := spanLength(runs, style); length > span {
			selected = style
			span = length
		}
	}

	fn, ok := registry.Get(selected.Kind)
	if !ok {
		return "", &UnsupportedStyleKindError{Kind: selected.Kind}
	}
	if selected.Value == "" && registry.ValueRequired(selected.Kind) {
		return "", &MissingStyleValueError{Kind: selected.Kind}
	}

	inner, err := renderRuns(stripStyle(runs[:span], selected), registry)
	if err != nil {
		return "", err
	}

	rest, err := renderRuns(runs[span:], registry)
	if err != nil {
		return "", err
	}

	return fn(inner, selected.Value) + rest, nil
}

// spanLength counts how many consecutive runs from the head carry the exact
// annotation (kind and value). The head always matches, so the minimum is 1:
// a style present on a single run still gets its wrapper.
func spanLength(runs []Run, style Style) int {
	length := 0
	for _, run := range runs {
		if !hasStyle(run, style) {
			break
		}
		length++
	}
	return length
}

func hasStyle(run Run, style Style) bool {
	for _, candidate := range run.Styles {
		if candidate.Kind == style.Kind && candidate.Value == style.Value {
			return true
		}
	}
	return false
}

// stripStyle returns a copy of the runs with the resolved annotation removed.
func stripStyle(runs []Run, style Style) []Run {
	stripped := make([]Run, len(runs))
	for i, run := range runs {
		remaining := make([]Style, 0, len(run.Styles))
		for _, candidate := range run.Styles {
			if candidate.Kind == style.Kind && candidate.Value == style.Value {
				continue
			}
			remaining = append(remaining, candidate)
		}
		stripped[i] = Run{Type: run.Type, Text: run.Text, Styles: remaining}
	}
	return stripped
}
