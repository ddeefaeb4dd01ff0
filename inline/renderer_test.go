package inline

import (
	"errors"
	"fmt"
	"testing"
)

func markdownRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry(map[string]RenderFunc{
		StyleBold:          func(content, _ string) string { return "**" + content + "**" },
		StyleItalic:        func(content, _ string) string { return "*" + content + "*" },
		StyleStrikethrough: func(content, _ string) string { return "~~" + content + "~~" },
		StyleCode:          func(content, _ string) string { return "`" + content + "`" },
		StyleLink:          func(content, value string) string { return "[" + content + "](" + value + ")" },
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}
	return registry
}

func TestRender_PlainMatchesRawText(t *testing.T) {
	runs := []Run{
		Text("Hello ", Bold()),
		Text("styled ", Bold(), Italic()),
		Text("world", Link("https://example.com")),
	}

	got, err := Render(runs, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "Hello styled world"; got.Plain != want {
		t.Fatalf("Render() plain = %q, want %q", got.Plain, want)
	}
}

func TestRender_LongestSpanWins(t *testing.T) {
	// A(bold) B(bold,italic) C(bold,italic) D(italic): bold spans 3 runs and
	// must resolve first, italic nests inside over B and C, and D's italic is
	// a separate wrapper. Exactly three wrapper invocations total.
	wrapped := 0
	registry, err := NewRegistry(map[string]RenderFunc{
		StyleBold: func(content, _ string) string {
			wrapped++
			return "<b>" + content + "</b>"
		},
		StyleItalic: func(content, _ string) string {
			wrapped++
			return "<i>" + content + "</i>"
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	runs := []Run{
		Text("A", Bold()),
		Text("B", Bold(), Italic()),
		Text("C", Bold(), Italic()),
		Text("D", Italic()),
	}

	got, err := Render(runs, registry)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "<b>A<i>BC</i></b><i>D</i>"; got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
	if wrapped != 3 {
		t.Fatalf("Render() invoked %d wrappers, want 3", wrapped)
	}
}

func TestRender_StrikethroughOuterBoldInner(t *testing.T) {
	runs := []Run{
		Text("Wait!", Strikethrough(), Bold()),
		Text(" Scratch that", Strikethrough()),
	}

	got, err := Render(runs, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "~~**Wait!** Scratch that~~"; got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
}

func TestRender_SingleRunStillWrapped(t *testing.T) {
	invocations := 0
	registry, err := NewRegistry(map[string]RenderFunc{
		StyleCode: func(content, _ string) string {
			invocations++
			return "`" + content + "`"
		},
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	got, err := Render([]Run{Text("x", Code()), Text(" = 1")}, registry)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "`x` = 1"; got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
	if invocations != 1 {
		t.Fatalf("Render() invoked wrapper %d times, want 1", invocations)
	}
}

func TestRender_DifferentLinkValuesNeverMerge(t *testing.T) {
	runs := []Run{
		Text("here", Link("https://a.example")),
		Text("there", Link("https://b.example")),
	}

	got, err := Render(runs, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	want := "[here](https://a.example)[there](https://b.example)"
	if got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
}

func TestRender_SameLinkValueMerges(t *testing.T) {
	runs := []Run{
		Text("two ", Link("https://a.example")),
		Text("words", Link("https://a.example")),
	}

	got, err := Render(runs, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "[two words](https://a.example)"; got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
}

func TestRender_TieBreakKeepsDeclaredOrder(t *testing.T) {
	// Both styles span exactly one run; the first declared annotation must be
	// the outer wrapper.
	registry, err := NewRegistry(map[string]RenderFunc{
		StyleBold:   func(content, _ string) string { return "<b>" + content + "</b>" },
		StyleItalic: func(content, _ string) string { return "<i>" + content + "</i>" },
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	got, err := Render([]Run{Text("x", Italic(), Bold())}, registry)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "<i><b>x</b></i>"; got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}

	got, err = Render([]Run{Text("x", Bold(), Italic())}, registry)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if want := "<b><i>x</i></b>"; got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
}

func TestRender_EmptySequence(t *testing.T) {
	got, err := Render(nil, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if got.Plain != "" || got.Rich != "" {
		t.Fatalf("Render() = %+v, want empty projections", got)
	}
}

func TestRender_UnsupportedRunType(t *testing.T) {
	runs := []Run{{Type: "equation", Text: "E=mc^2"}}

	_, err := Render(runs, markdownRegistry(t))
	if !errors.Is(err, ErrUnsupportedRunType) {
		t.Fatalf("Render() error = %v, want ErrUnsupportedRunType", err)
	}

	var typed *UnsupportedRunTypeError
	if !errors.As(err, &typed) || typed.RunType != "equation" {
		t.Fatalf("Render() error %v does not name the run type", err)
	}
}

func TestRender_UnsupportedStyleKind(t *testing.T) {
	registry, err := NewRegistry(map[string]RenderFunc{
		StyleBold: func(content, _ string) string { return content },
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	_, err = Render([]Run{Text("x", Italic())}, registry)
	if !errors.Is(err, ErrUnsupportedStyleKind) {
		t.Fatalf("Render() error = %v, want ErrUnsupportedStyleKind", err)
	}

	var typed *UnsupportedStyleKindError
	if !errors.As(err, &typed) || typed.Kind != StyleItalic {
		t.Fatalf("Render() error %v does not name the style kind", err)
	}
}

func TestRender_MissingStyleValue(t *testing.T) {
	cases := []struct {
		name  string
		style Style
	}{
		{"valueless link", Style{Kind: StyleLink}},
		{"valueless color", Style{Kind: StyleColor}},
	}

	registry, err := NewRegistry(map[string]RenderFunc{
		StyleLink:  func(content, value string) string { return "[" + content + "](" + value + ")" },
		StyleColor: func(content, value string) string { return `<span style="color:` + value + `">` + content + "</span>" },
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Render([]Run{Text("x", tc.style)}, registry)
			if !errors.Is(err, ErrMissingStyleValue) {
				t.Fatalf("Render() error = %v, want ErrMissingStyleValue", err)
			}

			var typed *MissingStyleValueError
			if !errors.As(err, &typed) || typed.Kind != tc.style.Kind {
				t.Fatalf("Render() error %v does not name the style kind", err)
			}
		})
	}
}

func TestRender_CustomKindRequiresValue(t *testing.T) {
	registry, err := NewRegistry(map[string]RenderFunc{
		"highlight": func(content, value string) string { return "<mark data-tone=" + value + ">" + content + "</mark>" },
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	runs := []Run{Text("x", Style{Kind: "highlight"})}
	if _, err := Render(runs, registry); err != nil {
		t.Fatalf("Render() unexpected error before opt-in: %v", err)
	}

	registry.RequireValue("highlight")
	if _, err := Render(runs, registry); !errors.Is(err, ErrMissingStyleValue) {
		t.Fatalf("Render() error = %v, want ErrMissingStyleValue after opt-in", err)
	}
}

func TestRender_InputRunsUntouched(t *testing.T) {
	runs := []Run{
		Text("A", Bold(), Italic()),
		Text("B", Bold()),
	}

	first, err := Render(runs, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	second, err := Render(runs, markdownRegistry(t))
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if first.Rich != second.Rich || first.Plain != second.Plain {
		t.Fatalf("Render() not idempotent: %+v vs %+v", first, second)
	}
	if len(runs[0].Styles) != 2 || len(runs[1].Styles) != 1 {
		t.Fatalf("Render() mutated input runs: %+v", runs)
	}
}

func TestRender_OverlappingSpansAcrossLongSequences(t *testing.T) {
	// Ten runs alternating extra styles on top of a single shared color; the
	// shared value must become one outer wrapper around everything.
	runs := make([]Run, 0, 10)
	for i := 0; i < 10; i++ {
		styles := []Style{Color("red")}
		if i%2 == 0 {
			styles = append(styles, Bold())
		}
		runs = append(runs, Text(fmt.Sprintf("r%d", i), styles...))
	}

	registry, err := NewRegistry(map[string]RenderFunc{
		StyleBold:  func(content, _ string) string { return "<b>" + content + "</b>" },
		StyleColor: func(content, value string) string { return "<" + value + ">" + content + "</" + value + ">" },
	})
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	got, err := Render(runs, registry)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	want := "<red><b>r0</b>r1<b>r2</b>r3<b>r4</b>r5<b>r6</b>r7<b>r8</b>r9</red>"
	if got.Rich != want {
		t.Fatalf("Render() rich = %q, want %q", got.Rich, want)
	}
}
