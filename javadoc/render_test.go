package javadoc

import (
	"testing"
)

func TestRenderHTMLCodeTag(t *testing.T) {
	doc := Parse("/** the {@code g} argument */")
	got := RenderHTML(doc.Body)
	want := "the <code>g</code> argument "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderHTMLEscapesCodeContent(t *testing.T) {
	doc := Parse("/** {@code a < b} */")
	got := RenderHTML(doc.Body)
	want := "<code>a &lt; b</code> "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderHTMLLink(t *testing.T) {
	doc := Parse("/** see {@link java.util.List#add(E)} */")
	got := RenderHTML(doc.Body)
	want := "see <code>add</code> "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderHTMLKeepsElements(t *testing.T) {
	doc := Parse("/** <b>bold</b> and <br/> done */")
	got := RenderHTML(doc.Body)
	want := "<b>bold</b> and <br/> done "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderHTMLEntity(t *testing.T) {
	doc := Parse("/** a&lt;b */")
	got := RenderHTML(doc.Body)
	want := "a&lt;b "
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExpandInherit(t *testing.T) {
	nodes := []Node{Text{Content: "before "}, InheritDoc{}, Text{Content: " after"}}
	inherited := []Node{Text{Content: "inherited text"}}

	expanded := ExpandInherit(nodes, inherited)
	got := RenderHTML(expanded)
	want := "before inherited text after"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if !ContainsInherit(nodes) {
		t.Error("original nodes should contain InheritDoc")
	}
	if ContainsInherit(expanded) {
		t.Error("expanded nodes should not contain InheritDoc")
	}
}

func TestSimpleReference(t *testing.T) {
	cases := map[string]string{
		"java.util.List#add(E)":         "add",
		"java.util.List":                "List",
		"List":                          "List",
		"IllegalArgumentException":      "IllegalArgumentException",
		"java.lang.IllegalStateException": "IllegalStateException",
	}
	for in, want := range cases {
		if got := SimpleReference(in); got != want {
			t.Errorf("SimpleReference(%q) = %q, want %q", in, got, want)
		}
	}
}
