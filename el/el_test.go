package el

import (
	"strings"
	"testing"

	"github.com/arbor-dev/arbor/pkg/render"
)

func renderToString(t *testing.T, node *Node) string {
	t.Helper()
	html, err := render.NewRenderer(render.Config{}).RenderToString(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

func TestBasicElement(t *testing.T) {
	html := renderToString(t, Div(Class("card"), H1("Title"), P("Content")))

	if !strings.Contains(html, `<div class="card">`) {
		t.Errorf("should contain div with class, got %q", html)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Errorf("should contain h1, got %q", html)
	}
	if !strings.Contains(html, "<p>Content</p>") {
		t.Errorf("should contain p, got %q", html)
	}
}

func TestStringArgsBecomeText(t *testing.T) {
	html := renderToString(t, P("a < b"))
	if html != "<p>a &lt; b</p>" {
		t.Errorf("string args must escape, got %q", html)
	}
}

func TestNilArgsIgnored(t *testing.T) {
	html := renderToString(t, Div(nil, Class("x"), nil))
	if html != `<div class="x"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestAttrSlice(t *testing.T) {
	attrs := []Attr{ID("main"), Class("wide")}
	html := renderToString(t, Div(attrs))
	if html != `<div class="wide" id="main"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestBooleanAttrDefaults(t *testing.T) {
	html := renderToString(t, Input(Type("text"), Disabled()))
	if !strings.Contains(html, " disabled") {
		t.Errorf("Disabled() should default to true, got %q", html)
	}

	html = renderToString(t, Input(Type("text"), Disabled(false)))
	if strings.Contains(html, "disabled") {
		t.Errorf("Disabled(false) should suppress, got %q", html)
	}
}

func TestVoidElementRender(t *testing.T) {
	html := renderToString(t, Img(Src("/x.png"), Alt("pic")))
	if html != `<img alt="pic" src="/x.png" />` {
		t.Errorf("got %q", html)
	}
}

func TestFragment(t *testing.T) {
	html := renderToString(t, Fragment(P("a"), P("b")))
	if html != "<p>a</p><p>b</p>" {
		t.Errorf("fragment must not wrap, got %q", html)
	}
}

func TestIfAndIfElse(t *testing.T) {
	if If(false, P("x")) != nil {
		t.Error("If(false) should be nil")
	}
	if If(true, nil) != nil {
		t.Error("If(true, nil) should be nil")
	}

	html := renderToString(t, Div(
		IfElse(true, P("yes"), P("no")),
		If(false, P("hidden")),
	))
	if html != "<div><p>yes</p></div>" {
		t.Errorf("got %q", html)
	}
}

func TestMap(t *testing.T) {
	items := []string{"one", "two", "three"}
	html := renderToString(t, Ul(Map(items, func(s string) *Node {
		return Li(s)
	})))
	want := "<ul><li>one</li><li>two</li><li>three</li></ul>"
	if html != want {
		t.Errorf("got %q, want %q", html, want)
	}
}

func TestDataAttr(t *testing.T) {
	html := renderToString(t, Div(Data("id", "42")))
	if html != `<div data-id="42"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestComputedAttr(t *testing.T) {
	html := renderToString(t, Div(Computed("data-n", func() any { return 3 })))
	if html != `<div data-n="3"></div>` {
		t.Errorf("got %q", html)
	}
}

func TestStyleElement(t *testing.T) {
	node := Style("h1 { color: red; }")
	if node.Tag != "style" {
		t.Fatalf("got tag %q", node.Tag)
	}
	html := renderToString(t, node)
	if html != "<style>h1 { color: red; }</style>" {
		t.Errorf("got %q", html)
	}
}

func TestRawChild(t *testing.T) {
	html := renderToString(t, Div(Raw(MarkTrusted("<hr>"))))
	if html != "<div><hr></div>" {
		t.Errorf("trusted child must pass verbatim, got %q", html)
	}
}

func TestLazyChild(t *testing.T) {
	html := renderToString(t, Div(func(escape EscapeFunc) any {
		return "deferred"
	}))
	if html != "<div>deferred</div>" {
		t.Errorf("got %q", html)
	}
}

func TestFullDocument(t *testing.T) {
	page := Html(Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Title("Demo"),
		),
		Body(
			Header(Nav(A(Href("/"), "Home"))),
			Main(H1("Welcome")),
		),
	)

	html := renderToString(t, page)
	if !strings.HasPrefix(html, `<html lang="en">`) {
		t.Errorf("got %q", html)
	}
	if !strings.Contains(html, `<meta charset="utf-8" />`) {
		t.Errorf("got %q", html)
	}
	if !strings.Contains(html, `<a href="/">Home</a>`) {
		t.Errorf("got %q", html)
	}
}
