package dashml

import (
	"errors"
	"html"
	"strings"
	"sync"
	"testing"

	"github.com/vango-dev/dashml/pkg/builder"
	"github.com/vango-dev/dashml/pkg/render"
)

// =============================================================================
// Scenario Tests
// =============================================================================

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "paragraph",
			node: Build("p", "Hello world!"),
			want: `<p>Hello world!</p>`,
		},
		{
			name: "checkbox",
			node: Build("input", Attr("type", "checkbox"), Attr("checked", true)),
			want: `<input type="checkbox" checked>`,
		},
		{
			name: "class_name alias",
			node: Build("div", Attr("class_name", "myclass")),
			want: `<div class="myclass"></div>`,
		},
		{
			name: "aria prefix",
			node: Build("button", "Close", Attr("aria_label", "Close")),
			want: `<button aria-label="Close">Close</button>`,
		},
		{
			name: "html_for alias",
			node: Build("label", Attr("html_for", "email"), "Email"),
			want: `<label for="email">Email</label>`,
		},
		{
			name: "data dashes",
			node: Build("div", Attr("data_lots_of_dashes", 1)),
			want: `<div data-lots-of-dashes="1"></div>`,
		},
		{
			name: "false removes",
			node: Build("option", Attr("selected", false), "x"),
			want: `<option>x</option>`,
		},
		{
			name: "numeric children",
			node: Build("p", 8, " ", 8.8),
			want: `<p>8 8.8</p>`,
		},
		{
			name: "tag constructor",
			node: Tag("ul")(Tag("li")("a"), Tag("li")("b")),
			want: `<ul><li>a</li><li>b</li></ul>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.node)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnsafeFromStringScript(t *testing.T) {
	n, err := UnsafeFromString("<script>alert()</script>")
	if err != nil {
		t.Fatalf("UnsafeFromString() error = %v", err)
	}
	if n.Data != "script" {
		t.Errorf("tag = %q, want script", n.Data)
	}
	if got := TextContent(n); got != "alert()" {
		t.Errorf("TextContent() = %q, want %q", got, "alert()")
	}
	out, err := Render(n)
	if err != nil {
		t.Fatal(err)
	}
	if out != "<script>alert()</script>" {
		t.Errorf("Render() = %q", out)
	}
}

func TestEscapeRoundTrip(t *testing.T) {
	inputs := []string{
		"a < b",
		"<script>alert('x')</script>",
		"Tom & Jerry",
		"1 > 0 && 2 > 1",
		"&amp; already",
	}

	for _, s := range inputs {
		out, err := Render(Build("p", s))
		if err != nil {
			t.Fatalf("Render(%q) error = %v", s, err)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
		if strings.ContainsAny(inner, "<>") {
			t.Errorf("Render(%q) = %q, metacharacters left unescaped", s, out)
		}
		if got := html.UnescapeString(inner); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}

		parsed, err := UnsafeFromString(out)
		if err != nil {
			t.Fatalf("UnsafeFromString(%q) error = %v", out, err)
		}
		if got := TextContent(parsed); got != s {
			t.Errorf("parsed text of %q = %q", s, got)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(Build("bad tag"))
	if !errors.Is(err, render.ErrInvalidTagName) {
		t.Errorf("Render() error = %v, want ErrInvalidTagName", err)
	}

	_, err = UnsafeFromString("   ")
	if !errors.Is(err, render.ErrEmptyDocument) {
		t.Errorf("UnsafeFromString() error = %v, want ErrEmptyDocument", err)
	}
}

func TestRenderToWriter(t *testing.T) {
	var sb strings.Builder
	if err := RenderToWriter(&sb, Build("br")); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "<br>" {
		t.Errorf("got %q", sb.String())
	}

	r := NewRenderer(RendererConfig{Pretty: true})
	got, err := r.RenderToString(Build("ul", Build("li", "a")))
	if err != nil {
		t.Fatal(err)
	}
	if want := "<ul>\n  <li>a</li>\n</ul>"; got != want {
		t.Errorf("pretty = %q, want %q", got, want)
	}
}

// =============================================================================
// Builder Sharing Tests
// =============================================================================

func TestSharedBuilderIsStateless(t *testing.T) {
	a, _ := Render(B.Build("p", "x"))
	b, _ := Render(builder.Builder{}.Build("p", "x"))
	if a != b {
		t.Errorf("shared builder = %q, fresh builder = %q", a, b)
	}
}

func TestConcurrentBuilds(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := Render(Build("div", Attr("data_i", i), i))
			if err != nil {
				errs <- err
				return
			}
			if !strings.Contains(out, `data-i="`) {
				errs <- errors.New("missing attribute in " + out)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
