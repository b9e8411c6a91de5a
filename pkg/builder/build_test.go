package builder

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vango-dev/dashml/pkg/clean"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func childNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

func TestBuildElement(t *testing.T) {
	node := Build("p", "Hello world!")

	if node.Type != html.ElementNode {
		t.Fatalf("Type = %v, want ElementNode", node.Type)
	}
	if node.Data != "p" || node.DataAtom != atom.P {
		t.Errorf("tag = %q/%v, want p", node.Data, node.DataAtom)
	}
	kids := childNodes(node)
	if len(kids) != 1 || kids[0].Type != html.TextNode || kids[0].Data != "Hello world!" {
		t.Fatalf("children = %+v, want one text node", kids)
	}
}

func TestBuildUnknownTagHasNoAtom(t *testing.T) {
	node := Build("my-widget")
	if node.DataAtom != 0 {
		t.Errorf("DataAtom = %v, want 0", node.DataAtom)
	}
	if node.Data != "my-widget" {
		t.Errorf("Data = %q", node.Data)
	}
}

func TestBuildTextIsNotEscaped(t *testing.T) {
	node := Build("p", "<b>&</b>")
	if got := node.FirstChild.Data; got != "<b>&</b>" {
		t.Errorf("text = %q, want raw text", got)
	}
}

func TestBuildProps(t *testing.T) {
	node := Build("input",
		Type("checkbox"),
		Checked(true),
		Disabled(false),
		clean.Props{Attr("class_name", "a"), Attr("data_user_id", 7)},
		[]clean.Prop{Aria("label", "Pick")},
		map[string]any{"required": true, "name": "agree", "title": nil},
	)

	want := []html.Attribute{
		{Key: "type", Val: "checkbox"},
		{Key: "checked", Val: ""},
		{Key: "class", Val: "a"},
		{Key: "data-user-id", Val: "7"},
		{Key: "aria-label", Val: "Pick"},
		{Key: "name", Val: "agree"},
		{Key: "required", Val: ""},
	}
	if diff := cmp.Diff(want, node.Attr); diff != "" {
		t.Errorf("Attr mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMixedArguments(t *testing.T) {
	li := Build("li", "x")
	node := Build("ul",
		nil,
		"a",
		ID("list"),
		[]any{1, HTMLFor("ignored-on-ul"), nil},
		[]*html.Node{li, nil},
		2.5,
	)

	var got []string
	for _, c := range childNodes(node) {
		got = append(got, c.Data)
	}
	want := []string{"a", "1", "li", "2.5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}

	wantAttr := []html.Attribute{{Key: "id", Val: "list"}, {Key: "for", Val: "ignored-on-ul"}}
	if diff := cmp.Diff(wantAttr, node.Attr); diff != "" {
		t.Errorf("Attr mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMovesAttachedChild(t *testing.T) {
	span := Build("span", "x")
	first := Build("div", span)
	second := Build("div", span)

	if first.FirstChild != nil {
		t.Error("span should have been moved out of the first div")
	}
	if second.FirstChild != span || span.Parent != second {
		t.Error("span should now belong to the second div")
	}
}

func TestBuildSameChildTwice(t *testing.T) {
	a := Build("a")
	b := Build("b")
	node := Build("p", a, b, a)

	kids := childNodes(node)
	if len(kids) != 2 || kids[0] != b || kids[1] != a {
		t.Errorf("children = %v, want [b a]", kids)
	}
}

func TestBuilderTag(t *testing.T) {
	var b Builder
	p := b.Tag("p")

	node := p("x", ClassName("lead"))
	if node.Data != "p" || node.FirstChild.Data != "x" {
		t.Errorf("Tag(p)() = %q with %q", node.Data, node.FirstChild.Data)
	}
	if diff := cmp.Diff([]html.Attribute{{Key: "class", Val: "lead"}}, node.Attr); diff != "" {
		t.Errorf("Attr mismatch (-want +got):\n%s", diff)
	}

	direct := b.Build("p", "x", ClassName("lead"))
	if direct.Data != node.Data || cmp.Diff(direct.Attr, node.Attr) != "" {
		t.Error("Builder.Build and Builder.Tag should build the same element")
	}
}

func TestBuildIndependentTrees(t *testing.T) {
	var wg sync.WaitGroup
	nodes := make([]*html.Node, 16)
	for i := range nodes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			nodes[i] = Build("div", Build("p", i), Data("i", i))
		}(i)
	}
	wg.Wait()

	for i, n := range nodes {
		if n.FirstChild.FirstChild.Data != clean.Stringify(i) {
			t.Errorf("node %d has child text %q", i, n.FirstChild.FirstChild.Data)
		}
	}
}

func TestHelpers(t *testing.T) {
	if n := Textf("%d items", 3); n.Type != html.TextNode || n.Data != "3 items" {
		t.Errorf("Textf() = %+v", n)
	}

	yes, no := Build("b"), Build("i")
	if If(true, yes) != yes || If(false, yes) != nil {
		t.Error("If returned the wrong node")
	}
	if IfElse(false, yes, no) != no {
		t.Error("IfElse returned the wrong node")
	}

	items := Range([]string{"a", "b"}, func(s string, i int) *html.Node {
		return Build("li", s, Data("index", i))
	})
	list := Build("ul", items)
	if got := len(childNodes(list)); got != 2 {
		t.Errorf("Range produced %d children, want 2", got)
	}
}
