// This file holds one constructor per known HTML5 element.
package el

import (
	"github.com/vango-dev/dashml/pkg/builder"
	"golang.org/x/net/html"
)

// CustomElement builds an element with any tag name, such as a custom element.
func CustomElement(tag string, args ...any) *html.Node {
	return builder.Build(tag, args...)
}

func Html(args ...any) *html.Node {
	return builder.Build("html", args...)
}
func Head(args ...any) *html.Node {
	return builder.Build("head", args...)
}
func Body(args ...any) *html.Node {
	return builder.Build("body", args...)
}
func Title(args ...any) *html.Node {
	return builder.Build("title", args...)
}
func Meta(args ...any) *html.Node {
	return builder.Build("meta", args...)
}
func LinkEl(args ...any) *html.Node {
	return builder.Build("link", args...)
}
func Base(args ...any) *html.Node {
	return builder.Build("base", args...)
}
func Header(args ...any) *html.Node {
	return builder.Build("header", args...)
}
func Footer(args ...any) *html.Node {
	return builder.Build("footer", args...)
}
func Main(args ...any) *html.Node {
	return builder.Build("main", args...)
}
func Nav(args ...any) *html.Node {
	return builder.Build("nav", args...)
}
func Section(args ...any) *html.Node {
	return builder.Build("section", args...)
}
func Article(args ...any) *html.Node {
	return builder.Build("article", args...)
}
func Aside(args ...any) *html.Node {
	return builder.Build("aside", args...)
}
func Address(args ...any) *html.Node {
	return builder.Build("address", args...)
}
func H1(args ...any) *html.Node {
	return builder.Build("h1", args...)
}
func H2(args ...any) *html.Node {
	return builder.Build("h2", args...)
}
func H3(args ...any) *html.Node {
	return builder.Build("h3", args...)
}
func H4(args ...any) *html.Node {
	return builder.Build("h4", args...)
}
func H5(args ...any) *html.Node {
	return builder.Build("h5", args...)
}
func H6(args ...any) *html.Node {
	return builder.Build("h6", args...)
}
func Hgroup(args ...any) *html.Node {
	return builder.Build("hgroup", args...)
}
func Div(args ...any) *html.Node {
	return builder.Build("div", args...)
}
func P(args ...any) *html.Node {
	return builder.Build("p", args...)
}
func Span(args ...any) *html.Node {
	return builder.Build("span", args...)
}
func Pre(args ...any) *html.Node {
	return builder.Build("pre", args...)
}
func Blockquote(args ...any) *html.Node {
	return builder.Build("blockquote", args...)
}
func Ul(args ...any) *html.Node {
	return builder.Build("ul", args...)
}
func Ol(args ...any) *html.Node {
	return builder.Build("ol", args...)
}
func Li(args ...any) *html.Node {
	return builder.Build("li", args...)
}
func Dl(args ...any) *html.Node {
	return builder.Build("dl", args...)
}
func Dt(args ...any) *html.Node {
	return builder.Build("dt", args...)
}
func Dd(args ...any) *html.Node {
	return builder.Build("dd", args...)
}
func Hr(args ...any) *html.Node {
	return builder.Build("hr", args...)
}
func Figure(args ...any) *html.Node {
	return builder.Build("figure", args...)
}
func Figcaption(args ...any) *html.Node {
	return builder.Build("figcaption", args...)
}
func A(args ...any) *html.Node {
	return builder.Build("a", args...)
}
func Strong(args ...any) *html.Node {
	return builder.Build("strong", args...)
}
func Em(args ...any) *html.Node {
	return builder.Build("em", args...)
}
func B(args ...any) *html.Node {
	return builder.Build("b", args...)
}
func I(args ...any) *html.Node {
	return builder.Build("i", args...)
}
func U(args ...any) *html.Node {
	return builder.Build("u", args...)
}
func S(args ...any) *html.Node {
	return builder.Build("s", args...)
}
func Small(args ...any) *html.Node {
	return builder.Build("small", args...)
}
func Mark(args ...any) *html.Node {
	return builder.Build("mark", args...)
}
func Sub(args ...any) *html.Node {
	return builder.Build("sub", args...)
}
func Sup(args ...any) *html.Node {
	return builder.Build("sup", args...)
}
func Code(args ...any) *html.Node {
	return builder.Build("code", args...)
}
func Kbd(args ...any) *html.Node {
	return builder.Build("kbd", args...)
}
func Samp(args ...any) *html.Node {
	return builder.Build("samp", args...)
}
func Var(args ...any) *html.Node {
	return builder.Build("var", args...)
}
func Abbr(args ...any) *html.Node {
	return builder.Build("abbr", args...)
}
func Time(args ...any) *html.Node {
	return builder.Build("time", args...)
}
func Cite(args ...any) *html.Node {
	return builder.Build("cite", args...)
}
func Q(args ...any) *html.Node {
	return builder.Build("q", args...)
}
func Dfn(args ...any) *html.Node {
	return builder.Build("dfn", args...)
}
func Ruby(args ...any) *html.Node {
	return builder.Build("ruby", args...)
}
func Rt(args ...any) *html.Node {
	return builder.Build("rt", args...)
}
func Rp(args ...any) *html.Node {
	return builder.Build("rp", args...)
}
func Bdi(args ...any) *html.Node {
	return builder.Build("bdi", args...)
}
func Bdo(args ...any) *html.Node {
	return builder.Build("bdo", args...)
}
func DataElement(args ...any) *html.Node {
	return builder.Build("data", args...)
}
func Br(args ...any) *html.Node {
	return builder.Build("br", args...)
}
func Wbr(args ...any) *html.Node {
	return builder.Build("wbr", args...)
}
func Form(args ...any) *html.Node {
	return builder.Build("form", args...)
}
func Input(args ...any) *html.Node {
	return builder.Build("input", args...)
}
func Textarea(args ...any) *html.Node {
	return builder.Build("textarea", args...)
}
func Select(args ...any) *html.Node {
	return builder.Build("select", args...)
}
func Option(args ...any) *html.Node {
	return builder.Build("option", args...)
}
func Optgroup(args ...any) *html.Node {
	return builder.Build("optgroup", args...)
}
func Button(args ...any) *html.Node {
	return builder.Build("button", args...)
}
func Label(args ...any) *html.Node {
	return builder.Build("label", args...)
}
func Fieldset(args ...any) *html.Node {
	return builder.Build("fieldset", args...)
}
func Legend(args ...any) *html.Node {
	return builder.Build("legend", args...)
}
func Datalist(args ...any) *html.Node {
	return builder.Build("datalist", args...)
}
func Output(args ...any) *html.Node {
	return builder.Build("output", args...)
}
func Progress(args ...any) *html.Node {
	return builder.Build("progress", args...)
}
func Meter(args ...any) *html.Node {
	return builder.Build("meter", args...)
}
func Table(args ...any) *html.Node {
	return builder.Build("table", args...)
}
func Thead(args ...any) *html.Node {
	return builder.Build("thead", args...)
}
func Tbody(args ...any) *html.Node {
	return builder.Build("tbody", args...)
}
func Tfoot(args ...any) *html.Node {
	return builder.Build("tfoot", args...)
}
func Tr(args ...any) *html.Node {
	return builder.Build("tr", args...)
}
func Th(args ...any) *html.Node {
	return builder.Build("th", args...)
}
func Td(args ...any) *html.Node {
	return builder.Build("td", args...)
}
func Caption(args ...any) *html.Node {
	return builder.Build("caption", args...)
}
func Colgroup(args ...any) *html.Node {
	return builder.Build("colgroup", args...)
}
func Col(args ...any) *html.Node {
	return builder.Build("col", args...)
}
func Img(args ...any) *html.Node {
	return builder.Build("img", args...)
}
func Picture(args ...any) *html.Node {
	return builder.Build("picture", args...)
}
func Source(args ...any) *html.Node {
	return builder.Build("source", args...)
}
func Video(args ...any) *html.Node {
	return builder.Build("video", args...)
}
func Audio(args ...any) *html.Node {
	return builder.Build("audio", args...)
}
func Track(args ...any) *html.Node {
	return builder.Build("track", args...)
}
func Iframe(args ...any) *html.Node {
	return builder.Build("iframe", args...)
}
func Embed(args ...any) *html.Node {
	return builder.Build("embed", args...)
}
func Object(args ...any) *html.Node {
	return builder.Build("object", args...)
}
func Param(args ...any) *html.Node {
	return builder.Build("param", args...)
}
func Canvas(args ...any) *html.Node {
	return builder.Build("canvas", args...)
}
func Svg(args ...any) *html.Node {
	return builder.Build("svg", args...)
}
func Circle(args ...any) *html.Node {
	return builder.Build("circle", args...)
}
func Ellipse(args ...any) *html.Node {
	return builder.Build("ellipse", args...)
}
func Line(args ...any) *html.Node {
	return builder.Build("line", args...)
}
func Path(args ...any) *html.Node {
	return builder.Build("path", args...)
}
func Polygon(args ...any) *html.Node {
	return builder.Build("polygon", args...)
}
func Polyline(args ...any) *html.Node {
	return builder.Build("polyline", args...)
}
func Rect(args ...any) *html.Node {
	return builder.Build("rect", args...)
}
func G(args ...any) *html.Node {
	return builder.Build("g", args...)
}
func Defs(args ...any) *html.Node {
	return builder.Build("defs", args...)
}
func Use(args ...any) *html.Node {
	return builder.Build("use", args...)
}
func Math(args ...any) *html.Node {
	return builder.Build("math", args...)
}
func Map(args ...any) *html.Node {
	return builder.Build("map", args...)
}
func Area(args ...any) *html.Node {
	return builder.Build("area", args...)
}
func Details(args ...any) *html.Node {
	return builder.Build("details", args...)
}
func Summary(args ...any) *html.Node {
	return builder.Build("summary", args...)
}
func Dialog(args ...any) *html.Node {
	return builder.Build("dialog", args...)
}
func Menu(args ...any) *html.Node {
	return builder.Build("menu", args...)
}
func Script(args ...any) *html.Node {
	return builder.Build("script", args...)
}
func Noscript(args ...any) *html.Node {
	return builder.Build("noscript", args...)
}
func Template(args ...any) *html.Node {
	return builder.Build("template", args...)
}
func Slot(args ...any) *html.Node {
	return builder.Build("slot", args...)
}
func Style(args ...any) *html.Node {
	return builder.Build("style", args...)
}
