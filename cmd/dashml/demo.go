package main

import (
	"github.com/vango-dev/dashml/el"
	"golang.org/x/net/html"
)

// helloWorld is the smallest benchmark case.
func helloWorld() *html.Node {
	return el.P("Hello world!")
}

// simpleDocument is a small but complete page, used by bench and serve.
func simpleDocument() *html.Node {
	return el.Html(
		el.Head(
			el.LinkEl(el.Rel("stylesheet"), el.Type("text/css"), el.Href("/index.css")),
			el.Title("JSX In Go... Kinda."),
		),
		el.Body(
			el.Main(
				el.Article(
					el.Header(
						el.H1("Wow, it's like JSX in Go!!"),
						el.H3("That's really cool."),
					),
					el.P(
						"It's like a mini-React kinda. What's really cool is that it ",
						"allows the usual Go tricks for functions. You can ",
						"compose HTML fragments as functions. Really cool.",
					),
				),
			),
		),
	)
}
