// Package server serves element trees over HTTP.
//
// A PageFunc builds the element tree for one request. Handler renders it,
// and NewRouter mounts handlers on a chi router with request IDs, panic
// recovery, and optional metrics and tracing.
//
// # Example Usage
//
//	r := server.NewRouter(server.RouterConfig{Metrics: true})
//	r.Method(http.MethodGet, "/", server.Handler(func(r *http.Request) (*html.Node, error) {
//	    return el.Html(el.Body(el.H1("Hello"))), nil
//	}))
//
//	srv := server.New(&server.ServerConfig{Address: ":8080"}, r)
//	err := srv.Run(ctx)
//
// # Errors
//
// When the PageFunc fails, or its tree cannot be rendered, the handler logs
// the failure and answers 500 without writing any part of the page.
package server
