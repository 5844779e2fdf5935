// Package serve turns an asset.Source into an http.Handler implementing
// standard conditional-request semantics.
//
// The handler accepts GET and HEAD, normalizes the request path (leading
// slash stripped, directory-style paths mapped to the index file), resolves
// it through the source, evaluates If-None-Match / If-Modified-Since against
// the resolved validators, and streams the content or answers 304. Unresolved
// paths yield 404 or, when configured, are delegated to a fallback handler
// whose response is passed through with Cache-Control: no-store added.
//
// Basic usage:
//
//	table, err := asset.NewTable(assetsFS)
//	if err != nil {
//		log.Fatal(err)
//	}
//	http.Handle("/", serve.New(table))
//
// With a custom 404 page served from the same table:
//
//	h := serve.New(table,
//		serve.WithFallback(serve.NotFoundAsset(table, "404.html")),
//	)
package serve
