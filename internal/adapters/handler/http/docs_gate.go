package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

const docsRealm = "docs"

// isDocsPath covers the whole Swagger UI subtree; http-swagger picks the file
// by suffix, so /docs/x/doc.json serves the same document as /docs/doc.json.
func isDocsPath(p string) bool {
	return p == "/docs" || strings.HasPrefix(p, "/docs/") || p == "/openapi.json"
}

// DocsBasicAuth asks for HTTP Basic credentials on the documentation paths
// and lets every other request through untouched. Malformed headers get the
// same empty 401 as wrong credentials.
func DocsBasicAuth(username, password string) func(http.Handler) http.Handler {
	basic := middleware.BasicAuth(docsRealm, map[string]string{username: password})

	return func(next http.Handler) http.Handler {
		gated := basic(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isDocsPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			gated.ServeHTTP(w, r)
		})
	}
}
