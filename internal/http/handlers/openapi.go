package handlers

import (
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"net/http"
	"strings"
)

// Public documentation routes, mounted by the router outside /api.
const (
	OpenAPIPath = "/v1/openapi.json"
	DocsPath    = "/v1/docs"
)

//go:embed openapi.json
var openAPISpec []byte

// openAPIETag is a strong validator over the embedded document.
var openAPIETag = func() string {
	sum := sha256.Sum256(openAPISpec)
	return `"` + hex.EncodeToString(sum[:8]) + `"`
}()

// docsPage renders the embedded document with Redoc, themed in the
// nutriflow palette.
var docsPage = []byte(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Nutriflow API</title>
  <style>body { margin: 0; } redoc { display: block; min-height: 100vh; }</style>
</head>
<body>
  <redoc spec-url="` + OpenAPIPath + `"
         hide-download-button
         expand-responses="200,201"
         theme='{"colors":{"primary":{"main":"#2f855a"}},"sidebar":{"backgroundColor":"#f0fff4"}}'></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@2.2.0/bundles/redoc.standalone.js"></script>
</body>
</html>`)

// OpenAPIJSON serves the embedded document, answering 304 when the client
// already holds the current revision.
func (a *App) OpenAPIJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", openAPIETag)
	w.Header().Set("Cache-Control", "public, max-age=300")
	if etagMatches(r.Header.Get("If-None-Match"), openAPIETag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPISpec)
}

func (a *App) OpenAPIDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(docsPage)
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		c := strings.TrimSpace(candidate)
		if c == "*" || strings.TrimPrefix(c, "W/") == etag {
			return true
		}
	}
	return false
}
