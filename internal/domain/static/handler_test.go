package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(dir string) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, dir)
	return r
}

func get(h http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	return do(h, http.MethodGet, path, headers)
}

func do(h http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIndex_ReturnsExactBytes(t *testing.T) {
	dir := t.TempDir()
	content := []byte("<!doctype html>\n<form action=\"/register\" method=\"post\"></form>\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, indexFile), content, 0o644))

	rec := get(newRouter(dir), "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestIndex_Missing404PlainText(t *testing.T) {
	rec := get(newRouter(t.TempDir()), "/", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Index not found", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestStyle_ServedUnmodifiedWithFileSemantics(t *testing.T) {
	dir := t.TempDir()
	css := []byte("body { font-family: sans-serif; }\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, styleFile), css, 0o644))
	h := newRouter(dir)

	rec := get(h, "/style.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, css, rec.Body.Bytes())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	lastModified := rec.Header().Get("Last-Modified")
	require.NotEmpty(t, lastModified)
	rec = get(h, "/style.css", map[string]string{"If-Modified-Since": lastModified})
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = get(h, "/style.css", map[string]string{"Range": "bytes=0-3"})
	assert.Equal(t, http.StatusPartialContent, rec.Code)
	assert.Equal(t, "body", rec.Body.String())
}

func TestStyle_Missing404(t *testing.T) {
	rec := get(newRouter(t.TempDir()), "/style.css", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHead_IndexAndStyle(t *testing.T) {
	dir := t.TempDir()
	index := []byte("<!doctype html>")
	css := []byte("body{}")
	require.NoError(t, os.WriteFile(filepath.Join(dir, indexFile), index, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, styleFile), css, 0o644))
	h := newRouter(dir)

	rec := do(h, http.MethodHead, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "15", rec.Header().Get("Content-Length"))
	assert.Empty(t, rec.Body.Bytes())

	rec = do(h, http.MethodHead, "/style.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "6", rec.Header().Get("Content-Length"))
	assert.Empty(t, rec.Body.Bytes())

	rec = do(newRouter(t.TempDir()), http.MethodHead, "/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
