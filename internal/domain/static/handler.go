package static

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const (
	indexFile = "index.html"
	styleFile = "style.css"
)

// RegisterRoutes sirve la landing y la hoja de estilos desde dir, por GET y HEAD.
// Los archivos se leen en cada request; cambios en disco se ven sin reiniciar.
func RegisterRoutes(r chi.Router, dir string) {
	index := indexHandler(filepath.Join(dir, indexFile))
	style := styleHandler(filepath.Join(dir, styleFile))

	r.Get("/", index)
	r.Head("/", index)
	r.Get("/style.css", style)
	r.Head("/style.css", style)
}

func indexHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := os.ReadFile(path)
		if err != nil {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("Index not found"))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(b)))
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}
		_, _ = w.Write(b)
	}
}

// styleHandler delega en http.ServeFile: If-Modified-Since, Range y 404 vienen de ahí.
func styleHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
