package middleware

import (
	"net/http"
	"path"
	"strings"
)

const (
	htmlCacheControl  = "no-cache"
	assetCacheControl = "public, max-age=604800" // 7 days
	indexFile         = "index.html"
)

// Static serves files below dir. HTML pages are revalidated on every request,
// other assets are cached for a week. Missing files are passed to notFound.
func Static(dir string, notFound http.Handler) http.Handler {
	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := path.Clean("/" + req.URL.Path)

		f, err := root.Open(name)
		if err != nil {
			notFound.ServeHTTP(w, req)
			return
		}
		stat, err := f.Stat()
		_ = f.Close()
		if err != nil {
			notFound.ServeHTTP(w, req)
			return
		}

		if stat.IsDir() {
			index, err := root.Open(path.Join(name, indexFile))
			if err != nil {
				notFound.ServeHTTP(w, req)
				return
			}
			_ = index.Close()
			name = path.Join(name, indexFile)
		}

		if strings.HasSuffix(name, ".html") {
			w.Header().Set("Cache-Control", htmlCacheControl)
		} else {
			w.Header().Set("Cache-Control", assetCacheControl)
		}

		files.ServeHTTP(w, req)
	})
}
