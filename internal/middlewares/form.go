package middlewares

import (
	"fmt"
	"net/http"
	"strings"
)

const formContentType = "application/x-www-form-urlencoded"

// FormMiddleware checks the content type of a form submission and parses
// the body, so handlers can read r.PostForm directly.
func FormMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), formContentType) {
			http.Error(w, fmt.Sprintf("Content type isn't %s", formContentType), http.StatusUnsupportedMediaType)
			return
		}

		if err := r.ParseForm(); err != nil {
			http.Error(w, fmt.Sprintf("Error occurred during parsing form: %s", err.Error()), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
