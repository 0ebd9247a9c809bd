// Package middleware ...
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/hearthy-foundation/hearth/internal/middleware/memory"
)

// Storage ...
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, duration time.Duration)
}

// Cached wraps handler with an in-memory response cache keyed by request URI.
// Public read-only endpoints only, it ignores request headers.
func Cached(ttl time.Duration, handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
	storage := memory.NewStorage()

	return func(w http.ResponseWriter, r *http.Request) {
		// r.RequestURI is empty on client-constructed requests
		key := r.URL.RequestURI()

		content := storage.Get(key)
		if content != nil {
			_, _ = w.Write(content)
		} else {
			c := httptest.NewRecorder()
			handler(c, r)

			for k, v := range c.Header() {
				w.Header()[k] = v
			}

			w.WriteHeader(c.Code)
			content := c.Body.Bytes()

			if c.Code == http.StatusOK {
				storage.Set(key, content, ttl)
			}

			_, _ = w.Write(content)
		}
	}
}
