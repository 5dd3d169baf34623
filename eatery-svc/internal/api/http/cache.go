package httpapi

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

type PageStore interface {
	Key(method, path, rawQuery string) string
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// CacheMiddleware serves GET JSON responses from the page store. Only 200
// responses are stored. Store failures fall through to the handler.
func CacheMiddleware(store PageStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			key := store.Key(r.Method, r.URL.Path, r.URL.RawQuery)
			page, ok, err := store.Get(r.Context(), key)
			if err != nil {
				logger.Warn("page cache read failed", zap.String("key", key), zap.Error(err))
			}
			if ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.Write(page)
				return
			}

			w.Header().Set("X-Cache", "MISS")
			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			if rec.status != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
				return
			}
			if err := store.Set(r.Context(), key, rec.body.Bytes()); err != nil {
				logger.Warn("page cache write failed", zap.String("key", key), zap.Error(err))
			}
		})
	}
}
