package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"
)

// MaxBodyMiddleware caps request body size via MAX_BODY_BYTES (default 1 MiB).
// Multipart requests get MAX_MULTIPART_BYTES (default 8 MiB) so image uploads
// fit; the upload handler applies its own tighter per-file limit.
func MaxBodyMiddleware(next http.Handler) http.Handler {
	max := envBytes("MAX_BODY_BYTES", 1<<20)
	maxMultipart := envBytes("MAX_MULTIPART_BYTES", 8<<20)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := max
		if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			limit = maxMultipart
		}
		r.Body = http.MaxBytesReader(w, r.Body, limit)
		next.ServeHTTP(w, r)
	})
}

func envBytes(key string, def int64) int64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseInt(s, 10, 64); err == nil && v > 0 {
			return v
		}
	}
	return def
}
