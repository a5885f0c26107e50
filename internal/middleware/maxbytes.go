package middleware

import (
	"errors"
	"net/http"
)

// DefaultMaxBodyBytes is the default maximum request body size (64 KiB).
// Cron requests are a handful of short strings.
const DefaultMaxBodyBytes = 64 << 10

// MaxBytes limits the request body size. Reads past maxBytes fail; handlers
// report that with IsBodyTooLarge and answer 413. Apply to routes that accept a body.
func MaxBytes(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsBodyTooLarge reports whether err came from reading past a MaxBytes limit.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
