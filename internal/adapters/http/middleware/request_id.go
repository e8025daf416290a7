package middleware

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
)

const (
	headerRequestID = "X-Request-ID"

	// maxRequestIDLen bounds client-supplied IDs echoed into logs and headers.
	maxRequestIDLen = 128
)

// requestIDKey is the context key for storing request IDs.
type requestIDKey struct{}

// WithRequestID returns a new context with the given request ID stored in it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestID returns middleware that generates or extracts an X-Request-ID for
// each request. A well-formed incoming X-Request-ID is reused; a missing or
// malformed one is replaced with a new UUID v4. The ID is stored in the
// request context and set as a response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !validRequestID(id) {
				id = generateID()
			}
			ctx := WithRequestID(r.Context(), id)
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validRequestID accepts non-empty, bounded IDs of printable ASCII without
// spaces.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}

// UUID v4 bit manipulation constants.
const (
	uuidVersion4    = 0x40 // Version 4 (random) in bits 4-7 of byte 6.
	uuidVersionMask = 0x0f
	uuidVariant10   = 0x80 // RFC 4122 variant (10xx) in bits 6-7 of byte 8.
	uuidVariantMask = 0x3f
)

// generateID produces a UUID v4 string using crypto/rand.
func generateID() string {
	var uuid [16]byte
	_, _ = rand.Read(uuid[:])

	uuid[6] = (uuid[6] & uuidVersionMask) | uuidVersion4
	uuid[8] = (uuid[8] & uuidVariantMask) | uuidVariant10

	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		uuid[0:4], uuid[4:6], uuid[6:8], uuid[8:10], uuid[10:16])
}
