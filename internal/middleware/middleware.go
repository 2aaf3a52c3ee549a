package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/MohitMaulekhi/wkc/internal/model"

	"github.com/rs/zerolog"
)

// contextKey is unexported to avoid collisions with other packages' keys.
type contextKey string

const identityKey contextKey = "identity"

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-Id, X-User-Role, X-User-Email, X-User-First-Name, X-User-Last-Name, X-User-Company")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Identity builds the acting user from the headers set by the upstream
// authentication gateway and stores it on the request context. The order
// core never keeps ambient session state; this boundary is the only place
// identity enters the process.
func Identity(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip authentication for health check endpoint
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			userID := r.Header.Get("X-User-Id")
			if userID == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing user identity")
				http.Error(w, "unauthorised: missing user identity", http.StatusUnauthorized)
				return
			}

			role := model.UserType(r.Header.Get("X-User-Role"))
			if !role.Valid() {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("role", string(role)).
					Msg("invalid user role")
				http.Error(w, "unauthorised: invalid user role", http.StatusUnauthorized)
				return
			}

			ident := model.Identity{
				ID:          userID,
				FirstName:   r.Header.Get("X-User-First-Name"),
				LastName:    r.Header.Get("X-User-Last-Name"),
				Email:       r.Header.Get("X-User-Email"),
				CompanyName: r.Header.Get("X-User-Company"),
				UserType:    role,
			}

			ctx := context.WithValue(r.Context(), identityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the identity stored by the Identity
// middleware. The second result is false for unauthenticated requests.
func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	ident, ok := ctx.Value(identityKey).(model.Identity)
	return ident, ok
}

// WithIdentity stores an identity on the context. Intended for tests.
func WithIdentity(ctx context.Context, ident model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, ident)
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
