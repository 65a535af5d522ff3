package cookie

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiesignature/pkg/logger"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	logger   *slog.Logger
	required bool
	onReject http.Handler
}

// WithLogger logs rejected cookies at debug level.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Required makes Middleware stop requests whose cookie is missing or does
// not verify. They are answered by h, or with 401 Unauthorized when h is nil.
func Required(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.required = true
		if h != nil {
			c.onReject = h
		}
	}
}

// Middleware verifies the signed cookie name on every request and, when it
// verifies, stores the payload in the request context (see FromContext).
// It has the func(http.Handler) http.Handler shape used by chi's Router.Use.
func Middleware(m *Manager, name string, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		logger: slog.New(slog.DiscardHandler),
		onReject: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, err := m.GetSigned(r, name)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), name, payload)))
				return
			}

			if !errors.Is(err, ErrCookieNotFound) {
				cfg.logger.DebugContext(r.Context(), "signed cookie rejected",
					logger.CookieName(name),
					logger.Error(err),
				)
			}

			if cfg.required {
				cfg.onReject.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
