// Package cookie writes and reads HMAC-signed HTTP cookies on top of
// net/http, using package signature for the signing itself.
//
// # Overview
//
// Manager is the entry point. It holds one or more secrets and the default
// cookie attributes (Path "/", HttpOnly, SameSite=Lax unless overridden).
//
//   - Set, Get, Delete handle plain cookies.
//   - SetSigned, GetSigned handle signed cookies (integrity only, the value
//     is readable by the client).
//   - Middleware verifies a signed cookie on every request and exposes the
//     payload through FromContext.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiesignature/pkg/cookie"
//
//	// secrets must be at least 32 bytes
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil { log.Fatal(err) }
//
//	r := chi.NewRouter()
//	r.Use(cookie.Middleware(man, "session"))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    id, ok := cookie.FromContext(r.Context(), "session")
//	    _, _ = id, ok
//	})
//
// # Verification
//
// The first secret signs new cookies. GetSigned accepts a value verified by any
// configured secret, trying them in order. When to add or drop a secret is up
// to the caller.
//
// Signed values are written unchanged when they already fit the cookie value
// alphabet, which covers any value whose payload is made of URL-safe
// characters. Other payloads are path-escaped. GetSigned checks the raw value
// first, so a value from signature.Sign stored with Set also verifies.
//
// # Configuration
//
// Config is read from COOKIE_* environment variables (see package config) and
// embeds signature.Config for the separator and digest:
//
//	var cfg cookie.Config
//	_ = config.Load(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// ErrCookieNotFound and ErrInvalidSignature are returned for absent and
// unverifiable cookies so callers can use errors.Is.
package cookie
