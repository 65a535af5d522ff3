package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesignature/pkg/config"
	"github.com/dmitrymomot/cookiesignature/pkg/cookie"
	"github.com/dmitrymomot/cookiesignature/pkg/signature"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := cookie.DefaultConfig()
	assert.Equal(t, "/", cfg.Path)
	assert.True(t, cfg.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite)
	assert.Equal(t, signature.DefaultConfig(), cfg.Signature)

	_, err := cookie.NewFromConfig(cfg)
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.DefaultConfig()
	cfg.Secrets = " " + testSecret + " , ," + oldSecret
	cfg.MaxAge = 600
	cfg.Signature = signature.Config{Separator: "_", Hash: "sha512"}

	m, err := cookie.NewFromConfig(cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "c", "hello"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=600")

	raw, err := m.Get(requestWithCookies(w), "c")
	require.NoError(t, err)
	assert.Contains(t, raw, "hello_")

	got, err := m.GetSigned(requestWithCookies(w), "c")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("COOKIE_SECRETS", testSecret+","+oldSecret)
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SIGNATURE_HASH", "SHA-1")

	var cfg cookie.Config
	require.NoError(t, config.Parse(&cfg))
	assert.True(t, cfg.Secure)
	assert.Equal(t, "SHA-1", cfg.Signature.Hash)
	assert.Equal(t, ".", cfg.Signature.Separator)

	m, err := cookie.NewFromConfig(cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "c", "hello"))
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Secure")

	got, err := m.GetSigned(requestWithCookies(w), "c")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestConfig_HttpOnlyDisabledFromEnv(t *testing.T) {
	t.Setenv("COOKIE_SECRETS", testSecret)
	t.Setenv("COOKIE_HTTP_ONLY", "false")

	var cfg cookie.Config
	require.NoError(t, config.Parse(&cfg))
	assert.False(t, cfg.HttpOnly)

	m, err := cookie.NewFromConfig(cfg)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetSigned(w, "c", "hello"))
	assert.NotContains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
}

func TestNewFromConfig_BoolAttributes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		secure   bool
		httpOnly bool
	}{
		{"defaults", false, true},
		{"secure only", true, false},
		{"both", true, true},
		{"neither", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := cookie.DefaultConfig()
			cfg.Secrets = testSecret
			cfg.Secure = tt.secure
			cfg.HttpOnly = tt.httpOnly

			m, err := cookie.NewFromConfig(cfg)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			require.NoError(t, m.Set(w, "c", "v"))
			header := w.Header().Get("Set-Cookie")
			assert.Equal(t, tt.secure, strings.Contains(header, "; Secure"))
			assert.Equal(t, tt.httpOnly, strings.Contains(header, "; HttpOnly"))
		})
	}
}
