package cookie

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/cookiesignature/pkg/signature"
)

// Config holds cookie manager configuration
type Config struct {
	Secrets  string        `env:"COOKIE_SECRETS" envDefault:""`
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge   int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode

	Signature signature.Config
}

// DefaultConfig returns default cookie configuration
func DefaultConfig() Config {
	return Config{
		Path:      "/",
		HttpOnly:  true,
		SameSite:  http.SameSiteLaxMode,
		Signature: signature.DefaultConfig(),
	}
}

// parseSecrets splits the comma-separated secrets, dropping blanks.
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			secrets = append(secrets, s)
		}
	}
	return secrets
}

// NewFromConfig creates a Manager from cfg, signing with a Signer built from
// cfg.Signature. Secure and HttpOnly are always applied; other fields only
// when non-zero. Use DefaultConfig as the base for a hand-built Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	configOpts := make([]Option, 0, 6+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.MaxAge != 0 {
		configOpts = append(configOpts, WithMaxAge(cfg.MaxAge))
	}
	configOpts = append(configOpts,
		WithSecure(cfg.Secure),
		WithHTTPOnly(cfg.HttpOnly),
	)
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return NewWithSigner(signature.NewFromConfig(cfg.Signature), cfg.parseSecrets(), configOpts...)
}
