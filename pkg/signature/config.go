package signature

import (
	"fmt"

	"github.com/dmitrymomot/cookiesignature/pkg/config"
)

// Config holds signer configuration loaded from the environment.
type Config struct {
	Separator   string `env:"COOKIE_SIGNATURE_SEPARATOR" envDefault:"."`
	Hash        string `env:"COOKIE_SIGNATURE_HASH" envDefault:"SHA-256"`
	Accelerated bool   `env:"COOKIE_SIGNATURE_ACCELERATED" envDefault:"false"`
}

// DefaultConfig returns default signer configuration
func DefaultConfig() Config {
	return Config{
		Separator: DefaultSeparator,
		Hash:      string(DefaultAlgorithm),
	}
}

// NewFromConfig creates a Signer from cfg. Only non-zero values are applied;
// opts are applied after the config and win on conflict.
func NewFromConfig(cfg Config, opts ...Option) *Signer {
	configOpts := make([]Option, 0, 3+len(opts))

	if cfg.Separator != "" {
		configOpts = append(configOpts, WithSeparator(cfg.Separator))
	}
	if cfg.Hash != "" {
		configOpts = append(configOpts, WithHash(cfg.Hash))
	}
	if cfg.Accelerated {
		configOpts = append(configOpts, WithKeyProvider(SIMDProvider()))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}

// NewFromEnv loads Config from the environment (and a .env file when present)
// and creates a Signer from it.
func NewFromEnv(opts ...Option) (*Signer, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, fmt.Errorf("signature: load config: %w", err)
	}
	return NewFromConfig(cfg, opts...), nil
}
