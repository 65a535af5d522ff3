package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesignature/pkg/signature"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := signature.DefaultConfig()
	assert.Equal(t, ".", cfg.Separator)
	assert.Equal(t, "SHA-256", cfg.Hash)
	assert.False(t, cfg.Accelerated)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		cfg           signature.Config
		opts          []signature.Option
		wantSeparator string
		wantAlgorithm signature.Algorithm
	}{
		{"zero config", signature.Config{}, nil, ".", signature.SHA256},
		{"default config", signature.DefaultConfig(), nil, ".", signature.SHA256},
		{"custom", signature.Config{Separator: "_", Hash: "sha384"}, nil, "_", signature.SHA384},
		{"invalid hash", signature.Config{Hash: "whirlpool"}, nil, ".", signature.SHA256},
		{"accelerated", signature.Config{Hash: "SHA256", Accelerated: true}, nil, ".", signature.SHA256},
		{"options win", signature.Config{Separator: "_"}, []signature.Option{signature.WithSeparator("|")}, "|", signature.SHA256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := signature.NewFromConfig(tt.cfg, tt.opts...)
			assert.Equal(t, tt.wantSeparator, s.Separator())
			assert.Equal(t, tt.wantAlgorithm, s.Algorithm())

			signed, err := s.Sign("hello", "tobiiscool")
			require.NoError(t, err)
			payload, ok, err := s.Unsign(signed, "tobiiscool")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "hello", payload)
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("COOKIE_SIGNATURE_SEPARATOR", "_")
	t.Setenv("COOKIE_SIGNATURE_HASH", "sha384")
	t.Setenv("COOKIE_SIGNATURE_ACCELERATED", "true")

	s, err := signature.NewFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "_", s.Separator())
	assert.Equal(t, signature.SHA384, s.Algorithm())

	signed, err := s.Sign("hello", "tobiiscool")
	require.NoError(t, err)
	assert.Equal(t, "hello_RJljN3thz3FGathvIVhUDu5T2fohzb9YVHfOB+dId9Y+JHYcQlIhSUP6WioF2sFr", signed)
}
