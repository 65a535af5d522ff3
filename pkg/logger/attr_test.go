package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cookiesignature/pkg/logger"
)

func TestAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  slog.Attr
		want slog.Attr
	}{
		{"nil error", logger.Error(nil), slog.Attr{}},
		{"algorithm", logger.Algorithm("SHA-256"), slog.String("algorithm", "SHA-256")},
		{"separator", logger.Separator("."), slog.String("separator", ".")},
		{"reason", logger.Reason("signature_mismatch"), slog.String("reason", "signature_mismatch")},
		{"component", logger.Component("cookie"), slog.String("component", "cookie")},
		{"empty cookie name", logger.CookieName(""), slog.Attr{}},
		{"cookie name", logger.CookieName("session"), slog.String("cookie", "session")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.want.Equal(tt.got), "got %v, want %v", tt.got, tt.want)
		})
	}

	t.Run("error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}
