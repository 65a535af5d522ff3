package signature

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/cookiesignature/pkg/logger"
)

// Rejection reasons reported in debug logs.
const (
	reasonMissingSeparator   = "missing_separator"
	reasonMalformedSignature = "malformed_signature"
	reasonSignatureMismatch  = "signature_mismatch"
)

// Signer signs values and verifies signed values with HMAC.
// A Signer is immutable and safe for concurrent use.
type Signer struct {
	separator string
	algorithm Algorithm
	provider  KeyProvider
	codec     Codec
	logger    *slog.Logger
}

// New builds a Signer. Invalid settings fall back to the defaults: "." as the
// separator and SHA-256 as the digest.
func New(opts ...Option) *Signer {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	s := &Signer{
		separator: DefaultSeparator,
		algorithm: DefaultAlgorithm,
		provider:  o.Provider,
		codec:     o.Codec,
		logger:    o.Logger,
	}

	if o.Separator != "" && utf8.ValidString(o.Separator) {
		s.separator = o.Separator
	}
	if alg, ok := NormalizeAlgorithm(o.Hash); ok {
		s.algorithm = alg
	}
	if s.provider == nil {
		s.provider = StdProvider()
	}
	if s.codec == nil {
		s.codec = StdCodec()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	return s
}

func (s *Signer) Separator() string {
	return s.separator
}

func (s *Signer) Algorithm() Algorithm {
	return s.algorithm
}

// Sign returns payload + separator + the unpadded base64 HMAC of payload.
// The secret may be a string, a []byte or a value with a Bytes() []byte method.
func (s *Signer) Sign(payload string, secret any) (string, error) {
	if !utf8.ValidString(payload) {
		return "", ErrInvalidPayload
	}
	if isNilSecret(secret) {
		return "", ErrMissingSecret
	}

	key, err := s.provider.ImportKey(secret, s.algorithm)
	if err != nil {
		return "", err
	}

	sig := strings.TrimRight(s.codec.Encode(key.Sign([]byte(payload))), "=")
	return payload + s.separator + sig, nil
}

// Unsign verifies a value produced by Sign and returns the original payload.
// ok is false for any value that fails verification, including malformed or
// non-UTF-8 input; err is only set for a missing or unusable secret.
func (s *Signer) Unsign(signed string, secret any) (payload string, ok bool, err error) {
	if isNilSecret(secret) {
		return "", false, ErrMissingSecret
	}

	// The payload may contain the separator; the signature never does.
	idx := strings.LastIndex(signed, s.separator)
	if idx < 0 {
		s.reject(reasonMissingSeparator)
		return "", false, nil
	}
	candidate, encoded := signed[:idx], signed[idx+len(s.separator):]

	sig, err := s.codec.Decode(encoded)
	if err != nil {
		s.reject(reasonMalformedSignature, logger.Error(err))
		return "", false, nil
	}

	key, err := s.provider.ImportKey(secret, s.algorithm)
	if err != nil {
		return "", false, err
	}

	if !key.Verify(sig, []byte(candidate)) {
		s.reject(reasonSignatureMismatch)
		return "", false, nil
	}

	return candidate, true, nil
}

func (s *Signer) reject(reason string, attrs ...slog.Attr) {
	attrs = append(attrs,
		logger.Reason(reason),
		logger.Algorithm(s.algorithm.String()),
		logger.Separator(s.separator),
	)
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "signed value rejected", attrs...)
}

func isNilSecret(secret any) bool {
	if secret == nil {
		return true
	}
	b, ok := secret.([]byte)
	return ok && b == nil
}
