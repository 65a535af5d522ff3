package signature

import "log/slog"

// DefaultSeparator joins the payload and its signature.
const DefaultSeparator = "."

// Options holds the raw, unvalidated Signer settings.
type Options struct {
	Separator string
	Hash      string
	Provider  KeyProvider
	Codec     Codec
	Logger    *slog.Logger
}

type Option func(*Options)

// WithSeparator sets the payload/signature separator.
// An empty separator is ignored.
func WithSeparator(sep string) Option {
	return func(o *Options) {
		o.Separator = sep
	}
}

// WithHash selects the digest by any spelling NormalizeAlgorithm accepts.
// Unrecognized names leave the default in place.
func WithHash(name string) Option {
	return func(o *Options) {
		o.Hash = name
	}
}

func WithKeyProvider(p KeyProvider) Option {
	return func(o *Options) {
		if p != nil {
			o.Provider = p
		}
	}
}

func WithCodec(c Codec) Option {
	return func(o *Options) {
		if c != nil {
			o.Codec = c
		}
	}
}

// WithLogger enables debug logging of rejected signed values.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
