package signature

import (
	"encoding/base64"
	"strings"
	"sync"
)

// Codec converts raw signature bytes to and from transportable text.
type Codec interface {
	Encode(b []byte) string
	Decode(s string) ([]byte, error)
}

type stdCodec struct{}

// interface guard
var _ Codec = stdCodec{}

var stdCodecOnce = sync.OnceValue(func() Codec { return stdCodec{} })

// StdCodec returns the standard-alphabet base64 codec.
// Encode emits padded output. Decode follows the forgiving rules browsers
// apply in atob: ASCII whitespace is ignored, padding is optional, and
// padding is only accepted where it completes a 4-character group.
func StdCodec() Codec {
	return stdCodecOnce()
}

func (stdCodec) Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func (stdCodec) Decode(s string) ([]byte, error) {
	s = stripASCIIWhitespace(s)

	if len(s)%4 == 0 {
		switch {
		case strings.HasSuffix(s, "=="):
			s = s[:len(s)-2]
		case strings.HasSuffix(s, "="):
			s = s[:len(s)-1]
		}
	}

	if len(s)%4 == 1 || strings.ContainsRune(s, '=') {
		return nil, ErrMalformedSignature
	}

	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrMalformedSignature
	}
	return b, nil
}

func stripASCIIWhitespace(s string) string {
	if !strings.ContainsAny(s, " \t\n\f\r") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\f', '\r':
			return -1
		}
		return r
	}, s)
}
