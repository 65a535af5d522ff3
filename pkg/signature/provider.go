package signature

import (
	"crypto/hmac"
	"fmt"
	"hash"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// Key is an imported HMAC key. It can only sign and verify.
type Key interface {
	Sign(msg []byte) []byte
	// Verify compares in constant time.
	Verify(sig, msg []byte) bool
}

// KeyProvider imports secret material as an HMAC key for a digest.
// Secrets may be a string (used as UTF-8 bytes), a []byte or any value with a
// Bytes() []byte method. Other types fail with ErrUnsupportedSecret.
type KeyProvider interface {
	ImportKey(secret any, alg Algorithm) (Key, error)
}

type hmacProvider struct {
	digests map[Algorithm]func() hash.Hash
}

// interface guard
var _ KeyProvider = (*hmacProvider)(nil)

var (
	stdProviderOnce = sync.OnceValue(func() KeyProvider {
		return newHMACProvider(nil)
	})
	simdProviderOnce = sync.OnceValue(func() KeyProvider {
		return newHMACProvider(map[Algorithm]func() hash.Hash{
			SHA256: sha256simd.New,
		})
	})
)

// StdProvider returns the process-wide provider backed by crypto/hmac and the
// standard library digests.
func StdProvider() KeyProvider {
	return stdProviderOnce()
}

// SIMDProvider returns the process-wide provider that computes SHA-256 with
// github.com/minio/sha256-simd (SHA-NI, AVX512 or ARM64 extensions when the
// CPU has them). Other digests use the standard library.
func SIMDProvider() KeyProvider {
	return simdProviderOnce()
}

func newHMACProvider(overrides map[Algorithm]func() hash.Hash) *hmacProvider {
	digests := make(map[Algorithm]func() hash.Hash, 4)
	for _, alg := range []Algorithm{SHA1, SHA256, SHA384, SHA512} {
		digests[alg] = alg.HashFunc()
	}
	for alg, fn := range overrides {
		digests[alg] = fn
	}
	return &hmacProvider{digests: digests}
}

func (p *hmacProvider) ImportKey(secret any, alg Algorithm) (Key, error) {
	raw, err := secretBytes(secret)
	if err != nil {
		return nil, err
	}

	digest, ok := p.digests[alg]
	if !ok {
		return nil, fmt.Errorf("signature: unsupported algorithm %q", alg)
	}

	return &hmacKey{
		secret: raw,
		digest: digest,
	}, nil
}

// secretBytes returns a private copy of the secret material.
func secretBytes(secret any) ([]byte, error) {
	switch s := secret.(type) {
	case string:
		return []byte(s), nil
	case []byte:
		return append([]byte(nil), s...), nil
	case interface{ Bytes() []byte }:
		return append([]byte(nil), s.Bytes()...), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSecret, secret)
	}
}

type hmacKey struct {
	secret []byte
	digest func() hash.Hash
}

func (k *hmacKey) Sign(msg []byte) []byte {
	mac := hmac.New(k.digest, k.secret)
	mac.Write(msg)
	return mac.Sum(nil)
}

func (k *hmacKey) Verify(sig, msg []byte) bool {
	return hmac.Equal(sig, k.Sign(msg))
}
