package signature

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm is the canonical name of a supported HMAC digest.
type Algorithm string

const (
	SHA1   Algorithm = "SHA-1"
	SHA256 Algorithm = "SHA-256"
	SHA384 Algorithm = "SHA-384"
	SHA512 Algorithm = "SHA-512"

	DefaultAlgorithm = SHA256
)

var algorithmNames = map[string]Algorithm{
	"SHA-1": SHA1,
	"SHA1":  SHA1,
	"sha1":  SHA1,

	"SHA-256": SHA256,
	"SHA256":  SHA256,
	"sha256":  SHA256,

	"SHA-384": SHA384,
	"SHA384":  SHA384,
	"sha384":  SHA384,

	"SHA-512": SHA512,
	"SHA512":  SHA512,
	"sha512":  SHA512,
}

// NormalizeAlgorithm maps a loosely spelled digest name ("SHA-256", "SHA256",
// "sha256") to its canonical Algorithm. It reports false for anything else,
// leaving the fallback to the caller.
func NormalizeAlgorithm(name string) (Algorithm, bool) {
	alg, ok := algorithmNames[name]
	return alg, ok
}

func (a Algorithm) String() string {
	return string(a)
}

// Valid reports whether a is one of the canonical constants.
func (a Algorithm) Valid() bool {
	switch a {
	case SHA1, SHA256, SHA384, SHA512:
		return true
	}
	return false
}

// Size returns the digest length in bytes, or 0 for an invalid Algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA384:
		return sha512.Size384
	case SHA512:
		return sha512.Size
	}
	return 0
}

// HashFunc returns the standard library constructor for the digest.
// It returns nil for an invalid Algorithm.
func (a Algorithm) HashFunc() func() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA384:
		return sha512.New384
	case SHA512:
		return sha512.New
	}
	return nil
}
