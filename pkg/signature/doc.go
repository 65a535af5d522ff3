// Package signature signs cookie values with HMAC and verifies them later, so a
// server can hand an opaque value to a client and detect any tampering when it
// comes back.
//
// # Overview
//
// A signed value is the payload, a separator and the base64 HMAC of the
// payload with the trailing "=" padding removed:
//
//	hello.DGDUkGlIkCzPz+C0B064FNgHdEjox7ch8tOBGslZ5QI
//
// The signature uses the standard base64 alphabet, not the URL-safe one.
// Only integrity and authenticity are provided; the payload travels in clear.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiesignature/pkg/signature"
//
//	signed, err := signature.Sign("user-42", secret)
//	if err != nil { ... }
//
//	payload, ok, err := signature.Unsign(signed, secret)
//	if err != nil { ... }  // bad arguments only
//	if !ok { ... }         // tampered, truncated or signed with another secret
//
// Independent configurations are created with New:
//
//	s := signature.New(
//	    signature.WithSeparator("_"),
//	    signature.WithHash("sha384"),
//	)
//
// # Configuration
//
// The separator defaults to "." and the digest to SHA-256. SHA-1, SHA-256,
// SHA-384 and SHA-512 are supported, each spelled "SHA-256", "SHA256" or
// "sha256". Unusable settings are replaced by the defaults once, in New, so a
// Signer is always fully configured. Config and NewFromEnv read the same
// settings from COOKIE_SIGNATURE_* environment variables.
//
// # Verification
//
// Unsign splits on the last occurrence of the separator, so payloads may
// contain it. A failed verification is reported through the ok result and is
// never an error: a wrong secret, a corrupted or truncated signature, extra
// prefixes or suffixes, or a missing separator all yield ok == false. Errors
// are reserved for a missing secret (ErrMissingSecret) and secret types the
// KeyProvider cannot use (ErrUnsupportedSecret). Bytes that are not valid
// UTF-8 are just another failed verification. Signatures are compared in constant time.
//
// # Capabilities
//
// The HMAC primitive and the base64 codec are injected through KeyProvider and
// Codec. StdProvider and StdCodec are used unless overridden; SIMDProvider
// computes SHA-256 with github.com/minio/sha256-simd. Providers, the codec and
// the Default signer are created once per process.
package signature
