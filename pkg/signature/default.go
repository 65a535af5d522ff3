package signature

import "sync"

var defaultSigner = sync.OnceValue(func() *Signer { return New() })

// Default returns the process-wide Signer: "." separator, SHA-256,
// standard library HMAC and base64.
func Default() *Signer {
	return defaultSigner()
}

// Sign signs payload with the default Signer.
func Sign(payload string, secret any) (string, error) {
	return Default().Sign(payload, secret)
}

// Unsign verifies signed with the default Signer.
func Unsign(signed string, secret any) (string, bool, error) {
	return Default().Unsign(signed, secret)
}
