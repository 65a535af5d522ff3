package signature

import "errors"

// Argument errors carry fixed messages; callers may match on the text.
// Signer.Unsign never returns ErrInvalidSignedValue: any string is a signed
// value to check. It is kept for Signer implementations that reject
// non-text input before verifying.
var (
	ErrInvalidPayload     = errors.New("Cookie value must be provided as a string.")
	ErrMissingSecret      = errors.New("Secret key must be provided.")
	ErrInvalidSignedValue = errors.New("Signed cookie string must be provided.")
)

var (
	// ErrUnsupportedSecret is returned by a KeyProvider when the secret is
	// neither text nor a byte sequence.
	ErrUnsupportedSecret = errors.New("signature.unsupported_secret_type")

	// ErrMalformedSignature is returned by a Codec for input that is not base64.
	ErrMalformedSignature = errors.New("signature.malformed_signature")
)
