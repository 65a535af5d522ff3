package metrics

import "errors"

var (
	ErrNilSigner    = errors.New("metrics.nil_signer")
	ErrRegistration = errors.New("metrics.registration_failed")
)
