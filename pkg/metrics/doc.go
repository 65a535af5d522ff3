// Package metrics instruments a signer with Prometheus counters.
//
//	s, err := metrics.Instrument(signature.New(),
//	    metrics.WithRegisterer(reg),
//	    metrics.WithConstLabels(prometheus.Labels{"algorithm": "SHA-256"}),
//	)
//	man, err := cookie.NewWithSigner(s, secrets)
//
// Rejections (tampered, truncated or foreign values) are counted separately
// from errors (invalid arguments).
package metrics
