package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultVerified = "verified"
	ResultRejected = "rejected"
)

// Signer is the signing surface that gets instrumented. It matches
// *signature.Signer and cookie.Signer.
type Signer interface {
	Sign(payload string, secret any) (string, error)
	Unsign(signed string, secret any) (payload string, ok bool, err error)
}

// InstrumentedSigner counts Sign and Unsign outcomes.
type InstrumentedSigner struct {
	next   Signer
	sign   *prometheus.CounterVec
	unsign *prometheus.CounterVec
}

// interface guard
var _ Signer = (*InstrumentedSigner)(nil)

// Instrument wraps s and registers two counters:
// <namespace>_sign_total{result="ok|error"} and
// <namespace>_unsign_total{result="verified|rejected|error"}.
func Instrument(s Signer, opts ...Option) (*InstrumentedSigner, error) {
	if s == nil {
		return nil, ErrNilSigner
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	sign := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.namespace,
		Subsystem:   cfg.subsystem,
		Name:        "sign_total",
		Help:        "Number of values signed, by result.",
		ConstLabels: cfg.constLabels,
	}, []string{"result"})

	unsign := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   cfg.namespace,
		Subsystem:   cfg.subsystem,
		Name:        "unsign_total",
		Help:        "Number of signed values verified, by result.",
		ConstLabels: cfg.constLabels,
	}, []string{"result"})

	sign, err := register(cfg.registerer, sign)
	if err != nil {
		return nil, err
	}
	unsign, err = register(cfg.registerer, unsign)
	if err != nil {
		return nil, err
	}

	// Pre-create every series so they are exported at zero.
	sign.WithLabelValues(ResultOK)
	sign.WithLabelValues(ResultError)
	unsign.WithLabelValues(ResultVerified)
	unsign.WithLabelValues(ResultRejected)
	unsign.WithLabelValues(ResultError)

	return &InstrumentedSigner{
		next:   s,
		sign:   sign,
		unsign: unsign,
	}, nil
}

// register registers c, reusing an identical collector that is already
// registered so several signers can share one registry.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("%w: %w", ErrRegistration, err)
	}
	return c, nil
}

func (s *InstrumentedSigner) Sign(payload string, secret any) (string, error) {
	signed, err := s.next.Sign(payload, secret)
	if err != nil {
		s.sign.WithLabelValues(ResultError).Inc()
		return "", err
	}
	s.sign.WithLabelValues(ResultOK).Inc()
	return signed, nil
}

func (s *InstrumentedSigner) Unsign(signed string, secret any) (string, bool, error) {
	payload, ok, err := s.next.Unsign(signed, secret)
	switch {
	case err != nil:
		s.unsign.WithLabelValues(ResultError).Inc()
	case ok:
		s.unsign.WithLabelValues(ResultVerified).Inc()
	default:
		s.unsign.WithLabelValues(ResultRejected).Inc()
	}
	return payload, ok, err
}
