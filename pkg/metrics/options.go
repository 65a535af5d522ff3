package metrics

import "github.com/prometheus/client_golang/prometheus"

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "cookie_signature"

type config struct {
	registerer  prometheus.Registerer
	namespace   string
	subsystem   string
	constLabels prometheus.Labels
}

type Option func(*config)

func defaultConfig() *config {
	return &config{
		registerer: prometheus.DefaultRegisterer,
		namespace:  DefaultNamespace,
	}
}

// WithRegisterer sets the registry the counters are registered on.
// Nil is ignored.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		if r != nil {
			c.registerer = r
		}
	}
}

func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

func WithSubsystem(sub string) Option {
	return func(c *config) {
		c.subsystem = sub
	}
}

// WithConstLabels attaches fixed labels, e.g. the algorithm in use.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) {
		c.constLabels = labels
	}
}
