// ABOUTME: Validation configuration for service-level control of the engine
// ABOUTME: Provides timeouts, concurrency limits, and probe policy via functional options

package config

import "time"

// ValidationConfig controls how the validation engine behaves
type ValidationConfig struct {
	// FetchTimeout bounds the feed GET request
	FetchTimeout time.Duration

	// ProbeTimeout bounds each image accessibility probe request
	ProbeTimeout time.Duration

	// MaxWorkers caps the number of feeds validated concurrently
	MaxWorkers int

	// UserAgent identifies the engine on outbound requests
	UserAgent string

	// StrictProbe treats transport errors during image probing as failures.
	// The default is optimistic: an unprobeable image is assumed accessible,
	// preferring a false positive over a false negative.
	StrictProbe bool

	// RequestsPerSecond paces outbound requests across all workers.
	// Zero means unlimited.
	RequestsPerSecond float64

	// Heuristics holds the promo and caption keyword tables
	Heuristics Heuristics
}

// DefaultValidationConfig returns the default engine configuration
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		FetchTimeout:      10 * time.Second,
		ProbeTimeout:      5 * time.Second,
		MaxWorkers:        16,
		UserAgent:         "Mozilla/5.0 (compatible; ComicRSSValidator/1.0)",
		StrictProbe:       false,
		RequestsPerSecond: 0,
		Heuristics:        DefaultHeuristics(),
	}
}

// ValidationOption is a functional option for configuring the engine
type ValidationOption func(*ValidationConfig)

// WithFetchTimeout sets the feed fetch timeout
func WithFetchTimeout(d time.Duration) ValidationOption {
	return func(c *ValidationConfig) {
		c.FetchTimeout = d
	}
}

// WithProbeTimeout sets the per-request image probe timeout
func WithProbeTimeout(d time.Duration) ValidationOption {
	return func(c *ValidationConfig) {
		c.ProbeTimeout = d
	}
}

// WithMaxWorkers sets the number of concurrent feed validations
func WithMaxWorkers(n int) ValidationOption {
	return func(c *ValidationConfig) {
		c.MaxWorkers = n
	}
}

// WithUserAgent sets the outbound User-Agent header
func WithUserAgent(ua string) ValidationOption {
	return func(c *ValidationConfig) {
		c.UserAgent = ua
	}
}

// WithStrictProbe enables or disables strict probe failure handling
func WithStrictProbe(strict bool) ValidationOption {
	return func(c *ValidationConfig) {
		c.StrictProbe = strict
	}
}

// WithRequestRate paces outbound requests; zero disables pacing
func WithRequestRate(perSecond float64) ValidationOption {
	return func(c *ValidationConfig) {
		c.RequestsPerSecond = perSecond
	}
}

// WithHeuristics replaces the heuristic tables
func WithHeuristics(h Heuristics) ValidationOption {
	return func(c *ValidationConfig) {
		c.Heuristics = h
	}
}

// NewValidationConfig creates a configuration with the given options applied
// on top of the defaults
func NewValidationConfig(opts ...ValidationOption) ValidationConfig {
	config := DefaultValidationConfig()

	for _, opt := range opts {
		opt(&config)
	}

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultValidationConfig().MaxWorkers
	}

	return config
}
