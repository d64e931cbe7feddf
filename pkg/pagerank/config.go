package pagerank

import "github.com/pkg/errors"

const (
	DefaultDamping       = 0.85
	DefaultSamples       = 10000
	DefaultThreshold     = 0.001
	DefaultMaxIterations = 10000
)

// Config holds the estimator parameters. It is passed explicitly to every
// estimator call.
type Config struct {
	Damping       float64 `json:"damping,omitempty"`        // Probability of following a link
	Samples       int     `json:"samples,omitempty"`        // Random walk length
	Threshold     float64 `json:"threshold,omitempty"`      // Max rank change of a converged sweep
	MaxIterations int     `json:"max_iterations,omitempty"` // Safety bound on iterative sweeps
}

func DefaultConfig() Config {
	return Config{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithDefaults fills every zero field from def.
func (c Config) WithDefaults(def Config) Config {
	if c.Damping == 0 {
		c.Damping = def.Damping
	}
	if c.Samples == 0 {
		c.Samples = def.Samples
	}
	if c.Threshold == 0 {
		c.Threshold = def.Threshold
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = def.MaxIterations
	}
	return c
}

func (c Config) Validate() error {
	if err := validateDamping(c.Damping); err != nil {
		return err
	}
	if c.Samples < 1 {
		return errors.Wrapf(ErrInvalidConfig, "samples must be at least 1, got %d", c.Samples)
	}
	if c.Threshold <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "threshold must be positive, got %v", c.Threshold)
	}
	if c.MaxIterations < 1 {
		return errors.Wrapf(ErrInvalidConfig, "max iterations must be at least 1, got %d", c.MaxIterations)
	}
	return nil
}

func validateDamping(damping float64) error {
	if !(damping > 0 && damping < 1) {
		return errors.Wrapf(ErrInvalidConfig, "damping factor must be in (0, 1), got %v", damping)
	}
	return nil
}
