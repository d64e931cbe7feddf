package pagerank

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		config Config
		valid  bool
	}{
		{"defaults", DefaultConfig(), true},
		{"damping zero", Config{Damping: 0, Samples: 1, Threshold: 0.1, MaxIterations: 1}, false},
		{"damping one", Config{Damping: 1, Samples: 1, Threshold: 0.1, MaxIterations: 1}, false},
		{"no samples", Config{Damping: 0.5, Samples: 0, Threshold: 0.1, MaxIterations: 1}, false},
		{"negative threshold", Config{Damping: 0.5, Samples: 1, Threshold: -1, MaxIterations: 1}, false},
		{"no iterations", Config{Damping: 0.5, Samples: 1, Threshold: 0.1, MaxIterations: 0}, false},
		{"minimal", Config{Damping: 0.01, Samples: 1, Threshold: 1e-9, MaxIterations: 1}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.config.Validate()
			if c.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	config := Config{Samples: 50}.WithDefaults(DefaultConfig())

	assert.Equal(t, Config{
		Damping:       DefaultDamping,
		Samples:       50,
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
	}, config)
}
