package utils

import (
	"encoding/json"
	"os"

	"github.com/lioia/corpus-pagerank/pkg/pagerank"
	"github.com/pkg/errors"
)

// Config is the optional JSON configuration file. Zero fields are unset.
type Config struct {
	pagerank.Config
	Seed   int64  `json:"seed,omitempty"`
	Output string `json:"output,omitempty"` // Report file (stdout when empty)
}

// LoadConfiguration reads the JSON configuration at path.
func LoadConfiguration(path string) (config Config, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(err, "read")
		return
	}
	// Parse config file into Config struct
	if err = json.Unmarshal(bytes, &config); err != nil {
		err = errors.Wrap(err, "parse")
		return
	}
	return
}
