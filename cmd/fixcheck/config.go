package main

import "bytes"
import _ "embed"
import "errors"
import "io"
import "os"

import "gopkg.in/yaml.v3"

import "github.com/lockstepkit/fixmath/internal/accuracy"

//go:embed default.yaml
var defaultConfig []byte

type Config struct {
	Parallel int              `yaml:"parallel"`
	Sweeps   []accuracy.Sweep `yaml:"sweeps"`
}

// Loads the configuration from the given file, or the embedded
// default configuration if filename is empty.
func LoadConfig(filename string) (*Config, error) {
	if filename == "" { return ParseConfig(defaultConfig) }
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// Parses a YAML configuration. Unknown fields are rejected, so
// typos in sweep definitions don't go unnoticed.
func ParseConfig(data []byte) (*Config, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var config Config
	err := decoder.Decode(&config)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(config.Sweeps) == 0 {
		return nil, errors.New("config has no sweeps")
	}
	for _, sweep := range config.Sweeps {
		if err := sweep.Validate(); err != nil { return nil, err }
	}
	return &config, nil
}
