package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/mitchellh/mapstructure"

	"github.com/K0bin/twoless/pkg/model"
	"github.com/K0bin/twoless/pkg/sat"
)

const FileName = "config.json"

type Config struct {
	RangePolicy string `mapstructure:"rangePolicy"`
	Comments    bool   `mapstructure:"comments"`
	BufferSize  int    `mapstructure:"bufferSize"`
}

func Default() Config {
	return Config{
		RangePolicy: model.Compatible.String(),
		Comments:    true,
		BufferSize:  sat.DefaultBufferSize,
	}
}

// DefaultPath points to the config.json placed next to the executable
func DefaultPath() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine executable path: %w", err)
	}
	return path.Join(path.Dir(execPath), FileName), nil
}

// Load reads a JSON config file, keys missing from the file keep their default value.
// A file that does not exist yields the default config.
func Load(filePath string) (Config, error) {
	config := Default()

	bytes, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %v: %w", filePath, err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return Config{}, fmt.Errorf("invalid config file %v: %w", filePath, err)
	}

	if _, err := config.Policy(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (config Config) Policy() (model.RangePolicy, error) {
	return model.ParseRangePolicy(config.RangePolicy)
}

func (config Config) WriteOptions() []sat.Option {
	options := []sat.Option{sat.WithBufferSize(config.BufferSize)}
	if !config.Comments {
		options = append(options, sat.WithoutComments())
	}
	return options
}
