package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration file and unmarshals it into a struct.
// Unlike Load, file-based configs are not cached: the file is read on every
// call so reloading is the caller's choice.
//
// Example:
//
//	type AppConfig struct {
//		Name     string `yaml:"name"`
//		Capacity int    `yaml:"capacity"`
//	}
//
//	cfg, err := config.LoadFile[AppConfig]("config.yaml")
func LoadFile[T any](path string) (T, error) {
	var cfg T

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Join(fmt.Errorf("%w: %s", ErrReadingFile, path), err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Join(fmt.Errorf("%w: %s", ErrParsingFile, path), err)
	}

	return cfg, nil
}

// MustLoadFile works like LoadFile but panics on failure. For configuration
// files the application cannot start without.
func MustLoadFile[T any](path string) T {
	cfg, err := LoadFile[T](path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration file: %v", err))
	}
	return cfg
}
