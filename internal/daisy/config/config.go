// Package config loads the optional .oopsie.yaml project file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is looked up in the working directory when no --config flag is
// given.
const DefaultPath = ".oopsie.yaml"

// Source describes where the documentation lives.
type Source struct {
	// URL of the documentation repository, used by the fetch command.
	URL string `yaml:"url"`
	// Ref is the branch to fetch.
	Ref string `yaml:"ref"`
	// Docs is the directory holding the component documentation, either
	// inside a fetched clone or a plain local path.
	Docs string `yaml:"docs"`
}

// Config is the project configuration. Flags override its values.
type Config struct {
	Source     Source   `yaml:"source"`
	Out        string   `yaml:"out"`
	Package    string   `yaml:"package"`
	Components []string `yaml:"components"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Source: Source{
			URL:  "https://github.com/saadeghi/daisyui.git",
			Ref:  "master",
			Docs: "docs/components",
		},
		Out: "components",
	}
}

// Load reads the configuration at path, layered over Default. A missing file
// at the default path is not an error; a missing explicit path is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := decode(f, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
