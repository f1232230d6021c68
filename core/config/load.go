package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Default returns the embedded configuration.
func Default() *Configuration {
	out, err := parse(defaultConfigData)
	if err != nil {
		// The embedded config is covered by tests; this should never
		// happen at runtime.
		panic(err)
	}
	return out
}

// Load reads config.yaml from dir. A missing file is not an error: the
// embedded defaults are returned instead.
func Load(fsys afero.Fs, dir string) (*Configuration, error) {
	contents, err := afero.ReadFile(fsys, filepath.Join(dir, ConfigurationName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		cfg.configDir = dir
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	cfg, err := parse(contents)
	if err != nil {
		return nil, err
	}
	cfg.configDir = dir
	return cfg, nil
}

func parse(data []byte) (*Configuration, error) {
	var out Configuration
	if err := yaml.UnmarshalStrict(data, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
