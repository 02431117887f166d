// Package config loads the run configuration for wscb.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "wscb.yaml"

// Load reads the configuration file at path and builds the immutable run
// context. A missing file yields the defaults; any other read or parse error
// propagates.
func Load(path string, platform domain.Platform) (domain.RunContext, error) {
	file := File{
		Configuration: string(domain.ConfigurationDebug),
		Root:          ".",
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the operator
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return domain.RunContext{}, zerr.Wrap(err, "failed to read config file")
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.RunContext{}, zerr.Wrap(err, "failed to parse config file")
		}
	}

	cfg, err := configuration(file.Configuration)
	if err != nil {
		return domain.RunContext{}, err
	}

	root := file.Root
	if root == "" {
		root = "."
	}

	return domain.RunContext{
		Layout: domain.Layout{
			Root:          root,
			Configuration: cfg,
		},
		Platform:    platform,
		BuildSample: file.BuildSample,
		PreferHint:  file.PreferHint,
		Version:     file.Version,
		Tools: domain.ToolOverrides{
			CMake: file.Tools.CMake,
			CC:    file.Tools.CC,
			Pipx:  file.Tools.Pipx,
			Cargo: file.Tools.Cargo,
		},
	}, nil
}

func configuration(s string) (domain.Configuration, error) {
	switch s {
	case "", string(domain.ConfigurationDebug):
		return domain.ConfigurationDebug, nil
	case string(domain.ConfigurationRelease):
		return domain.ConfigurationRelease, nil
	default:
		return "", zerr.With(zerr.New("unknown configuration"), "configuration", s)
	}
}
