package config

// File represents the structure of the wscb.yaml configuration file.
type File struct {
	// Configuration selects the build configuration: "debug" or "release".
	Configuration string `yaml:"configuration"`
	// Root is the repository root the layout derives from.
	Root string `yaml:"root"`
	// BuildSample enables the sample target.
	BuildSample bool `yaml:"buildSample"`
	// PreferHint ranks tool candidates whose path contains this substring
	// ahead of all others.
	PreferHint string `yaml:"preferHint"`
	// Version is written into the dependency manifest by update-version-files.
	Version string `yaml:"version"`
	Tools   Tools  `yaml:"tools"`
}

// Tools carries explicit executable paths overriding search-path resolution.
type Tools struct {
	CMake string `yaml:"cmake"`
	CC    string `yaml:"cc"`
	Pipx  string `yaml:"pipx"`
	Cargo string `yaml:"cargo"`
}
