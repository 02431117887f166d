package domain

// ToolOverrides carries operator-supplied absolute paths for the external
// tools. An empty field means "resolve from the search path".
type ToolOverrides struct {
	CMake string
	CC    string
	Pipx  string
	Cargo string
}

// Map renders the overrides as logical-name keyed entries for the resolver.
func (o ToolOverrides) Map() map[string]string {
	m := make(map[string]string, 4)
	if o.CMake != "" {
		m["cmake"] = o.CMake
	}
	if o.CC != "" {
		m["clang"] = o.CC
	}
	if o.Pipx != "" {
		m["pipx"] = o.Pipx
	}
	if o.Cargo != "" {
		m["cargo"] = o.Cargo
	}
	return m
}

// RunContext is the immutable per-run configuration value constructed once at
// startup and passed explicitly to every component, instead of components
// reading ambient process state.
type RunContext struct {
	Layout      Layout
	Platform    Platform
	BuildSample bool

	// PreferHint partitions resolved tool candidates: paths containing this
	// substring rank ahead of all others.
	PreferHint string

	// Version is written into the dependency manifest by the
	// update-version-files target.
	Version string

	Tools ToolOverrides
}

// Configuration is a shorthand for the layout's configuration.
func (r RunContext) Configuration() Configuration {
	return r.Layout.Configuration
}
