package domain

import "strings"

// Invocation describes one external program run: an executable, a literal
// argument vector that is never shell-interpreted, a working directory, and
// environment overrides merged over the inherited environment.
type Invocation struct {
	Executable string
	Args       []string
	Dir        string
	Env        map[string]string
}

// String renders the command line for diagnostics.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Executable}, i.Args...), " ")
}

// Toolchain holds the four derived compiler tool paths injected into
// meta-build invocations so that both build adapters compile with one
// consistent toolchain.
type Toolchain struct {
	CC     string
	CXX    string
	AR     string
	Ranlib string
}

// Env renders the toolchain as the conventional environment variables.
func (t Toolchain) Env() map[string]string {
	return map[string]string{
		"CC":     t.CC,
		"CXX":    t.CXX,
		"AR":     t.AR,
		"RANLIB": t.Ranlib,
	}
}
