package domain

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// OSFamily classifies the host operating system for build purposes.
type OSFamily string

const (
	// FamilyWindows covers the Windows family.
	FamilyWindows OSFamily = "windows"
	// FamilyDarwin covers macOS.
	FamilyDarwin OSFamily = "darwin"
	// FamilyUnix covers Linux and the remaining POSIX platforms.
	FamilyUnix OSFamily = "unix"
)

// Platform bundles the OS capabilities the resolver and build adapters need,
// so platform conditionals live in one value instead of being queried ad hoc.
type Platform struct {
	Family OSFamily

	// exeExtensions holds the registered executable extensions on the Windows
	// family (".exe", ".cmd", ...). Empty elsewhere.
	exeExtensions []string
}

// NewPlatform builds a Platform for the given GOOS value. On the Windows
// family, pathExt carries the registered executable extensions in PATHEXT
// format (";"-separated); when empty a conventional default is used.
func NewPlatform(goos, pathExt string) Platform {
	switch goos {
	case "windows":
		exts := strings.Split(pathExt, ";")
		if pathExt == "" {
			exts = []string{".COM", ".EXE", ".BAT", ".CMD"}
		}
		return Platform{Family: FamilyWindows, exeExtensions: exts}
	case "darwin":
		return Platform{Family: FamilyDarwin}
	default:
		return Platform{Family: FamilyUnix}
	}
}

// CurrentPlatform builds the Platform for the running process.
func CurrentPlatform() Platform {
	return NewPlatform(runtime.GOOS, pathExtFromEnv())
}

func pathExtFromEnv() string {
	if runtime.GOOS != "windows" {
		return ""
	}
	// PATHEXT is only meaningful on the Windows family.
	return os.Getenv("PATHEXT")
}

// ExecutableSuffixes lists the filename suffixes tried when probing for an
// executable: on the Windows family every registered extension both as given
// and lower-cased, elsewhere only the empty suffix.
func (p Platform) ExecutableSuffixes() []string {
	if p.Family != FamilyWindows {
		return []string{""}
	}
	seen := make(map[string]bool, len(p.exeExtensions)*2)
	suffixes := make([]string, 0, len(p.exeExtensions)*2)
	for _, ext := range p.exeExtensions {
		for _, s := range []string{ext, strings.ToLower(ext)} {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			suffixes = append(suffixes, s)
		}
	}
	return suffixes
}

// ExecutableName appends the default executable extension when the platform
// requires one and name carries no extension yet.
func (p Platform) ExecutableName(name string) string {
	if p.Family != FamilyWindows || filepath.Ext(name) != "" {
		return name
	}
	return name + ".exe"
}

// StaticLibName maps a library base name to the platform's static archive
// filename ("z" -> "libz.a", or "z.lib" on the Windows family).
func (p Platform) StaticLibName(base string) string {
	if p.Family == FamilyWindows {
		return base + ".lib"
	}
	return "lib" + base + ".a"
}
