package ports

import "github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"

// ToolResolver locates executables for logical tool names.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ToolResolver interface {
	// Resolve returns the candidate executable paths for name, preferred
	// candidates first. It fails when no candidate exists.
	Resolve(name string) ([]string, error)

	// ResolveFirst returns the best candidate for name.
	ResolveFirst(name string) (string, error)
}

// ToolchainFactory derives a consistent compiler toolchain from one canonical
// compiler tool, so separate build systems compile with matching tools.
type ToolchainFactory interface {
	// DeriveToolchain resolves ccName and derives the sibling C++ front-end,
	// archiver, and index tool paths in the same directory.
	DeriveToolchain(ccName string) (domain.Toolchain, error)
}
