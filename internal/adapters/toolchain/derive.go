package toolchain

import (
	"path/filepath"
	"strings"

	"github.com/moegodot/WorldSeed-ConstructBabel/internal/core/domain"
	"go.trai.ch/zerr"
)

// DeriveToolchain resolves ccName to a concrete compiler and derives the
// sibling C++ front-end, archiver, and index tool paths by name substitution
// within the same directory. The siblings are not probed: a toolchain
// installation ships them next to the compiler.
func (r *Resolver) DeriveToolchain(ccName string) (domain.Toolchain, error) {
	cc, err := r.ResolveFirst(ccName)
	if err != nil {
		return domain.Toolchain{}, zerr.Wrap(err, "failed to resolve compiler")
	}

	dir, base := filepath.Split(cc)

	sibling := func(from, to string) string {
		return dir + strings.Replace(base, from, to, 1)
	}

	switch {
	case strings.Contains(base, "clang"):
		// Versioned names keep their suffix: clang-17 -> clang++-17.
		return domain.Toolchain{
			CC:     cc,
			CXX:    sibling("clang", "clang++"),
			AR:     sibling("clang", "llvm-ar"),
			Ranlib: sibling("clang", "llvm-ranlib"),
		}, nil
	case strings.Contains(base, "gcc"):
		return domain.Toolchain{
			CC:     cc,
			CXX:    sibling("gcc", "g++"),
			AR:     sibling("gcc", "gcc-ar"),
			Ranlib: sibling("gcc", "gcc-ranlib"),
		}, nil
	default:
		return domain.Toolchain{}, zerr.With(zerr.New("unrecognized compiler family"), "compiler", cc)
	}
}
