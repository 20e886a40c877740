//go:build !manifold

package boolean

import (
	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
)

// Op identifies a regularized boolean operation (spec §4.2).
type Op int

const (
	Union Op = iota
	Difference
	Intersection
)

// Apply reports BackendUnavailable: this build was not compiled with
// -tags=manifold, so no boolean engine is linked in.
func Apply(op Op, a, b *mesh.TriangleMesh) (*mesh.TriangleMesh, error) {
	return nil, cerr.New(cerr.BackendUnavailable, "boolean.Apply", "",
		"boolean engine not available: build with -tags=manifold")
}

// Available reports whether this build was compiled with manifold
// engine support.
func Available() bool { return false }
