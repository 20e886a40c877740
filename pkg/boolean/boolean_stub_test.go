//go:build !manifold

package boolean

import (
	"testing"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
)

func TestApplyReportsBackendUnavailableWithoutManifoldTag(t *testing.T) {
	g, err := mesh.Box(1, 1, 1)
	if err != nil {
		t.Fatalf("Box() error = %v", err)
	}
	_, err = Apply(Union, g.Mesh, g.Mesh)
	if !cerr.Is(err, cerr.BackendUnavailable) {
		t.Errorf("Apply() error = %v, want BackendUnavailable", err)
	}
}

func TestAvailableIsFalseWithoutManifoldTag(t *testing.T) {
	if Available() {
		t.Error("Available() = true, want false in a non-manifold build")
	}
}
