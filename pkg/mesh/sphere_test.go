package mesh

import (
	"math"
	"testing"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
)

func TestSphereProducesValidMesh(t *testing.T) {
	g, err := Sphere(2, 0)
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	if g.Mesh.IsEmpty() {
		t.Fatal("Sphere() produced an empty mesh")
	}
	if err := Validate(g.Mesh, "Sphere", nil); err != nil {
		t.Errorf("Validate() of sphere mesh = %v, want nil", err)
	}
}

func TestSphereApproximateVolume(t *testing.T) {
	r := 3.0
	g, err := Sphere(r, 48)
	if err != nil {
		t.Fatalf("Sphere() error = %v", err)
	}
	want := (4.0 / 3.0) * math.Pi * r * r * r
	got := math.Abs(g.Mesh.Volume())
	if math.Abs(got-want)/want > 0.05 {
		t.Errorf("Volume() = %f, want approximately %f", got, want)
	}
}

func TestSphereRejectsNonPositiveRadius(t *testing.T) {
	_, err := Sphere(0, 0)
	if !cerr.Is(err, cerr.InvalidDimension) {
		t.Errorf("Sphere(radius=0) error = %v, want InvalidDimension", err)
	}
}
