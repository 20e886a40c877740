package part

import (
	"github.com/johstrackeAI/llm-cad-system/pkg/boolean"
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
)

func applyBoolean(name string, op boolean.Op, a, b Part) (Part, error) {
	result, err := boolean.Apply(op, a.Geometry.Mesh, b.Geometry.Mesh)
	if err != nil {
		return Part{}, err
	}
	return newPart(name, mesh.GeometryData{
		Kind:       mesh.MeshKind{},
		Parameters: map[string]float64{},
		Mesh:       result,
	}), nil
}

// Union returns the regularized boolean union of a and b as a new Part
// named name. The result's GeometryData always has kind = MeshKind{}
// (spec §4.2): a boolean result has no surviving analytical description.
func Union(name string, a, b Part) (Part, error) {
	return applyBoolean(name, boolean.Union, a, b)
}

// Difference returns the regularized boolean difference a - b as a new
// Part named name.
func Difference(name string, a, b Part) (Part, error) {
	return applyBoolean(name, boolean.Difference, a, b)
}

// Intersection returns the regularized boolean intersection of a and b
// as a new Part named name.
func Intersection(name string, a, b Part) (Part, error) {
	return applyBoolean(name, boolean.Intersection, a, b)
}
