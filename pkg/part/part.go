// Package part implements Part, the immutable named-geometry value
// object: every transform or boolean operation returns a new Part and
// leaves its receiver untouched (spec §3).
package part

import (
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
	"github.com/johstrackeAI/llm-cad-system/pkg/vec3"
)

// Part is a named geometric value object. A Part exclusively owns its
// GeometryData; Parameters are free-form user annotations, never
// constraint variables.
type Part struct {
	Name       string
	Geometry   mesh.GeometryData
	Parameters map[string]any
}

func newPart(name string, g mesh.GeometryData) Part {
	return Part{Name: name, Geometry: g, Parameters: map[string]any{}}
}

// Box constructs a named Part wrapping an axis-aligned box primitive.
func Box(name string, width, height, depth float64) (Part, error) {
	g, err := mesh.Box(width, height, depth)
	if err != nil {
		return Part{}, err
	}
	return newPart(name, *g), nil
}

// Cylinder constructs a named Part wrapping a cylinder primitive at
// the default circular resolution.
func Cylinder(name string, radius, height float64) (Part, error) {
	g, err := mesh.Cylinder(radius, height, 0)
	if err != nil {
		return Part{}, err
	}
	return newPart(name, *g), nil
}

// Sphere constructs a named Part wrapping a sphere primitive, resolving
// the spec's open question on whether Sphere is part of the primitive set.
func Sphere(name string, radius float64) (Part, error) {
	g, err := mesh.Sphere(radius, 0)
	if err != nil {
		return Part{}, err
	}
	return newPart(name, *g), nil
}

// Clone returns an independent deep copy of p.
func (p Part) Clone() Part {
	params := make(map[string]any, len(p.Parameters))
	for k, v := range p.Parameters {
		params[k] = v
	}
	return Part{Name: p.Name, Geometry: p.Geometry.Clone(), Parameters: params}
}

// transform applies m to every vertex of p's mesh and returns a new
// Part. If m is a rigid motion (per vec3.Mat4.IsRigid), the
// PrimitiveKind and its Parameters are kept unchanged; any non-rigid
// transform (scale, shear) collapses the result to MeshKind{} with
// empty Parameters.
func (p Part) transform(m vec3.Mat4) Part {
	out := p.Clone()
	verts := make([]vec3.Vec3, len(out.Geometry.Mesh.Vertices))
	for i, v := range out.Geometry.Mesh.Vertices {
		verts[i] = m.MulPoint(v)
	}
	out.Geometry.Mesh.Vertices = verts

	if !m.IsRigid(1e-9) {
		out.Geometry.Kind = mesh.MeshKind{}
		out.Geometry.Parameters = map[string]float64{}
	}
	return out
}

// Translate returns a new Part whose mesh is shifted by (x, y, z); its
// analytical kind and parameters are kept.
func (p Part) Translate(x, y, z float64) Part {
	return p.transform(vec3.Translate3d(x, y, z))
}

// Rotate returns a new Part rotated by angleRadians about axis, through
// the origin.
func (p Part) Rotate(angleRadians float64, axis vec3.Axis) Part {
	return p.transform(vec3.RotateAxis(axis, angleRadians))
}

// Volume returns the enclosed volume of p's mesh.
func (p Part) Volume() float64 {
	return p.Geometry.Mesh.Volume()
}
