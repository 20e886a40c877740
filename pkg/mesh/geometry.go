package mesh

// PrimitiveKind is a tagged variant describing how a GeometryData's
// mesh was constructed. It is advisory for downstream readers: the
// mesh itself is always the authoritative geometric state (spec §3).
type PrimitiveKind interface {
	primitiveKind()
}

// BoxKind records that a GeometryData was built by Box(width, height, depth).
type BoxKind struct {
	Width, Height, Depth float64
}

func (BoxKind) primitiveKind() {}

// CylinderKind records that a GeometryData was built by Cylinder(radius, height).
type CylinderKind struct {
	Radius, Height float64
	Segments       int
}

func (CylinderKind) primitiveKind() {}

// SphereKind records that a GeometryData was built by Sphere(radius).
// Sphere is not named in the distilled primitive set; it resolves the
// spec's open question by tessellating via marching cubes (see sphere.go).
type SphereKind struct {
	Radius   float64
	Segments int
}

func (SphereKind) primitiveKind() {}

// MeshKind marks geometry with no surviving analytical description:
// the result of a boolean operation, or any transform that is not a
// rigid motion.
type MeshKind struct{}

func (MeshKind) primitiveKind() {}

// GeometryData pairs a tagged primitive descriptor with the mesh that
// is its authoritative geometric state, plus advisory parameters kept
// in sync with kind where the mutation preserves analytical meaning.
type GeometryData struct {
	Kind       PrimitiveKind
	Parameters map[string]float64
	Mesh       *TriangleMesh
}

// Clone returns a deep copy of g; GeometryData is owned exclusively by
// the Part that contains it, so every mutation clones first.
func (g GeometryData) Clone() GeometryData {
	params := make(map[string]float64, len(g.Parameters))
	for k, v := range g.Parameters {
		params[k] = v
	}
	return GeometryData{
		Kind:       g.Kind,
		Parameters: params,
		Mesh:       g.Mesh.Clone(),
	}
}
