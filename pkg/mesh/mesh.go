// Package mesh implements the watertight indexed triangle mesh kernel:
// primitive tessellation and structural validation (affine transforms
// of a Part's mesh are applied by package part).
// It is the sole geometric representation used inside the core (see
// spec §9 "Triangulated meshes as the sole geometric representation").
package mesh

import (
	"log"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/vec3"
)

// Face is a triangular face: three 0-based, distinct vertex indices.
type Face [3]int

// TriangleMesh is an ordered sequence of vertices and an ordered
// sequence of triangular faces over them.
type TriangleMesh struct {
	Vertices []vec3.Vec3
	Faces    []Face
}

// VertexCount returns the number of vertices.
func (m *TriangleMesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// TriangleCount returns the number of triangular faces.
func (m *TriangleMesh) TriangleCount() int {
	if m == nil {
		return 0
	}
	return len(m.Faces)
}

// IsEmpty reports whether the mesh carries no geometry.
func (m *TriangleMesh) IsEmpty() bool {
	return m.VertexCount() == 0
}

// Clone returns a deep copy of m.
func (m *TriangleMesh) Clone() *TriangleMesh {
	if m == nil {
		return nil
	}
	out := &TriangleMesh{
		Vertices: make([]vec3.Vec3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(out.Vertices, m.Vertices)
	copy(out.Faces, m.Faces)
	return out
}

// BoundingBox returns the axis-aligned bounding box of the mesh. For an
// empty mesh both corners are the zero vector.
func (m *TriangleMesh) BoundingBox() (min, max vec3.Vec3) {
	if m.IsEmpty() {
		return vec3.Vec3{}, vec3.Vec3{}
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = vec3.Vec3{X: minF(min.X, v.X), Y: minF(min.Y, v.Y), Z: minF(min.Z, v.Z)}
		max = vec3.Vec3{X: maxF(max.X, v.X), Y: maxF(max.Y, v.Y), Z: maxF(max.Z, v.Z)}
	}
	return min, max
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Volume returns the signed volume enclosed by the mesh, computed via
// the divergence theorem as the sum of signed tetrahedra volumes from
// the origin to each face. For a closed, outward-oriented mesh this is
// the true enclosed volume; the sign is positive for outward-facing
// (right-hand rule) winding.
func (m *TriangleMesh) Volume() float64 {
	var vol float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		vol += a.Dot(b.Cross(c)) / 6.0
	}
	return vol
}

// FaceNormal returns the outward unit normal of face f, computed from
// winding via ((b-a) x (c-a)).normalize(); the zero vector for a
// degenerate (zero-area) face.
func (m *TriangleMesh) FaceNormal(f Face) vec3.Vec3 {
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Concat returns a new mesh holding the vertices and faces of meshes in
// order, offsetting each mesh's face indices by the number of vertices
// before it; nil meshes are skipped. Used by Document.GetMeshData to flatten a part list into one
// stream for export.
func Concat(meshes ...*TriangleMesh) *TriangleMesh {
	out := &TriangleMesh{}
	for _, m := range meshes {
		if m == nil {
			continue
		}
		offset := len(out.Vertices)
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, f := range m.Faces {
			out.Faces = append(out.Faces, Face{f[0] + offset, f[1] + offset, f[2] + offset})
		}
	}
	return out
}

// Validate checks the structural invariants required of a mesh
// produced by an external engine (spec §4.1): vertex count >= 1, face
// count >= 1, all indices in range, no face with repeated indices.
// Faces with more than three indices are not representable by Face
// and must already have been fan-triangulated by the caller (see
// Triangulate). Manifoldness and closure are checked but only logged
// as a warning, never rejected.
func Validate(m *TriangleMesh, op string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if m.VertexCount() < 1 {
		return cerr.New(cerr.InvalidMesh, op, "vertices", "mesh has no vertices")
	}
	if m.TriangleCount() < 1 {
		return cerr.New(cerr.InvalidMesh, op, "faces", "mesh has no faces")
	}
	n := len(m.Vertices)
	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return cerr.New(cerr.InvalidMesh, op, "faces",
					"face references out-of-range vertex index")
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return cerr.New(cerr.InvalidMesh, op, "faces",
				"face has repeated vertex indices")
		}
		_ = i
	}
	if warn := checkManifold(m); warn != "" {
		logger.Printf("mesh: %s: %s", op, warn)
	}
	return nil
}

// checkManifold reports (without failing) whether every undirected edge
// of m is shared by exactly two faces, the signature of a closed
// 2-manifold. Winding consistency across an edge is not checked.
func checkManifold(m *TriangleMesh) string {
	type edge struct{ a, b int }
	count := make(map[edge]int)
	for _, f := range m.Faces {
		for i := 0; i < 3; i++ {
			a, b := f[i], f[(i+1)%3]
			if a < b {
				count[edge{a, b}]++
			} else {
				count[edge{b, a}]++
			}
		}
	}
	for _, c := range count {
		if c != 2 {
			return "mesh is not a closed 2-manifold (some edge is not shared by exactly two faces)"
		}
	}
	return ""
}

// Triangulate fan-triangulates any polygonal face with more than three
// indices around its first vertex, in place on a copy, before
// acceptance into the kernel (spec §4.1).
func Triangulate(vertices []vec3.Vec3, polyFaces [][]int) *TriangleMesh {
	out := &TriangleMesh{Vertices: append([]vec3.Vec3(nil), vertices...)}
	for _, poly := range polyFaces {
		if len(poly) < 3 {
			continue
		}
		for i := 1; i < len(poly)-1; i++ {
			out.Faces = append(out.Faces, Face{poly[0], poly[i], poly[i+1]})
		}
	}
	return out
}
