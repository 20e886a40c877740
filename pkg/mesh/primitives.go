package mesh

import (
	"math"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/vec3"
)

// DefaultCylinderSegments is the circular resolution used by Cylinder
// when the caller does not specify one.
const DefaultCylinderSegments = 32

func checkDimension(op, arg string, v float64) error {
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return cerr.New(cerr.InvalidDimension, op, arg, "dimension must be positive and finite")
	}
	return nil
}

// Box tessellates an axis-aligned box of the given dimensions, centered
// at the origin: 8 vertices at (+/-w/2, +/-h/2, +/-d/2) and 12
// outward-facing triangles (two per face).
func Box(width, height, depth float64) (*GeometryData, error) {
	if err := checkDimension("Box", "width", width); err != nil {
		return nil, err
	}
	if err := checkDimension("Box", "height", height); err != nil {
		return nil, err
	}
	if err := checkDimension("Box", "depth", depth); err != nil {
		return nil, err
	}

	hw, hh, hd := width/2, height/2, depth/2

	// Vertex order: 0..3 is the -z ring and 4..7 the +z ring, each
	// counter-clockwise viewed from +z starting at (-x, -y).
	v := func(sx, sy, sz float64) vec3.Vec3 { return vec3.Vec3{X: sx * hw, Y: sy * hh, Z: sz * hd} }
	verts := []vec3.Vec3{
		v(-1, -1, -1), // 0
		v(+1, -1, -1), // 1
		v(+1, +1, -1), // 2
		v(-1, +1, -1), // 3
		v(-1, -1, +1), // 4
		v(+1, -1, +1), // 5
		v(+1, +1, +1), // 6
		v(-1, +1, +1), // 7
	}

	// Each face listed as a CCW quad viewed from outside, split along
	// its lower-left to upper-right diagonal.
	quads := [6][4]int{
		{0, 3, 2, 1}, // -Z (bottom, viewed from outside i.e. below)
		{4, 5, 6, 7}, // +Z (top)
		{0, 1, 5, 4}, // -Y (front)
		{2, 3, 7, 6}, // +Y (back)
		{0, 4, 7, 3}, // -X (left)
		{1, 2, 6, 5}, // +X (right)
	}

	faces := make([]Face, 0, 12)
	for _, q := range quads {
		faces = append(faces, Face{q[0], q[1], q[2]}, Face{q[0], q[2], q[3]})
	}

	return &GeometryData{
		Kind:       BoxKind{Width: width, Height: height, Depth: depth},
		Parameters: map[string]float64{"width": width, "height": height, "depth": depth},
		Mesh:       &TriangleMesh{Vertices: verts, Faces: faces},
	}, nil
}

// Cylinder tessellates a cylinder of the given radius and height,
// centered at the origin with its axis along +Z, at the given circular
// resolution (segments <= 0 selects DefaultCylinderSegments). It
// produces 2*segments+2 vertices (2*segments side vertices plus one
// cap center per end) and 4*segments triangles (2*segments side
// triangles, split along the lower-left diagonal of each side quad,
// plus segments fan triangles per cap).
func Cylinder(radius, height float64, segments int) (*GeometryData, error) {
	if err := checkDimension("Cylinder", "radius", radius); err != nil {
		return nil, err
	}
	if err := checkDimension("Cylinder", "height", height); err != nil {
		return nil, err
	}
	if segments <= 0 {
		segments = DefaultCylinderSegments
	}
	n := segments
	hh := height / 2

	verts := make([]vec3.Vec3, 0, 2*n+2)
	// Bottom ring: indices 0..n-1.
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts = append(verts, vec3.Vec3{X: radius * math.Cos(theta), Y: radius * math.Sin(theta), Z: -hh})
	}
	// Top ring: indices n..2n-1.
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		verts = append(verts, vec3.Vec3{X: radius * math.Cos(theta), Y: radius * math.Sin(theta), Z: hh})
	}
	bottomCenter := len(verts) // index 2n
	verts = append(verts, vec3.Vec3{X: 0, Y: 0, Z: -hh})
	topCenter := len(verts) // index 2n+1
	verts = append(verts, vec3.Vec3{X: 0, Y: 0, Z: hh})

	faces := make([]Face, 0, 4*n)

	// Side quads: bottom[i], bottom[i+1], top[i+1], top[i], split along
	// the lower-left diagonal (bottom[i] -> top[i+1]).
	for i := 0; i < n; i++ {
		b0, b1 := i, (i+1)%n
		t0, t1 := n+i, n+(i+1)%n
		faces = append(faces,
			Face{b0, b1, t1},
			Face{b0, t1, t0},
		)
	}

	// Bottom cap: fan from bottomCenter, wound to face outward (-Z)
	// which for a +Z-up cap means reverse ring order.
	for i := 0; i < n; i++ {
		i1 := (i + 1) % n
		faces = append(faces, Face{bottomCenter, i1, i})
	}
	// Top cap: fan from topCenter, outward is +Z so forward ring order.
	for i := 0; i < n; i++ {
		i1 := (i + 1) % n
		faces = append(faces, Face{topCenter, n + i, n + i1})
	}

	return &GeometryData{
		Kind:       CylinderKind{Radius: radius, Height: height, Segments: n},
		Parameters: map[string]float64{"radius": radius, "height": height, "segments": float64(n)},
		Mesh:       &TriangleMesh{Vertices: verts, Faces: faces},
	}, nil
}
