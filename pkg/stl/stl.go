// Package stl implements the binary STL writer and reader: the exact
// byte layout of spec §4.6, bit-exact.
package stl

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
	"github.com/johstrackeAI/llm-cad-system/pkg/vec3"
)

// headerTag is written into the 80-byte STL header. It does not begin
// with "solid" so a reader cannot mistake this binary file for ASCII STL.
const headerTag = "binary STL produced by llm-cad-system"

// Encode writes m as binary STL to w: an 80-byte header, a 4-byte
// little-endian triangle count, then 50 bytes per triangle (12 bytes
// normal, 36 bytes vertices, 2 bytes attribute count = 0).
func Encode(w io.Writer, m *mesh.TriangleMesh) error {
	var header [80]byte
	copy(header[:], headerTag)
	if _, err := w.Write(header[:]); err != nil {
		return cerr.Wrap(cerr.ExportFailure, "stl.Encode", "header", "failed to write STL header", err)
	}

	count := m.TriangleCount()
	if err := binary.Write(w, binary.LittleEndian, uint32(count)); err != nil {
		return cerr.Wrap(cerr.ExportFailure, "stl.Encode", "count", "failed to write triangle count", err)
	}

	for _, f := range m.Faces {
		n := m.FaceNormal(f)
		if err := writeVec3(w, n); err != nil {
			return cerr.Wrap(cerr.ExportFailure, "stl.Encode", "normal", "failed to write triangle normal", err)
		}
		for _, idx := range f {
			if err := writeVec3(w, m.Vertices[idx]); err != nil {
				return cerr.Wrap(cerr.ExportFailure, "stl.Encode", "vertex", "failed to write triangle vertex", err)
			}
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return cerr.Wrap(cerr.ExportFailure, "stl.Encode", "attr", "failed to write attribute byte count", err)
		}
	}
	return nil
}

// EncodeBytes encodes m and returns the result as a byte slice,
// buffering fully before returning so a caller can write it atomically
// (spec §7: no partial writes).
func EncodeBytes(m *mesh.TriangleMesh) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeVec3(w io.Writer, v vec3.Vec3) error {
	coords := [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
	return binary.Write(w, binary.LittleEndian, coords)
}

// Decode parses a binary STL stream into a TriangleMesh, building one
// unshared vertex triple per triangle. Used for the STL round-trip
// property and for test tooling, not by the Document export path.
func Decode(r io.Reader) (*mesh.TriangleMesh, error) {
	const op = "stl.Decode"
	var header [80]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, cerr.Wrap(cerr.InvalidMesh, op, "header", "failed to read STL header", err)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, cerr.Wrap(cerr.InvalidMesh, op, "count", "failed to read triangle count", err)
	}

	out := &mesh.TriangleMesh{
		Vertices: make([]vec3.Vec3, 0, count*3),
		Faces:    make([]mesh.Face, 0, count),
	}
	for i := uint32(0); i < count; i++ {
		if _, err := readVec3(r); err != nil { // normal, recomputed on demand elsewhere
			return nil, cerr.Wrap(cerr.InvalidMesh, op, "normal", "failed to read triangle normal", err)
		}
		base := len(out.Vertices)
		for v := 0; v < 3; v++ {
			vert, err := readVec3(r)
			if err != nil {
				return nil, cerr.Wrap(cerr.InvalidMesh, op, "vertex", "failed to read triangle vertex", err)
			}
			out.Vertices = append(out.Vertices, vert)
		}
		var attr uint16
		if err := binary.Read(r, binary.LittleEndian, &attr); err != nil {
			return nil, cerr.Wrap(cerr.InvalidMesh, op, "attr", "failed to read attribute byte count", err)
		}
		out.Faces = append(out.Faces, mesh.Face{base, base + 1, base + 2})
	}
	return out, nil
}

func readVec3(r io.Reader) (vec3.Vec3, error) {
	var coords [3]float32
	if err := binary.Read(r, binary.LittleEndian, &coords); err != nil {
		return vec3.Vec3{}, err
	}
	return vec3.Vec3{X: float64(coords[0]), Y: float64(coords[1]), Z: float64(coords[2])}, nil
}
