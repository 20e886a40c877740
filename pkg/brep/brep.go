// Package brep implements the BRep exporter adapter: for each Part, a
// compound of planar triangle faces is written as a STEP AP214 text
// stream (spec §4.7), in the style of a minimal STEP entity writer —
// three CARTESIAN_POINTs, VERTEX_POINTs and EDGE_CURVEs and one
// ADVANCED_FACE per triangle, referenced by number ("#id") the way ISO-10303-21 requires.
package brep

import (
	"bytes"
	"fmt"
	"time"

	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
	"github.com/johstrackeAI/llm-cad-system/pkg/vec3"
)

// SchemaIdentifier is the STEP schema submitted to the writer.
const SchemaIdentifier = "AP214"

type entity struct {
	id   int
	text string
}

type writer struct {
	entities []entity
	next     int
}

func (w *writer) emit(format string, args ...any) int {
	w.next++
	w.entities = append(w.entities, entity{id: w.next, text: fmt.Sprintf(format, args...)})
	return w.next
}

func (w *writer) point(p vec3.Vec3) int {
	return w.emit("CARTESIAN_POINT('',(%.6f,%.6f,%.6f));", p.X, p.Y, p.Z)
}

// face writes one planar triangular face: three CARTESIAN_POINTs,
// three VERTEX_POINTs, three EDGE_CURVEs closing an EDGE_LOOP, bound
// by a FACE_OUTER_BOUND. No LINE or PLANE entity is written: the edge
// curve and face surface geometry fields are left unset ($).
func (w *writer) face(a, b, c vec3.Vec3) int {
	pa, pb, pc := w.point(a), w.point(b), w.point(c)
	va := w.emit("VERTEX_POINT('',#%d);", pa)
	vb := w.emit("VERTEX_POINT('',#%d);", pb)
	vc := w.emit("VERTEX_POINT('',#%d);", pc)

	edge := func(from, to int) int {
		return w.emit("EDGE_CURVE('',#%d,#%d,$,.T.);", from, to)
	}
	eAB := edge(va, vb)
	eBC := edge(vb, vc)
	eCA := edge(vc, va)

	oriented := func(e int) int {
		return w.emit("ORIENTED_EDGE('',*,*,#%d,.T.);", e)
	}
	oAB, oBC, oCA := oriented(eAB), oriented(eBC), oriented(eCA)
	loop := w.emit("EDGE_LOOP('',(#%d,#%d,#%d));", oAB, oBC, oCA)
	bound := w.emit("FACE_OUTER_BOUND('',#%d,.T.);", loop)
	return w.emit("ADVANCED_FACE('',(#%d),$,.T.);", bound)
}

// EncodePart renders a single Part's mesh as a STEP MANIFOLD_SOLID_BREP
// entity over one ADVANCED_FACE per triangle.
func EncodePart(name string, m *mesh.TriangleMesh) ([]byte, error) {
	const op = "brep.EncodePart"
	if m.IsEmpty() {
		return nil, cerr.New(cerr.ExportFailure, op, "mesh", "cannot export an empty mesh")
	}

	w := &writer{}
	faceIDs := make([]int, 0, m.TriangleCount())
	for _, f := range m.Faces {
		faceIDs = append(faceIDs, w.face(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]))
	}
	shell := w.emit("CLOSED_SHELL('',(%s));", joinRefs(faceIDs))
	w.emit("MANIFOLD_SOLID_BREP('%s',#%d);", name, shell)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ISO-10303-21;")
	fmt.Fprintln(&buf, "HEADER;")
	fmt.Fprintln(&buf, "FILE_DESCRIPTION(('STEP AP214'),'1');")
	fmt.Fprintf(&buf, "FILE_NAME('%s','%s',(''),(''),'llm-cad-system BRep writer','','');\n",
		name, time.Now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&buf, "FILE_SCHEMA(('%s'));\n", SchemaIdentifier)
	fmt.Fprintln(&buf, "ENDSEC;")
	fmt.Fprintln(&buf, "DATA;")
	for _, e := range w.entities {
		fmt.Fprintf(&buf, "#%d=%s\n", e.id, e.text)
	}
	fmt.Fprintln(&buf, "ENDSEC;")
	fmt.Fprintln(&buf, "END-ISO-10303-21;")

	return buf.Bytes(), nil
}

func joinRefs(ids []int) string {
	var buf bytes.Buffer
	for i, id := range ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "#%d", id)
	}
	return buf.String()
}
