// Package document implements Document, the mutable history-bearing
// container of Parts: bounded undo/redo, export dispatch, and the
// combined-mesh query used by the STL export.
package document

import (
	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/mesh"
	"github.com/johstrackeAI/llm-cad-system/pkg/part"
)

// DefaultHistoryDepth is the history/redo stack cap used by New when
// the caller does not specify one.
const DefaultHistoryDepth = 128

// edit is a tagged variant recording one reversible mutation on a
// Document. applyAndInvert performs the edit in place and returns its
// own inverse, to be pushed onto the opposite stack.
type edit interface {
	applyAndInvert(d *Document) edit
}

type editAddPart struct {
	index int
	p     part.Part
}

type editRemovePart struct {
	index int
}

type editReplacePart struct {
	index int
	p     part.Part
}

func (e editAddPart) applyAndInvert(d *Document) edit {
	d.parts = append(d.parts[:e.index:e.index], append([]part.Part{e.p}, d.parts[e.index:]...)...)
	return editRemovePart{index: e.index}
}

func (e editRemovePart) applyAndInvert(d *Document) edit {
	removed := d.parts[e.index]
	d.parts = append(d.parts[:e.index:e.index], d.parts[e.index+1:]...)
	return editAddPart{index: e.index, p: removed}
}

func (e editReplacePart) applyAndInvert(d *Document) edit {
	cur := d.parts[e.index]
	d.parts[e.index] = e.p
	return editReplacePart{index: e.index, p: cur}
}

// Document is the mutable, history-bearing container of Parts.
// Document exclusively owns its Parts; it is not safe for concurrent
// use without external synchronization (spec §5).
type Document struct {
	Name         string
	parts        []part.Part
	history      []edit
	redo         []edit
	historyDepth int
}

// New creates an empty Document with the default history depth.
func New(name string) *Document {
	return NewWithHistoryDepth(name, DefaultHistoryDepth)
}

// NewWithHistoryDepth creates an empty Document whose undo/redo stacks
// are capped at depth entries.
func NewWithHistoryDepth(name string, depth int) *Document {
	return &Document{Name: name, historyDepth: depth}
}

// Parts returns a snapshot slice of the Document's current parts, in
// insertion order. Mutating the returned slice does not affect d.
func (d *Document) Parts() []part.Part {
	out := make([]part.Part, len(d.parts))
	copy(out, d.parts)
	return out
}

func (d *Document) pushHistory(e edit) {
	d.history = append(d.history, e)
	if len(d.history) > d.historyDepth {
		d.history = d.history[len(d.history)-d.historyDepth:]
	}
	d.redo = nil
}

// AddPart appends p to the parts list; the reverse edit is "remove the
// part at this index".
func (d *Document) AddPart(p part.Part) {
	d.parts = append(d.parts, p)
	d.pushHistory(editRemovePart{index: len(d.parts) - 1})
}

// RemovePart removes and returns the part at index; the reverse edit is
// "re-insert this part at this index".
func (d *Document) RemovePart(index int) (part.Part, error) {
	if index < 0 || index >= len(d.parts) {
		return part.Part{}, cerr.New(cerr.InvalidMesh, "Document.RemovePart", "index", "index out of range")
	}
	p := d.parts[index]
	d.parts = append(d.parts[:index:index], d.parts[index+1:]...)
	d.pushHistory(editAddPart{index: index, p: p})
	return p, nil
}

// ReplacePart swaps the part at index for newPart and returns the
// replaced part; the reverse edit restores the old part at this index.
func (d *Document) ReplacePart(index int, newPart part.Part) (part.Part, error) {
	if index < 0 || index >= len(d.parts) {
		return part.Part{}, cerr.New(cerr.InvalidMesh, "Document.ReplacePart", "index", "index out of range")
	}
	old := d.parts[index]
	d.parts[index] = newPart
	d.pushHistory(editReplacePart{index: index, p: old})
	return old, nil
}

// GetPart returns the part at index.
func (d *Document) GetPart(index int) (part.Part, error) {
	if index < 0 || index >= len(d.parts) {
		return part.Part{}, cerr.New(cerr.InvalidMesh, "Document.GetPart", "index", "index out of range")
	}
	return d.parts[index], nil
}

// Undo pops the most recent edit, applies its reverse, and pushes the
// forward edit this produces onto redo. Returns false if history is
// empty; this is non-fatal per spec's HistoryEmpty, reported as a bool
// rather than an error.
func (d *Document) Undo() bool {
	if len(d.history) == 0 {
		return false
	}
	n := len(d.history) - 1
	e := d.history[n]
	d.history = d.history[:n]
	forward := e.applyAndInvert(d)
	d.redo = append(d.redo, forward)
	return true
}

// Redo is the symmetric counterpart of Undo: it pops from redo, applies
// it, and pushes the edit this produces back onto history. Returns
// false if redo is empty.
func (d *Document) Redo() bool {
	if len(d.redo) == 0 {
		return false
	}
	n := len(d.redo) - 1
	e := d.redo[n]
	d.redo = d.redo[:n]
	reverse := e.applyAndInvert(d)
	d.history = append(d.history, reverse)
	if len(d.history) > d.historyDepth {
		d.history = d.history[len(d.history)-d.historyDepth:]
	}
	return true
}

// GetMeshData concatenates every Part's triangle mesh into one mesh,
// offsetting later parts' vertex indices by the running vertex count.
func (d *Document) GetMeshData() *mesh.TriangleMesh {
	meshes := make([]*mesh.TriangleMesh, len(d.parts))
	for i, p := range d.parts {
		meshes[i] = p.Geometry.Mesh
	}
	return mesh.Concat(meshes...)
}
