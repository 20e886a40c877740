package document

import (
	"github.com/johstrackeAI/llm-cad-system/pkg/brep"
	"github.com/johstrackeAI/llm-cad-system/pkg/cerr"
	"github.com/johstrackeAI/llm-cad-system/pkg/stl"
)

// Export dispatches by format name: "STL" and "STEP" produce an opaque
// byte stream; "JSON" is out of core scope; "OBJ"/"DXF" and any other
// name are UnsupportedFormat.
func (d *Document) Export(format string) ([]byte, error) {
	const op = "Document.Export"
	switch format {
	case "STL":
		return stl.EncodeBytes(d.GetMeshData())
	case "STEP":
		return d.exportSTEP()
	case "JSON":
		return nil, cerr.New(cerr.UnsupportedFormat, op, "format", "JSON export is out of core scope")
	default:
		return nil, cerr.New(cerr.UnsupportedFormat, op, "format", "unrecognized export format: "+format)
	}
}

// exportSTEP renders every Part as its own BRep compound and
// concatenates the resulting byte streams; a Document with no parts
// fails with ExportFailure, mirroring brep.EncodePart's empty-mesh check.
func (d *Document) exportSTEP() ([]byte, error) {
	const op = "Document.Export"
	if len(d.parts) == 0 {
		return nil, cerr.New(cerr.ExportFailure, op, "parts", "document has no parts to export")
	}
	var out []byte
	for _, p := range d.parts {
		data, err := brep.EncodePart(p.Name, p.Geometry.Mesh)
		if err != nil {
			return nil, err
		}
		out = append(out, data...)
	}
	return out, nil
}
