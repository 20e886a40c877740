// Command democad builds a small assembly — four legs, one apron,
// and a tabletop — to exercise the document, transform, and export
// layers end to end, the way lignin's examples/simple_box.go walked
// its design-graph builder.
package main

import (
	"fmt"
	"log"

	"github.com/johstrackeAI/llm-cad-system/pkg/document"
	"github.com/johstrackeAI/llm-cad-system/pkg/part"
	"github.com/johstrackeAI/llm-cad-system/pkg/vec3"
)

func main() {
	doc := document.New("simple-table")

	leg, err := part.Box("leg", 50, 50, 750)
	if err != nil {
		log.Fatal(err)
	}
	apron, err := part.Box("apron", 100, 50, 600)
	if err != nil {
		log.Fatal(err)
	}
	top, err := part.Box("top", 600, 600, 25)
	if err != nil {
		log.Fatal(err)
	}

	legPositions := [][3]float64{
		{0, 0, 0},
		{550, 0, 0},
		{0, 550, 0},
		{550, 550, 0},
	}
	for i, pos := range legPositions {
		l := leg.Translate(pos[0], pos[1], pos[2])
		l.Name = fmt.Sprintf("leg-%d", i)
		doc.AddPart(l)
	}

	a := apron.Rotate(1.5707963267948966, vec3.AxisZ).Translate(0, 0, 700)
	a.Name = "apron-front"
	doc.AddPart(a)

	t := top.Translate(0, 0, 775)
	t.Name = "top"
	doc.AddPart(t)

	fmt.Printf("design %q: %d parts\n", doc.Name, len(doc.Parts()))
	for _, p := range doc.Parts() {
		fmt.Printf("  - %s (volume %.1f mm^3)\n", p.Name, p.Volume())
	}

	data, err := doc.Export("STL")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("exported %d bytes of binary STL\n", len(data))

	doc.Undo()
	fmt.Printf("after undo: %d parts\n", len(doc.Parts()))
}
