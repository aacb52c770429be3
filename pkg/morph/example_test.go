package morph_test

import (
	"fmt"

	"morphfill/pkg/grid"
	"morphfill/pkg/morph"
)

func ExampleMorphology_Apply() {
	g := grid.FromRows(
		".....",
		".###.",
		".###.",
		".###.",
		".....",
	)
	m := morph.New(morph.Square(3), morph.InnerBoundary, morph.BoundaryZero)
	fmt.Print(m.Apply(g))
	// Output:
	// .....
	// .###.
	// .#.#.
	// .###.
	// .....
}
