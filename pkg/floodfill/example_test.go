package floodfill_test

import (
	"fmt"

	"morphfill/pkg/floodfill"
	"morphfill/pkg/grid"
)

func ExampleSession() {
	g := grid.FromRows(
		"#######",
		"#######",
		"#######",
		"###....",
		"###....",
	)
	s := floodfill.New(floodfill.Four, floodfill.BFS, 1)
	s.Initialize(g, 1, 1)
	s.Run()
	fmt.Print(s.Result())
	fmt.Println(s.FilledCount(), s.UnsafeCount())
	// Output:
	// .......
	// .#####.
	// .##....
	// .#.....
	// .......
	// 8 14
}
