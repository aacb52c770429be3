// Command fillrun runs one simulation configuration without a window and
// prints the final frame as text together with its progress counters.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pkg/errors"

	"morphfill/internal/app"
	"morphfill/internal/core"
	"morphfill/internal/render"
	_ "morphfill/internal/sims/floodfill"
	_ "morphfill/internal/sims/morphology"
	"morphfill/internal/ui"
)

type glypher interface {
	Glyphs() string
}

func main() {
	settings := app.Settings{}
	name := flag.String("sim", "floodfill", "simulation to run (floodfill, morphology)")
	steps := flag.Int("steps", 0, "steps to run; 0 runs until the simulation reports completion")
	seed := flag.Int64("seed", 0, "reset seed (0 keeps the configured seed)")
	limit := flag.Int("limit", 1_000_000, "upper bound on steps when running to completion")
	flag.Var(settings, "set", "sim option as key=value (repeatable)")
	flag.Parse()

	sim, err := core.Lookup(*name, settings)
	if err != nil {
		log.Fatal(errors.Wrap(err, "fillrun"))
	}
	sim.Reset(*seed)

	n := run(sim, *steps, *limit)
	log.Printf("%s: %d steps", sim.Name(), n)

	if g, ok := sim.(glypher); ok {
		fmt.Print(render.Text(sim.Cells(), sim.Size().W, g.Glyphs()))
	}
	fmt.Println(ui.StatusLine(sim, false))
}

func run(sim core.Sim, steps, limit int) int {
	if steps > 0 {
		for i := 0; i < steps; i++ {
			sim.Step()
		}
		return steps
	}
	done, ok := sim.(core.Completer)
	if !ok {
		log.Fatalf("%s never completes; pass -steps", sim.Name())
	}
	n := 0
	for !done.Done() && n < limit {
		sim.Step()
		n++
	}
	if !done.Done() {
		log.Printf("stopped after %d steps without completing", n)
	}
	return n
}
