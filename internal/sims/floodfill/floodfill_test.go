package floodfill

import (
	"testing"

	"morphfill/internal/core"
	ff "morphfill/pkg/floodfill"
	"morphfill/pkg/grid"
)

// solid swaps in an all-foreground pattern so fills are predictable.
func solid(t *testing.T, size, radius int) *Demo {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = size, size
	cfg.Radius = radius
	d := NewWithConfig(cfg)
	d.src = grid.New(size, size, true)
	d.restart()
	return d
}

func run(d *Demo) {
	for !d.Done() {
		d.Step()
	}
}

func TestFromMapParsesKeys(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":   "30",
		"radius": "1",
		"conn":   "8",
		"alg":    "dfs",
		"x":      "3",
		"y":      "4",
	})
	if cfg.Width != 30 || cfg.Height != 30 || cfg.Radius != 1 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Conn != ff.Eight || cfg.Alg != ff.DFS || cfg.StartX != 3 || cfg.StartY != 4 {
		t.Fatalf("unexpected fill config %+v", cfg)
	}
	bad := FromMap(map[string]string{"radius": "-1", "conn": "6", "alg": "astar"})
	if bad != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", bad)
	}
}

func TestStartDefaultsToCenter(t *testing.T) {
	d := New(24)
	if p := d.Start(); p.X != 12 || p.Y != 12 {
		t.Fatalf("expected center start, got %v", p)
	}
	if !d.Session().Initialized() {
		t.Fatal("expected the fill to be initialized on construction")
	}
}

func TestRunCountsSteps(t *testing.T) {
	d := New(24)
	run(d)
	if d.Steps() != d.Session().FilledCount() {
		t.Fatalf("steps %d != filled %d", d.Steps(), d.Session().FilledCount())
	}
	processed := 0
	for _, v := range d.Cells() {
		if v == displayProcessed || v == displayCurrent {
			processed++
		}
	}
	if processed != d.Session().FilledCount() {
		t.Fatalf("display shows %d processed cells, session filled %d", processed, d.Session().FilledCount())
	}
	before := d.Steps()
	d.Step()
	if d.Steps() != before {
		t.Fatal("expected Step to be a no-op once done")
	}
}

func TestSelectCell(t *testing.T) {
	d := solid(t, 10, 2)
	if !d.SelectCell(5, 5) {
		t.Fatal("expected in-bounds selection to succeed")
	}
	run(d)
	if got := d.Session().FilledCount(); got != 36 {
		t.Fatalf("expected the 6x6 safe interior to fill, got %d", got)
	}

	if !d.SelectCell(0, 0) {
		t.Fatal("expected corner selection to succeed")
	}
	if !d.Done() || d.Session().State(0, 0) != ff.Unsafe {
		t.Fatal("expected an unsafe corner seed to finish immediately")
	}
	if d.SelectCell(10, 0) {
		t.Fatal("expected out-of-bounds selection to be rejected")
	}
	if p := d.Start(); p.X != 0 || p.Y != 0 {
		t.Fatalf("rejected selection moved the start to %v", p)
	}
}

func TestRadiusChangeRestarts(t *testing.T) {
	d := solid(t, 10, 2)
	d.Step()
	d.Step()
	if !d.SetIntParameter("radius", 0) {
		t.Fatal("expected radius to be adjustable")
	}
	if d.Steps() != 0 || d.Session().SafetyRadius() != 0 || !d.Session().Initialized() {
		t.Fatal("expected radius change to restart the fill")
	}
	run(d)
	if got := d.Session().FilledCount(); got != 100 {
		t.Fatalf("expected full fill at radius 0, got %d", got)
	}
	if d.SetIntParameter("radius", 6) || d.SetIntParameter("conn", 2) || d.SetIntParameter("alg", 5) {
		t.Fatal("expected out-of-range fill settings to be rejected")
	}
}

func TestConnectivityAndAlgorithmSetters(t *testing.T) {
	d := solid(t, 10, 0)
	if !d.SetIntParameter("conn", 1) || d.Session().Connectivity() != ff.Eight {
		t.Fatal("expected 8-connectivity")
	}
	if !d.SetIntParameter("alg", int(ff.DFS)) || d.Session().Algorithm() != ff.DFS {
		t.Fatal("expected DFS")
	}
	d.Step()
	d.Step()
	p, _ := d.Session().Current()
	if p.X != 6 || p.Y != 6 {
		t.Fatalf("expected DFS to pop the last diagonal first, got %v", p)
	}
}

func TestSafetyPreview(t *testing.T) {
	d := solid(t, 10, 2)
	cells, ok := d.SafetyPreview(5, 5)
	if !ok || len(cells) != 13 {
		t.Fatalf("expected a fitting 13 cell disk, got %d cells ok=%v", len(cells), ok)
	}
	if _, ok := d.SafetyPreview(1, 5); ok {
		t.Fatal("expected the disk to cross the border")
	}
	if _, ok := d.SafetyPreview(-1, 5); ok {
		t.Fatal("expected out-of-bounds preview to fail")
	}
}

func TestDisplayEncodesStates(t *testing.T) {
	d := solid(t, 10, 0)
	d.Step()
	cells := d.Cells()
	if cells[5*10+5] != displayCurrent {
		t.Fatalf("expected current cell marker, got %d", cells[5*10+5])
	}
	if cells[4*10+5] != displayQueued {
		t.Fatalf("expected queued neighbour, got %d", cells[4*10+5])
	}
	if cells[0] != displayOpen {
		t.Fatalf("expected untouched open cell, got %d", cells[0])
	}
	if len(d.Palette()) != int(displayValues) {
		t.Fatalf("palette has %d entries", len(d.Palette()))
	}
}

func TestResetDeterministic(t *testing.T) {
	d := New(24)
	run(d)
	filled := d.Session().FilledCount()
	d.Reset(0)
	if d.Steps() != 0 {
		t.Fatal("expected Reset to restart the fill")
	}
	run(d)
	if d.Session().FilledCount() != filled {
		t.Fatalf("expected identical fill after reset, got %d vs %d", d.Session().FilledCount(), filled)
	}
}

func TestParametersExposeControls(t *testing.T) {
	d := New(12)
	snap := d.Parameters()
	for _, ctrl := range d.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no parameter", ctrl.Key)
		}
	}
}

func TestRegistered(t *testing.T) {
	sim, err := core.Lookup("floodfill", map[string]string{"size": "16"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sim.(core.CellSelector); !ok {
		t.Fatal("expected floodfill to accept cell selection")
	}
	if _, ok := sim.(core.Completer); !ok {
		t.Fatal("expected floodfill to report completion")
	}
}

func TestGlyphsCoverDisplayValues(t *testing.T) {
	d := New(12)
	if n := len([]rune(d.Glyphs())); n != int(displayValues) {
		t.Fatalf("glyph table has %d entries", n)
	}
	if n := len(d.Palette()); n != int(displayValues) {
		t.Fatalf("palette has %d entries", n)
	}
}
