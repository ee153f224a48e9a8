package forest

import (
	"errors"
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	p := DefaultParams()
	p.Species = nil
	if _, err := New(p); !errors.Is(err, ErrNoSpecies) {
		t.Errorf("expected ErrNoSpecies, got %v", err)
	}

	p = DefaultParams()
	p.GridSize = 0
	if _, err := New(p); !errors.Is(err, ErrGridSize) {
		t.Errorf("expected ErrGridSize, got %v", err)
	}

	p = DefaultParams()
	p.Species = append(p.Species, p.Species[0])
	if _, err := New(p); err == nil {
		t.Error("expected error for duplicate species code")
	}
}

func TestInitialPopulation(t *testing.T) {
	l, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if l.TreeCount() != DefaultParams().InitTrees {
		t.Errorf("expected %d trees, got %d", DefaultParams().InitTrees, l.TreeCount())
	}
	if l.Year() != 0 {
		t.Errorf("expected year 0, got %d", l.Year())
	}
	if l.Carbon() <= 0 {
		t.Error("initial carbon stock should be positive")
	}
}

func TestAdvanceYear(t *testing.T) {
	l, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	before := l.Carbon()
	for i := 0; i < 10; i++ {
		if err := l.AdvanceYear(); err != nil {
			t.Fatalf("advance year %d failed: %v", i, err)
		}
	}

	if l.Year() != 10 {
		t.Errorf("expected year 10, got %d", l.Year())
	}
	// A young stand accumulates carbon over a decade.
	if l.Carbon() <= before {
		t.Errorf("expected carbon growth, got %.1f -> %.1f", before, l.Carbon())
	}
}

func TestDeterminism(t *testing.T) {
	p := DefaultParams()
	p.Seed = 1234

	a, err := New(p)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	b, err := New(p)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for i := 0; i < 20; i++ {
		if err := a.AdvanceYear(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if err := b.AdvanceYear(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}

	if a.Carbon() != b.Carbon() {
		t.Errorf("same seed diverged: %.4f vs %.4f", a.Carbon(), b.Carbon())
	}
	if a.TreeCount() != b.TreeCount() {
		t.Errorf("same seed diverged: %d vs %d trees", a.TreeCount(), b.TreeCount())
	}
}

func TestStandSnapshot(t *testing.T) {
	p := DefaultParams()
	l, err := New(p)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	rows := l.StandSnapshot()
	if len(rows) != len(p.Species) {
		t.Fatalf("expected %d stand rows, got %d", len(p.Species), len(rows))
	}

	total := 0
	carbon := 0.0
	for _, r := range rows {
		if r.Year != 0 {
			t.Errorf("expected year 0 rows, got %d", r.Year)
		}
		total += r.Count
		carbon += r.Carbon
	}
	if total != l.TreeCount() {
		t.Errorf("stand rows count %d trees, landscape has %d", total, l.TreeCount())
	}
	if math.Abs(carbon-l.Carbon()) > 1e-6 {
		t.Errorf("stand carbon %.4f != landscape carbon %.4f", carbon, l.Carbon())
	}
}

func TestTreeSnapshot(t *testing.T) {
	l, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	rows := l.TreeSnapshot()
	if len(rows) != l.TreeCount() {
		t.Fatalf("expected %d tree rows, got %d", l.TreeCount(), len(rows))
	}
	for _, r := range rows {
		if r.Dbh <= 0 || r.Height <= 0 {
			t.Errorf("tree %d has non-positive dimensions", r.ID)
		}
		if r.StemMass <= 0 {
			t.Errorf("tree %d has non-positive stem mass", r.ID)
		}
	}
}

func TestAllometry(t *testing.T) {
	sp := DefaultSpecies()[0]
	tree := &Tree{Dbh: 30}
	tree.updateAllometry(sp)

	if tree.Height <= 1.3 || tree.Height >= sp.MaxHeight {
		t.Errorf("height %.2f outside (1.3, %.1f)", tree.Height, sp.MaxHeight)
	}
	if tree.BranchMass >= tree.StemMass {
		t.Error("branch mass should be below stem mass")
	}
	if tree.WoodyMass() <= tree.StemMass {
		t.Error("woody mass should exceed stem mass alone")
	}

	// Bigger tree, bigger pools.
	big := &Tree{Dbh: 60}
	big.updateAllometry(sp)
	if big.StemMass <= tree.StemMass || big.FoliageMass <= tree.FoliageMass {
		t.Error("allometry should be monotonic in dbh")
	}
}

func TestMetrics(t *testing.T) {
	l, err := New(DefaultParams())
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	for _, m := range DefaultMetrics() {
		m.Reset()
		m.Observe(l)
		if m.Value() <= 0 {
			t.Errorf("metric %s should be positive on a populated stand", m.Name())
		}
		m.Reset()
		if m.Value() != 0 {
			t.Errorf("metric %s should be zero after reset", m.Name())
		}
	}
}
