package diagnostics

import (
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestFitReport_TargetsSorted(t *testing.T) {
	report := NewFitReport("lasso")
	report.Add("G3", 0.9, 0.7)
	report.Add("G1", 0.8, 0.6)
	report.Add("G2", 0.7, 0.5)

	targets := report.Targets()
	if len(targets) != 3 {
		t.Fatalf("targets = %d, want 3", len(targets))
	}
	for i, want := range []string{"G1", "G2", "G3"} {
		if targets[i].Gene != want {
			t.Errorf("targets[%d].Gene = %q, want %q", i, targets[i].Gene, want)
		}
	}
}

func TestFitReport_ConcurrentAdd(t *testing.T) {
	report := NewFitReport("forest")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			report.Add("G", float64(i), float64(i))
		}(i)
	}
	wg.Wait()

	if got := len(report.Targets()); got != 50 {
		t.Errorf("targets = %d, want 50", got)
	}
}

func TestFitReport_MeanTestR2(t *testing.T) {
	report := NewFitReport("lasso")
	report.Add("G1", 1, 0.5)
	report.Add("G2", 1, 0.7)
	report.Add("G3", 1, math.NaN())

	got := report.MeanTestR2()
	if math.Abs(got-0.6) > 1e-10 {
		t.Errorf("MeanTestR2 = %v, want 0.6", got)
	}

	empty := NewFitReport("lasso")
	if !math.IsNaN(empty.MeanTestR2()) {
		t.Error("MeanTestR2 on empty report should be NaN")
	}
}

func TestFitReport_SavePlots(t *testing.T) {
	report := NewFitReport("lasso")
	report.Add("G1", 0.95, 0.80)
	report.Add("G2", 0.90, 0.65)
	report.Add("G3", 0.99, math.NaN())

	dir := t.TempDir()

	barPath := filepath.Join(dir, "r2.png")
	if err := report.SaveBarChart(barPath); err != nil {
		t.Fatalf("SaveBarChart: %v", err)
	}
	assertNonEmptyFile(t, barPath)

	scatterPath := filepath.Join(dir, "scatter.png")
	if err := report.SaveScatter(scatterPath); err != nil {
		t.Fatalf("SaveScatter: %v", err)
	}
	assertNonEmptyFile(t, scatterPath)
}

func TestFitReport_SavePlotsEmpty(t *testing.T) {
	report := NewFitReport("lasso")
	if err := report.SaveBarChart(filepath.Join(t.TempDir(), "r2.png")); err == nil {
		t.Error("expected error for empty report")
	}
	if err := report.SaveScatter(filepath.Join(t.TempDir(), "scatter.png")); err == nil {
		t.Error("expected error for empty report")
	}
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}
