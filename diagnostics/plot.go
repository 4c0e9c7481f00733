package diagnostics

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

// SaveBarChart renders the per-target test R2 as a bar chart and writes
// it to path. The image format follows the file extension (png, svg, pdf).
func (r *FitReport) SaveBarChart(path string) error {
	targets := r.Targets()
	if len(targets) == 0 {
		return errors.NewValueError("SaveBarChart", "report has no targets")
	}

	values := make(plotter.Values, len(targets))
	names := make([]string, len(targets))
	for i, ts := range targets {
		v := ts.TestR2
		if math.IsNaN(v) {
			v = 0
		}
		values[i] = v
		names[i] = ts.Gene
	}

	p := plot.New()
	p.Title.Text = "Per-target test R2 (" + r.method + ")"
	p.Y.Label.Text = "R2"

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return errors.Wrap(err, "diagnostics: bar chart")
	}
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = -1
	p.X.Tick.Label.YAlign = -0.5

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, "diagnostics: save bar chart")
	}
	return nil
}

// SaveScatter renders train R2 against test R2 for every target and writes
// it to path. Points far below the diagonal flag overfit targets.
func (r *FitReport) SaveScatter(path string) error {
	targets := r.Targets()
	if len(targets) == 0 {
		return errors.NewValueError("SaveScatter", "report has no targets")
	}

	pts := make(plotter.XYs, 0, len(targets))
	for _, ts := range targets {
		if math.IsNaN(ts.TrainR2) || math.IsNaN(ts.TestR2) {
			continue
		}
		pts = append(pts, plotter.XY{X: ts.TrainR2, Y: ts.TestR2})
	}
	if len(pts) == 0 {
		return errors.NewValueError("SaveScatter", "no targets with defined scores")
	}

	p := plot.New()
	p.Title.Text = "Train vs test R2 (" + r.method + ")"
	p.X.Label.Text = "train R2"
	p.Y.Label.Text = "test R2"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "diagnostics: scatter")
	}
	p.Add(scatter, plotter.NewGrid())

	if err := p.Save(5*vg.Inch, 5*vg.Inch, path); err != nil {
		return errors.Wrap(err, "diagnostics: save scatter")
	}
	return nil
}
