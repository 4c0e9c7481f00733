package metrics

import (
	"github.com/YuminosukeSato/genet/pkg/errors"
)

// IOUReport carries the set sizes behind an intersection-over-union score
// so callers can log them alongside the ratio itself.
type IOUReport struct {
	Intersection int
	Union        int
	GoldSize     int
	PredSize     int
	IOU          float64
}

// EdgeIOU computes the intersection-over-union of two edge sets.
//
// Edges are keyed by their string encoding ("regulator->target"), so the
// same edge present in both sets counts once toward the intersection.
// When both sets are empty the union is empty and the ratio is undefined;
// this returns 0.0 and emits an UndefinedMetricWarning instead of failing.
func EdgeIOU(gold, predicted map[string]struct{}) IOUReport {
	report := IOUReport{
		GoldSize: len(gold),
		PredSize: len(predicted),
	}

	small, large := gold, predicted
	if len(predicted) < len(gold) {
		small, large = predicted, gold
	}
	for edge := range small {
		if _, ok := large[edge]; ok {
			report.Intersection++
		}
	}
	report.Union = len(gold) + len(predicted) - report.Intersection

	if report.Union == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(
			"edge_iou", "both edge sets are empty, treating IOU as zero", 0.0))
		report.IOU = 0.0
		return report
	}

	report.IOU = float64(report.Intersection) / float64(report.Union)
	return report
}
