package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

func edgeSet(edges ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}
	return set
}

func TestEdgeIOU(t *testing.T) {
	tests := []struct {
		name             string
		gold             map[string]struct{}
		predicted        map[string]struct{}
		wantIOU          float64
		wantIntersection int
		wantUnion        int
	}{
		{
			name:             "partial overlap",
			gold:             edgeSet("A->B", "B->C"),
			predicted:        edgeSet("A->B", "C->D"),
			wantIOU:          1.0 / 3.0,
			wantIntersection: 1,
			wantUnion:        3,
		},
		{
			name:             "identical sets",
			gold:             edgeSet("A->B", "B->C", "C->A"),
			predicted:        edgeSet("A->B", "B->C", "C->A"),
			wantIOU:          1,
			wantIntersection: 3,
			wantUnion:        3,
		},
		{
			name:             "disjoint sets",
			gold:             edgeSet("A->B"),
			predicted:        edgeSet("B->A"),
			wantIOU:          0,
			wantIntersection: 0,
			wantUnion:        2,
		},
		{
			name:             "empty prediction",
			gold:             edgeSet("A->B", "B->C"),
			predicted:        edgeSet(),
			wantIOU:          0,
			wantIntersection: 0,
			wantUnion:        2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := EdgeIOU(tt.gold, tt.predicted)
			if math.Abs(report.IOU-tt.wantIOU) > 1e-10 {
				t.Errorf("IOU = %v, want %v", report.IOU, tt.wantIOU)
			}
			if report.Intersection != tt.wantIntersection {
				t.Errorf("Intersection = %d, want %d", report.Intersection, tt.wantIntersection)
			}
			if report.Union != tt.wantUnion {
				t.Errorf("Union = %d, want %d", report.Union, tt.wantUnion)
			}
			if report.IOU < 0 || report.IOU > 1 {
				t.Errorf("IOU %v out of [0, 1]", report.IOU)
			}
		})
	}
}

func TestEdgeIOUEmptyUnion(t *testing.T) {
	var warned []error
	errors.SetWarningHandler(func(w error) { warned = append(warned, w) })
	defer errors.SetWarningHandler(nil)

	report := EdgeIOU(edgeSet(), edgeSet())
	if report.IOU != 0 {
		t.Errorf("IOU = %v, want 0 for empty union", report.IOU)
	}
	if report.Union != 0 || report.Intersection != 0 {
		t.Errorf("sizes = (%d, %d), want (0, 0)", report.Intersection, report.Union)
	}

	if len(warned) != 1 {
		t.Fatalf("warnings = %d, want 1", len(warned))
	}
	var umw *errors.UndefinedMetricWarning
	if !errors.As(warned[0], &umw) {
		t.Fatalf("warning type = %T, want *UndefinedMetricWarning", warned[0])
	}
	if umw.Metric != "edge_iou" {
		t.Errorf("warning metric = %q, want %q", umw.Metric, "edge_iou")
	}
}
