package grn

import (
	"math"
	"strings"
	"testing"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

func TestReadGoldEdges(t *testing.T) {
	input := "G1\tG2\nG2\tG3\n\nG1\tG3\r\n"

	edges, err := ReadGoldEdges(strings.NewReader(input), "gold.tsv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("edges = %d, want 3", len(edges))
	}
	for _, want := range []Edge{
		{Regulator: "G1", Target: "G2"},
		{Regulator: "G2", Target: "G3"},
		{Regulator: "G1", Target: "G3"},
	} {
		if !edges.Contains(want) {
			t.Errorf("missing edge %s", want)
		}
	}
}

func TestReadGoldEdges_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{
			name:     "too many columns",
			input:    "G1\tG2\nG1\tG2\tG3\n",
			wantLine: 2,
		},
		{
			name:     "single column",
			input:    "G1G2\n",
			wantLine: 1,
		},
		{
			name:     "empty gene name",
			input:    "G1\tG2\n\tG3\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGoldEdges(strings.NewReader(tt.input), "gold.tsv")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error type = %T, want *ParseError", err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
		})
	}
}

func TestScore(t *testing.T) {
	gold := make(EdgeSet)
	gold.Add(Edge{Regulator: "A", Target: "B"})
	gold.Add(Edge{Regulator: "B", Target: "C"})

	predicted := make(EdgeSet)
	predicted.Add(Edge{Regulator: "A", Target: "B"})
	predicted.Add(Edge{Regulator: "C", Target: "D"})

	report := Score(gold, predicted)
	if math.Abs(report.IOU-1.0/3.0) > 1e-10 {
		t.Errorf("IOU = %v, want 1/3", report.IOU)
	}
	if report.Intersection != 1 || report.Union != 3 {
		t.Errorf("sizes = (%d, %d), want (1, 3)", report.Intersection, report.Union)
	}
}
