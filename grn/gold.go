package grn

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/YuminosukeSato/genet/metrics"
	"github.com/YuminosukeSato/genet/pkg/errors"
	"github.com/YuminosukeSato/genet/pkg/log"
)

// LoadGoldEdges reads a gold-standard edge list from a TSV file. The file
// is headerless with one edge per line, regulator then target, separated
// by a tab.
func LoadGoldEdges(path string) (EdgeSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "grn: open gold standard %s", path)
	}
	defer f.Close()

	edges, err := ReadGoldEdges(f, path)
	if err != nil {
		return nil, err
	}

	log.GetLoggerWithName("grn.gold").Info("gold standard loaded",
		log.PathKey, path,
		log.EdgesKey, len(edges),
	)
	return edges, nil
}

// ReadGoldEdges parses a headerless two-column edge list. name labels the
// source in parse errors.
func ReadGoldEdges(r io.Reader, name string) (EdgeSet, error) {
	edges := make(EdgeSet)
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, errors.NewParseError(name, lineNo,
				"expected 2 tab-separated columns (regulator, target)")
		}
		regulator := strings.TrimSpace(fields[0])
		target := strings.TrimSpace(fields[1])
		if regulator == "" || target == "" {
			return nil, errors.NewParseError(name, lineNo, "empty gene name")
		}
		edges.Add(Edge{Regulator: regulator, Target: target})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "grn: read gold standard %s", name)
	}
	return edges, nil
}

// Score compares a predicted network against a gold standard by
// intersection-over-union of the two edge sets.
func Score(gold, predicted EdgeSet) metrics.IOUReport {
	report := metrics.EdgeIOU(gold, predicted)
	log.GetLoggerWithName("grn.score").Info("network scored",
		log.IntersectionKey, report.Intersection,
		log.UnionKey, report.Union,
		log.IOUKey, report.IOU,
	)
	return report
}

// ScoreAgainstFile loads a gold-standard edge list and scores the
// predicted network against it.
func ScoreAgainstFile(predicted EdgeSet, goldPath string) (metrics.IOUReport, error) {
	gold, err := LoadGoldEdges(goldPath)
	if err != nil {
		return metrics.IOUReport{}, err
	}
	return Score(gold, predicted), nil
}
