// Package grn infers gene regulatory networks from expression data.
//
// A network is a set of directed edges "regulator->target". Each target
// gene is modelled as a regression on all other genes; the regulators the
// model deems relevant become the incoming edges of that target. Two
// inference methods are provided, sparse linear regression (Lasso) and
// random-forest feature importance, behind a common Method interface.
package grn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

// edgeSeparator joins a regulator and its target in the string encoding.
const edgeSeparator = "->"

// Edge is a directed regulatory interaction from Regulator to Target.
type Edge struct {
	Regulator string
	Target    string
}

// String encodes the edge as "regulator->target".
func (e Edge) String() string {
	return e.Regulator + edgeSeparator + e.Target
}

// ParseEdge decodes an edge from its "regulator->target" encoding.
func ParseEdge(s string) (Edge, error) {
	reg, target, ok := strings.Cut(s, edgeSeparator)
	if !ok || reg == "" || target == "" {
		return Edge{}, errors.NewValueError("ParseEdge",
			fmt.Sprintf("edge must have the form \"regulator->target\", got %q", s))
	}
	return Edge{Regulator: reg, Target: target}, nil
}

// EdgeSet is a set of edges keyed by their string encoding.
type EdgeSet map[string]struct{}

// Add inserts the edge into the set.
func (s EdgeSet) Add(e Edge) {
	s[e.String()] = struct{}{}
}

// Contains reports whether the edge is in the set.
func (s EdgeSet) Contains(e Edge) bool {
	_, ok := s[e.String()]
	return ok
}

// Sorted returns the encoded edges in lexicographic order, for stable
// output and comparisons.
func (s EdgeSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
