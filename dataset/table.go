// Package dataset provides loading and splitting of gene-expression matrices
// for per-gene regression inference.
//
// An expression table is a genes × samples matrix keyed by gene identifier.
// Tables are immutable after loading: every accessor returns copies so a
// table can be shared safely across parallel inference workers.
package dataset

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/genet/pkg/errors"
)

// Table is an immutable genes × samples expression matrix with unique gene
// row labels.
type Table struct {
	genes   []string
	samples []string
	index   map[string]int
	data    *mat.Dense
}

// NewTable builds a table from gene row labels, sample column labels and a
// genes × samples matrix. Row labels must be unique and dimensions must
// match the label counts.
func NewTable(genes, samples []string, data *mat.Dense) (*Table, error) {
	if len(genes) == 0 || len(samples) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyTable)
	}

	r, c := data.Dims()
	if r != len(genes) {
		return nil, errors.NewDimensionError("dataset.NewTable", len(genes), r, 0)
	}
	if c != len(samples) {
		return nil, errors.NewDimensionError("dataset.NewTable", len(samples), c, 1)
	}

	index := make(map[string]int, len(genes))
	for i, gene := range genes {
		if _, dup := index[gene]; dup {
			return nil, errors.NewValueError("dataset.NewTable", "duplicate gene row label: "+gene)
		}
		index[gene] = i
	}

	return &Table{
		genes:   append([]string(nil), genes...),
		samples: append([]string(nil), samples...),
		index:   index,
		data:    mat.DenseCopyOf(data),
	}, nil
}

// Genes returns the gene row labels in table order.
func (t *Table) Genes() []string {
	return append([]string(nil), t.genes...)
}

// Samples returns the sample column labels in table order.
func (t *Table) Samples() []string {
	return append([]string(nil), t.samples...)
}

// NumGenes returns the number of gene rows.
func (t *Table) NumGenes() int { return len(t.genes) }

// NumSamples returns the number of sample columns.
func (t *Table) NumSamples() int { return len(t.samples) }

// HasGene reports whether the table contains a row for the given gene.
func (t *Table) HasGene(gene string) bool {
	_, ok := t.index[gene]
	return ok
}

// Row returns a copy of the expression values of one gene across all
// samples, in sample column order.
func (t *Table) Row(gene string) ([]float64, error) {
	i, ok := t.index[gene]
	if !ok {
		return nil, errors.NewGeneNotFoundError(gene, len(t.genes))
	}
	row := make([]float64, len(t.samples))
	mat.Row(row, i, t.data)
	return row, nil
}

// Regulators returns the gene labels that remain when the target row is
// removed, preserving the table's original row order. These labels align
// 1:1 with the feature columns produced by Split.
func (t *Table) Regulators(target string) ([]string, error) {
	if _, ok := t.index[target]; !ok {
		return nil, errors.NewGeneNotFoundError(target, len(t.genes))
	}
	regulators := make([]string, 0, len(t.genes)-1)
	for _, gene := range t.genes {
		if gene != target {
			regulators = append(regulators, gene)
		}
	}
	return regulators, nil
}
