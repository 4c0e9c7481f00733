package dataset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/genet/pkg/errors"
	"github.com/YuminosukeSato/genet/pkg/log"
)

// geneColumn is the required header label of the gene-identifier column.
const geneColumn = "Gene"

// LoadExpressionTable reads a tab-separated expression matrix from a file.
// The first row is a header whose first column must be "Gene" followed by
// sample names; each data row is a gene identifier followed by one
// expression value per sample.
func LoadExpressionTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open expression file %s", path)
	}
	defer file.Close()

	table, err := ReadExpressionTable(file, path)
	if err != nil {
		return nil, err
	}

	logger := log.GetLoggerWithName("dataset")
	logger.Info("Expression table loaded",
		log.PathKey, path,
		log.GenesKey, table.NumGenes(),
		log.SamplesKey, table.NumSamples(),
	)
	return table, nil
}

// ReadExpressionTable parses a tab-separated expression matrix from a
// reader. The name argument is used only in error messages.
func ReadExpressionTable(r io.Reader, name string) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}
		return nil, errors.NewParseError(name, 0, "empty file")
	}

	header := strings.Split(strings.TrimRight(scanner.Text(), "\r\n"), "\t")
	if len(header) < 2 {
		return nil, errors.NewParseError(name, 1, "header must list the gene column and at least one sample")
	}
	if header[0] != geneColumn {
		return nil, errors.NewParseError(name, 1, `first header column must be "`+geneColumn+`", got "`+header[0]+`"`)
	}
	samples := header[1:]

	var genes []string
	var values []float64
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != len(samples)+1 {
			return nil, errors.NewParseError(name, lineNo,
				"expected "+strconv.Itoa(len(samples)+1)+" columns, got "+strconv.Itoa(len(fields)))
		}

		genes = append(genes, fields[0])
		for _, field := range fields[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.NewParseError(name, lineNo, "invalid expression value "+strconv.Quote(field))
			}
			values = append(values, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	if len(genes) == 0 {
		return nil, errors.NewParseError(name, 0, "no gene rows found")
	}

	return NewTable(genes, samples, mat.NewDense(len(genes), len(samples), values))
}
