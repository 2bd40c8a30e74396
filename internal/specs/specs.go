// Package specs reads comparison matrices and alternative tables from CSV and
// writes rankings back out.
package specs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
)

// ParseSpecsTable converts raw rows into a SpecsTable. Row 0 is the header; every
// later row holds an alternative name followed by numeric values. Positions in
// errors are 1-based and count data rows only.
func ParseSpecsTable(records [][]string) (ahp.SpecsTable, error) {
	if len(records) == 0 {
		return ahp.SpecsTable{}, nil
	}

	table := ahp.SpecsTable{Header: trimAll(records[0])}
	for i, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		row := ahp.SpecRow{Name: strings.TrimSpace(rec[0])}
		for j, cell := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return ahp.SpecsTable{}, &ahp.EvaluationError{
					Kind: ahp.KindScoringShape,
					Err:  fmt.Errorf("invalid spec value %q at row %d, col %d", cell, i+1, j+2),
				}
			}
			row.Values = append(row.Values, v)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadSpecs reads a specs table from CSV.
func ReadSpecs(r io.Reader) (ahp.SpecsTable, error) {
	records, err := gocsv.LazyCSVReader(r).ReadAll()
	if err != nil {
		return ahp.SpecsTable{}, fmt.Errorf("read specs: %w", err)
	}
	return ParseSpecsTable(records)
}

// ReadMatrix reads a comparison matrix from CSV. Cells are decimals or
// fractions such as 1/3. When the first row is not numeric it is taken as a
// header of criterion names and the first column of every later row as a label;
// the names are returned alongside the matrix.
func ReadMatrix(r io.Reader) (ahp.ComparisonMatrix, []string, error) {
	records, err := gocsv.LazyCSVReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read matrix: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("read matrix: no rows")
	}

	var names []string
	first := records[0]
	if _, err := ParseJudgment(first[len(first)-1]); err != nil {
		names = trimAll(first[1:])
		records = records[1:]
	}

	m := make(ahp.ComparisonMatrix, 0, len(records))
	for i, rec := range records {
		if names != nil {
			rec = rec[1:]
		}
		row := make([]float64, len(rec))
		for j, cell := range rec {
			v, err := ParseJudgment(cell)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid value at row %d, col %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		m = append(m, row)
	}
	return m, names, nil
}

// ParseJudgment parses a single pairwise judgment, either a decimal or a
// fraction like 1/5.
func ParseJudgment(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, den, isFraction := strings.Cut(s, "/")
	if !isFraction {
		return strconv.ParseFloat(s, 64)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, err
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("fraction %q has a zero denominator", s)
	}
	return n / d, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
