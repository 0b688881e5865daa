package grid

import (
	"fmt"
	"math"
)

// ReclassTable is a 2-column mapping table for Reclassify: each row is
// (fromValue, toValue). A row with a NaN fromValue specifies the
// replacement applied to NaN input cells.
type ReclassTable [][2]float64

// Reclassify replaces each value in x with its mapped value from table
// (SPEC_FULL.md §4.A). Values not present in the table become NaN when
// naDefault is true; otherwise their presence is an error.
func Reclassify(x *Grid, table ReclassTable, naDefault bool) (*Grid, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("grid: reclassify table is empty")
	}

	lookup := make(map[float64]float64, len(table))
	var naReplacement float64
	haveNA := false
	for _, row := range table {
		from, to := row[0], row[1]
		if Missing(from) {
			naReplacement = to
			haveNA = true
			continue
		}
		lookup[from] = to
	}

	out := New(x.Rows, x.Cols)
	for i, v := range x.Data {
		if Missing(v) {
			if haveNA {
				out.Data[i] = naReplacement
			} else {
				out.Data[i] = math.NaN()
			}
			continue
		}
		if to, ok := lookup[v]; ok {
			out.Data[i] = to
			continue
		}
		if naDefault {
			out.Data[i] = math.NaN()
		} else {
			return nil, fmt.Errorf("grid: reclassify: value %g at index %d has no entry in the reclass table", v, i)
		}
	}
	return out, nil
}
