package grid

import "fmt"

// Substitute replaces each occurrence of pairs[2k] in x with pairs[2k+1],
// leaving unmatched values unchanged (SPEC_FULL.md §4.A). pairs must have
// even length.
func Substitute(x *Grid, pairs []float64) (*Grid, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("grid: substitute pairs must have even length, got %d", len(pairs))
	}

	sub := make(map[float64]float64, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		sub[pairs[i]] = pairs[i+1]
	}

	out := x.Clone()
	for i, v := range out.Data {
		if r, ok := sub[v]; ok {
			out.Data[i] = r
		}
	}
	return out, nil
}
