package dist

import "fmt"

func errShapeMismatch(op string) error {
	return fmt.Errorf("%s: shape mismatch among data/parameter grids", op)
}
