package stack

import "errors"

var (
	errWeightUndefined = errors.New("stack: weight undefined for a defined value")
	errWeightNegative  = errors.New("stack: negative weight")
	errAllWeightsZero  = errors.New("stack: sum of weights is zero")
	errShapeMismatch   = errors.New("stack: value and weight stacks have different shapes")
)
