package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

//*******************************************
// utility functions
//*******************************************

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Contains[T comparable](list List[T], value T) bool {
	return slices.Contains(list, value)
}
