package util

// Contains returns whether the given slice contains the given element.
func Contains[T comparable](slice []T, elem T) bool {
	for _, x := range slice {
		if x == elem {
			return true
		}
	}

	return false
}

// Map applies a function to the given slice and returns the transformed slice.
func Map[T, R any](slice []T, f func(T) R) []R {
	mSlice := make([]R, len(slice))

	for i, elem := range slice {
		mSlice[i] = f(elem)
	}

	return mSlice
}

// Reversed returns a new slice containing the elements of the given slice in
// reverse order.  The input slice is not modified.
func Reversed[T any](slice []T) []T {
	rSlice := make([]T, len(slice))

	for i, elem := range slice {
		rSlice[len(slice)-i-1] = elem
	}

	return rSlice
}
