package TreeSet

import "fmt"

// InvalidSliceError is the panic value of Build and Build1 when the given
// slice isn't sorted in strictly ascending order. Prev and Next are a pair
// of values that appear in the wrong order.
type InvalidSliceError[T any] struct {
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't sorted strictly ascending: %v isn't less than %v", e.Prev, e.Next)
}
