package Sets

// Set is a collection of unique elements.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty Sorted set, the return value will be (x T, false bool). In this
// case the value of x should be undefined. However, depending on
// specific implementations, the value of x might have a meaning, but it's
// advised that x not to be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here.
type Set[E any] interface {
	//Insert e to the Set. Returning true if e wasn't already present.
	//Inserting a present element is a no-op, not an error.
	Insert(e E) bool
	//Remove e from the Set. Returning true if e was present.
	Remove(e E) bool
	//Has element e. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(e E) bool
	//Size of the set.
	Size() uint
	//Range over the elements, calling f on each until f returns false.
	//The set must not be modified during Range.
	Range(f func(E) bool)
}

// Sorted is a Set whose elements form a strict total order. Range visits
// elements in ascending order.
type Sorted[E any] interface {
	Set[E]
	//Minimum element of the set.
	Minimum() (E, bool)
	//Maximum element of the set.
	Maximum() (E, bool)
	//InOrder returns a closure function f acting like an iterator. f
	//gives elements in the in-order traversal of the set, i.e. in
	//ascending order.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The set must not be modified during the iteration of f, otherwise
	//it could corrupt the set. There will be no panic if such cases
	//happens so design the algorithm with this in mind.
	InOrder() func() (E, bool)
}
