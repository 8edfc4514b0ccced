package TreeSet

// Cursor is a forward in-order iterator over a TreeSet or CTreeSet. It is a
// plain value holding only the current node: copying a Cursor copies the
// position, and == compares positions, i.e. two Cursors are equal iff they
// reference the same node (never by comparing the values the nodes hold).
// All exhausted Cursors and the End sentinel are equal to each other.
// The zero Cursor is the End sentinel.
// A Cursor is invalidated when the node it references is removed from its
// set; using it afterwards won't panic but won't reach the live tree either.
type Cursor[T any] struct {
	cur nodePtr[T]
}

// Valid reports whether the cursor references an element, i.e. isn't the
// End sentinel.
func (c Cursor[T]) Valid() bool {
	return c.cur != nil
}

// Value of the referenced element. It must only be called on a Valid cursor.
func (c Cursor[T]) Value() T {
	return c.cur.v
}

// Next advances the cursor to the in-order successor, returning false when
// it moves past the maximum, after which the cursor equals End. Calling
// Next on an exhausted cursor keeps returning false.
// Time: O(D) worst case, amortized O(1) over a full traversal. Space: O(1)
func (c *Cursor[T]) Next() bool {
	if c.cur == nil {
		return false
	}
	c.cur = successor(c.cur)
	return c.cur != nil
}

// Prev would move to the in-order predecessor. Backward iteration isn't
// supported by these sets, so Prev never moves the cursor and always
// reports false.
func (c *Cursor[T]) Prev() bool {
	return false
}
