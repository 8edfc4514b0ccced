package TreeSet

import (
	"golang.org/x/exp/constraints"
)

// TreeSet is an unbalanced binary search tree with no repeated values and a
// parent pointer in every node, so in-order iteration needs no stack or
// recursion. T is the type of values it will hold.
// There is no rebalancing: the depth D of the tree is O(n) in the worst case
// (for example after inserting values in ascending order), and all O(D)
// costs below degrade accordingly. Use Build to get a balanced shape from
// already sorted data, or a self-balancing tree when adversarial insertion
// orders matter.
// A TreeSet isn't safe for concurrent use; callers needing that must
// synchronize externally.
type TreeSet[T constraints.Ordered] struct {
	base[T]
}

// New TreeSet of type T.
func New[T constraints.Ordered]() *TreeSet[T] {
	return &TreeSet[T]{}
}

// Build a TreeSet from sli. This is faster than repeatedly calling Insert
// and yields the most balanced shape possible, which repeated Insert doesn't
// guarantee. The given slice must be sorted in ascending order and mustn't
// contain duplicate elements.
// If safe==true, this function will check if the conditions are met and
// panic with InvalidSliceError if the conditions are broken. Otherwise, this
// function won't perform the check, and it is up to the user to ensure the
// conditions are met(otherwise the tree will be corrupt). It's suggested to
// set safe to false if the conditions are met as this can reduce some
// redundant checks.
// Recursive. Time: O(n).
func Build[T constraints.Ordered](sli []T, safe bool) *TreeSet[T] {
	var build func([]T, nodePtr[T]) nodePtr[T]
	if safe {
		build = func(s []T, p nodePtr[T]) nodePtr[T] {
			if len(s) == 0 {
				return nil
			}
			mid := len(s) >> 1
			n := &node[T]{v: s[mid], parent: p}
			l, r := build(s[0:mid], n), build(s[mid+1:], n)
			if l != nil && !(l.v < s[mid]) {
				panic(InvalidSliceError[T]{l.v, s[mid]})
			}
			if r != nil && !(s[mid] < r.v) {
				panic(InvalidSliceError[T]{s[mid], r.v})
			}
			n.edge[0], n.edge[1] = l, r
			return n
		}
	} else {
		build = func(s []T, p nodePtr[T]) nodePtr[T] {
			if len(s) == 0 {
				return nil
			}
			mid := len(s) >> 1
			n := &node[T]{v: s[mid], parent: p}
			n.edge[0], n.edge[1] = build(s[0:mid], n), build(s[mid+1:], n)
			return n
		}
	}
	return &TreeSet[T]{base[T]{build(sli, nil), uint(len(sli))}}
}

// findNode locates the node holding v. dir is the edge index by which the
// returned node was reached from its parent; it defaults to 0 and is
// meaningless for the root (see removeNode). Ties descend right, the same
// policy Insert uses.
func (u *TreeSet[T]) findNode(v T) (nodePtr[T], int) {
	dir := 0
	cur := u.root
	for cur != nil && v != cur.v {
		if v < cur.v {
			dir = 0
		} else {
			dir = 1
		}
		cur = cur.edge[dir]
	}
	return cur, dir
}

// Insert v to the set. Returning true if v wasn't already present; inserting
// a present value is a no-op reporting false, never an error.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &node[T]{v: v}
		u.sz++
		return true
	}
	for cur := u.root; ; {
		if v == cur.v {
			return false
		}
		dir := 0
		if v > cur.v {
			dir = 1
		}
		if cur.edge[dir] == nil {
			cur.edge[dir] = &node[T]{v: v, parent: cur}
			u.sz++
			return true
		}
		cur = cur.edge[dir]
	}
}

// InsertAll inserts every element of vs in order, returning how many were
// actually inserted. There is no atomicity across the batch: a no-op on one
// element doesn't affect the others.
func (u *TreeSet[T]) InsertAll(vs []T) uint {
	var c uint
	for _, v := range vs {
		if u.Insert(v) {
			c++
		}
	}
	return c
}

// Remove v from the set. Returning true if v was present; removing an
// absent value is a no-op reporting false and leaves the set untouched.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Remove(v T) bool {
	n, dir := u.findNode(v)
	if n == nil {
		return false
	}
	u.removeNode(n, dir)
	return true
}

// RemoveAll removes every element of vs in order, returning how many were
// actually removed. There is no atomicity across the batch.
func (u *TreeSet[T]) RemoveAll(vs []T) uint {
	var c uint
	for _, v := range vs {
		if u.Remove(v) {
			c++
		}
	}
	return c
}

// Has element v.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.edge[0]
		} else if v == cur.v {
			return true
		} else {
			cur = cur.edge[1]
		}
	}
	return false
}

// Count of v in the set, 1 or 0. A TreeSet holds no duplicates.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Count(v T) uint {
	if u.Has(v) {
		return 1
	}
	return 0
}

// Get a pointer to the stored value equal to v, nil if v is absent. The
// pointed-to value mustn't be mutated in a way that changes its order.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Get(v T) *T {
	n, _ := u.findNode(v)
	if n == nil {
		return nil
	}
	return &n.v
}

// Find the element equal to v, returning the End cursor when v is absent.
// Time: O(D); Space: O(1)
func (u *TreeSet[T]) Find(v T) Cursor[T] {
	n, _ := u.findNode(v)
	return Cursor[T]{n}
}
