package TreeSet

// CTreeSet is the version of TreeSet for element types without a built-in
// order. All methods are implemented exactly as TreeSet except for using the
// lessThan and equals functions given at construction for comparisons.
// The two functions must describe the same strict total order: whenever
// equals(a,b)==false, exactly one of lessThan(a,b) and lessThan(b,a) must
// hold. If they disagree, lookups and inserts walk inconsistent paths and
// the ordering invariant is corrupted silently, without a panic.
type CTreeSet[T any] struct {
	base[T]
	lt, eq func(T, T) bool
}

// New1 is the CTreeSet equivalence of New.
func New1[T any](lessThan, equals func(T, T) bool) *CTreeSet[T] {
	return &CTreeSet[T]{lt: lessThan, eq: equals}
}

// Build1 is the CTreeSet equivalence of Build. The given slice must be
// sorted ascending by lessThan and contain no duplicates under equals;
// if safe==true this is checked and Build1 panics with InvalidSliceError
// on a violation.
// Recursive. Time: O(n).
func Build1[T any](sli []T, lessThan, equals func(T, T) bool, safe bool) *CTreeSet[T] {
	var build func([]T, nodePtr[T]) nodePtr[T]
	if safe {
		build = func(s []T, p nodePtr[T]) nodePtr[T] {
			if len(s) == 0 {
				return nil
			}
			mid := len(s) >> 1
			n := &node[T]{v: s[mid], parent: p}
			l, r := build(s[0:mid], n), build(s[mid+1:], n)
			if l != nil && !lessThan(l.v, s[mid]) {
				panic(InvalidSliceError[T]{l.v, s[mid]})
			}
			if r != nil && !lessThan(s[mid], r.v) {
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
	return &CTreeSet[T]{base[T]{build(sli, nil), uint(len(sli))}, lessThan, equals}
}

// findNode [TreeSet.findNode], using lt and eq.
func (u *CTreeSet[T]) findNode(v T) (nodePtr[T], int) {
	dir := 0
	cur := u.root
	for cur != nil && !u.eq(v, cur.v) {
		if u.lt(v, cur.v) {
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
func (u *CTreeSet[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &node[T]{v: v}
		u.sz++
		return true
	}
	for cur := u.root; ; {
		if u.eq(v, cur.v) {
			return false
		}
		dir := 0
		if !u.lt(v, cur.v) {
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

// InsertAll [TreeSet.InsertAll].
func (u *CTreeSet[T]) InsertAll(vs []T) uint {
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
func (u *CTreeSet[T]) Remove(v T) bool {
	n, dir := u.findNode(v)
	if n == nil {
		return false
	}
	u.removeNode(n, dir)
	return true
}

// RemoveAll [TreeSet.RemoveAll].
func (u *CTreeSet[T]) RemoveAll(vs []T) uint {
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
func (u *CTreeSet[T]) Has(v T) bool {
	for cur := u.root; cur != nil; {
		if u.eq(v, cur.v) {
			return true
		} else if u.lt(v, cur.v) {
			cur = cur.edge[0]
		} else {
			cur = cur.edge[1]
		}
	}
	return false
}

// Count of v in the set, 1 or 0. A CTreeSet holds no duplicates.
// Time: O(D); Space: O(1)
func (u *CTreeSet[T]) Count(v T) uint {
	if u.Has(v) {
		return 1
	}
	return 0
}

// Get a pointer to the stored value equal to v, nil if v is absent. The
// pointed-to value mustn't be mutated in a way that changes its order.
// Time: O(D); Space: O(1)
func (u *CTreeSet[T]) Get(v T) *T {
	n, _ := u.findNode(v)
	if n == nil {
		return nil
	}
	return &n.v
}

// Find the element equal to v, returning the End cursor when v is absent.
// Time: O(D); Space: O(1)
func (u *CTreeSet[T]) Find(v T) Cursor[T] {
	n, _ := u.findNode(v)
	return Cursor[T]{n}
}
