package TreeSet

// base holds the parts of TreeSet and CTreeSet that never compare elements:
// structural removal, traversal, extrema, and teardown. The concrete types
// embed it and add the comparing operations.
type base[T any] struct {
	root nodePtr[T] //nil iff sz==0
	sz   uint
}

// slot returns the owning edge currently pointing at n, which is the root
// slot when n has no parent. dir is the edge index from n's parent to n and
// is ignored for the root.
func (u *base[T]) slot(n nodePtr[T], dir int) *nodePtr[T] {
	if n.parent == nil {
		return &u.root
	}
	return &n.parent.edge[dir]
}

// removeNode splices n out of the tree and decrements sz. dir is the edge
// index from n's parent to n (see findNode of the concrete types).
// The case is picked by n's right child:
// no right child: n's left child (possibly nil) takes n's slot;
// right child without a left child: it takes n's exact position, inheriting
// n's left child;
// otherwise: the in-order successor is detached from its parent, its value
// moves into n, and the emptied successor node is the one discarded. The
// observable shape is the same as relinking n itself but the rewiring stays
// in the at-most-one-child cases.
// The discarded node is fully unlinked so outstanding cursors on it can't
// reach the live tree.
// Time: O(D); Space: O(1)
func (u *base[T]) removeNode(n nodePtr[T], dir int) {
	if rn := n.edge[1]; rn == nil {
		if lc := n.edge[0]; lc != nil {
			lc.parent = n.parent
		}
		*u.slot(n, dir) = n.edge[0]
	} else if rn.edge[0] == nil {
		rn.edge[0] = n.edge[0]
		if rn.edge[0] != nil {
			rn.edge[0].parent = rn
		}
		rn.parent = n.parent
		*u.slot(n, dir) = rn
	} else {
		s := leftmost(rn)
		s.parent.edge[0] = s.edge[1]
		if s.edge[1] != nil {
			s.edge[1].parent = s.parent
		}
		n.v = s.v
		n = s
	}
	n.parent, n.edge[0], n.edge[1] = nil, nil, nil
	u.sz--
}

// Size of the set.
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.sz
}

// Empty reports whether the set has no elements.
// Time: O(1); Space: O(1)
func (u *base[T]) Empty() bool {
	return u.sz == 0
}

// Minimum element of the set. The bool is false when the set is empty, in
// which case the element is undefined.
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum element of the set. The bool is false when the set is empty, in
// which case the element is undefined.
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Range over the elements in ascending order, calling f on each until f
// returns false. The set must not be modified during Range.
// Time: O(n); Space: O(1)
func (u *base[T]) Range(f func(T) bool) {
	if u.root == nil {
		return
	}
	for cur := leftmost(u.root); cur != nil; cur = successor(cur) {
		if !f(cur.v) {
			return
		}
	}
}

// InOrder returns a closure iterator over the elements in ascending order:
// val, valid=f(); f is exhausted once valid turns false. The set must not
// be modified during the iteration.
// Unlike a stack based traversal this walks the parent pointers, so each
// returned closure carries only the current node.
// Time: f(): O(D) worst case, amortized O(1) over a full traversal. Space: O(1)
func (u *base[T]) InOrder() func() (T, bool) {
	cur := u.root
	if cur != nil {
		cur = leftmost(cur)
	}
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = successor(cur)
		return
	}
}

// Begin returns a cursor at the minimum element, equal to End() when the
// set is empty.
// Time: O(D); Space: O(1)
func (u *base[T]) Begin() Cursor[T] {
	if u.root == nil {
		return Cursor[T]{}
	}
	return Cursor[T]{leftmost(u.root)}
}

// End returns the sentinel cursor one past the maximum element.
// Time: O(1); Space: O(1)
func (u *base[T]) End() Cursor[T] {
	return Cursor[T]{}
}

// Clear removes every element. Every node is unlinked with an explicit
// stack instead of recursion, so degenerate chain shaped trees can't
// overflow the goroutine stack; afterwards no node reachable from an old
// cursor links back into the tree.
// Time: O(n); Space: O(D)
func (u *base[T]) Clear() {
	var st []nodePtr[T]
	if u.root != nil {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		n := st[len(st)-1]
		st = st[:len(st)-1]
		if n.edge[0] != nil {
			st = append(st, n.edge[0])
		}
		if n.edge[1] != nil {
			st = append(st, n.edge[1])
		}
		n.parent, n.edge[0], n.edge[1] = nil, nil, nil
	}
	u.root, u.sz = nil, 0
}
