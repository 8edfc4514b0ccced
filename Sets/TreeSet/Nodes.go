package TreeSet

// A node in the TreeSet/CTreeSet.
// The zero value is meaningless.
type node[T any] struct {
	v      T
	parent nodePtr[T]    //non-owning back-reference, nil at the root
	edge   [2]nodePtr[T] //0 -> left, 1 -> right
}

// Pointer to a node. A nil nodePtr means an absent node; the root's parent
// is the only nil parent in a non-empty tree.
type nodePtr[T any] *node[T]

// leftmost descendant of u, the minimum of u's subtree. u mustn't be nil.
// Time: O(D); Space: O(1)
func leftmost[T any](u nodePtr[T]) nodePtr[T] {
	for u.edge[0] != nil {
		u = u.edge[0]
	}
	return u
}

// rightmost descendant of u, the maximum of u's subtree. u mustn't be nil.
// Time: O(D); Space: O(1)
func rightmost[T any](u nodePtr[T]) nodePtr[T] {
	for u.edge[1] != nil {
		u = u.edge[1]
	}
	return u
}

// successor of u in in-order, nil when u is the last node. Walks only child
// and parent links, so no stack is needed: with a right child the successor
// is the leftmost node of that subtree; otherwise climb while u is its
// parent's right child, then one more step up.
// Time: O(D); Space: O(1)
func successor[T any](u nodePtr[T]) nodePtr[T] {
	if u.edge[1] != nil {
		return leftmost(u.edge[1])
	}
	for u.parent != nil && u != u.parent.edge[0] {
		u = u.parent
	}
	return u.parent
}
