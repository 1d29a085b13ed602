// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Comparator - three way comparison of a candidate against a node
// already in the tree, positive if the candidate is greater
type Comparator[T any] func(existing *Node[T], candidate *Node[T]) int

// Node - a node in the tree, Item is not used by the tree
type Node[T any] struct {
	left       *Node[T] // left sub-tree
	right      *Node[T] // right sub-tree
	up         *Node[T] // points to parent node
	balance    int8     // -1, 0, +1
	leftNodes  int      // number of nodes in left sub-tree
	rightNodes int      // number of nodes in right sub-tree
	Item       T
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	count   int
	dupes   bool
	compare Comparator[T]
}

// New - create an initially empty tree
//
// a nil comparator gives a tree on which every ordered operation
// fails with fault.ErrMissingComparator
func New[T any](compare Comparator[T]) *Tree[T] {
	return &Tree[T]{
		root:    nil,
		count:   0,
		dupes:   false,
		compare: compare,
	}
}

// AllowDuplicates - permit items that compare equal
func (tree *Tree[T]) AllowDuplicates(allow bool) {
	tree.dupes = allow
}

// DuplicatesAllowed - current duplicate policy
func (tree *Tree[T]) DuplicatesAllowed() bool {
	return tree.dupes
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Reset - forget all nodes without touching them
//
// the caller is responsible for the nodes themselves, see Walk
func (tree *Tree[T]) Reset() {
	tree.root = nil
	tree.count = 0
}

// Height - number of levels in the tree
//
// follows the heavier side at each level so relies on the balance
// factors being correct, see Check
func (tree *Tree[T]) Height() int {
	h := 0
	for p := tree.root; nil != p; h += 1 {
		if p.balance < 0 {
			p = p.left
		} else {
			p = p.right
		}
	}
	return h
}

// Left - left sub-tree
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right sub-tree
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[T]) Parent() *Node[T] {
	return p.up
}

// Balance - height of right sub-tree minus height of left sub-tree
func (p *Node[T]) Balance() int {
	return int(p.balance)
}

// Depth - get the depth of a node
func (p *Node[T]) Depth() int {
	count := 0
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[T]) GetChildrenByDepth(depth int) []*Node[T] {
	level := []*Node[T]{p}
	for ; depth > 0 && len(level) > 0; depth -= 1 {
		next := make([]*Node[T], 0, 2*len(level))
		for _, n := range level {
			if nil != n.left {
				next = append(next, n.left)
			}
			if nil != n.right {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return level
}

// internal: clear the structural fields
func (p *Node[T]) unlink() {
	p.left = nil
	p.right = nil
	p.up = nil
	p.balance = 0
	p.leftNodes = 0
	p.rightNodes = 0
}

// internal: add delta to the sub-tree counts on the path from p to the
// root, left says which side of p changed
func (tree *Tree[T]) adjustCounts(p *Node[T], left bool, delta int) {
	for nil != p {
		if left {
			p.leftNodes += delta
		} else {
			p.rightNodes += delta
		}
		if nil != p.up {
			left = p == p.up.left
		}
		p = p.up
	}
}
