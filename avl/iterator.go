// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlheap/fault"
)

// MaximumHeight - capacity of the iterator's ancestor stack
//
// an AVL tree of height h has at least fib(h+2)-1 nodes, so 64
// levels cannot be reached with any count that fits in memory
const MaximumHeight = 64

// Iterator - in-order traversal in either direction
//
// the stack holds every ancestor of the current node, so the
// direction can be changed at any point.  Any insert or delete on
// the tree invalidates the iterator, call Reset or First/Last after
// modifying the tree.
type Iterator[T any] struct {
	tree    *Tree[T]
	current *Node[T]
	height  int
	stack   [MaximumHeight]*Node[T]
}

// Iterator - create an iterator for the tree, it is not positioned
func (tree *Tree[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		tree: tree,
	}
}

// Reset - forget the current position
func (it *Iterator[T]) Reset() {
	for i := 0; i < it.height; i += 1 {
		it.stack[i] = nil
	}
	it.height = 0
	it.current = nil
}

// Current - the node at the current position, nil if not positioned
func (it *Iterator[T]) Current() *Node[T] {
	return it.current
}

// First - position at the lowest node
func (it *Iterator[T]) First() *Node[T] {
	it.Reset()
	p := it.tree.root
	if nil == p {
		return nil
	}
	it.current = it.descendLeft(p)
	return it.current
}

// Last - position at the highest node
func (it *Iterator[T]) Last() *Node[T] {
	it.Reset()
	p := it.tree.root
	if nil == p {
		return nil
	}
	it.current = it.descendRight(p)
	return it.current
}

// Next - advance to the next highest node, returns nil and leaves
// the iterator unpositioned at the end; when not positioned starts
// again from the lowest node
func (it *Iterator[T]) Next() *Node[T] {
	p := it.current
	if nil == p {
		return it.First()
	}

	if nil != p.right {
		it.push(p)
		it.current = it.descendLeft(p.right)
		return it.current
	}

	// climb while coming up from a right sub-tree
	for {
		parent := it.pop()
		if nil == parent {
			it.current = nil
			return nil
		}
		if p == parent.left {
			it.current = parent
			return parent
		}
		p = parent
	}
}

// Previous - move back to the next lowest node, returns nil and
// leaves the iterator unpositioned at the start; when not positioned
// starts again from the highest node
func (it *Iterator[T]) Previous() *Node[T] {
	p := it.current
	if nil == p {
		return it.Last()
	}

	if nil != p.left {
		it.push(p)
		it.current = it.descendRight(p.left)
		return it.current
	}

	// climb while coming up from a left sub-tree
	for {
		parent := it.pop()
		if nil == parent {
			it.current = nil
			return nil
		}
		if p == parent.right {
			it.current = parent
			return parent
		}
		p = parent
	}
}

// internal: lowest node below p, stacking the path
func (it *Iterator[T]) descendLeft(p *Node[T]) *Node[T] {
	for nil != p.left {
		it.push(p)
		p = p.left
	}
	return p
}

// internal: highest node below p, stacking the path
func (it *Iterator[T]) descendRight(p *Node[T]) *Node[T] {
	for nil != p.right {
		it.push(p)
		p = p.right
	}
	return p
}

func (it *Iterator[T]) push(p *Node[T]) {
	if it.height >= MaximumHeight {
		fault.Panicf("avl: iterator stack overflow, height: %d", it.height)
	}
	it.stack[it.height] = p
	it.height += 1
}

func (it *Iterator[T]) pop() *Node[T] {
	if 0 == it.height {
		return nil
	}
	it.height -= 1
	p := it.stack[it.height]
	it.stack[it.height] = nil
	return p
}
