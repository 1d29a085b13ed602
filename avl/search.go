// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlheap/fault"
)

// FindNode - find a node equal to value
//
// value is only used as the comparator's candidate, so it can be a
// temporary node holding just a key.  A miss returns nil, nil
func (tree *Tree[T]) FindNode(value *Node[T]) (*Node[T], error) {
	if nil == value {
		return nil, fault.ErrInvalidArgument
	}
	if nil == tree.compare {
		return nil, fault.ErrMissingComparator
	}

	p := tree.root
	for nil != p {
		c := tree.compare(p, value)
		switch {
		case c > 0: // p < value
			p = p.right
		case c < 0: // p > value
			p = p.left
		default:
			return p, nil
		}
	}
	return nil, nil
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// First - return the node with the lowest key value
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// Last - return the node with the highest key value
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[T]) Next() *Node[T] {
	if nil != p.right {
		return p.right.first()
	}
	for nil != p.up {
		if p == p.up.left {
			return p.up
		}
		p = p.up
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[T]) Prev() *Node[T] {
	if nil != p.left {
		return p.left.last()
	}
	for nil != p.up {
		if p == p.up.right {
			return p.up
		}
		p = p.up
	}
	return nil
}
