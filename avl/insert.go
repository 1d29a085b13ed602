// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlheap/fault"
)

// AddNode - link a new node into the tree
//
// the node must not already be in a tree, its structural fields are
// overwritten.  If an equal node exists and duplicates are not
// allowed the tree is unchanged and fault.ErrDuplicateKey is returned
func (tree *Tree[T]) AddNode(node *Node[T]) error {
	if nil == node {
		return fault.ErrNilNode
	}
	if nil == tree.compare {
		return fault.ErrMissingComparator
	}

	if nil == tree.root {
		node.unlink()
		tree.root = node
		tree.count = 1
		return nil
	}

	// find the leaf position
	p := tree.root
	left := false
search:
	for {
		c := tree.compare(p, node)
		if 0 == c && !tree.dupes {
			return fault.ErrDuplicateKey
		}
		if c > 0 {
			if nil == p.right {
				break search
			}
			p = p.right
		} else {
			if nil == p.left {
				left = true
				break search
			}
			p = p.left
		}
	}

	node.unlink()
	node.up = p
	if left {
		p.left = node
	} else {
		p.right = node
	}
	tree.count += 1
	tree.adjustCounts(p, left, 1)

	tree.insertBalance(node)
	return nil
}

// internal: walk up from a new leaf while the sub-tree height grows
func (tree *Tree[T]) insertBalance(node *Node[T]) {
	for child := node; nil != child.up; {
		p := child.up
		if child == p.left {
			p.balance -= 1
		} else {
			p.balance += 1
		}

		switch p.balance {
		case 0:
			// the shorter side caught up, height did not change
			return
		case -1, +1:
			// height grew by one
			child = p
		default:
			// a rotation after an insert restores the original height
			tree.rebalance(p)
			return
		}
	}
}
