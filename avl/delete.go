// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlheap/fault"
)

// EraseNode - unlink a node that is currently in the tree
//
// the node is not freed and its payload is not touched, only the
// structural fields are cleared.  Use FindNode first to locate a node
// from a key.
func (tree *Tree[T]) EraseNode(node *Node[T]) error {
	if nil == node {
		return fault.ErrNilNode
	}

	// with two children, move the node down to the position of its
	// in-order neighbour on the heavier side so that it has at most
	// one child
	if nil != node.left && nil != node.right {
		if node.balance < 0 {
			tree.swap(node, node.left.last())
		} else {
			tree.swap(node, node.right.first())
		}
	}

	child := node.left
	if nil == child {
		child = node.right
	}

	p := node.up
	if nil != child {
		child.up = p
	}

	left := false
	if nil != p {
		left = node == p.left
	}
	tree.replaceChild(p, node, child)
	tree.adjustCounts(p, left, -1)

	node.unlink()
	tree.count -= 1

	tree.deleteBalance(p, left)
	return nil
}

// internal: walk up from the parent of a removed node while the
// sub-tree height shrinks
func (tree *Tree[T]) deleteBalance(p *Node[T], left bool) {
	for nil != p {
		if left {
			p.balance += 1
		} else {
			p.balance -= 1
		}

		up := p.up
		if nil != up {
			left = p == up.left
		}

		switch p.balance {
		case -1, +1:
			// was level, one side is now shorter: height did not change
			return
		case 0:
			// longer side was shortened
		default:
			p = tree.rebalance(p)
			if 0 != p.balance {
				// a rotation with a level child keeps the height
				return
			}
		}
		p = up
	}
}

// internal: exchange the tree positions of node and s, where s is a
// descendant of node; payloads stay where they are
func (tree *Tree[T]) swap(node *Node[T], s *Node[T]) {
	up, left, right, balance := node.up, node.left, node.right, node.balance
	sUp, sLeft, sRight, sBalance := s.up, s.left, s.right, s.balance

	s.up, s.left, s.right, s.balance = up, left, right, balance
	node.up, node.left, node.right, node.balance = sUp, sLeft, sRight, sBalance
	s.leftNodes, node.leftNodes = node.leftNodes, s.leftNodes
	s.rightNodes, node.rightNodes = node.rightNodes, s.rightNodes

	switch s {
	case left:
		s.left = node
		node.up = s
	case right:
		s.right = node
		node.up = s
	default:
		tree.replaceChild(sUp, s, node)
	}
	tree.replaceChild(up, node, s)

	if nil != s.left {
		s.left.up = s
	}
	if nil != s.right {
		s.right.up = s
	}
	if nil != node.left {
		node.left.up = node
	}
	if nil != node.right {
		node.right.up = node
	}
}
