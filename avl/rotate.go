// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: make replacement take the place of old under parent p, or at the
// root if there is no parent
func (tree *Tree[T]) replaceChild(p *Node[T], old *Node[T], replacement *Node[T]) {
	if nil == p {
		tree.root = replacement
	} else if old == p.left {
		p.left = replacement
	} else {
		p.right = replacement
	}
}

// internal: single RR rotation, right child of p becomes the sub-tree root
//
//        p                 p1
//       / \               /  \
//      a   p1     =>     p    c
//         /  \          / \
//        b    c        a   b
//
// balance factors are valid for any starting balance in -2..+2
func (tree *Tree[T]) rotateLeft(p *Node[T]) *Node[T] {
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.up = p.up
	tree.replaceChild(p.up, p, p1)
	p1.left = p
	p.up = p1

	p.rightNodes = p1.leftNodes
	p1.leftNodes = 1 + p.leftNodes + p.rightNodes

	p.balance = p.balance - 1 - max(p1.balance, 0)
	p1.balance = p1.balance - 1 + min(p.balance, 0)
	return p1
}

// internal: single LL rotation, left child of p becomes the sub-tree root
//
//          p             p1
//         / \           /  \
//        p1  c    =>   a    p
//       /  \               / \
//      a    b             b   c
func (tree *Tree[T]) rotateRight(p *Node[T]) *Node[T] {
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.up = p.up
	tree.replaceChild(p.up, p, p1)
	p1.right = p
	p.up = p1

	p.leftNodes = p1.rightNodes
	p1.rightNodes = 1 + p.leftNodes + p.rightNodes

	p.balance = p.balance + 1 - min(p1.balance, 0)
	p1.balance = p1.balance + 1 + max(p.balance, 0)
	return p1
}

// internal: restore balance at a node whose balance is ±2 and return
// the new root of the sub-tree
//
//   balance  child balance  action
//   -2       <= 0           LL
//   -2       > 0            LR (RR at child, then LL)
//   +2       >= 0           RR
//   +2       < 0            RL (LL at child, then RR)
func (tree *Tree[T]) rebalance(p *Node[T]) *Node[T] {
	if p.balance < 0 {
		if p.left.balance > 0 {
			tree.rotateLeft(p.left)
		}
		return tree.rotateRight(p)
	}
	if p.right.balance < 0 {
		tree.rotateRight(p.right)
	}
	return tree.rotateLeft(p)
}
