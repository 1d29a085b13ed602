// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Walk - call f for every node, children before their parent
//
// the next node is found before f is called so f may destroy the
// node it is given; the tree is unusable afterwards if it does, and
// should be Reset
func (tree *Tree[T]) Walk(f func(*Node[T])) {
	p := leftmostLeaf(tree.root)
	for nil != p {
		next := p.up
		if nil != next && p == next.left && nil != next.right {
			next = leftmostLeaf(next.right)
		}
		f(p)
		p = next
	}
}

// internal: first node of a sub-tree in post-order
func leftmostLeaf[T any](p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	for {
		if nil != p.left {
			p = p.left
		} else if nil != p.right {
			p = p.right
		} else {
			return p
		}
	}
}
