// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Get - node at a zero based position in the in-order sequence, nil
// if index is out of range
func (tree *Tree[T]) Get(index int) *Node[T] {
	if index < 0 || index >= tree.count {
		return nil
	}
	p := tree.root
	for nil != p {
		nl := p.leftNodes
		switch {
		case index < nl:
			p = p.left
		case index > nl:
			// skip left nodes + 1 (for this node)
			index -= nl + 1
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// IndexOf - zero based position of a node in the in-order sequence
//
// the node must be in a tree, a detached node gives its position
// within its own sub-tree
func (p *Node[T]) IndexOf() int {
	index := p.leftNodes
	for ; nil != p.up; p = p.up {
		if p == p.up.right {
			index += p.up.leftNodes + 1
		}
	}
	return index
}
