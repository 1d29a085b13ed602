// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlheap/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree[T]) CheckUp() bool {
	if nil == tree.root {
		return true
	}
	if nil != tree.root.up {
		return false
	}
	stack := []*Node[T]{tree.root}
	for n := 0; len(stack) > 0; n += 1 {
		if n > tree.count {
			return false // cycle
		}
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, c := range [2]*Node[T]{p.left, p.right} {
			if nil == c {
				continue
			}
			if c.up != p {
				return false
			}
			stack = append(stack, c)
		}
	}
	return true
}

// Check - verify every structural invariant of the tree
//
//   * parent pointers match child pointers
//   * stored balance is the actual height difference and is in -1..+1
//   * stored sub-tree counts match the sub-trees
//   * in-order sequence is ascending (non-descending with duplicates)
//   * node count matches
//
// returns nil or an error describing the first problem found
func (tree *Tree[T]) Check() error {
	if nil == tree.root {
		if 0 != tree.count {
			return corrupt("empty tree with count: %d", tree.count)
		}
		return nil
	}
	if nil != tree.root.up {
		return corrupt("root has a parent")
	}

	// post-order to compute heights bottom up
	type frame struct {
		node     *Node[T]
		expanded bool
	}
	heights := make(map[*Node[T]]int, tree.count)
	sizes := make(map[*Node[T]]int, tree.count)
	stack := []frame{{node: tree.root}}
	n := 0
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p := f.node

		if !f.expanded {
			n += 1
			if n > tree.count {
				return corrupt("more nodes than count: %d", tree.count)
			}
			stack = append(stack, frame{node: p, expanded: true})
			for _, c := range [2]*Node[T]{p.left, p.right} {
				if nil == c {
					continue
				}
				if c.up != p {
					return corrupt("node at depth: %d has wrong parent", c.Depth())
				}
				stack = append(stack, frame{node: c})
			}
			continue
		}

		lh := heights[p.left]
		rh := heights[p.right]
		if int(p.balance) != rh-lh {
			return corrupt("balance: %d  but heights left: %d  right: %d", p.balance, lh, rh)
		}
		if p.balance < -1 || p.balance > 1 {
			return corrupt("unbalanced node: %d", p.balance)
		}
		if p.leftNodes != sizes[p.left] || p.rightNodes != sizes[p.right] {
			return corrupt("sub-tree counts left: %d  right: %d  but found: %d, %d",
				p.leftNodes, p.rightNodes, sizes[p.left], sizes[p.right])
		}
		heights[p] = 1 + max(lh, rh)
		sizes[p] = 1 + p.leftNodes + p.rightNodes
	}
	if n != tree.count {
		return corrupt("found: %d nodes  count: %d", n, tree.count)
	}

	if nil == tree.compare {
		return nil
	}
	it := tree.Iterator()
	previous := it.First()
	for p := it.Next(); nil != p; p = it.Next() {
		c := tree.compare(previous, p)
		if c < 0 || (0 == c && !tree.dupes) {
			return corrupt("out of order at depth: %d", p.Depth())
		}
		previous = p
	}
	return nil
}

func corrupt(format string, arguments ...interface{}) error {
	return fault.ProcessError(fmt.Sprintf("%s: ", fault.ErrCorruptTree) + fmt.Sprintf(format, arguments...))
}
