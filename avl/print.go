// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is printed above its parent, format renders the
// item of each node; returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer, format func(*Node[T]) string) int {
	return printTree(w, tree.root, "", rootBranch, format)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, p *Node[T], prefix string, br branch, format func(*Node[T]) string) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, rightBranch, format)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := "-"
	if nil != p.up {
		up = format(p.up)
	}
	fmt.Fprintf(w, "%s ^%s %+2d\n", format(p), up, p.balance)
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, leftBranch, format)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
