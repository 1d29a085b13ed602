// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree only manages structure: nodes are supplied by the caller,
// who also owns their memory.  AddNode links a node in and EraseNode
// unlinks it; neither allocates nor frees.  The payload of a node
// stays at the same address for as long as the node is in the tree,
// including when the node is erased with two children, so previously
// obtained node pointers remain valid across any rebalance.
//
// Ordering is by a comparator that is given the node already in the
// tree and the candidate node:
//
//   compare(existing, candidate) == 0   equal
//   compare(existing, candidate)  > 0   candidate goes right
//   compare(existing, candidate)  < 0   candidate goes left
//
// When duplicates are allowed an equal candidate goes into the left
// sub-tree, the relative order of equal items is not defined.
package avl
