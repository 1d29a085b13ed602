// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avl"
	"github.com/bitmark-inc/avlheap/fault"
	"github.com/bitmark-inc/avlheap/heap"
)

//go:generate mockgen -destination=../mocks/releaser.go -package=mocks github.com/bitmark-inc/avlheap/avlmap Releaser

// Configuration - heap sizing and duplicate policy
type Configuration struct {
	Heap            heap.Configuration `gluamapper:"heap" json:"heap"`
	AllowDuplicates bool               `gluamapper:"allow_duplicates" json:"allow_duplicates"`
}

// Releaser - implemented by keys or values that hold resources
// needing release when their entry is destroyed
//
// only stored entries are released, by Erase and Clear; a key or
// value rejected by Add is never released
type Releaser interface {
	Release()
}

// the payload of each tree node
type entry[K, V any] struct {
	key   K
	value V
}

// Map - ordered map from K to V
type Map[K, V any] struct {
	log     *logger.L
	compare func(a, b K) int
	tree    *avl.Tree[entry[K, V]]
	heap    *heap.Heap[avl.Node[entry[K, V]]]
}

// New - create a map ordered by compare, which returns a negative
// value if a < b, zero if equal and positive if a > b
//
// log may be nil
func New[K, V any](compare func(a, b K) int, configuration Configuration, log *logger.L) (*Map[K, V], error) {
	if nil == compare {
		return nil, fault.ErrMissingComparator
	}

	m := &Map[K, V]{
		log:     log,
		compare: compare,
		heap:    heap.New[avl.Node[entry[K, V]]](log),
	}
	m.tree = avl.New[entry[K, V]](m.nodeCompare)
	m.tree.AllowDuplicates(configuration.AllowDuplicates)

	err := m.heap.Initialise(configuration.Heap)
	if nil != err {
		return nil, err
	}
	return m, nil
}

// adapt the key ordering to the tree's comparator
func (m *Map[K, V]) nodeCompare(existing *avl.Node[entry[K, V]], candidate *avl.Node[entry[K, V]]) int {
	return m.compare(candidate.Item.key, existing.Item.key)
}

// AllowDuplicates - permit more than one entry with equal keys
//
// Find and Erase act on an arbitrary one of the equal entries
func (m *Map[K, V]) AllowDuplicates(allow bool) {
	m.tree.AllowDuplicates(allow)
}

// Count - number of entries
func (m *Map[K, V]) Count() int {
	return m.tree.Count()
}

// Capacity - number of entries that can be held before the heap grows
func (m *Map[K, V]) Capacity() int {
	return m.heap.Capacity()
}

// Reserve - pre-allocate space for at least n entries
func (m *Map[K, V]) Reserve(n int) error {
	return m.heap.Reserve(n)
}

// Height - number of levels in the tree
func (m *Map[K, V]) Height() int {
	return m.tree.Height()
}

// Check - verify the tree structure and ordering
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}

// Statistics - running totals of the underlying heap
func (m *Map[K, V]) Statistics() heap.Statistics {
	return m.heap.Statistics()
}
