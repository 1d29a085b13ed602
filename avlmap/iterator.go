// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"github.com/bitmark-inc/avlheap/avl"
	"github.com/bitmark-inc/avlheap/fault"
)

// Iterator - ordered traversal of a map
//
// any Add, Erase or Clear invalidates the iterator
type Iterator[K, V any] struct {
	it    *avl.Iterator[entry[K, V]]
	key   *K
	value *V
}

// Iterator - create an unpositioned iterator
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{
		it: m.tree.Iterator(),
	}
}

// First - move to the lowest key, false if the map is empty
func (i *Iterator[K, V]) First() bool {
	return i.cache(i.it.First())
}

// Last - move to the highest key, false if the map is empty
func (i *Iterator[K, V]) Last() bool {
	return i.cache(i.it.Last())
}

// Next - move to the next highest key, false at the end
func (i *Iterator[K, V]) Next() bool {
	return i.cache(i.it.Next())
}

// Previous - move to the next lowest key, false at the start
func (i *Iterator[K, V]) Previous() bool {
	return i.cache(i.it.Previous())
}

// Current - true if positioned at an entry
func (i *Iterator[K, V]) Current() bool {
	return i.cache(i.it.Current())
}

// Key - key of the current entry
func (i *Iterator[K, V]) Key() (K, error) {
	if nil == i.key {
		var zero K
		return zero, fault.ErrNullReference
	}
	return *i.key, nil
}

// Value - pointer to the value of the current entry
func (i *Iterator[K, V]) Value() (*V, error) {
	if nil == i.value {
		return nil, fault.ErrNullReference
	}
	return i.value, nil
}

func (i *Iterator[K, V]) cache(n *avl.Node[entry[K, V]]) bool {
	if nil == n {
		i.key = nil
		i.value = nil
		return false
	}
	i.key = &n.Item.key
	i.value = &n.Item.value
	return true
}
