// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avlmap

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avlheap/avl"
	"github.com/bitmark-inc/avlheap/fault"
)

// Add - insert a copy of key and value
//
// returns a pointer to the stored value which stays valid until the
// entry is erased.  On any error the map is unchanged and nothing is
// released, the key and value still belong to the caller
func (m *Map[K, V]) Add(key K, value V) (*V, error) {
	n, err := m.heap.Alloc()
	if nil != err {
		return nil, err
	}
	n.Item.key = key
	n.Item.value = value

	err = m.tree.AddNode(n)
	if nil != err {
		if fault.ErrDuplicateKey == err && nil != m.log {
			m.log.Debugf("add: duplicate key: %v", key)
		}
		m.discard(n)
		return nil, err
	}
	return &n.Item.value, nil
}

// Find - pointer to the value stored for key
func (m *Map[K, V]) Find(key K) (*V, error) {
	n, err := m.findNode(key)
	if nil != err {
		return nil, err
	}
	return &n.Item.value, nil
}

// Exists - true if an entry with key is present
func (m *Map[K, V]) Exists(key K) bool {
	_, err := m.findNode(key)
	return nil == err
}

// Erase - remove the entry for key
func (m *Map[K, V]) Erase(key K) error {
	n, err := m.findNode(key)
	if nil != err {
		return err
	}
	err = m.tree.EraseNode(n)
	if nil != err {
		return err
	}
	m.destroy(n)
	return nil
}

// Clear - remove every entry and return all memory
func (m *Map[K, V]) Clear() {
	if nil != m.log {
		m.log.Debugf("clear: count: %d  capacity: %d", m.tree.Count(), m.heap.Capacity())
	}
	m.tree.Walk(func(n *avl.Node[entry[K, V]]) {
		release(n.Item.key, n.Item.value)
	})
	m.heap.Clear()
	m.tree.Reset()
}

// Print - draw the tree, returns its depth
func (m *Map[K, V]) Print(w io.Writer) int {
	return m.tree.Print(w, func(n *avl.Node[entry[K, V]]) string {
		return fmt.Sprintf("%v → %v", n.Item.key, n.Item.value)
	})
}

// internal: locate a node using a temporary node holding only the key
func (m *Map[K, V]) findNode(key K) (*avl.Node[entry[K, V]], error) {
	target := avl.Node[entry[K, V]]{}
	target.Item.key = key
	n, err := m.tree.FindNode(&target)
	if nil != err {
		return nil, err
	}
	if nil == n {
		return nil, fault.ErrItemNotFound
	}
	return n, nil
}

// internal: release the payload and return the block to the heap
func (m *Map[K, V]) destroy(n *avl.Node[entry[K, V]]) {
	release(n.Item.key, n.Item.value)
	m.discard(n)
}

// internal: return the block to the heap without releasing the payload
func (m *Map[K, V]) discard(n *avl.Node[entry[K, V]]) {
	err := m.heap.Free(n)
	if nil != err {
		fault.Panicf("avlmap: free node error: %s", err)
	}
}

func release(key interface{}, value interface{}) {
	if r, ok := key.(Releaser); ok {
		r.Release()
	}
	if r, ok := value.(Releaser); ok {
		r.Release()
	}
}
