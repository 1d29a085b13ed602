// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package heap

import (
	"github.com/bitmark-inc/avlheap/fault"
)

// Alloc - return a zeroed block, reusing reclaimed blocks if any are
// available, otherwise grow the heap by the configured grow count
//
// a growth that would pass the maximum count fails with
// fault.ErrOutOfMemory and leaves the heap unchanged, it is never
// reduced to fit the remaining room
func (h *Heap[T]) Alloc() (*T, error) {
	if !h.initialised {
		return nil, fault.ErrNotInitialised
	}

	if 0 == len(h.free) {
		if 0 != h.maximumCount && h.capacity+h.growCount > h.maximumCount {
			return nil, fault.ErrOutOfMemory
		}
		h.grow(h.growCount)
	}

	last := len(h.free) - 1
	p := h.free[last]
	h.free[last] = nil
	h.free = h.free[:last]

	h.used[p] = struct{}{}
	h.count += 1
	h.allocations.Increment()
	return p, nil
}

// Free - return a block to the free list
//
// nothing in the block is finalised, the block is just zeroed so
// that it does not hold references.  A block that is not currently
// allocated from this heap, including one already freed, gives
// fault.ErrInvalidArgument and is not touched
func (h *Heap[T]) Free(p *T) error {
	if !h.initialised {
		return fault.ErrNotInitialised
	}
	if nil == p {
		return fault.ErrNilPointer
	}
	if _, ok := h.used[p]; !ok {
		return fault.ErrInvalidArgument
	}
	delete(h.used, p)

	var zero T
	*p = zero

	h.free = append(h.free, p)
	h.count -= 1
	h.frees.Increment()
	return nil
}

// Reserve - ensure at least n blocks exist without further growth
func (h *Heap[T]) Reserve(n int) error {
	if !h.initialised {
		return fault.ErrNotInitialised
	}
	if n < 0 {
		return fault.ErrInvalidCount
	}
	if n <= h.capacity {
		return nil
	}
	if 0 != h.maximumCount && n > h.maximumCount {
		return fault.ErrOutOfMemory
	}
	h.grow(n - h.capacity)
	return nil
}

// Clear - release all blocks, every outstanding pointer is invalid
// after this, the heap remains initialised
func (h *Heap[T]) Clear() {
	if nil != h.log {
		h.log.Debugf("clear: capacity: %d  in use: %d", h.capacity, h.count)
	}
	h.chunks = nil
	h.free = nil
	h.used = make(map[*T]struct{})
	h.capacity = 0
	h.count = 0
	h.clears.Increment()
}

// internal: add a chunk of n blocks and put them all on the free list
//
// blocks are stacked in reverse so the lowest address is used first
func (h *Heap[T]) grow(n int) {
	chunk := make([]T, n)
	h.chunks = append(h.chunks, chunk)

	if cap(h.free)-len(h.free) < n {
		free := make([]*T, len(h.free), h.capacity+n)
		copy(free, h.free)
		h.free = free
	}
	for i := n - 1; i >= 0; i -= 1 {
		h.free = append(h.free, &chunk[i])
	}
	h.capacity += n

	h.grows.Increment()
	h.grown.Add(uint64(n))

	if nil != h.log {
		h.log.Debugf("grow: %d blocks  capacity: %d", n, h.capacity)
	}
}
