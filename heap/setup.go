// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package heap

import (
	"unsafe"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/counter"
	"github.com/bitmark-inc/avlheap/fault"
)

// defaults used when a configuration leaves a field as zero
const (
	DefaultGrowCount = 64
)

// Configuration - sizing of the heap
//
// MaximumCount of zero means there is no limit
type Configuration struct {
	InitialCount int `gluamapper:"initial_count" json:"initial_count"`
	GrowCount    int `gluamapper:"grow_count" json:"grow_count"`
	MaximumCount int `gluamapper:"maximum_count" json:"maximum_count"`
}

// Heap - blocks of type T
type Heap[T any] struct {
	log *logger.L

	initialised  bool
	growCount    int
	maximumCount int

	chunks   [][]T           // backing store, never resized
	free     []*T            // stack of reclaimed or unused blocks
	used     map[*T]struct{} // blocks handed out
	capacity int             // total blocks in all chunks
	count    int             // number of blocks handed out

	allocations counter.Counter
	frees       counter.Counter
	grows       counter.Counter
	grown       counter.Counter
	clears      counter.Counter
}

// Statistics - running totals since the heap was created
type Statistics struct {
	Allocations uint64 `json:"allocations"`
	Frees       uint64 `json:"frees"`
	Grows       uint64 `json:"grows"`
	BlocksGrown uint64 `json:"blocksGrown"`
	Clears      uint64 `json:"clears"`
}

// New - create an uninitialised heap, log may be nil
func New[T any](log *logger.L) *Heap[T] {
	return &Heap[T]{
		log: log,
	}
}

// Initialise - set the growth policy and pre-allocate the initial
// blocks, must be called once before any other operation
func (h *Heap[T]) Initialise(configuration Configuration) error {
	if h.initialised {
		return fault.ErrAlreadyInitialised
	}

	growCount := configuration.GrowCount
	if 0 == growCount {
		growCount = DefaultGrowCount
	}
	if growCount < 0 || configuration.InitialCount < 0 || configuration.MaximumCount < 0 {
		return fault.ErrInvalidCount
	}
	if 0 != configuration.MaximumCount && configuration.InitialCount > configuration.MaximumCount {
		return fault.ErrInvalidCount
	}

	h.used = make(map[*T]struct{}, configuration.InitialCount)
	h.growCount = growCount
	h.maximumCount = configuration.MaximumCount
	h.initialised = true

	if configuration.InitialCount > 0 {
		h.grow(configuration.InitialCount)
	}

	if nil != h.log {
		h.log.Debugf("initialised: block size: %d  initial: %d  grow: %d  maximum: %d",
			h.BlockSize(), configuration.InitialCount, h.growCount, h.maximumCount)
	}
	return nil
}

// BlockSize - size in bytes of a single block
func (h *Heap[T]) BlockSize() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Capacity - number of blocks obtained from the system
func (h *Heap[T]) Capacity() int {
	return h.capacity
}

// Count - number of blocks currently in use
func (h *Heap[T]) Count() int {
	return h.count
}

// Statistics - snapshot of the running totals
func (h *Heap[T]) Statistics() Statistics {
	return Statistics{
		Allocations: h.allocations.Uint64(),
		Frees:       h.frees.Uint64(),
		Grows:       h.grows.Uint64(),
		BlocksGrown: h.grown.Uint64(),
		Clears:      h.clears.Uint64(),
	}
}
