// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlheap/counter"
)

// test incrementing/decrementing a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start")

	for i := 0; i < 5; i += 1 {
		c1.Increment()
	}
	assert.Equal(t, uint64(5), c1.Uint64(), "after incrementing")

	assert.Equal(t, uint64(4), c1.Decrement(), "after decrementing")

	for i := 0; i < 4; i += 1 {
		c1.Decrement()
	}
	assert.True(t, c1.IsZero(), "counter did not return to zero")

	// twos complement -1
	c1.Decrement()
	assert.Equal(t, ^uint64(0), c1.Uint64(), "counter did not underflow")
}

func TestCounterAdd(t *testing.T) {

	var c1 counter.Counter

	assert.Equal(t, uint64(32), c1.Add(32), "after add")
	c1.Add(10)
	c1.Increment()
	assert.Equal(t, uint64(43), c1.Uint64(), "after second add")
}

func TestCounterReset(t *testing.T) {

	var c1 counter.Counter

	c1.Add(17)
	assert.Equal(t, uint64(17), c1.Reset(), "value before reset")
	assert.True(t, c1.IsZero(), "not zero after reset")
	assert.Equal(t, uint64(0), c1.Reset(), "second reset")
}

// a reader taking interval totals must not lose any increments
func TestCounterConcurrentReset(t *testing.T) {

	var c1 counter.Counter
	const writers = 4
	const increments = 10000

	var wg sync.WaitGroup
	for i := 0; i < writers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j += 1 {
				c1.Increment()
			}
		}()
	}

	done := make(chan struct{})
	total := uint64(0)
	go func() {
		defer close(done)
		for k := 0; k < 100; k += 1 {
			total += c1.Reset()
		}
	}()

	wg.Wait()
	<-done
	total += c1.Reset()
	assert.Equal(t, uint64(writers*increments), total, "increments lost")
}
