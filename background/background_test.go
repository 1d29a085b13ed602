// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlheap/background"
)

// counts until shutdown then records that it finished
type counter struct {
	ticks    int64
	finished int32
	args     interface{}
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	c.args = args
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&c.ticks, 1)
		time.Sleep(time.Millisecond)
	}
	atomic.StoreInt32(&c.finished, 1)
}

func TestBackground(t *testing.T) {
	c1 := &counter{}
	c2 := &counter{}

	p := background.Start(background.Processes{c1, c2}, "shared")
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, c := range []*counter{c1, c2} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&c.finished), "%d: not finished after stop", i)
		assert.True(t, atomic.LoadInt64(&c.ticks) > 0, "%d: never ran", i)
		assert.Equal(t, "shared", c.args, "%d: wrong args", i)
	}

	// no more progress after stop
	ticks := atomic.LoadInt64(&c1.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, atomic.LoadInt64(&c1.ticks), "still running")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}

func TestStartEmpty(t *testing.T) {
	p := background.Start(background.Processes{}, nil)
	p.Stop()
}
