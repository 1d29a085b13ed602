// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/counter"
	"github.com/bitmark-inc/avlheap/heap"
)

// reporter - background process that periodically logs the
// operation rate and the heap statistics
type reporter struct {
	log        *logger.L
	interval   time.Duration
	operations *counter.Counter
	statistics func() heap.Statistics
}

func (r *reporter) Run(args interface{}, shutdown <-chan struct{}) {

	r.log.Info("starting…")

	t := time.NewTicker(r.interval)
	defer t.Stop()

	last := time.Now()
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case now := <-t.C:
			r.report(now.Sub(last))
			last = now
		}
	}

	r.report(time.Since(last))
	r.log.Info("shutting down…")
}

func (r *reporter) report(elapsed time.Duration) {
	n := r.operations.Reset()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(n) / elapsed.Seconds()
	}
	s := r.statistics()
	r.log.Infof("operations: %d  rate: %.0f/s  allocations: %d  frees: %d  grows: %d  blocks: %d",
		n, rate, s.Allocations, s.Frees, s.Grows, s.BlocksGrown)
}
