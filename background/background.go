// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived goroutines that are
// stopped together
package background

import (
	"sync"
)

// T - handle type
type T struct {
	sync.WaitGroup
	shutdown chan struct{}
}

// Process - a background process
//
// Run must return promptly after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes all with the same
// shutdown channel
func Start(processes Processes, args interface{}) *T {

	register := &T{
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		register.Add(1)
		go func(p Process) {
			defer register.Done()
			p.Run(args, register.shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for them all
// to finish
func (t *T) Stop() {
	if nil == t {
		return
	}
	close(t.shutdown)
	t.Wait()
}
