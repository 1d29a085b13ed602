// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/counter"
	"github.com/bitmark-inc/avlheap/fault"
	"github.com/bitmark-inc/avlheap/heap"
)

// keys are drawn from a range this many times the insert count so
// that some duplicates occur
const keySpread = 4

type bench struct {
	log        *logger.L
	m          *avlmap.Map[int, int]
	operations counter.Counter
}

type result struct {
	Inserted   int             `json:"inserted"`
	Duplicates int             `json:"duplicates"`
	Deleted    int             `json:"deleted"`
	Count      int             `json:"count"`
	Height     int             `json:"height"`
	Capacity   int             `json:"capacity"`
	Elapsed    time.Duration   `json:"elapsed"`
	Statistics heap.Statistics `json:"statistics"`
}

func newBench(m *avlmap.Map[int, int], log *logger.L) *bench {
	return &bench{
		log: log,
		m:   m,
	}
}

// insert count random keys then delete some of the inserted ones
// and verify the result
func (b *bench) run(count int, deletions int) (*result, error) {
	r := &result{}
	start := time.Now()

	keys := make([]int, 0, count)
	for i := 0; i < count; i += 1 {
		key := rand.Intn(keySpread * count)
		_, err := b.m.Add(key, i)
		b.operations.Increment()
		if fault.ErrDuplicateKey == err {
			r.Duplicates += 1
			continue
		}
		if nil != err {
			b.log.Errorf("add: %d  error: %s", key, err)
			return nil, err
		}
		keys = append(keys, key)
		r.Inserted += 1
	}
	b.log.Infof("inserted: %d  duplicates: %d  height: %d", r.Inserted, r.Duplicates, b.m.Height())

	for i := 0; i < deletions && len(keys) > 0; i += 1 {
		j := rand.Intn(len(keys))
		key := keys[j]
		keys[j] = keys[len(keys)-1]
		keys = keys[:len(keys)-1]

		err := b.m.Erase(key)
		b.operations.Increment()
		if nil != err {
			b.log.Errorf("erase: %d  error: %s", key, err)
			return nil, err
		}
		r.Deleted += 1
	}
	b.log.Infof("deleted: %d  height: %d", r.Deleted, b.m.Height())

	err := b.m.Check()
	if nil != err {
		b.log.Criticalf("check failed: %s", err)
		return nil, err
	}

	r.Count = b.m.Count()
	r.Height = b.m.Height()
	r.Capacity = b.m.Capacity()
	r.Elapsed = time.Since(start)
	r.Statistics = b.m.Statistics()
	return r, nil
}
