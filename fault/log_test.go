// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlheap/fault"
)

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("no error", nil) }, "panic on nil error")
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.PanicIfError("check", fault.ErrCorruptTree)
	}, "no panic on error")
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("stack overflow at: %d", 64)
	}, "wrong panic value")
}

func TestInitialiseTwice(t *testing.T) {
	assert.Nil(t, fault.Initialise(), "first initialise")
	assert.Equal(t, fault.ErrAlreadyInitialised, fault.Initialise(), "second initialise")
	fault.Finalise()
	assert.Nil(t, fault.Initialise(), "initialise after finalise")
	fault.Finalise()
}
