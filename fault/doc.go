// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and last resort logging
//
// Every error returned by the tree, heap, map and snapshot packages
// is one of the values declared here so callers compare with ==.
// Each value belongs to a class (exists, invalid, memory, not found,
// process) that can be tested with the IsErrXXX functions.
//
// Panicf and PanicIfError are reserved for broken internal state,
// they write to the "PANIC" logger channel when Initialise has been
// called and to stderr otherwise.
package fault
