// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avlmap - an ordered key/value map built from an avl tree
// whose nodes live in a block heap
//
// The map owns its heap and all the nodes in it.  Pointers returned
// by Add and Find remain valid until the entry is erased or the map
// is cleared.
//
// When an entry is destroyed its key and value have Release called if
// they implement Releaser; call Clear before discarding a map to have
// this happen for the remaining entries.  A failed Add leaves its
// arguments untouched.
//
// A map is not thread safe.
package avlmap
