// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package heap - a pool of fixed size blocks
//
// All blocks have the size of the element type and are carved out of
// chunks that are never moved or resized, so a pointer to a block
// remains valid until the block is freed or the heap is cleared.
// Freed blocks are kept on a free list and reused before any new
// chunk is requested.
//
// Note: a heap is not thread safe, only the Statistics values may be
//       read from another go routine.
package heap
