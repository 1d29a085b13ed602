// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package snapshot - save the contents of a map to a LevelDB
// database and restore it again
//
// Database layout:
//
//   "V"                     → 4 byte big endian version
//   "R" ‖ 8 byte sequence   → Varint64(len(key)) ‖ key ‖ value
//
// records are written in the map's iteration order, the sequence
// number keeps entries with equal keys apart
package snapshot
