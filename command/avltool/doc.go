// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - load text files of "key value" lines into an ordered
// map and inspect, draw or snapshot the result
//
// Each non blank line of an input file is a key, optional white
// space, and the rest of the line as the value.  Lines beginning with
// '#' are ignored.
//
// An optional Lua configuration file (--config) sets the map's heap
// sizing, the duplicate policy, the default snapshot database and
// logging, e.g.
//
//   local M = {}
//   M.database = "snapshot.leveldb"
//   M.map = {
//       allow_duplicates = false,
//       heap = { initial_count = 1000, grow_count = 500 },
//   }
//   M.logging = { directory = "log", file = "avltool.log" }
//   return M
package main
