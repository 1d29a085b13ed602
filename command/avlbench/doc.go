// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbench - exercise an int to int map with random inserts and
// deletes, verify the tree afterwards and log heap statistics while
// running
//
//   avlbench --config-file=avlbench.conf [--count=N] [--delete=N] [--report=SECONDS]
package main
