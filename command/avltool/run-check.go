// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlheap/heap"
)

type checkResult struct {
	File       string          `json:"file"`
	Count      int             `json:"count"`
	Capacity   int             `json:"capacity"`
	Height     int             `json:"height"`
	Statistics heap.Statistics `json:"statistics"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := fileArgument(c)
	if nil != err {
		return err
	}

	entries, err := loadFile(m, fileName)
	if nil != err {
		return err
	}

	err = entries.Check()
	if nil != err {
		return err
	}

	return printJson(m.w, checkResult{
		File:       fileName,
		Count:      entries.Count(),
		Capacity:   entries.Capacity(),
		Height:     entries.Height(),
		Statistics: entries.Statistics(),
	})
}
