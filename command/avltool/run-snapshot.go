// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlheap/snapshot"
)

// the --database flag, or the configured database
func databaseName(c *cli.Context, m *metadata) string {
	database := c.String("database")
	if "" == database {
		database = m.config.Database
	}
	return database
}

func runSave(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := fileArgument(c)
	if nil != err {
		return err
	}

	entries, err := loadFile(m, fileName)
	if nil != err {
		return err
	}

	database := databaseName(c, m)
	db, err := snapshot.Open(database, false)
	if nil != err {
		return err
	}
	defer db.Close()

	n, err := snapshot.Save(db, entries, snapshot.StringCodec)
	if nil != err {
		return err
	}
	if nil != m.log {
		m.log.Infof("saved: %d records to: %q", n, database)
	}
	fmt.Fprintf(m.w, "saved: %d records to: %s\n", n, database)
	return nil
}

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	database := databaseName(c, m)
	db, err := snapshot.Open(database, true)
	if nil != err {
		return err
	}
	defer db.Close()

	entries, err := newMap(m)
	if nil != err {
		return err
	}
	defer entries.Clear()

	n, err := snapshot.Load(db, entries, snapshot.StringCodec)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "loaded: %d records from: %s\n", n, database)
	}

	it := entries.Iterator()
	for ok := it.First(); ok; ok = it.Next() {
		key, _ := it.Key()
		value, _ := it.Value()
		fmt.Fprintf(m.w, "%s %s\n", key, *value)
	}
	return nil
}
