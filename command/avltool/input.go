// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlheap/avlmap"
)

// create an empty map as configured
func newMap(m *metadata) (*avlmap.Map[string, string], error) {
	return avlmap.New[string, string](strings.Compare, m.config.Map, m.log)
}

// the single file name argument of a command
func fileArgument(c *cli.Context) (string, error) {
	if 1 != c.NArg() {
		return "", fmt.Errorf("exactly one FILE argument is required, %d were given", c.NArg())
	}
	return c.Args().Get(0), nil
}

// create a map and fill it from a file
func loadFile(m *metadata, fileName string) (*avlmap.Map[string, string], error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	entries, err := newMap(m)
	if nil != err {
		return nil, err
	}

	n, err := readEntries(f, entries)
	if nil != err {
		return nil, fmt.Errorf("%s:%d: %s", fileName, n, err)
	}
	if m.verbose {
		fmt.Fprintf(m.e, "loaded: %d entries from: %s\n", entries.Count(), fileName)
	}
	if nil != m.log {
		m.log.Infof("loaded: %d entries from: %q", entries.Count(), fileName)
	}
	return entries, nil
}

// add each "key value" line to the map
//
// returns the number of lines read, which on error is the line
// number of the failing line
func readEntries(r io.Reader, entries *avlmap.Map[string, string]) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		key := line
		value := ""
		if i := strings.IndexAny(line, " \t"); i > 0 {
			key = line[:i]
			value = strings.TrimSpace(line[i:])
		}

		_, err := entries.Add(key, value)
		if nil != err {
			return n, fmt.Errorf("key: %q  error: %s", key, err)
		}
	}
	return n, scanner.Err()
}
