// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlheap/avlmap"
)

const testInput = `# fruit prices
pear    12
apple   7
fig     30 per box

banana
cherry 3
`

func writeInput(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := os.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

// run the app with arguments, returning stdout and stderr
func run(t *testing.T, arguments ...string) (string, string, error) {
	var w bytes.Buffer
	var e bytes.Buffer

	app := newApp()
	app.Writer = &w
	app.ErrWriter = &e

	err := app.Run(append([]string{"avltool"}, arguments...))
	return w.String(), e.String(), err
}

func TestReadEntries(t *testing.T) {
	m, err := avlmap.New[string, string](strings.Compare, avlmap.Configuration{}, nil)
	assert.Nil(t, err, "new map")

	n, err := readEntries(strings.NewReader(testInput), m)
	assert.Nil(t, err, "read")
	assert.Equal(t, 7, n, "lines read")
	assert.Equal(t, 5, m.Count(), "entries")

	v, err := m.Find("fig")
	assert.Nil(t, err, "find")
	assert.Equal(t, "30 per box", *v, "multi word value")

	v, err = m.Find("banana")
	assert.Nil(t, err, "find")
	assert.Equal(t, "", *v, "missing value")

	n, err = readEntries(strings.NewReader("x 1\ny 2\nx 3\n"), m)
	assert.NotNil(t, err, "duplicate accepted")
	assert.Equal(t, 3, n, "failing line")
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	fileName := writeInput(t, dir, "input.txt", testInput)

	stdout, _, err := run(t, "check", fileName)
	assert.Nil(t, err, "check")

	result := checkResult{}
	assert.Nil(t, json.Unmarshal([]byte(stdout), &result), "json output")
	assert.Equal(t, 5, result.Count, "count")
	assert.Equal(t, 3, result.Height, "height")
	assert.Equal(t, defaultInitialCount, result.Capacity, "capacity")
	assert.Equal(t, uint64(5), result.Statistics.Allocations, "allocations")

	_, _, err = run(t, "check")
	assert.NotNil(t, err, "missing file argument accepted")

	_, _, err = run(t, "check", filepath.Join(dir, "absent.txt"))
	assert.NotNil(t, err, "absent file accepted")
}

func TestPrintCommand(t *testing.T) {
	dir := t.TempDir()
	fileName := writeInput(t, dir, "input.txt", "b 2\na 1\nc 3\n")

	stdout, stderr, err := run(t, "--verbose", "print", fileName)
	assert.Nil(t, err, "print")
	assert.Equal(t, 3, strings.Count(stdout, "\n"), "lines")
	assert.Contains(t, stdout, "b → 2", "root")
	assert.Contains(t, stderr, "depth: 2", "verbose depth")
}

func TestSaveAndDump(t *testing.T) {
	dir := t.TempDir()
	fileName := writeInput(t, dir, "input.txt", testInput)
	database := filepath.Join(dir, "test.leveldb")

	stdout, _, err := run(t, "save", "--database", database, fileName)
	assert.Nil(t, err, "save")
	assert.Contains(t, stdout, "saved: 5 records", "save output")

	stdout, _, err = run(t, "dump", "--database", database)
	assert.Nil(t, err, "dump")
	expected := "apple 7\n" +
		"banana \n" +
		"cherry 3\n" +
		"fig 30 per box\n" +
		"pear 12\n"
	assert.Equal(t, expected, stdout, "dump output")

	_, _, err = run(t, "dump", "--database", filepath.Join(dir, "absent.leveldb"))
	assert.NotNil(t, err, "absent database accepted")
}

func TestGetConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := writeInput(t, dir, "avltool.conf", `
local M = {}
M.database = "data/snap.leveldb"
M.map = {
    allow_duplicates = true,
    heap = {
        initial_count = 10,
        maximum_count = 1000,
    },
}
M.logging = {
    directory = "logs",
    levels = {
        DEFAULT = "info",
    },
}
return M
`)

	options, err := getConfiguration(fileName)
	assert.Nil(t, err, "configuration")
	assert.Equal(t, filepath.Join(dir, "data/snap.leveldb"), options.Database, "database")
	assert.True(t, options.Map.AllowDuplicates, "duplicates")
	assert.Equal(t, 10, options.Map.Heap.InitialCount, "initial count")
	assert.Equal(t, defaultGrowCount, options.Map.Heap.GrowCount, "default grow count")
	assert.Equal(t, 1000, options.Map.Heap.MaximumCount, "maximum count")
	assert.Equal(t, filepath.Join(dir, "logs"), options.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
	assert.DirExists(t, options.Logging.Directory, "log directory created")

	bad := writeInput(t, dir, "bad.conf", `return { logging = { file = "x/y.log" } }`)
	_, err = getConfiguration(bad)
	assert.NotNil(t, err, "log file path accepted")
}
