// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/background"
	"github.com/bitmark-inc/avlheap/heap"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func newTestMap(t *testing.T, configuration avlmap.Configuration) *avlmap.Map[int, int] {
	m, err := avlmap.New[int, int](cmp.Compare[int], configuration, logger.New("map"))
	if nil != err {
		t.Fatalf("new map error: %s", err)
	}
	return m
}

func TestBenchRun(t *testing.T) {
	m := newTestMap(t, avlmap.Configuration{
		Heap: heap.Configuration{GrowCount: 64},
	})
	b := newBench(m, logger.New("main"))

	r, err := b.run(2000, 1500)
	assert.Nil(t, err, "run")
	assert.Equal(t, 2000, r.Inserted+r.Duplicates, "all inserts attempted")
	assert.Equal(t, 1500, r.Deleted, "deleted")
	assert.Equal(t, r.Inserted-r.Deleted, r.Count, "count")
	assert.Equal(t, m.Count(), r.Count, "map count")
	assert.True(t, r.Height <= 15, "height: %d too large for count: %d", r.Height, r.Count)
	assert.Equal(t, uint64(r.Inserted+r.Duplicates), r.Statistics.Allocations, "allocations")
	assert.Equal(t, uint64(r.Duplicates+r.Deleted), r.Statistics.Frees, "frees")
	assert.Equal(t, uint64(3500), b.operations.Uint64(), "operations")
	assert.Nil(t, m.Check(), "check")

	m.Clear()
	assert.Equal(t, 0, m.Capacity(), "capacity after clear")
}

func TestBenchDuplicatesAllowed(t *testing.T) {
	m := newTestMap(t, avlmap.Configuration{AllowDuplicates: true})
	b := newBench(m, logger.New("main"))

	r, err := b.run(500, 500)
	assert.Nil(t, err, "run")
	assert.Equal(t, 0, r.Duplicates, "duplicates rejected")
	assert.Equal(t, 500, r.Deleted, "deleted")
	assert.Equal(t, 0, r.Count, "count")
}

func TestBenchOutOfMemory(t *testing.T) {
	m := newTestMap(t, avlmap.Configuration{
		Heap: heap.Configuration{GrowCount: 10, MaximumCount: 100},
	})
	b := newBench(m, logger.New("main"))

	r, err := b.run(1000, 0)
	assert.Nil(t, r, "result")
	assert.NotNil(t, err, "heap limit not reached")
	assert.Nil(t, m.Check(), "check after failure")
}

func TestReporter(t *testing.T) {
	m := newTestMap(t, avlmap.Configuration{})
	b := newBench(m, logger.New("main"))

	r := &reporter{
		log:        logger.New("report"),
		interval:   5 * time.Millisecond,
		operations: &b.operations,
		statistics: m.Statistics,
	}
	bg := background.Start(background.Processes{r}, nil)

	_, err := b.run(300, 100)
	assert.Nil(t, err, "run")
	time.Sleep(20 * time.Millisecond)
	bg.Stop()

	assert.True(t, b.operations.IsZero(), "operations not collected")
}

func TestApplyOptions(t *testing.T) {
	c := &Configuration{Count: 10, Delete: 5, ReportInterval: 1}

	err := applyOptions(c, map[string][]string{
		"count":  {"100", "200"},
		"report": {"3"},
	})
	assert.Nil(t, err, "apply")
	assert.Equal(t, 200, c.Count, "last count wins")
	assert.Equal(t, 5, c.Delete, "delete unchanged")
	assert.Equal(t, 3, c.ReportInterval, "report")

	err = applyOptions(c, map[string][]string{"delete": {"x"}})
	assert.NotNil(t, err, "not a number accepted")

	err = applyOptions(c, map[string][]string{"delete": {"201"}})
	assert.NotNil(t, err, "delete more than count accepted")
}

func TestGetConfiguration(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "avlbench.conf")
	content := `
local M = {}
M.data_directory = "."
M.count = 5000
M.delete = 1000
M.map = {
    heap = {
        initial_count = 5000,
    },
}
return M
`
	assert.Nil(t, os.WriteFile(fileName, []byte(content), 0600), "write")

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")
	assert.Equal(t, filepath.Clean(dir), options.DataDirectory, "data directory")
	assert.Equal(t, 5000, options.Count, "count")
	assert.Equal(t, 1000, options.Delete, "delete")
	assert.Equal(t, defaultReportInterval, options.ReportInterval, "report interval")
	assert.Equal(t, 5000, options.Map.Heap.InitialCount, "initial count")
	assert.Equal(t, defaultGrowCount, options.Map.Heap.GrowCount, "grow count")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")

	blank := filepath.Join(dir, "blank.conf")
	assert.Nil(t, os.WriteFile(blank, []byte("return {}\n"), 0600), "write")
	_, err = getConfiguration(blank)
	assert.NotNil(t, err, "blank data directory accepted")

	invalid := filepath.Join(dir, "invalid.conf")
	assert.Nil(t, os.WriteFile(invalid, []byte(`return { data_directory = ".", count = 10, delete = 20 }`), 0600), "write")
	_, err = getConfiguration(invalid)
	assert.NotNil(t, err, "delete more than count accepted")
}
