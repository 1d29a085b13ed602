// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/configuration"
	"github.com/bitmark-inc/avlheap/fault"
)

const (
	testingDirName = "testing"
)

type testConfiguration struct {
	DataDirectory string               `gluamapper:"data_directory"`
	Map           avlmap.Configuration `gluamapper:"map"`
	Logging       logger.Configuration `gluamapper:"logging"`
}

const luaConfiguration = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")

M.map = {
    allow_duplicates = true,
    heap = {
        initial_count = 100,
        grow_count = 2 * 32,
    },
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        heap = "debug",
    },
}

return M
`

func writeFile(t *testing.T, name string, content string) string {
	_ = os.MkdirAll(testingDirName, 0700)
	fileName, err := filepath.Abs(filepath.Join(testingDirName, name))
	if nil != err {
		t.Fatalf("path error: %s", err)
	}
	err = os.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	defer os.RemoveAll(testingDirName)

	fileName := writeFile(t, "test.conf", luaConfiguration)

	options := &testConfiguration{
		Logging: logger.Configuration{
			Directory: "log",
			File:      "test.log",
		},
	}
	err := configuration.ParseConfigurationFile(fileName, options)
	assert.Nil(t, err, "parse error")

	assert.Equal(t, filepath.Dir(fileName)+"/", options.DataDirectory, "data directory")
	assert.True(t, options.Map.AllowDuplicates, "allow duplicates")
	assert.Equal(t, 100, options.Map.Heap.InitialCount, "initial count")
	assert.Equal(t, 64, options.Map.Heap.GrowCount, "grow count")
	assert.Equal(t, 0, options.Map.Heap.MaximumCount, "maximum count")

	// defaults survive
	assert.Equal(t, "log", options.Logging.Directory, "log directory")
	assert.Equal(t, "test.log", options.Logging.File, "log file")
	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, "debug", options.Logging.Levels["heap"], "heap level")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	defer os.RemoveAll(testingDirName)

	options := &testConfiguration{}

	err := configuration.ParseConfigurationFile(filepath.Join(testingDirName, "missing.conf"), options)
	assert.NotNil(t, err, "missing file accepted")

	fileName := writeFile(t, "syntax.conf", "return {\n")
	err = configuration.ParseConfigurationFile(fileName, options)
	assert.NotNil(t, err, "syntax error accepted")

	fileName = writeFile(t, "number.conf", "return 42\n")
	err = configuration.ParseConfigurationFile(fileName, options)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "non-table accepted")
}
