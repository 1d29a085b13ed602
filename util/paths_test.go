// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlheap/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/db", util.EnsureAbsolute("/data/", "./x/../db"), "cleaned")
}

func TestEnsureDirectory(t *testing.T) {
	dir := t.TempDir()

	path, err := util.EnsureDirectory(dir, "a/b")
	assert.Nil(t, err, "create")
	assert.Equal(t, filepath.Join(dir, "a", "b"), path, "path")

	info, err := os.Stat(path)
	assert.Nil(t, err, "stat")
	assert.True(t, info.IsDir(), "not a directory")

	path, err = util.EnsureDirectory(dir, "a/b")
	assert.Nil(t, err, "existing directory")

	file := filepath.Join(dir, "file")
	assert.Nil(t, os.WriteFile(file, []byte{}, 0600), "write")
	_, err = util.EnsureDirectory(dir, "file")
	assert.NotNil(t, err, "file accepted as directory")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("avltool.log"), "plain")
	assert.True(t, util.IsPlainName("./avltool.log"), "dot prefix")
	assert.False(t, util.IsPlainName("log/avltool.log"), "subdirectory")
	assert.False(t, util.IsPlainName("/tmp/avltool.log"), "absolute")
	assert.False(t, util.IsPlainName(""), "blank")
}
