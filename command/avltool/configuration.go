// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/configuration"
	"github.com/bitmark-inc/avlheap/heap"
	"github.com/bitmark-inc/avlheap/util"
)

// basic defaults (directories and files are relative to the
// configuration file)
const (
	defaultDatabase = "avltool.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultInitialCount = 1024
	defaultGrowCount    = 1024
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Database string               `gluamapper:"database" json:"database"`
	Map      avlmap.Configuration `gluamapper:"map" json:"map"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		Database: defaultDatabase,
		Map: avlmap.Configuration{
			Heap: heap.Configuration{
				InitialCount: defaultInitialCount,
				GrowCount:    defaultGrowCount,
			},
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "" == options.Database {
		return nil, fmt.Errorf("database: cannot be blank")
	}
	options.Database = util.EnsureAbsolute(dataDirectory, options.Database)

	// fail if log file is not a simple file name
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	logDirectory, err := util.EnsureDirectory(dataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}
	options.Logging.Directory = logDirectory

	return options, nil
}
