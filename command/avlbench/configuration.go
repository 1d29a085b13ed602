// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/configuration"
	"github.com/bitmark-inc/avlheap/heap"
	"github.com/bitmark-inc/avlheap/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultCount          = 100000
	defaultDelete         = 50000
	defaultReportInterval = 5 // seconds

	defaultGrowCount = 4096

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	Count          int                  `gluamapper:"count" json:"count"`
	Delete         int                  `gluamapper:"delete" json:"delete"`
	ReportInterval int                  `gluamapper:"report_interval" json:"report_interval"`
	Map            avlmap.Configuration `gluamapper:"map" json:"map"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:  defaultDataDirectory,
		Count:          defaultCount,
		Delete:         defaultDelete,
		ReportInterval: defaultReportInterval,

		Map: avlmap.Configuration{
			Heap: heap.Configuration{
				GrowCount: defaultGrowCount,
			},
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	err = options.validate()
	if nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// fail if log file is not a simple file name
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	logDirectory, err := util.EnsureDirectory(options.DataDirectory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}
	options.Logging.Directory = logDirectory

	return options, nil
}

// check the run parameters, also used after command line overrides
func (c *Configuration) validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count: %d must be positive", c.Count)
	}
	if c.Delete < 0 || c.Delete > c.Count {
		return fmt.Errorf("delete: %d must be in the range 0..%d", c.Delete, c.Count)
	}
	if c.ReportInterval <= 0 {
		return fmt.Errorf("report interval: %d must be positive", c.ReportInterval)
	}
	return nil
}
