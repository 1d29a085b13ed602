// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/background"
	"github.com/bitmark-inc/avlheap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "report", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		usage(program)
		return
	}

	if len(arguments) > 0 {
		exitwithstatus.Message("%s: unexpected arguments: %q", program, arguments)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	err = applyOptions(theConfiguration, options)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	m, err := avlmap.New[int, int](cmp.Compare[int], theConfiguration.Map, logger.New("map"))
	if nil != err {
		log.Criticalf("map create error: %s", err)
		exitwithstatus.Message("map create error: %s", err)
	}
	defer m.Clear()

	b := newBench(m, log)

	processes := background.Processes{
		&reporter{
			log:        logger.New("report"),
			interval:   time.Duration(theConfiguration.ReportInterval) * time.Second,
			operations: &b.operations,
			statistics: m.Statistics,
		},
	}
	bg := background.Start(processes, nil)

	r, err := b.run(theConfiguration.Count, theConfiguration.Delete)
	bg.Stop()
	if nil != err {
		exitwithstatus.Message("benchmark error: %s", err)
	}

	text, err := json.Marshal(r)
	if nil != err {
		log.Errorf("marshal error: %s", err)
	} else {
		log.Infof("result: %s", text)
	}

	if len(options["verbose"]) > 0 {
		fmt.Printf("%s\n", text)
	} else {
		fmt.Printf("count: %d  height: %d  elapsed: %s\n", r.Count, r.Height, r.Elapsed)
	}
}

// command line values override the configuration file
func applyOptions(c *Configuration, options map[string][]string) error {
	items := []struct {
		name  string
		value *int
	}{
		{"count", &c.Count},
		{"delete", &c.Delete},
		{"report", &c.ReportInterval},
	}
	for _, item := range items {
		values := options[item.name]
		if 0 == len(values) {
			continue
		}
		n, err := strconv.Atoi(values[len(values)-1])
		if nil != err {
			return fmt.Errorf("%s: %q is not a number", item.name, values[len(values)-1])
		}
		*item.value = n
	}
	return c.validate()
}

func usage(program string) {
	fmt.Printf("usage: %s [--help] [--verbose] [--version] --config-file=FILE [options]\n", program)
	fmt.Printf("options:\n")
	fmt.Printf("  --count=N        -n N  number of random inserts\n")
	fmt.Printf("  --delete=N       -d N  number of inserted keys to delete\n")
	fmt.Printf("  --report=SECONDS -r S  statistics logging interval\n")
}
