// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlheap/fault"
)

type metadata struct {
	config  *Configuration
	log     *logger.L
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "avltool"
	app.Usage = "inspect ordered maps built from key/value text files"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "load a file and verify the tree",
			ArgsUsage: "FILE",
			Action:    runCheck,
		},
		{
			Name:      "print",
			Usage:     "load a file and draw the tree",
			ArgsUsage: "FILE",
			Action:    runPrint,
		},
		{
			Name:      "save",
			Usage:     "load a file and snapshot it to a database",
			ArgsUsage: "FILE\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: " snapshot database `DIR` [default from configuration]",
				},
			},
			Action: runSave,
		},
		{
			Name:  "dump",
			Usage: "list the contents of a snapshot database in order",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "database, d",
					Value: "",
					Usage: " snapshot database `DIR` [default from configuration]",
				},
			},
			Action: runDump,
		},
		{
			Name:  "version",
			Usage: "display avltool version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		m := &metadata{
			config:  defaultConfiguration(),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		file := c.GlobalString("config")
		if "" == file {
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}
		m.config = configuration

		// start logging
		if err = logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		if err = fault.Initialise(); nil != err {
			return err
		}
		m.logging = true
		m.log = logger.New("avltool")
		m.log.Infof("version: %s", version)

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.logging {
			m.log.Info("finished")
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	return app
}
