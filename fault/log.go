// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// the value passed to panic after the message has been logged
const abortMessage = "abort, see last messages in log file"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log the caller position and message then panic
func Panicf(format string, arguments ...interface{}) {
	abort(fmt.Sprintf(format, arguments...))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	abort(fmt.Sprintf("%s failed with error: %s", message, err))
}

// skips itself and the exported caller
func abort(message string) {
	if _, file, line, ok := runtime.Caller(2); ok {
		message = fmt.Sprintf("(%s:%d) %s", filepath.Base(file), line, message)
	}
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** %s\n", message)
	} else {
		log.Critical(message)
		log.Flush() // make sure log file is saved
	}
	panic(abortMessage)
}
