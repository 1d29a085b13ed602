// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type MemoryError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCorruptTree          = ProcessError("corrupt tree")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrIncompatibleVersion  = InvalidError("incompatible database version")
	ErrInvalidArgument      = InvalidError("invalid argument")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidConfiguration = InvalidError("invalid configuration")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidRecord        = InvalidError("invalid record")
	ErrItemNotFound         = NotFoundError("item not found")
	ErrMissingComparator    = ProcessError("missing comparator")
	ErrNilNode              = InvalidError("nil node")
	ErrNilPointer           = InvalidError("nil pointer")
	ErrNotInitialised       = ProcessError("not initialised")
	ErrNullReference        = InvalidError("null reference")
	ErrOutOfMemory          = MemoryError("out of memory")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e MemoryError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrMemory(e error) bool   { _, ok := e.(MemoryError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
