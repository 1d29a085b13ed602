// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/avlheap/fault"
)

const (
	currentVersion = 1
	versionLength  = 4
)

var (
	versionKey   = []byte{'V'}
	recordPrefix = []byte{'R'}
)

// Open - open or create a snapshot database
//
// a read only open fails if the database does not exist
func Open(directory string, readOnly bool) (*leveldb.DB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(directory, opt)
	if nil != err {
		return nil, err
	}

	_, err = getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}
	return db, nil
}

// return 0 for a database that has never been written
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if versionLength != len(versionValue) {
		return 0, fault.ErrIncompatibleVersion
	}
	version := int(binary.BigEndian.Uint32(versionValue))
	if currentVersion != version {
		return 0, fault.ErrIncompatibleVersion
	}
	return version, nil
}

func versionValue() []byte {
	v := make([]byte, versionLength)
	binary.BigEndian.PutUint32(v, currentVersion)
	return v
}
