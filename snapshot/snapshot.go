// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/avlheap/avlmap"
	"github.com/bitmark-inc/avlheap/fault"
	"github.com/bitmark-inc/avlheap/util"
)

// Save - replace the database contents with the entries of m
//
// returns the number of records written, the database is only
// changed if every entry could be encoded
func Save[K, V any](db *leveldb.DB, m *avlmap.Map[K, V], codec Codec[K, V]) (int, error) {
	if nil == db || nil == m {
		return 0, fault.ErrNilPointer
	}
	if nil == codec.EncodeKey || nil == codec.EncodeValue {
		return 0, fault.ErrInvalidArgument
	}

	batch := new(leveldb.Batch)

	iter := db.NewIterator(nil, nil)
	for iter.Next() {
		batch.Delete(append([]byte{}, iter.Key()...))
	}
	iter.Release()
	err := iter.Error()
	if nil != err {
		return 0, err
	}

	batch.Put(versionKey, versionValue())

	n := 0
	it := m.Iterator()
	for ok := it.First(); ok; ok = it.Next() {
		key, _ := it.Key()
		value, _ := it.Value()

		record, err := packRecord(codec, key, *value)
		if nil != err {
			return 0, err
		}
		batch.Put(recordKey(uint64(n)), record)
		n += 1
	}

	err = db.Write(batch, nil)
	if nil != err {
		return 0, err
	}
	return n, nil
}

// Load - add every record in the database to m
//
// returns the number of records added; stops at the first record
// that cannot be decoded or added, earlier records remain in m
func Load[K, V any](db *leveldb.DB, m *avlmap.Map[K, V], codec Codec[K, V]) (int, error) {
	if nil == db || nil == m {
		return 0, fault.ErrNilPointer
	}
	if nil == codec.DecodeKey || nil == codec.DecodeValue {
		return 0, fault.ErrInvalidArgument
	}

	_, err := getVersion(db)
	if nil != err {
		return 0, err
	}

	n := 0
	iter := db.NewIterator(ldb_util.BytesPrefix(recordPrefix), nil)
	for iter.Next() {
		if len(recordPrefix)+8 != len(iter.Key()) {
			err = fault.ErrInvalidRecord
			break
		}
		var key K
		var value V
		key, value, err = unpackRecord(codec, iter.Value())
		if nil != err {
			break
		}
		_, err = m.Add(key, value)
		if nil != err {
			break
		}
		n += 1
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return n, err
}

func recordKey(sequence uint64) []byte {
	k := make([]byte, len(recordPrefix)+8)
	copy(k, recordPrefix)
	binary.BigEndian.PutUint64(k[len(recordPrefix):], sequence)
	return k
}

func packRecord[K, V any](codec Codec[K, V], key K, value V) ([]byte, error) {
	k, err := codec.EncodeKey(key)
	if nil != err {
		return nil, err
	}
	v, err := codec.EncodeValue(value)
	if nil != err {
		return nil, err
	}
	record := util.PrefixBytes(nil, k)
	return append(record, v...), nil
}

func unpackRecord[K, V any](codec Codec[K, V], record []byte) (K, V, error) {
	var key K
	var value V

	k, v, ok := util.SplitPrefixed(record)
	if !ok {
		return key, value, fault.ErrInvalidRecord
	}
	key, err := codec.DecodeKey(k)
	if nil != err {
		return key, value, err
	}
	value, err = codec.DecodeValue(v)
	return key, value, err
}
