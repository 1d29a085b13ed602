// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package snapshot

// Codec - conversion of keys and values to and from bytes
//
// the slices given to the decode functions are only valid for the
// duration of the call
type Codec[K, V any] struct {
	EncodeKey   func(K) ([]byte, error)
	DecodeKey   func([]byte) (K, error)
	EncodeValue func(V) ([]byte, error)
	DecodeValue func([]byte) (V, error)
}

// StringCodec - for maps of string to string
var StringCodec = Codec[string, string]{
	EncodeKey:   encodeString,
	DecodeKey:   decodeString,
	EncodeValue: encodeString,
	DecodeValue: decodeString,
}

func encodeString(s string) ([]byte, error) {
	return []byte(s), nil
}

func decodeString(b []byte) (string, error) {
	return string(b), nil
}
