// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avlheap/fault"
)

// struct fields are matched by their "gluamapper" tag, untagged
// fields use the field name unchanged
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - execute a Lua file and decode the table it
// returns into config
//
// fields not present in the returned table keep their current
// values so config can be pre-filled with defaults
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	table, err := run(L, fileName)
	if nil != err {
		return err
	}
	return mapper.Map(table, config)
}

// the file sees a global arg table with arg[0] set to its own name
// so it can locate files relative to itself
func run(L *lua.LState, fileName string) (*lua.LTable, error) {
	arg := L.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); nil != err {
		return nil, err
	}

	table, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil, fault.ErrInvalidConfiguration
	}
	return table, nil
}
