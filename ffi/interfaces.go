package ffi

import (
	"unsafe"

	"github.com/reglet-dev/unity-native-go/guid"
)

// Well-known interface GUIDs.
var (
	LogGUID        = guid.New(0x9E7507FA5B444D5D, 0x92FB979515EA83FC)
	ProfilerV2GUID = guid.New(0xB957E0189CB6A30B, 0x83CE589AE85B9068)
)

// Interfaces is the root table (IUnityInterfaces) handed to the plugin load hook.
// Any field may be nil on hosts that do not install it.
type Interfaces struct {
	GetInterface      func(id guid.GUID) unsafe.Pointer
	RegisterInterface func(id guid.GUID, ptr unsafe.Pointer)

	GetInterfaceSplit      func(high, low uint64) unsafe.Pointer
	RegisterInterfaceSplit func(high, low uint64, ptr unsafe.Pointer)
}

// Log is the IUnityLog table.
type Log struct {
	Log func(logType LogType, message *byte, fileName *byte, fileLine int32)
}

// LogType values understood by Log.
type LogType int32

const (
	LogTypeError     LogType = 0
	LogTypeAssert    LogType = 1
	LogTypeWarning   LogType = 2
	LogTypeLog       LogType = 3
	LogTypeException LogType = 4
)
