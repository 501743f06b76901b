package log

import (
	"errors"
	"runtime"

	unity "github.com/reglet-dev/unity-native-go"
	"github.com/reglet-dev/unity-native-go/ffi"
)

// Descriptor resolves the host logger through unity.Get.
var Descriptor = unity.NewDescriptor("IUnityLog", ffi.LogGUID, fromRaw)

// ErrMissingLogFn is returned when the host log table has no Log function.
var ErrMissingLogFn = errors.New("host log table has no Log function")

// NulPlaceholder replaces NUL bytes in messages and file names; the host
// reads them as C strings and would cut the text short.
const NulPlaceholder = "�"

// Type is the host log severity.
type Type int32

const (
	TypeError     = Type(ffi.LogTypeError)
	TypeWarning   = Type(ffi.LogTypeWarning)
	TypeInfo      = Type(ffi.LogTypeLog)
	TypeException = Type(ffi.LogTypeException)
)

func (t Type) String() string {
	switch t {
	case TypeError:
		return "error"
	case TypeWarning:
		return "warning"
	case TypeInfo:
		return "info"
	case TypeException:
		return "exception"
	default:
		return "unknown"
	}
}

// Logger is the facade over the host log table. It is safe for concurrent
// use.
type Logger struct {
	raw *ffi.Log
}

// FromInterfaces resolves the logger from the host registry. A table
// without a Log function is rejected with a *unity.ConversionError wrapping
// ErrMissingLogFn.
func FromInterfaces(i *unity.Interfaces) (*Logger, error) {
	return unity.Get(i, Descriptor)
}

func fromRaw(raw *ffi.Log) (*Logger, error) {
	if raw.Log == nil {
		return nil, ErrMissingLogFn
	}
	return &Logger{raw: raw}, nil
}

// Log sends msg to the host, attributed to file and line.
func (l *Logger) Log(t Type, msg, file string, line int) error {
	if l.raw.Log == nil {
		return ErrMissingLogFn
	}
	cmsg := ffi.SanitizedCString(msg, NulPlaceholder)
	cfile := ffi.SanitizedCString(file, NulPlaceholder)
	l.raw.Log(ffi.LogType(t), &cmsg[0], &cfile[0], int32(line))
	return nil
}

// Info logs msg at the caller's location.
func (l *Logger) Info(msg string) error {
	return l.logCaller(TypeInfo, msg)
}

// Warning logs msg at the caller's location.
func (l *Logger) Warning(msg string) error {
	return l.logCaller(TypeWarning, msg)
}

// Error logs msg at the caller's location.
func (l *Logger) Error(msg string) error {
	return l.logCaller(TypeError, msg)
}

// Exception logs msg at the caller's location.
func (l *Logger) Exception(msg string) error {
	return l.logCaller(TypeException, msg)
}

func (l *Logger) logCaller(t Type, msg string) error {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file, line = "", 0
	}
	return l.Log(t, msg, file, line)
}
