package strategy

import (
	"reflect"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/HatiCode/jsondate/pkg/datetime"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	timePtrType = reflect.TypeOf(&time.Time{})
)

// fallbackFunc picks an encoder for typ, or returns nil to leave typ to
// json-iterator.
type fallbackFunc func(typ reflect2.Type) jsoniter.ValEncoder

// fallbackExtension is consulted by json-iterator before its own handling of
// any type, including values reached through interface{} at encode time.
type fallbackExtension struct {
	jsoniter.DummyExtension
	fallback fallbackFunc
}

func (e *fallbackExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	return e.fallback(typ)
}

// unrenderable reports kinds json-iterator has no JSON form for.
func unrenderable(typ reflect2.Type) bool {
	switch typ.Kind() {
	case reflect.Chan, reflect.Func, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

type isoTimeEncoder struct{}

func (isoTimeEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func (isoTimeEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteString(datetime.ISOFormat(*(*time.Time)(ptr)))
}

// isoTimePtrEncoder covers *time.Time, which json-iterator would otherwise
// hand to time.Time.MarshalJSON before ever asking for time.Time itself.
type isoTimePtrEncoder struct{}

func (isoTimePtrEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return *(**time.Time)(ptr) == nil
}

func (isoTimePtrEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	t := *(**time.Time)(ptr)
	if t == nil {
		stream.WriteNil()
		return
	}
	stream.WriteString(datetime.ISOFormat(*t))
}

// timeEncoder returns the ISO encoder for time.Time and *time.Time.
func timeEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	switch typ.Type1() {
	case timeType:
		return isoTimeEncoder{}
	case timePtrType:
		return isoTimePtrEncoder{}
	default:
		return nil
	}
}

type nullEncoder struct{}

func (nullEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return true
}

func (nullEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	stream.WriteNil()
}

// errorEncoder fails the whole Marshal call the first time it is reached.
type errorEncoder struct {
	err error
}

func (e errorEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func (e errorEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	if stream.Error == nil {
		stream.Error = e.err
	}
	stream.WriteNil()
}
