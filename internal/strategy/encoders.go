package strategy

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"

	"github.com/HatiCode/jsondate/pkg/datetime"
	"github.com/HatiCode/jsondate/pkg/json"
)

// formatter is the capability the type-sniffing encoder probes for.
type formatter interface {
	Format(layout string) string
}

var formatterType = reflect.TypeOf((*formatter)(nil)).Elem()

// hookEncoder is a json-iterator API with one fallback policy registered.
type hookEncoder struct {
	name string
	api  jsoniter.API
}

func newHookEncoder(name string, fallback fallbackFunc) *hookEncoder {
	return &hookEncoder{
		name: name,
		api:  json.NewAPI(&fallbackExtension{fallback: fallback}),
	}
}

func (e *hookEncoder) Name() string {
	return e.name
}

func (e *hookEncoder) Encode(v any) ([]byte, error) {
	return e.api.Marshal(v)
}

// NewSimpleEncoder renders anything with a Format(layout) method as ISO text
// and passes every other value through untouched, so values json-iterator
// cannot render still fail.
func NewSimpleEncoder() Encoder {
	return newHookEncoder(NameEncodeSimple, sniffFormatter)
}

func sniffFormatter(typ reflect2.Type) jsoniter.ValEncoder {
	if enc := timeEncoder(typ); enc != nil {
		return enc
	}
	if typ.Kind() == reflect.Ptr || !typ.Type1().Implements(formatterType) {
		return nil
	}
	return &formatterEncoder{typ: typ}
}

type formatterEncoder struct {
	typ reflect2.Type
}

func (e *formatterEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	return false
}

func (e *formatterEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	f := e.typ.UnsafeIndirect(ptr).(formatter)
	stream.WriteString(f.Format(datetime.ISOLayout))
}

// NewPredicateEncoder renders time.Time as ISO text and writes null for
// values that have no JSON form.
func NewPredicateEncoder() Encoder {
	return newHookEncoder(NameEncodePredicate, func(typ reflect2.Type) jsoniter.ValEncoder {
		if enc := timeEncoder(typ); enc != nil {
			return enc
		}
		if unrenderable(typ) {
			return nullEncoder{}
		}
		return nil
	})
}

// DateTimeEncoder renders time.Time as ISO text and rejects values that have
// no JSON form with an *UnsupportedTypeError.
type DateTimeEncoder struct {
	*hookEncoder
}

func NewDateTimeEncoder() *DateTimeEncoder {
	e := &DateTimeEncoder{}
	e.hookEncoder = newHookEncoder(NameEncodeDateTimeEncoder, e.Default)
	return e
}

// Default is the per-type hook. Types it returns nil for keep json-iterator's
// default rendering.
func (e *DateTimeEncoder) Default(typ reflect2.Type) jsoniter.ValEncoder {
	if enc := timeEncoder(typ); enc != nil {
		return enc
	}
	if unrenderable(typ) {
		return errorEncoder{err: NewUnsupportedTypeError(typ.String())}
	}
	return nil
}
