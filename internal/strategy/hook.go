package strategy

import (
	"errors"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/HatiCode/jsondate/pkg/datetime"
	"github.com/HatiCode/jsondate/pkg/json"
)

var errExtraData = errors.New("extra data after JSON value")

// ObjectHook is called with every object once all of its members are parsed,
// innermost objects first. Its return value replaces the object.
type ObjectHook func(obj map[string]any) any

// FieldParser turns one text field into a date/time result.
type FieldParser func(s string) datetime.FieldResult

// HookDecoder parses JSON with a json-iterator Iterator and runs an
// ObjectHook on each object as it completes. Numbers without a fraction or
// exponent decode as int64, others as float64.
type HookDecoder struct {
	name string
	api  jsoniter.API
	hook ObjectHook
}

func NewHookDecoder(name string, hook ObjectHook) *HookDecoder {
	return &HookDecoder{
		name: name,
		api:  json.NewAPI(),
		hook: hook,
	}
}

// NewStrictDecoder converts every text field of every object that parses
// as datetime.StrictFormat.
func NewStrictDecoder() *HookDecoder {
	return NewHookDecoder(NameDecodeStrict, DateTimeHook(datetime.ParseStrict))
}

// NewRegexDecoder only attempts the strict parse on text fields that match
// datetime.Pattern.
func NewRegexDecoder() *HookDecoder {
	return NewHookDecoder(NameDecodeRegex, DateTimeHook(datetime.ParseGated))
}

// DateTimeHook replaces each direct text member of obj that parse accepts.
// Members parse rejects keep their original value.
func DateTimeHook(parse FieldParser) ObjectHook {
	return func(obj map[string]any) any {
		for k, v := range obj {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if result := parse(s); result.Parsed() {
				obj[k] = result.Time
			}
		}
		return obj
	}
}

func (d *HookDecoder) Name() string {
	return d.name
}

func (d *HookDecoder) Decode(data []byte) (any, error) {
	iter := d.api.BorrowIterator(data)
	defer d.api.ReturnIterator(iter)

	v := d.readValue(iter)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, NewSyntaxError(d.name, iter.Error)
	}

	// Only whitespace may follow; reaching it leaves io.EOF behind.
	if next := iter.WhatIsNext(); next != jsoniter.InvalidValue || iter.Error != io.EOF {
		return nil, NewSyntaxError(d.name, errExtraData)
	}
	return v, nil
}

func (d *HookDecoder) readValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		obj := make(map[string]any)
		complete := iter.ReadMapCB(func(it *jsoniter.Iterator, key string) bool {
			obj[key] = d.readValue(it)
			return it.Error == nil
		})
		if !complete {
			truncated(iter)
			return nil
		}
		return d.hook(obj)
	case jsoniter.ArrayValue:
		arr := make([]any, 0)
		complete := iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			arr = append(arr, d.readValue(it))
			return it.Error == nil
		})
		if !complete {
			truncated(iter)
			return nil
		}
		return arr
	case jsoniter.StringValue:
		return iter.ReadString()
	case jsoniter.NumberValue:
		num := iter.ReadNumber()
		if i, err := num.Int64(); err == nil {
			return i
		}
		f, err := num.Float64()
		if err != nil {
			iter.ReportError("ReadNumber", err.Error())
			return nil
		}
		return f
	case jsoniter.BoolValue:
		return iter.ReadBool()
	case jsoniter.NilValue:
		iter.ReadNil()
		return nil
	default:
		iter.ReportError("readValue", "expecting a JSON value")
		return nil
	}
}

// truncated marks an unfinished object or array as a syntax error. A value
// cut off by the end of input only leaves io.EOF behind, which Decode
// otherwise accepts after a complete top-level scalar.
func truncated(iter *jsoniter.Iterator) {
	if iter.Error == nil || iter.Error == io.EOF {
		iter.ReportError("readValue", "unexpected end of input")
	}
}
