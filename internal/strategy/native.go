package strategy

import (
	"fmt"

	"github.com/HatiCode/jsondate/pkg/json"
)

// Baselines: each library's own date/time handling, time.Time through its
// MarshalJSON (RFC 3339 with nanoseconds) and dates left as text on decode.

type nativeEncoder struct {
	name    string
	marshal func(any) ([]byte, error)
}

func (e *nativeEncoder) Name() string {
	return e.name
}

func (e *nativeEncoder) Encode(v any) ([]byte, error) {
	data, err := e.marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.name, err)
	}
	return data, nil
}

type nativeDecoder struct {
	name      string
	unmarshal func([]byte, any) error
}

func (d *nativeDecoder) Name() string {
	return d.name
}

func (d *nativeDecoder) Decode(data []byte) (any, error) {
	var doc map[string]any
	if err := d.unmarshal(data, &doc); err != nil {
		return nil, NewSyntaxError(d.name, err)
	}
	return doc, nil
}

func NewJsoniterEncoder() Encoder {
	return &nativeEncoder{name: NameEncodeJsoniter, marshal: json.MarshalBench}
}

func NewJsoniterDecoder() Decoder {
	return &nativeDecoder{name: NameDecodeJsoniter, unmarshal: json.UnmarshalBench}
}

// NewJsoniterStdEncoder uses json-iterator's encoding/json compatible config,
// which sorts map keys and escapes HTML.
func NewJsoniterStdEncoder() Encoder {
	return &nativeEncoder{name: NameEncodeJsoniterStd, marshal: json.MarshalStandard}
}

func NewJsoniterStdDecoder() Decoder {
	return &nativeDecoder{name: NameDecodeJsoniterStd, unmarshal: json.UnmarshalStandard}
}

// NewJsoniterFastestEncoder uses json-iterator's fastest config, which
// rounds floats to six decimal places.
func NewJsoniterFastestEncoder() Encoder {
	return &nativeEncoder{name: NameEncodeJsoniterFastest, marshal: json.MarshalFast}
}

func NewJsoniterFastestDecoder() Decoder {
	return &nativeDecoder{name: NameDecodeJsoniterFastest, unmarshal: json.UnmarshalFast}
}

func NewGoccyEncoder() Encoder {
	return &nativeEncoder{name: NameEncodeGoccy, marshal: json.MarshalGoccy}
}

func NewGoccyDecoder() Decoder {
	return &nativeDecoder{name: NameDecodeGoccy, unmarshal: json.UnmarshalGoccy}
}

func NewSonicEncoder() Encoder {
	return &nativeEncoder{name: NameEncodeSonic, marshal: json.MarshalSonic}
}

func NewSonicDecoder() Decoder {
	return &nativeDecoder{name: NameDecodeSonic, unmarshal: json.UnmarshalSonic}
}
