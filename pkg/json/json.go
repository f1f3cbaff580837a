package json

import (
	"github.com/bytedance/sonic"
	gojson "github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
)

var (
	json      = jsoniter.ConfigCompatibleWithStandardLibrary
	jsonFast  = jsoniter.ConfigFastest
	jsonBench = benchConfig.Froze()

	benchConfig = jsoniter.Config{
		EscapeHTML:             false,
		SortMapKeys:            false,
		ValidateJsonRawMessage: true,
		UseNumber:              false,
		DisallowUnknownFields:  false,
	}
)

// NewAPI freezes a fresh copy of the bench config with the given extensions
// registered. Each caller gets its own encoder/decoder cache.
func NewAPI(extensions ...jsoniter.Extension) jsoniter.API {
	api := benchConfig.Froze()
	for _, ext := range extensions {
		api.RegisterExtension(ext)
	}
	return api
}

// Performance comparison functions (for benchmarking)

func MarshalStandard(v any) ([]byte, error) {
	return json.Marshal(v)
}

func MarshalFast(v any) ([]byte, error) {
	return jsonFast.Marshal(v)
}

func MarshalBench(v any) ([]byte, error) {
	return jsonBench.Marshal(v)
}

func MarshalGoccy(v any) ([]byte, error) {
	return gojson.Marshal(v)
}

func MarshalSonic(v any) ([]byte, error) {
	return sonic.ConfigStd.Marshal(v)
}

func UnmarshalStandard(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func UnmarshalFast(data []byte, v any) error {
	return jsonFast.Unmarshal(data, v)
}

func UnmarshalBench(data []byte, v any) error {
	return jsonBench.Unmarshal(data, v)
}

func UnmarshalGoccy(data []byte, v any) error {
	return gojson.Unmarshal(data, v)
}

func UnmarshalSonic(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}

// Convenience methods for common operations

func ToJSON(v any) ([]byte, error) {
	return jsonBench.Marshal(v)
}

func FromJSON(data []byte, v any) error {
	return jsonBench.Unmarshal(data, v)
}

func Valid(data []byte) bool {
	return jsonBench.Valid(data)
}
