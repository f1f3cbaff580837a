// Package strategy holds the competing ways of carrying date/time values
// through JSON. Every strategy is either an Encoder or a Decoder; the bench
// harness only times them and never inspects their output.
package strategy

type Encoder interface {
	Name() string
	Encode(v any) ([]byte, error)
}

// Decoder parses JSON text. Document decoders return map[string]any (or a
// library-specific map type) for an object at the top level.
type Decoder interface {
	Name() string
	Decode(data []byte) (any, error)
}

const (
	NameEncodeSimple          = "encode_simple"
	NameEncodePredicate       = "encode_predicate"
	NameEncodeDateTimeEncoder = "encode_datetime_encoder"
	NameDecodeStrict          = "decode_strict"
	NameDecodeRegex           = "decode_regex"
	NameEncodeBSON            = "encode_bson"
	NameDecodeBSON            = "decode_bson"
	NameEncodeDynamoDB        = "encode_dynamodb"
	NameDecodeDynamoDB        = "decode_dynamodb"
	NameEncodeJsoniter        = "encode_jsoniter"
	NameDecodeJsoniter        = "decode_jsoniter"
	NameEncodeJsoniterStd     = "encode_jsoniter_std"
	NameDecodeJsoniterStd     = "decode_jsoniter_std"
	NameEncodeJsoniterFastest = "encode_jsoniter_fastest"
	NameDecodeJsoniterFastest = "decode_jsoniter_fastest"
	NameEncodeGoccy           = "encode_goccy"
	NameDecodeGoccy           = "decode_goccy"
	NameEncodeSonic           = "encode_sonic"
	NameDecodeSonic           = "decode_sonic"
)
