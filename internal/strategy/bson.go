package strategy

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// bsonEncoder writes MongoDB Extended JSON in relaxed mode. Dates become
// {"$date": "<RFC 3339, millisecond precision>"}.
type bsonEncoder struct{}

func NewBSONEncoder() Encoder {
	return bsonEncoder{}
}

func (bsonEncoder) Name() string {
	return NameEncodeBSON
}

func (bsonEncoder) Encode(v any) ([]byte, error) {
	data, err := bson.MarshalExtJSON(v, false, false)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", NameEncodeBSON, err)
	}
	return data, nil
}

// bsonDecoder reads relaxed Extended JSON. Plain strings are left alone;
// only {"$date": ...} wrappers become dates.
type bsonDecoder struct{}

func NewBSONDecoder() Decoder {
	return bsonDecoder{}
}

func (bsonDecoder) Name() string {
	return NameDecodeBSON
}

func (bsonDecoder) Decode(data []byte) (any, error) {
	var doc bson.M
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, NewSyntaxError(NameDecodeBSON, err)
	}
	return map[string]any(doc), nil
}
