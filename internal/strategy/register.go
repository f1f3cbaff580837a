package strategy

import (
	"fmt"

	"github.com/HatiCode/jsondate/internal/bench"
	"github.com/HatiCode/jsondate/pkg/models"
)

// Encoders returns one of every encoder, in registration order.
func Encoders() []Encoder {
	return []Encoder{
		NewSimpleEncoder(),
		NewPredicateEncoder(),
		NewDateTimeEncoder(),
		NewBSONEncoder(),
		NewDynamoDBEncoder(),
		NewJsoniterEncoder(),
		NewJsoniterStdEncoder(),
		NewJsoniterFastestEncoder(),
		NewGoccyEncoder(),
		NewSonicEncoder(),
	}
}

// RegisterWith registers every strategy bound to its fixture. Encoders read
// fixtures.Document; decoders read fixtures.JSON, except the DynamoDB decoder
// which reads fixtures.DynamoDBJSON.
func RegisterWith(reg *bench.Registry, fixtures *models.Fixtures) error {
	doc, text := fixtures.Document, fixtures.JSON

	entries := []bench.Entry{
		encodeEntry(NewSimpleEncoder(), doc),
		encodeEntry(NewPredicateEncoder(), doc),
		encodeEntry(NewDateTimeEncoder(), doc),
		decodeEntry(NewStrictDecoder(), text),
		decodeEntry(NewRegexDecoder(), text),
		encodeEntry(NewBSONEncoder(), doc),
		decodeEntry(NewBSONDecoder(), text),
		encodeEntry(NewDynamoDBEncoder(), doc),
		decodeEntry(NewDynamoDBDecoder(), fixtures.DynamoDBJSON),
		encodeEntry(NewJsoniterEncoder(), doc),
		decodeEntry(NewJsoniterDecoder(), text),
		encodeEntry(NewJsoniterStdEncoder(), doc),
		decodeEntry(NewJsoniterStdDecoder(), text),
		encodeEntry(NewJsoniterFastestEncoder(), doc),
		decodeEntry(NewJsoniterFastestDecoder(), text),
		encodeEntry(NewGoccyEncoder(), doc),
		decodeEntry(NewGoccyDecoder(), text),
		encodeEntry(NewSonicEncoder(), doc),
		decodeEntry(NewSonicDecoder(), text),
	}

	for _, e := range entries {
		if err := reg.Register(e.Name, e.Fn); err != nil {
			return fmt.Errorf("failed to register strategy: %w", err)
		}
	}
	return nil
}

func encodeEntry(enc Encoder, v any) bench.Entry {
	return bench.Entry{
		Name: enc.Name(),
		Fn: func() error {
			_, err := enc.Encode(v)
			return err
		},
	}
}

func decodeEntry(dec Decoder, data []byte) bench.Entry {
	return bench.Entry{
		Name: dec.Name(),
		Fn: func() error {
			_, err := dec.Decode(data)
			return err
		},
	}
}
