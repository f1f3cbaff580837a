package strategy

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/HatiCode/jsondate/pkg/json"
)

// DynamoDB JSON type tags
const (
	tagS    = "S"
	tagN    = "N"
	tagB    = "B"
	tagBOOL = "BOOL"
	tagNULL = "NULL"
	tagSS   = "SS"
	tagNS   = "NS"
	tagBS   = "BS"
	tagL    = "L"
	tagM    = "M"
)

// dynamoDBEncoder marshals through attributevalue and writes the result in
// DynamoDB JSON wire format. attributevalue stores time.Time as an RFC 3339
// string attribute.
type dynamoDBEncoder struct{}

func NewDynamoDBEncoder() Encoder {
	return dynamoDBEncoder{}
}

func (dynamoDBEncoder) Name() string {
	return NameEncodeDynamoDB
}

func (dynamoDBEncoder) Encode(v any) ([]byte, error) {
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to marshal attribute value: %w", NameEncodeDynamoDB, err)
	}

	var wire any
	if m, ok := av.(*types.AttributeValueMemberM); ok {
		wire, err = itemToWire(m.Value, "")
	} else {
		wire, err = attributeToWire(av, "$")
	}
	if err != nil {
		return nil, err
	}
	return json.MarshalBench(wire)
}

// dynamoDBDecoder reads a DynamoDB JSON item and unmarshals it through
// attributevalue into map[string]any. Numbers come back as float64 and
// times stay as strings.
type dynamoDBDecoder struct{}

func NewDynamoDBDecoder() Decoder {
	return dynamoDBDecoder{}
}

func (dynamoDBDecoder) Name() string {
	return NameDecodeDynamoDB
}

func (dynamoDBDecoder) Decode(data []byte) (any, error) {
	var wire map[string]any
	if err := json.UnmarshalBench(data, &wire); err != nil {
		return nil, NewSyntaxError(NameDecodeDynamoDB, err)
	}
	if wire == nil {
		return nil, fmt.Errorf("%s: %w", NameDecodeDynamoDB, ErrNotAnObject)
	}

	item, err := itemFromWire(wire, "")
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := attributevalue.UnmarshalMap(item, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to unmarshal item: %w", NameDecodeDynamoDB, err)
	}
	return doc, nil
}

func itemToWire(item map[string]types.AttributeValue, path string) (map[string]any, error) {
	out := make(map[string]any, len(item))
	for k, av := range item {
		w, err := attributeToWire(av, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		out[k] = w
	}
	return out, nil
}

func attributeToWire(av types.AttributeValue, path string) (map[string]any, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberS:
		return map[string]any{tagS: v.Value}, nil
	case *types.AttributeValueMemberN:
		return map[string]any{tagN: v.Value}, nil
	case *types.AttributeValueMemberB:
		return map[string]any{tagB: v.Value}, nil
	case *types.AttributeValueMemberBOOL:
		return map[string]any{tagBOOL: v.Value}, nil
	case *types.AttributeValueMemberNULL:
		return map[string]any{tagNULL: v.Value}, nil
	case *types.AttributeValueMemberSS:
		return map[string]any{tagSS: v.Value}, nil
	case *types.AttributeValueMemberNS:
		return map[string]any{tagNS: v.Value}, nil
	case *types.AttributeValueMemberBS:
		return map[string]any{tagBS: v.Value}, nil
	case *types.AttributeValueMemberL:
		list := make([]any, len(v.Value))
		for i, elem := range v.Value {
			w, err := attributeToWire(elem, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			list[i] = w
		}
		return map[string]any{tagL: list}, nil
	case *types.AttributeValueMemberM:
		m, err := itemToWire(v.Value, path)
		if err != nil {
			return nil, err
		}
		return map[string]any{tagM: m}, nil
	default:
		return nil, NewWireFormatError(path, fmt.Sprintf("unsupported attribute value %T", av))
	}
}

func itemFromWire(wire map[string]any, path string) (map[string]types.AttributeValue, error) {
	item := make(map[string]types.AttributeValue, len(wire))
	for k, raw := range wire {
		av, err := attributeFromWire(raw, joinPath(path, k))
		if err != nil {
			return nil, err
		}
		item[k] = av
	}
	return item, nil
}

func attributeFromWire(raw any, path string) (types.AttributeValue, error) {
	tagged, ok := raw.(map[string]any)
	if !ok || len(tagged) != 1 {
		return nil, NewWireFormatError(path, "expected an object with exactly one type tag")
	}

	for tag, value := range tagged {
		switch tag {
		case tagS:
			s, ok := value.(string)
			if !ok {
				return nil, NewWireFormatError(path, "S must be a string")
			}
			return &types.AttributeValueMemberS{Value: s}, nil
		case tagN:
			s, ok := value.(string)
			if !ok {
				return nil, NewWireFormatError(path, "N must be a string")
			}
			return &types.AttributeValueMemberN{Value: s}, nil
		case tagB:
			b, err := decodeBinary(value, path)
			if err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberB{Value: b}, nil
		case tagBOOL:
			b, ok := value.(bool)
			if !ok {
				return nil, NewWireFormatError(path, "BOOL must be a boolean")
			}
			return &types.AttributeValueMemberBOOL{Value: b}, nil
		case tagNULL:
			b, ok := value.(bool)
			if !ok {
				return nil, NewWireFormatError(path, "NULL must be a boolean")
			}
			return &types.AttributeValueMemberNULL{Value: b}, nil
		case tagSS, tagNS:
			strs, err := stringSet(value, path, tag)
			if err != nil {
				return nil, err
			}
			if tag == tagSS {
				return &types.AttributeValueMemberSS{Value: strs}, nil
			}
			return &types.AttributeValueMemberNS{Value: strs}, nil
		case tagBS:
			elems, ok := value.([]any)
			if !ok {
				return nil, NewWireFormatError(path, "BS must be an array")
			}
			set := make([][]byte, len(elems))
			for i, elem := range elems {
				b, err := decodeBinary(elem, path+"["+strconv.Itoa(i)+"]")
				if err != nil {
					return nil, err
				}
				set[i] = b
			}
			return &types.AttributeValueMemberBS{Value: set}, nil
		case tagL:
			elems, ok := value.([]any)
			if !ok {
				return nil, NewWireFormatError(path, "L must be an array")
			}
			list := make([]types.AttributeValue, len(elems))
			for i, elem := range elems {
				av, err := attributeFromWire(elem, path+"["+strconv.Itoa(i)+"]")
				if err != nil {
					return nil, err
				}
				list[i] = av
			}
			return &types.AttributeValueMemberL{Value: list}, nil
		case tagM:
			m, ok := value.(map[string]any)
			if !ok {
				return nil, NewWireFormatError(path, "M must be an object")
			}
			item, err := itemFromWire(m, path)
			if err != nil {
				return nil, err
			}
			return &types.AttributeValueMemberM{Value: item}, nil
		default:
			return nil, NewWireFormatError(path, fmt.Sprintf("unknown type tag %q", tag))
		}
	}
	return nil, NewWireFormatError(path, "empty attribute")
}

func decodeBinary(value any, path string) ([]byte, error) {
	s, ok := value.(string)
	if !ok {
		return nil, NewWireFormatError(path, "binary must be a base64 string")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, NewWireFormatError(path, "invalid base64: "+err.Error())
	}
	return b, nil
}

func stringSet(value any, path, tag string) ([]string, error) {
	elems, ok := value.([]any)
	if !ok {
		return nil, NewWireFormatError(path, tag+" must be an array")
	}
	strs := make([]string, len(elems))
	for i, elem := range elems {
		s, ok := elem.(string)
		if !ok {
			return nil, NewWireFormatError(path+"["+strconv.Itoa(i)+"]", tag+" members must be strings")
		}
		strs[i] = s
	}
	return strs, nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
