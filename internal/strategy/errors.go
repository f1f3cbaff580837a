package strategy

import (
	"fmt"
)

// CodecError is the base error type for all encode/decode failures
type CodecError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *CodecError) Error() string {
	return e.Message
}

// WithDetail adds a detail to the error
func (e *CodecError) WithDetail(key string, value any) *CodecError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func NewCodecError(code, message string) *CodecError {
	return &CodecError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
}

// UnsupportedTypeError is returned by encoders that refuse a value they
// cannot render.
type UnsupportedTypeError struct {
	*CodecError
	TypeName string
}

func NewUnsupportedTypeError(typeName string) *UnsupportedTypeError {
	return &UnsupportedTypeError{
		CodecError: NewCodecError(
			"UNSUPPORTED_TYPE",
			fmt.Sprintf("object of type %s is not JSON serializable", typeName),
		).WithDetail("type", typeName),
		TypeName: typeName,
	}
}

// SyntaxError wraps a failure of the underlying parser.
type SyntaxError struct {
	*CodecError
	Strategy string
	Cause    error
}

func NewSyntaxError(strategy string, cause error) *SyntaxError {
	return &SyntaxError{
		CodecError: NewCodecError(
			"SYNTAX_ERROR",
			fmt.Sprintf("%s: invalid JSON: %v", strategy, cause),
		).WithDetail("strategy", strategy),
		Strategy: strategy,
		Cause:    cause,
	}
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// WireFormatError indicates a DynamoDB JSON value that is not a single
// type-tagged attribute.
type WireFormatError struct {
	*CodecError
	Path   string
	Reason string
}

func NewWireFormatError(path, reason string) *WireFormatError {
	return &WireFormatError{
		CodecError: NewCodecError(
			"WIRE_FORMAT_ERROR",
			fmt.Sprintf("invalid DynamoDB JSON at %s: %s", path, reason),
		).WithDetail("path", path),
		Path:   path,
		Reason: reason,
	}
}

// ErrNotAnObject is wrapped when a document decoder is handed valid JSON
// whose top level is not an object.
var ErrNotAnObject = NewCodecError("NOT_AN_OBJECT", "top-level JSON value is not an object")
