package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		status   FieldStatus
		expected time.Time
	}{
		{
			name:     "microsecond precision",
			input:    "2013-04-04T14:09:51.648658",
			status:   FieldParsed,
			expected: time.Date(2013, time.April, 4, 14, 9, 51, 648658000, time.UTC),
		},
		{
			name:     "single fractional digit",
			input:    "2013-04-04T14:09:51.6",
			status:   FieldParsed,
			expected: time.Date(2013, time.April, 4, 14, 9, 51, 600000000, time.UTC),
		},
		{
			name:     "unpadded fields",
			input:    "2013-4-4T4:9:5.5",
			status:   FieldParsed,
			expected: time.Date(2013, time.April, 4, 4, 9, 5, 500000000, time.UTC),
		},
		{
			name:     "lowercase separator",
			input:    "2013-04-04t14:09:51.648658",
			status:   FieldParsed,
			expected: time.Date(2013, time.April, 4, 14, 9, 51, 648658000, time.UTC),
		},
		{name: "three digit month", input: "2013-004-04T14:09:51.648658", status: FieldInvalid},
		{name: "short year", input: "213-04-04T14:09:51.648658", status: FieldInvalid},
		{name: "hour out of range", input: "2013-04-04T24:09:51.648658", status: FieldInvalid},
		{name: "no fraction", input: "2013-04-04T14:09:51", status: FieldInvalid},
		{name: "empty fraction", input: "2013-04-04T14:09:51.", status: FieldInvalid},
		{name: "nanosecond fraction", input: "2013-04-04T14:09:51.648658123", status: FieldInvalid},
		{name: "trailing zone", input: "2013-04-04T14:09:51.648658Z", status: FieldInvalid},
		{name: "space separator", input: "2013-04-04 14:09:51.648658", status: FieldInvalid},
		{name: "month out of range", input: "2013-13-04T14:09:51.648658", status: FieldInvalid},
		{name: "plain text", input: "Ben Mackey", status: FieldInvalid},
		{name: "empty", input: "", status: FieldInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseStrict(tt.input)
			assert.Equal(t, tt.status, result.Status)
			if tt.status == FieldParsed {
				require.NoError(t, result.Err)
				assert.True(t, result.Parsed())
				assert.Equal(t, tt.expected, result.Time)
				assert.True(t, IsNaive(result.Time))
			} else {
				assert.Error(t, result.Err)
				assert.True(t, result.Time.IsZero())
			}
		})
	}
}

func TestParseGated(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		status FieldStatus
	}{
		{name: "strict format", input: "2013-04-04T14:09:51.648658", status: FieldParsed},
		{name: "pattern match, strict rejects zone", input: "2013-04-04T14:09:51.648658+02:00", status: FieldInvalid},
		{name: "pattern match, strict rejects comma", input: "2013-04-04T14:09:51,648658", status: FieldInvalid},
		{name: "pattern match, no fraction", input: "2013/04/04 14:09:51", status: FieldInvalid},
		{name: "unpadded date fails the gate", input: "2013-4-4T14:09:51.5", status: FieldUnmatched},
		{name: "unpadded hour passes the gate", input: "2013-04-04T4:09:51.5", status: FieldParsed},
		{name: "plain text", input: "world", status: FieldUnmatched},
		{name: "date only", input: "2013-04-04", status: FieldUnmatched},
		{name: "short year", input: "13-04-04T14:09:51.648658", status: FieldUnmatched},
		{name: "empty", input: "", status: FieldUnmatched},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseGated(tt.input)
			assert.Equal(t, tt.status, result.Status, "got %s", result.Status)
			if tt.status == FieldUnmatched {
				assert.NoError(t, result.Err)
			}
		})
	}
}

func TestParseGated_AcceptsSubsetOfStrict(t *testing.T) {
	inputs := []string{
		"2013-04-04T14:09:51.648658",
		"2013-04-04T14:09:51.6",
		"2013-04-04T14:09:51",
		"2013-04-04T14:09:51.648658Z",
		"2013-04-04T14:09:51,648658",
		"2013-04-04 14:09:51.648658",
		"2013-4-4T14:09:51.648658",
		"2013-04-04T4:09:51.648658",
		"2013-04-04t14:09:51.648658",
		"2013-4-4T4:9:5.5",
		"2013-04-04T14:09:51.1234567",
		"1999-12-31T23:59:59.999999",
		"04/04/2013 14:09:51",
		"Ben Mackey",
		"string",
		"",
	}

	for _, input := range inputs {
		gated := ParseGated(input)
		strict := ParseStrict(input)

		if gated.Parsed() {
			require.True(t, strict.Parsed(), "regex-gated accepted %q but strict rejected it", input)
			assert.Equal(t, strict.Time, gated.Time)
		}
		if !strict.Parsed() {
			assert.False(t, gated.Parsed(), "strict rejected %q so the gate must not accept it", input)
		}
	}
}

func TestPattern(t *testing.T) {
	matches := []string{
		"2013-04-04T14:09:51",
		"2013-04-04T4:09:51",
		"2013.04.04 14.09.51,5 CET",
		"2013-04-04T14:09:51.648658-0500",
		"2013-04-04T14:09:51trailing",
	}
	for _, s := range matches {
		assert.True(t, Pattern.MatchString(s), s)
	}

	rejects := []string{
		"x2013-04-04T14:09:51",
		"2013-04-04",
		"2013040414:09:51",
	}
	for _, s := range rejects {
		assert.False(t, Pattern.MatchString(s), s)
	}
}

func TestFieldStatus_String(t *testing.T) {
	assert.Equal(t, "unmatched", FieldUnmatched.String())
	assert.Equal(t, "invalid", FieldInvalid.String())
	assert.Equal(t, "parsed", FieldParsed.String())
	assert.Equal(t, "FieldStatus(9)", FieldStatus(9).String())
}
