package datetime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// StrictFormat is the strptime spelling of the only layout ParseStrict accepts.
const StrictFormat = "%Y-%m-%dT%H:%M:%S.%f"

const (
	// Month, day, hour, minute and second take one or two digits, as strptime
	// does for the same directives.
	strictParseLayout = "2006-1-2T15:4:5.999999"
	maxFractionDigits = 6
)

// Pattern is a permissive RFC 3339 shape: year, month and day separated by
// non-digit runs, then hour, minute and second the same way, an optional
// fraction with '.' or ',', and an optional zone name or numeric offset.
// It is anchored at the start only.
var Pattern = regexp.MustCompile(`^(\d\d\d\d)\D+(\d\d)\D+(\d\d)` +
	`\D+` +
	`(\d\d?)\D+(\d\d)\D+(\d\d)` +
	`([.,]\d+)?` +
	`\s*` +
	`(\w+|[-+]\d\d?\D*\d\d)?`)

type FieldStatus int

const (
	// FieldUnmatched means no parse was attempted.
	FieldUnmatched FieldStatus = iota
	FieldInvalid
	FieldParsed
)

func (s FieldStatus) String() string {
	switch s {
	case FieldUnmatched:
		return "unmatched"
	case FieldInvalid:
		return "invalid"
	case FieldParsed:
		return "parsed"
	default:
		return fmt.Sprintf("FieldStatus(%d)", int(s))
	}
}

// FieldResult is the outcome of trying to read one text field as a date/time.
// Time is only meaningful when Status is FieldParsed.
type FieldResult struct {
	Time   time.Time
	Status FieldStatus
	Err    error
}

func (r FieldResult) Parsed() bool {
	return r.Status == FieldParsed
}

// ParseStrict reads s as StrictFormat: a four digit year, one or two digits
// for the other fields, a 'T' in either case, a '.' and one to six
// fractional digits, no zone. The result is naive.
func ParseStrict(s string) FieldResult {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return invalid(s, "missing fractional seconds")
	}
	frac := s[dot+1:]
	if len(frac) == 0 || len(frac) > maxFractionDigits {
		return invalid(s, "fractional seconds must have 1 to 6 digits")
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] < '0' || frac[i] > '9' {
			return invalid(s, "unconverted data remains")
		}
	}

	t, err := time.Parse(strictParseLayout, strings.Replace(s, "t", "T", 1))
	if err != nil {
		return FieldResult{Status: FieldInvalid, Err: fmt.Errorf("time data %q does not match format %q: %w", s, StrictFormat, err)}
	}
	return FieldResult{Time: t, Status: FieldParsed}
}

// ParseGated only attempts ParseStrict when s matches Pattern.
func ParseGated(s string) FieldResult {
	if !Pattern.MatchString(s) {
		return FieldResult{Status: FieldUnmatched}
	}
	return ParseStrict(s)
}

func invalid(s, reason string) FieldResult {
	return FieldResult{
		Status: FieldInvalid,
		Err:    fmt.Errorf("time data %q does not match format %q: %s", s, StrictFormat, reason),
	}
}
