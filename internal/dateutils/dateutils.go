// Package dateutils provides the date handling used when mapping ISO 20022
// timestamps onto SWIFT fields.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts
const (
	DateLayoutISO   = "2006-01-02"
	DateLayoutSWIFT = "060102"

	// local date-times carry no offset and are read as UTC
	dateTimeLayoutLocal     = "2006-01-02T15:04:05"
	dateTimeLayoutLocalFrac = "2006-01-02T15:04:05.999999999"
)

// TimestampFormats lists the layouts accepted by ParseTimestamp, in the
// order they are tried.
var TimestampFormats = []string{
	DateLayoutISO,
	time.RFC3339Nano,
	time.RFC3339,
	dateTimeLayoutLocal,
	dateTimeLayoutLocalFrac,
}

// ParseTimestamp parses an ISO 8601 date or date-time as found in
// IntrBkSttlmDt and CreDtTm elements. Values without an offset are read as
// UTC.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range TimestampFormats {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", value)
}

// FormatSWIFTDate renders t as YYMMDD using its UTC calendar fields.
func FormatSWIFTDate(t time.Time) string {
	return t.UTC().Format(DateLayoutSWIFT)
}

// ResolveSWIFTDate returns the first candidate that parses as a timestamp,
// rendered as YYMMDD. It returns "" when none of them parses.
func ResolveSWIFTDate(candidates ...string) string {
	for _, c := range candidates {
		if t, err := ParseTimestamp(c); err == nil {
			return FormatSWIFTDate(t)
		}
	}
	return ""
}
