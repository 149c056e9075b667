package util

import (
	"strconv"
	"time"

	"github.com/araddon/dateparse"
)

// ToBool parses a boolean literal.
func ToBool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// ToInt parses a signed 64-bit integer.
func ToInt(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// ToUint parses an unsigned 64-bit integer.
func ToUint(value string) (uint64, error) {
	return strconv.ParseUint(value, 10, 64)
}

// ToFloat parses a 64-bit float.
func ToFloat(value string) (float64, error) {
	return strconv.ParseFloat(value, 64)
}

// ToTime parses a timestamp in any of the formats dateparse recognizes,
// interpreted in the local timezone.
func ToTime(value string) (time.Time, error) {
	return dateparse.ParseLocal(value)
}

// ToDuration parses a Go duration literal such as "1h30m".
func ToDuration(value string) (time.Duration, error) {
	return time.ParseDuration(value)
}
