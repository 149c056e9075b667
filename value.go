package optix

import (
	"fmt"
	"strconv"
	"time"

	"github.com/farnil/optix/util"
)

// ValueKind tags the closed set of value variants the engine stores.
type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindTime
	KindDuration
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	}
	return "string"
}

// Value is a tagged variant holding one parsed option value. Exactly the
// field selected by Kind is meaningful.
type Value struct {
	Kind     ValueKind
	Str      string
	Bool     bool
	Int      int64
	Uint     uint64
	Float    float64
	Time     time.Time
	Duration time.Duration
}

func StringValue(v string) Value    { return Value{Kind: KindString, Str: v} }
func BoolValue(v bool) Value        { return Value{Kind: KindBool, Bool: v} }
func IntValue(v int64) Value        { return Value{Kind: KindInt, Int: v} }
func UintValue(v uint64) Value      { return Value{Kind: KindUint, Uint: v} }
func FloatValue(v float64) Value    { return Value{Kind: KindFloat, Float: v} }
func TimeValue(v time.Time) Value   { return Value{Kind: KindTime, Time: v} }
func DurationValue(v time.Duration) Value {
	return Value{Kind: KindDuration, Duration: v}
}

// String renders the value for diagnostics.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindUint:
		return strconv.FormatUint(v.Uint, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindTime:
		return v.Time.Format(time.RFC3339)
	case KindDuration:
		return v.Duration.String()
	}
	return v.Str
}

// ValueParser turns the raw text captured by a match into a Value. A
// returned error is a recoverable rejection: with overloads enabled the
// next candidate option gets a chance at the token.
type ValueParser func(raw string) (Value, error)

// parserForKind returns the default parser for a value kind, built on the
// util conversion helpers.
func parserForKind(kind ValueKind) ValueParser {
	switch kind {
	case KindBool:
		return func(raw string) (Value, error) {
			v, err := util.ToBool(raw)
			if err != nil {
				return Value{}, kindError(kind, raw)
			}
			return BoolValue(v), nil
		}
	case KindInt:
		return func(raw string) (Value, error) {
			v, err := util.ToInt(raw)
			if err != nil {
				return Value{}, kindError(kind, raw)
			}
			return IntValue(v), nil
		}
	case KindUint:
		return func(raw string) (Value, error) {
			v, err := util.ToUint(raw)
			if err != nil {
				return Value{}, kindError(kind, raw)
			}
			return UintValue(v), nil
		}
	case KindFloat:
		return func(raw string) (Value, error) {
			v, err := util.ToFloat(raw)
			if err != nil {
				return Value{}, kindError(kind, raw)
			}
			return FloatValue(v), nil
		}
	case KindTime:
		return func(raw string) (Value, error) {
			v, err := util.ToTime(raw)
			if err != nil {
				return Value{}, kindError(kind, raw)
			}
			return TimeValue(v), nil
		}
	case KindDuration:
		return func(raw string) (Value, error) {
			v, err := util.ToDuration(raw)
			if err != nil {
				return Value{}, kindError(kind, raw)
			}
			return DurationValue(v), nil
		}
	default:
		return func(raw string) (Value, error) {
			return StringValue(raw), nil
		}
	}
}

func kindError(kind ValueKind, raw string) error {
	return fmt.Errorf("%q is not a valid %s", raw, kind)
}
