package optix

// Action governs how a newly parsed value combines with the values already
// stored for the same uid.
type Action int

const (
	// ActionNull stores nothing; the option still counts as matched.
	ActionNull Action = iota
	// ActionSet overwrites the stored values with the new one.
	ActionSet
	// ActionApp appends the new value to the stored list.
	ActionApp
	// ActionPop removes the most recently stored value; the parsed value is
	// discarded.
	ActionPop
	// ActionCnt increments a counter, ignoring the parsed value.
	ActionCnt
)

func (a Action) String() string {
	switch a {
	case ActionSet:
		return "set"
	case ActionApp:
		return "app"
	case ActionPop:
		return "pop"
	case ActionCnt:
		return "cnt"
	}
	return "null"
}

// apply merges value into vals per the action and returns the new list.
func (a Action) apply(vals []Value, value Value) []Value {
	switch a {
	case ActionSet:
		return []Value{value}
	case ActionApp:
		return append(vals, value)
	case ActionPop:
		if len(vals) > 0 {
			vals = vals[:len(vals)-1]
		}
		return vals
	case ActionCnt:
		if len(vals) == 1 && vals[0].Kind == KindInt {
			vals[0].Int++
			return vals
		}
		return []Value{IntValue(1)}
	}
	return vals
}
