package optix

// OptMatch is one binding attempt of a token-derived candidate against an
// option. It is either matched — uid recorded, value computed — or left
// without any mutation to the option; there is no partial state.
type OptMatch struct {
	prefix   string
	name     string
	style    Style
	arg      string
	hasArg   bool
	consume  bool
	disabled bool

	matched    bool
	matchedUid Uid
	value      Value
}

// Matched reports whether this attempt succeeded.
func (m *OptMatch) Matched() bool {
	return m.matched
}

// MatchedUid returns the uid bound by this attempt, or InvalidUid.
func (m *OptMatch) MatchedUid() Uid {
	if !m.matched {
		return InvalidUid
	}
	return m.matchedUid
}

// Style returns the style under test.
func (m *OptMatch) Style() Style {
	return m.style
}

// Consume reports whether a successful match consumed the next argument.
func (m *OptMatch) Consume() bool {
	return m.consume
}

func (m *OptMatch) reset() {
	m.matched = false
	m.matchedUid = InvalidUid
}

// Process attempts to bind the option. The predicate order is fixed:
// style support, then name+prefix or alias, then deactivation legality,
// then argument presence, then value construction. The first three failing
// is a plain non-match; an illegal deactivation or a missing consumed
// argument aborts the parse; a value-parse rejection is a recoverable
// failure so overload siblings can still try.
func (m *OptMatch) Process(opt *Option) (bool, error) {
	if !opt.MatchStyle(m.style) {
		return false, nil
	}
	if !((opt.MatchName(m.name) && opt.MatchPrefix(m.prefix)) ||
		opt.MatchAlias(m.prefix, m.name)) {
		return false, nil
	}
	if m.disabled && !opt.Deactivatable() {
		return false, newError(opt.uid, ErrIllegalDeactivation, "%s", opt.Hint())
	}
	if m.consume && !m.hasArg {
		return false, newFailure(opt.uid, ErrMissingArgument, "%s", opt.Hint())
	}

	value, err := opt.parseValue(m.arg)
	if err != nil {
		return false, newFailure(opt.uid, ErrInvalidValue, "%s: %s", opt.Hint(), err.Error())
	}
	if m.disabled {
		value = BoolValue(false)
	}

	m.value = value
	m.matched = true
	m.matchedUid = opt.uid
	opt.setMatched(-1)
	return true, nil
}

// Undo rolls back a successful match, restoring the option to its
// pre-match state. Calling it on an unmatched attempt is a no-op.
func (m *OptMatch) Undo(opt *Option) {
	if !m.matched {
		return
	}
	opt.clearMatched()
	m.reset()
}

// NOAMatch is one binding attempt of a positional slot against an option.
// index is the 1-based NOA position (0 for the Main slot) and total the
// full NOA count, which both feed the position constraint.
type NOAMatch struct {
	name  string
	style Style
	index int
	total int
	args  []string

	matched      bool
	matchedUid   Uid
	matchedIndex int
	value        Value
}

// Matched reports whether this attempt succeeded.
func (m *NOAMatch) Matched() bool {
	return m.matched
}

// MatchedUid returns the uid bound by this attempt, or InvalidUid.
func (m *NOAMatch) MatchedUid() Uid {
	if !m.matched {
		return InvalidUid
	}
	return m.matchedUid
}

// MatchedIndex returns the NOA position bound by this attempt, or -1.
func (m *NOAMatch) MatchedIndex() int {
	if !m.matched {
		return -1
	}
	return m.matchedIndex
}

// Style returns the style under test.
func (m *NOAMatch) Style() Style {
	return m.style
}

func (m *NOAMatch) reset() {
	m.matched = false
	m.matchedUid = InvalidUid
	m.matchedIndex = -1
}

// Process attempts to bind the option to this slot: style support, then
// name equality (Cmd only; Pos and Main ignore names), then the position
// constraint against (index, total). Boolean-kinded positional options
// record presence; other kinds parse the argument text, and a rejection is
// recoverable so the next candidate for the slot can try.
func (m *NOAMatch) Process(opt *Option) (bool, error) {
	if !opt.MatchStyle(m.style) {
		return false, nil
	}
	if !opt.MatchName(m.name) {
		return false, nil
	}
	if m.style != StyleMain && !opt.MatchIndex(m.index, m.total) {
		return false, nil
	}

	var value Value
	if opt.Kind() == KindBool {
		// commands and boolean positionals record presence, not text
		value = BoolValue(true)
	} else {
		var err error
		value, err = opt.parseValue(m.name)
		if err != nil {
			return false, newFailure(opt.uid, ErrInvalidValue, "%s @%d: %s", m.name, m.index, err.Error())
		}
	}

	m.value = value
	m.matched = true
	m.matchedUid = opt.uid
	m.matchedIndex = m.index
	opt.setMatched(m.index)
	return true, nil
}

// Undo rolls back a successful match; a no-op when unmatched.
func (m *NOAMatch) Undo(opt *Option) {
	if !m.matched {
		return
	}
	opt.clearMatched()
	m.reset()
}
