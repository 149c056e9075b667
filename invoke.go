package optix

// Callback runs when a confirmed match for its option is invoked. Under the
// Forward policy that is as soon as the match confirms; under Delay it is
// after the whole argument list has been scanned, unless the option is
// flagged no-delay. Callbacks may read other options through ctx.Parser but
// must not start a nested parse against it.
type Callback func(ctx *InvokeContext) error

// InvokeContext carries everything a callback may need, as explicit tagged
// values rather than generic extraction.
type InvokeContext struct {
	Parser *Parser
	Uid    Uid
	Name   string
	Style  Style
	// Raw is the consumed text before parsing; empty for positional styles
	// matched by presence.
	Raw string
	// Value is the parsed value being stored.
	Value Value
	// Index is the NOA position for positional styles, -1 otherwise.
	Index int
	// Prev holds the option's stored values before this invocation.
	Prev []Value
	// Args holds the NOA list for Cmd and Main invocations.
	Args []string
	// Disabled is true when the match came from a deactivation token.
	Disabled bool
}

// Binding is one confirmed (uid, index, value) entry of the run's ordered
// log.
type Binding struct {
	Uid   Uid
	Index int
	Raw   string
	Value Value
}

// invocation is a queued or immediate callback dispatch, snapshotted at
// match-confirmation time so that later matches of the same option cannot
// clobber it.
type invocation struct {
	uid      Uid
	style    Style
	raw      string
	hasRaw   bool
	value    Value
	index    int
	args     []string
	disabled bool
	// recorded is set when the binding log entry was already written, e.g.
	// at queue time under deferred invocation.
	recorded bool
}

func (inv invocation) binding() Binding {
	return Binding{
		Uid:   inv.uid,
		Index: inv.index,
		Raw:   inv.raw,
		Value: inv.value,
	}
}

func optInvocation(m *OptMatch) invocation {
	return invocation{
		uid:      m.matchedUid,
		style:    m.style,
		raw:      m.arg,
		hasRaw:   m.hasArg,
		value:    m.value,
		index:    -1,
		disabled: m.disabled,
	}
}

func noaInvocation(m *NOAMatch) invocation {
	return invocation{
		uid:    m.matchedUid,
		style:  m.style,
		raw:    m.name,
		hasRaw: true,
		value:  m.value,
		index:  m.matchedIndex,
		args:   m.args,
	}
}

// invoke applies the option's merge action, appends to the binding log and
// fires the user callback. Secure options matched without an inline value
// solicit it here, so prompting happens in invocation order.
func (p *Parser) invoke(inv invocation) error {
	opt := p.registry.Opt(inv.uid)
	if opt == nil {
		return newError(inv.uid, ErrInvalidOption, "uid %d is not registered", inv.uid)
	}

	if opt.secure && inv.style == StyleBoolean && !inv.disabled {
		raw, err := p.secureInput(opt.securePrompt)
		if err != nil {
			return newError(opt.uid, ErrInvalidValue, "%s: %s", opt.Hint(), err.Error())
		}
		value, err := opt.parseValue(raw)
		if err != nil {
			return newError(opt.uid, ErrInvalidValue, "%s: %s", opt.Hint(), err.Error())
		}
		inv.raw, inv.value = raw, value
	}

	prev := make([]Value, len(opt.values))
	copy(prev, opt.values)

	opt.values = opt.action.apply(opt.values, inv.value)
	if !inv.recorded {
		p.bindings = append(p.bindings, inv.binding())
	}

	if opt.callback != nil {
		ctx := &InvokeContext{
			Parser:   p,
			Uid:      inv.uid,
			Name:     opt.name,
			Style:    inv.style,
			Raw:      inv.raw,
			Value:    inv.value,
			Index:    inv.index,
			Prev:     prev,
			Args:     inv.args,
			Disabled: inv.disabled,
		}
		if err := opt.callback(ctx); err != nil {
			pe := newError(opt.uid, ErrCallbackFailed, "%s", opt.Hint())
			pe.cause = err
			return pe
		}
	}
	return nil
}
