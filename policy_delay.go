package optix

import (
	"github.com/ef-ds/deque"

	"github.com/farnil/optix/parse"
)

// DelayPolicy matches options during the scan but defers their value stores
// and callbacks until the positional phases have resolved, so an option
// callback can read fully resolved positional values. Options flagged
// no-delay opt out and fire immediately, in encounter order.
//
// The binding log is written at match time, so a Forward and a Delay parse
// of the same arguments produce the same log.
type DelayPolicy struct{}

// NewDelayPolicy returns the policy.
func NewDelayPolicy() *DelayPolicy {
	return &DelayPolicy{}
}

// Name returns "delay".
func (*DelayPolicy) Name() string {
	return "delay"
}

// Parse runs the scan with option invocations queued, resolves the
// positional slots, then flushes the queue in encounter order.
func (*DelayPolicy) Parse(p *Parser, args []string) error {
	fm := &failManager{}
	state := parse.NewState(args)
	queue := deque.New()

	emit := func(inv invocation) error {
		opt := p.registry.Opt(inv.uid)
		if opt != nil && opt.noDelay {
			return p.invoke(inv)
		}
		p.bindings = append(p.bindings, inv.binding())
		inv.recorded = true
		queue.PushBack(inv)
		return nil
	}

	noa, _, err := scanOptions(p, state, fm, emit, p.strict)
	if err != nil {
		return err
	}
	if err := optCheck(p, fm); err != nil {
		return err
	}
	if err := resolveNOA(p, noa, fm, p.invoke); err != nil {
		return err
	}

	for {
		item, ok := queue.PopFront()
		if !ok {
			break
		}
		if err := p.invoke(item.(invocation)); err != nil {
			return err
		}
	}
	return nil
}
