package optix

import "github.com/farnil/optix/parse"

// ForwardPolicy invokes every confirmed match immediately, in encounter
// order. Options fire during the scan; positional matches fire as their
// slots resolve. This is the default policy.
type ForwardPolicy struct{}

// NewForwardPolicy returns the policy.
func NewForwardPolicy() *ForwardPolicy {
	return &ForwardPolicy{}
}

// Name returns "forward".
func (*ForwardPolicy) Name() string {
	return "forward"
}

// Parse runs the scan and the positional phases, firing callbacks as
// matches confirm.
func (*ForwardPolicy) Parse(p *Parser, args []string) error {
	return runForward(p, args)
}

// runForward is the immediate-invocation pass, shared with the Pre policy
// which applies it to the arguments before a delegation boundary.
func runForward(p *Parser, args []string) error {
	fm := &failManager{}
	state := parse.NewState(args)

	noa, _, err := scanOptions(p, state, fm, p.invoke, p.strict)
	if err != nil {
		return err
	}
	if err := optCheck(p, fm); err != nil {
		return err
	}
	return resolveNOA(p, noa, fm, p.invoke)
}
