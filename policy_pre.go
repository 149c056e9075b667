package optix

import "github.com/farnil/optix/parse"

// PrePolicy parses a leading slice of the arguments and delegates the rest
// to a nested parser. It runs a trial scan first to find the boundary: the
// first NOA candidate that no registered option claims and that names a
// registered sub-parser. Everything before the boundary is then parsed for
// real with immediate invocation, and the tail after the boundary is handed
// to the nested parser. Without a boundary the whole list parses like
// Forward.
type PrePolicy struct{}

// NewPrePolicy returns the policy.
func NewPrePolicy() *PrePolicy {
	return &PrePolicy{}
}

// Name returns "pre".
func (*PrePolicy) Name() string {
	return "pre"
}

// Parse locates the delegation boundary, parses the leading slice and runs
// the nested parser over the tail.
func (*PrePolicy) Parse(p *Parser, args []string) error {
	boundary, name, ok, err := findBoundary(p, args)
	if err != nil {
		return err
	}
	if !ok {
		return runForward(p, args)
	}

	if err := runForward(p, args[:boundary]); err != nil {
		return err
	}

	remaining := make([]string, len(args)-boundary-1)
	copy(remaining, args[boundary+1:])
	p.delegation = &Delegation{
		Boundary:  boundary,
		Name:      name,
		Remaining: remaining,
	}

	sub := p.subParsers[name]
	if err := sub.parseArgs(remaining); err != nil {
		return err
	}
	return nil
}

// findBoundary runs the trial pass: a lenient scan without invocations,
// then a claim pass over the NOA candidates so that positionals and
// commands of this parser are not mistaken for delegation points. All match
// state is rolled back before returning.
func findBoundary(p *Parser, args []string) (int, string, bool, error) {
	fm := &failManager{}
	state := parse.NewState(args)

	noa, noaPos, err := scanOptions(p, state, fm, nil, false)
	if err != nil {
		p.registry.resetRun()
		return 0, "", false, err
	}

	claimed := make([]bool, len(noa))
	total := len(noa)
	if total >= 1 {
		proc := guessNOA(UserStyleCmd, noa[0], 1, total, noa)
		matched, err := matchNOAProcess(p, proc, fm)
		if err != nil {
			p.registry.resetRun()
			return 0, "", false, err
		}
		claimed[0] = matched
	}
	for idx := 1; idx <= total; idx++ {
		if claimed[idx-1] {
			continue
		}
		proc := guessNOA(UserStylePos, noa[idx-1], idx, total, noa)
		matched, err := matchNOAProcess(p, proc, fm)
		if err != nil {
			p.registry.resetRun()
			return 0, "", false, err
		}
		claimed[idx-1] = matched
	}
	p.registry.resetRun()

	for i, raw := range noa {
		if claimed[i] {
			continue
		}
		if _, ok := p.subParsers[raw]; ok {
			return noaPos[i], raw, true, nil
		}
	}
	return 0, "", false, nil
}
