package optix

// OptProcess aggregates the match attempts derived from one token under one
// user style. Plain styles carry a single attempt; CombinedOption carries
// one per letter, all of which must succeed; EmbeddedValuePlus carries one
// per split point, any of which may succeed.
type OptProcess struct {
	matches  []*OptMatch
	anyMatch bool
	consume  bool
}

// Matches exposes the attempts in order.
func (p *OptProcess) Matches() []*OptMatch {
	return p.matches
}

// Consume reports whether a confirmed match consumed the next argument.
func (p *OptProcess) Consume() bool {
	return p.consume
}

// Matched reports whether the process as a whole succeeded: every attempt
// for all-match processes, at least one for any-match processes.
func (p *OptProcess) Matched() bool {
	if len(p.matches) == 0 {
		return false
	}
	if p.anyMatch {
		for _, m := range p.matches {
			if m.Matched() {
				return true
			}
		}
		return false
	}
	for _, m := range p.matches {
		if !m.Matched() {
			return false
		}
	}
	return true
}

// Quit reports whether the process is fully resolved and no further
// options need to be tried.
func (p *OptProcess) Quit() bool {
	return p.Matched()
}

// ProcessUid tries the option against every still-unmatched attempt, in
// order, stopping at the first success. Returns the index of the attempt
// that fired, or -1.
func (p *OptProcess) ProcessUid(opt *Option) (int, error) {
	if !opt.MatchStyle(StyleArgument) && !opt.MatchStyle(StyleBoolean) &&
		!opt.MatchStyle(StyleCombined) {
		return -1, nil
	}
	for i, m := range p.matches {
		if m.Matched() {
			continue
		}
		ok, err := m.Process(opt)
		if err != nil {
			return -1, err
		}
		if ok {
			p.consume = p.consume || m.consume
			return i, nil
		}
	}
	return -1, nil
}

// Undo rolls back every successful attempt, e.g. a combined token where
// some letters resolved and others did not. Idempotent.
func (p *OptProcess) Undo(registry *Registry) {
	for _, m := range p.matches {
		if uid := m.MatchedUid(); uid != InvalidUid {
			if opt := registry.Opt(uid); opt != nil {
				m.Undo(opt)
			}
		}
	}
}

// Reset clears all attempts without touching option state.
func (p *OptProcess) Reset() {
	for _, m := range p.matches {
		m.reset()
	}
	p.consume = false
}

// NOAProcess resolves one positional slot. It holds exactly one match,
// retried per candidate option until one succeeds.
type NOAProcess struct {
	match *NOAMatch
}

// Match exposes the slot's single attempt.
func (p *NOAProcess) Match() *NOAMatch {
	return p.match
}

// Matched reports whether the slot resolved.
func (p *NOAProcess) Matched() bool {
	return p.match != nil && p.match.Matched()
}

// Quit reports whether candidates can stop being tried.
func (p *NOAProcess) Quit() bool {
	return p.Matched()
}

// ProcessUid tries the option against the slot; 0 on success, -1 otherwise.
func (p *NOAProcess) ProcessUid(opt *Option) (int, error) {
	if !opt.MatchStyle(StylePos) && !opt.MatchStyle(StyleCmd) &&
		!opt.MatchStyle(StyleMain) {
		return -1, nil
	}
	if p.match == nil || p.match.Matched() {
		return -1, nil
	}
	ok, err := p.match.Process(opt)
	if err != nil {
		return -1, err
	}
	if ok {
		return 0, nil
	}
	return -1, nil
}

// Undo rolls back the slot. Idempotent.
func (p *NOAProcess) Undo(registry *Registry) {
	if p.match == nil {
		return
	}
	if uid := p.match.MatchedUid(); uid != InvalidUid {
		if opt := registry.Opt(uid); opt != nil {
			p.match.Undo(opt)
		}
	}
}
