package optix

// failManager accumulates the recoverable failures recorded while resolving
// one phase of a parse. When the phase ends in a terminal error, the
// recorded failures become its causal chain, most specific first.
type failManager struct {
	fails []*ParseError
}

func (f *failManager) push(err *ParseError) {
	f.fails = append(f.fails, err)
}

func (f *failManager) empty() bool {
	return len(f.fails) == 0
}

// cause chains every recorded failure under top, in recording order.
func (f *failManager) cause(top *ParseError) error {
	if f.empty() {
		return top
	}
	top.cause = chain(f.fails)
	return top
}

// causeUid chains only the failures recorded against top's uid, or against
// no uid at all — the most specific proximate causes. Failures tied to
// unrelated options are dropped from the chain.
func (f *failManager) causeUid(top *ParseError) error {
	var related []*ParseError
	for _, fail := range f.fails {
		if fail.uid == top.uid || fail.uid == InvalidUid {
			related = append(related, fail)
		}
	}
	if len(related) == 0 {
		return top
	}
	top.cause = chain(related)
	return top
}

// check passes a nil error through and otherwise chains the recorded
// failures under it.
func (f *failManager) check(err error) error {
	if err == nil {
		return nil
	}
	return f.causeUid(asParseError(err, InvalidUid))
}

func chain(fails []*ParseError) error {
	head := fails[0]
	curr := head
	for _, next := range fails[1:] {
		curr.cause = next
		curr = next
	}
	return head
}
