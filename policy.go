package optix

import (
	"strings"

	"github.com/farnil/optix/parse"
)

// Policy drives one parse run over an argument list. The three built-in
// policies share the token scan and the NOA resolution below and differ only
// in when confirmed matches invoke and in whether unmatched NOAs may hand
// off to a nested parser.
type Policy interface {
	Name() string
	Parse(p *Parser, args []string) error
}

// Delegation records where a Pre parse handed the tail of the argument list
// to a nested parser.
type Delegation struct {
	// Boundary is the index of the delegating argument in the parsed list.
	Boundary int
	// Name is the nested parser's registered name.
	Name string
	// Remaining is the tail handed to the nested parser, boundary excluded.
	Remaining []string
}

// scanOptions walks the argument list, classifying each argument and trying
// the enabled user styles in catalog order against every prefixed token. A
// confirmed match is handed to emit (nil during a trial scan); arguments
// consumed as values are skipped. The NOA candidates come back in encounter
// order alongside their positions in the argument list.
//
// Failures recorded while a token still found a match stay local to that
// token. When a prefixed token matches nothing, strict mode turns it into a
// terminal unknown-option error carrying the token's failures as its causal
// chain; lenient mode demotes it to a NOA candidate and keeps the failures
// for later checks.
func scanOptions(p *Parser, state parse.State, fm *failManager, emit func(invocation) error, strict bool) ([]string, []int, error) {
	var noa []string
	var noaPos []int

	for state.Advance() {
		raw := state.CurrentArg()
		token := Tokenize(raw, p.prefixes)
		next, hasNext := state.Peek()

		if !token.HasPrefix {
			if p.combinedBare && p.styles.Has(UserStyleCombinedOption) {
				bare := Token{Prefix: "", Name: raw, HasPrefix: true}
				tfm := &failManager{}
				proc := guessOpt(UserStyleCombinedOption, bare, next, hasNext)
				if proc != nil {
					matched, err := matchOptProcess(p, proc, tfm)
					if err != nil {
						return nil, nil, tfm.check(err)
					}
					if matched {
						if err := emitOpt(proc, emit); err != nil {
							return nil, nil, err
						}
						if proc.Consume() {
							state.Skip()
						}
						continue
					}
				}
			}
			noa = append(noa, raw)
			noaPos = append(noaPos, state.Pos())
			continue
		}

		tfm := &failManager{}
		matched := false
		for _, style := range p.styles.Styles() {
			proc := guessOpt(style, token, next, hasNext)
			if proc == nil {
				continue
			}
			ok, err := matchOptProcess(p, proc, tfm)
			if err != nil {
				return nil, nil, tfm.check(err)
			}
			if ok {
				if err := emitOpt(proc, emit); err != nil {
					return nil, nil, err
				}
				if proc.Consume() {
					state.Skip()
				}
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if strict {
			return nil, nil, tfm.cause(newError(InvalidUid, ErrUnknownOption, "%s", raw))
		}
		fm.fails = append(fm.fails, tfm.fails...)
		noa = append(noa, raw)
		noaPos = append(noaPos, state.Pos())
	}
	return noa, noaPos, nil
}

// matchOptProcess tries every registered option, in registration order,
// against the process until it resolves. Recoverable failures are recorded
// and the next overload candidate tried when overload mode is on; otherwise
// they are terminal, as are hard errors. A partially matched process (some
// letters of a combined token) is rolled back before returning.
func matchOptProcess(p *Parser, proc *OptProcess, fm *failManager) (bool, error) {
	for _, opt := range p.registry.opts {
		if proc.Quit() {
			break
		}
		if _, err := proc.ProcessUid(opt); err != nil {
			pe := asParseError(err, opt.uid)
			if pe.Failure() && p.overload {
				fm.push(pe)
				continue
			}
			proc.Undo(p.registry)
			return false, pe
		}
	}
	if !proc.Matched() {
		proc.Undo(p.registry)
		return false, nil
	}
	return true, nil
}

// matchNOAProcess tries every registered option against one positional
// slot. A recoverable failure lets the next candidate for the slot try;
// the first acceptance wins.
func matchNOAProcess(p *Parser, proc *NOAProcess, fm *failManager) (bool, error) {
	for _, opt := range p.registry.opts {
		if proc.Quit() {
			break
		}
		if _, err := proc.ProcessUid(opt); err != nil {
			pe := asParseError(err, opt.uid)
			if pe.Failure() {
				fm.push(pe)
				continue
			}
			return false, pe
		}
	}
	return proc.Matched(), nil
}

func emitOpt(proc *OptProcess, emit func(invocation) error) error {
	if emit == nil {
		return nil
	}
	for _, m := range proc.matches {
		if m.Matched() {
			if err := emit(optInvocation(m)); err != nil {
				return err
			}
		}
	}
	return nil
}

func emitNOA(proc *NOAProcess, emit func(invocation) error) error {
	if emit == nil || !proc.Matched() {
		return nil
	}
	return emit(noaInvocation(proc.match))
}

// resolveNOA runs the positional phases over the collected NOA candidates:
// the command slot at position 1, every position for Pos options, then the
// Main slot with the whole list. Position totals are final here, so
// backward and open-ended constraints resolve. An unmatched slot is not an
// error; the required checks afterwards decide what was mandatory.
func resolveNOA(p *Parser, noa []string, fm *failManager, emit func(invocation) error) error {
	total := len(noa)

	if total >= 1 {
		proc := guessNOA(UserStyleCmd, noa[0], 1, total, noa)
		matched, err := matchNOAProcess(p, proc, fm)
		if err != nil {
			return err
		}
		if matched {
			if err := emitNOA(proc, emit); err != nil {
				return err
			}
		}
	}
	if err := cmdCheck(p, fm); err != nil {
		return err
	}

	for idx := 1; idx <= total; idx++ {
		proc := guessNOA(UserStylePos, noa[idx-1], idx, total, noa)
		matched, err := matchNOAProcess(p, proc, fm)
		if err != nil {
			return err
		}
		if matched {
			if err := emitNOA(proc, emit); err != nil {
				return err
			}
		}
	}
	if err := posCheck(p, fm); err != nil {
		return err
	}

	proc := guessNOA(UserStyleMain, "", 0, total, noa)
	matched, err := matchNOAProcess(p, proc, fm)
	if err != nil {
		return err
	}
	if matched {
		if err := emitNOA(proc, emit); err != nil {
			return err
		}
	}
	return nil
}

// cmdCheck enforces that when command options are registered, one of them
// matched. Commands are implicitly required.
func cmdCheck(p *Parser, fm *failManager) error {
	var names []string
	for _, opt := range p.registry.opts {
		if !opt.MatchStyle(StyleCmd) {
			continue
		}
		if opt.matched {
			return nil
		}
		names = append(names, opt.name)
	}
	if len(names) == 0 {
		return nil
	}
	return fm.cause(newError(InvalidUid, ErrCommandRequired,
		"expected one of: %s", strings.Join(names, ", ")))
}

// optCheck enforces required options after the scan phase.
func optCheck(p *Parser, fm *failManager) error {
	for _, opt := range p.registry.opts {
		if !opt.required || opt.matched {
			continue
		}
		if opt.MatchStyle(StyleArgument) || opt.MatchStyle(StyleBoolean) ||
			opt.MatchStyle(StyleCombined) {
			return fm.causeUid(newError(opt.uid, ErrOptionRequired, "%s", opt.Hint()))
		}
	}
	return nil
}

// posCheck enforces required positional options once all slots resolved.
func posCheck(p *Parser, fm *failManager) error {
	for _, opt := range p.registry.opts {
		if !opt.required || opt.matched {
			continue
		}
		if opt.MatchStyle(StylePos) {
			return fm.causeUid(newError(opt.uid, ErrOptionRequired,
				"%s@%s", opt.name, opt.index.String()))
		}
	}
	return nil
}
