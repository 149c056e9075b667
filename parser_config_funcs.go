package optix

// WithStrict controls what happens to a prefixed token matching no option:
// strict parses fail, lenient parses demote the token to a non-option
// argument. Strict is the default.
func WithStrict(strict bool) ConfigureParserFunc {
	return func(p *Parser) error {
		p.strict = strict
		return nil
	}
}

// WithOverload allows several options to share a name. Candidates are tried
// in registration order and a value the first rejects may still be accepted
// by the next.
func WithOverload(overload bool) ConfigureParserFunc {
	return func(p *Parser) error {
		p.overload = overload
		return nil
	}
}

// WithCombinedBare lets a plain argument such as "abc" resolve as the
// combined flags "a", "b", "c" registered with an empty prefix. Requires
// the combined-option style to be enabled.
func WithCombinedBare(enabled bool) ConfigureParserFunc {
	return func(p *Parser) error {
		p.combinedBare = enabled
		return nil
	}
}

// WithPrefixes replaces the recognized prefixes. Longer prefixes win over
// shorter ones during classification, regardless of order here.
func WithPrefixes(prefixes ...string) ConfigureParserFunc {
	return func(p *Parser) error {
		p.prefixes = prefixes
		return nil
	}
}

// WithUserStyles replaces the style catalog. Styles are consulted in the
// given order per token.
func WithUserStyles(styles ...UserStyle) ConfigureParserFunc {
	return func(p *Parser) error {
		p.styles.Set(styles...)
		return nil
	}
}

// WithUserStyle appends one style to the catalog.
func WithUserStyle(style UserStyle) ConfigureParserFunc {
	return func(p *Parser) error {
		p.styles.Push(style)
		return nil
	}
}

// WithPolicy selects the orchestration policy.
func WithPolicy(policy Policy) ConfigureParserFunc {
	return func(p *Parser) error {
		p.policy = policy
		return nil
	}
}

// WithSubParser registers a nested parser under a command name. The Pre
// policy delegates the argument tail to it when the name shows up as an
// unclaimed non-option argument.
func WithSubParser(name string, sub *Parser) ConfigureParserFunc {
	return func(p *Parser) error {
		p.subParsers[name] = sub
		return nil
	}
}

// WithSecureInput overrides how secure options solicit their value. Mainly
// useful in tests.
func WithSecureInput(input func(prompt string) (string, error)) ConfigureParserFunc {
	return func(p *Parser) error {
		p.secureInput = input
		return nil
	}
}
