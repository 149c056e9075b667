package optix

// Alias is an alternative (prefix, name) pair an option answers to.
type Alias struct {
	Prefix string
	Name   string
}

// Option is one registered option: its identity, the facets the matcher
// consults, and the state accumulated during a parse run. Options live in
// the registry arena; their uid is their arena index.
type Option struct {
	uid           Uid
	name          string
	prefix        string
	aliases       []Alias
	styles        []Style
	index         Index
	action        Action
	kind          ValueKind
	parser        ValueParser
	callback      Callback
	required      bool
	deactivatable bool
	noDelay       bool
	secure        bool
	securePrompt  string
	ignoreName    bool
	defaultValue  *Value
	description   string

	// per-run state
	matched      bool
	matchedIndex int
	values       []Value
}

// Uid returns the option's stable identity.
func (o *Option) Uid() Uid {
	return o.uid
}

// Name returns the primary name (without prefix).
func (o *Option) Name() string {
	return o.name
}

// Prefix returns the primary prefix.
func (o *Option) Prefix() string {
	return o.prefix
}

// Aliases returns the registered alias pairs.
func (o *Option) Aliases() []Alias {
	return o.aliases
}

// Index returns the position constraint, meaningful for positional styles.
func (o *Option) Index() Index {
	return o.index
}

// Action returns the value-merge action.
func (o *Option) Action() Action {
	return o.action
}

// Kind returns the declared value kind.
func (o *Option) Kind() ValueKind {
	return o.kind
}

// Required reports whether the option must match at least once per parse.
func (o *Option) Required() bool {
	return o.required
}

// Deactivatable reports whether "--/name" style deactivation is legal.
func (o *Option) Deactivatable() bool {
	return o.deactivatable
}

// Description returns the optional human-readable description.
func (o *Option) Description() string {
	return o.description
}

// Hint renders the option for error messages.
func (o *Option) Hint() string {
	return o.prefix + o.name
}

// MatchStyle reports whether the option declared support for a style.
func (o *Option) MatchStyle(style Style) bool {
	for _, s := range o.styles {
		if s == style {
			return true
		}
	}
	return false
}

// MatchName compares names. Positional (Pos) and Main options match by
// index or unconditionally, so their name never constrains a match.
func (o *Option) MatchName(name string) bool {
	if o.ignoreName {
		return true
	}
	return o.name == name
}

// MatchPrefix compares prefixes.
func (o *Option) MatchPrefix(prefix string) bool {
	return o.prefix == prefix
}

// MatchAlias reports whether (prefix, name) equals any registered alias.
func (o *Option) MatchAlias(prefix, name string) bool {
	for _, alias := range o.aliases {
		if alias.Prefix == prefix && alias.Name == name {
			return true
		}
	}
	return false
}

// MatchIndex checks the position constraint against a concrete
// (position, total) pair. Options without a constraint never match by
// position.
func (o *Option) MatchIndex(index, total int) bool {
	return o.index.Match(index, total)
}

// Matched reports whether the option matched during the current run.
func (o *Option) Matched() bool {
	return o.matched
}

// MatchedIndex returns the NOA position the option bound to, or -1.
func (o *Option) MatchedIndex() int {
	return o.matchedIndex
}

// Values returns the stored values in merge order.
func (o *Option) Values() []Value {
	return o.values
}

// Val returns the most recent stored value, falling back to the declared
// default. The second return is false when neither exists.
func (o *Option) Val() (Value, bool) {
	if len(o.values) > 0 {
		return o.values[len(o.values)-1], true
	}
	if o.defaultValue != nil {
		return *o.defaultValue, true
	}
	return Value{}, false
}

// Count returns the stored counter for ActionCnt options, otherwise the
// number of stored values.
func (o *Option) Count() int {
	if o.action == ActionCnt && len(o.values) == 1 && o.values[0].Kind == KindInt {
		return int(o.values[0].Int)
	}
	return len(o.values)
}

// parseValue runs the option's value parser.
func (o *Option) parseValue(raw string) (Value, error) {
	if o.parser == nil {
		o.parser = parserForKind(o.kind)
	}
	return o.parser(raw)
}

// setMatched flags the option as matched pending invocation.
func (o *Option) setMatched(index int) {
	o.matched = true
	o.matchedIndex = index
}

// clearMatched reverts a tentative match. The inverse of setMatched; stored
// values are untouched since the store only happens at invocation.
func (o *Option) clearMatched() {
	o.matched = false
	o.matchedIndex = -1
}

// resetRun clears all per-run state before a new parse.
func (o *Option) resetRun() {
	o.matched = false
	o.matchedIndex = -1
	o.values = nil
}
