package optix

// derivePrefix picks the conventional prefix for a name: "--" for long
// names, "-" for single-character ones.
func derivePrefix(name string) string {
	if len([]rune(name)) > 1 {
		return "--"
	}
	return "-"
}

// NewOption builds a bare option supporting the given styles. The prefix is
// derived from the name length; value kind defaults to string and the merge
// action to set.
func NewOption(name string, styles ...Style) *Option {
	return &Option{
		name:         name,
		prefix:       derivePrefix(name),
		styles:       styles,
		action:       ActionSet,
		kind:         KindString,
		matchedIndex: -1,
	}
}

// NewFlag builds a boolean option matched by the boolean and combined
// styles.
func NewFlag(name string) *Option {
	opt := NewOption(name, StyleBoolean, StyleCombined)
	opt.kind = KindBool
	return opt
}

// NewValued builds an option that takes a value of the given kind, matched
// by the argument style.
func NewValued(name string, kind ValueKind) *Option {
	opt := NewOption(name, StyleArgument)
	opt.kind = kind
	return opt
}

// NewPositional builds a positional option bound by index. Positional
// options never match by name.
func NewPositional(name string, index Index) *Option {
	opt := NewOption(name, StylePos)
	opt.prefix = ""
	opt.index = index
	opt.ignoreName = true
	return opt
}

// NewCommand builds a command literal expected at the first non-option
// position. Commands are implicitly required and record presence.
func NewCommand(name string) *Option {
	opt := NewOption(name, StyleCmd)
	opt.prefix = ""
	opt.kind = KindBool
	opt.index = ForwardIndex(1)
	return opt
}

// NewMain builds the catch-all option receiving the whole non-option list.
func NewMain(name string) *Option {
	opt := NewOption(name, StyleMain)
	opt.prefix = ""
	opt.kind = KindBool
	opt.ignoreName = true
	return opt
}

// WithAlias adds an alternative (prefix, name) pair.
func WithAlias(prefix, name string) ConfigureOptionFunc {
	return func(o *Option) error {
		o.aliases = append(o.aliases, Alias{Prefix: prefix, Name: name})
		return nil
	}
}

// WithPrefix overrides the derived prefix.
func WithPrefix(prefix string) ConfigureOptionFunc {
	return func(o *Option) error {
		o.prefix = prefix
		return nil
	}
}

// WithIndex sets the position constraint.
func WithIndex(index Index) ConfigureOptionFunc {
	return func(o *Option) error {
		o.index = index
		return nil
	}
}

// WithIndexString sets the position constraint from "@" notation.
func WithIndexString(spec string) ConfigureOptionFunc {
	return func(o *Option) error {
		index, err := ParseIndex(spec)
		if err != nil {
			return err
		}
		o.index = index
		return nil
	}
}

// WithAction sets the value-merge action.
func WithAction(action Action) ConfigureOptionFunc {
	return func(o *Option) error {
		o.action = action
		return nil
	}
}

// WithKind sets the declared value kind.
func WithKind(kind ValueKind) ConfigureOptionFunc {
	return func(o *Option) error {
		o.kind = kind
		return nil
	}
}

// WithValueParser overrides how raw text becomes a value.
func WithValueParser(parser ValueParser) ConfigureOptionFunc {
	return func(o *Option) error {
		o.parser = parser
		return nil
	}
}

// WithRequired marks the option as mandatory per parse run.
func WithRequired(required bool) ConfigureOptionFunc {
	return func(o *Option) error {
		o.required = required
		return nil
	}
}

// WithDeactivatable permits the "/name" deactivation form.
func WithDeactivatable(deactivatable bool) ConfigureOptionFunc {
	return func(o *Option) error {
		o.deactivatable = deactivatable
		return nil
	}
}

// WithNoDelay exempts the option from deferred invocation under the Delay
// policy.
func WithNoDelay(noDelay bool) ConfigureOptionFunc {
	return func(o *Option) error {
		o.noDelay = noDelay
		return nil
	}
}

// WithCallback attaches the invocation callback.
func WithCallback(callback Callback) ConfigureOptionFunc {
	return func(o *Option) error {
		o.callback = callback
		return nil
	}
}

// WithDefault sets the value reported when the option never matched.
func WithDefault(value Value) ConfigureOptionFunc {
	return func(o *Option) error {
		o.defaultValue = &value
		return nil
	}
}

// WithSecure flags the option as secure: matched as a bare flag, its value
// is solicited from the terminal without echo.
func WithSecure(prompt string) ConfigureOptionFunc {
	return func(o *Option) error {
		o.secure = true
		o.securePrompt = prompt
		return nil
	}
}

// WithStyles replaces the supported match styles.
func WithStyles(styles ...Style) ConfigureOptionFunc {
	return func(o *Option) error {
		o.styles = styles
		return nil
	}
}

// WithDescription sets the human-readable description.
func WithDescription(description string) ConfigureOptionFunc {
	return func(o *Option) error {
		o.description = description
		return nil
	}
}
