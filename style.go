package optix

// Style describes how a successful match acquired (or will acquire) its
// value. An option declares the set of styles it supports; each match
// attempt tests exactly one.
type Style int

const (
	StyleNull Style = iota
	// StyleArgument denotes a valued match: the value came with the token
	// (equals or embedded form) or from the next argument.
	StyleArgument
	// StyleBoolean denotes a flag match without a value.
	StyleBoolean
	// StyleCombined denotes one letter of a combined token such as "-abc".
	StyleCombined
	// StylePos denotes a non-option argument matched by position.
	StylePos
	// StyleCmd denotes the command literal at the first NOA position.
	StyleCmd
	// StyleMain denotes the catch-all slot which matches any NOA list.
	StyleMain
)

// String returns the string representation of a Style
func (s Style) String() string {
	switch s {
	case StyleArgument:
		return "argument"
	case StyleBoolean:
		return "boolean"
	case StyleCombined:
		return "combined"
	case StylePos:
		return "pos"
	case StyleCmd:
		return "cmd"
	case StyleMain:
		return "main"
	}
	return "null"
}

// UserStyle is a syntax dialect consulted by the policy, in catalog order,
// for every prefixed token.
type UserStyle int

const (
	// UserStyleEqualWithValue matches "--opt=value".
	UserStyleEqualWithValue UserStyle = iota
	// UserStyleArgument matches "--opt value", consuming the next argument.
	UserStyleArgument
	// UserStyleEmbeddedValue matches "-i42": single-letter name, the rest is
	// the value.
	UserStyleEmbeddedValue
	// UserStyleEmbeddedValuePlus matches "--opt42" at every possible split
	// point after the second character.
	UserStyleEmbeddedValuePlus
	// UserStyleCombinedOption matches "-abc" as the flags "a", "b" and "c";
	// all of them must resolve or the style does not apply.
	UserStyleCombinedOption
	// UserStyleBoolean matches "--flag" without a value.
	UserStyleBoolean
	// UserStylePos matches a NOA by position.
	UserStylePos
	// UserStyleCmd matches the first NOA as a command literal.
	UserStyleCmd
	// UserStyleMain always matches, receiving the whole NOA list.
	UserStyleMain
)

func (s UserStyle) String() string {
	switch s {
	case UserStyleEqualWithValue:
		return "equal-with-value"
	case UserStyleArgument:
		return "argument"
	case UserStyleEmbeddedValue:
		return "embedded-value"
	case UserStyleEmbeddedValuePlus:
		return "embedded-value-plus"
	case UserStyleCombinedOption:
		return "combined-option"
	case UserStyleBoolean:
		return "boolean"
	case UserStylePos:
		return "pos"
	case UserStyleCmd:
		return "cmd"
	case UserStyleMain:
		return "main"
	}
	return "unknown"
}

// StyleManager holds the ordered list of enabled user styles. Styles are
// consulted top to bottom per token; the first style producing a confirmed
// match wins.
type StyleManager struct {
	styles []UserStyle
}

// NewStyleManager returns a manager with the default catalog:
// EqualWithValue, Argument, Boolean, EmbeddedValue.
func NewStyleManager() *StyleManager {
	return &StyleManager{
		styles: []UserStyle{
			UserStyleEqualWithValue,
			UserStyleArgument,
			UserStyleBoolean,
			UserStyleEmbeddedValue,
		},
	}
}

// With replaces the catalog and returns the manager.
func (m *StyleManager) With(styles ...UserStyle) *StyleManager {
	m.styles = styles
	return m
}

// Set replaces the catalog.
func (m *StyleManager) Set(styles ...UserStyle) {
	m.styles = styles
}

// Insert adds a style at the given position.
func (m *StyleManager) Insert(index int, style UserStyle) {
	if index < 0 {
		index = 0
	}
	if index > len(m.styles) {
		index = len(m.styles)
	}
	m.styles = append(m.styles[:index], append([]UserStyle{style}, m.styles[index:]...)...)
}

// Push appends a style unless it is already enabled.
func (m *StyleManager) Push(style UserStyle) {
	if !m.Has(style) {
		m.styles = append(m.styles, style)
	}
}

// Remove drops a style from the catalog.
func (m *StyleManager) Remove(style UserStyle) {
	for i, s := range m.styles {
		if s == style {
			m.styles = append(m.styles[:i], m.styles[i+1:]...)
			return
		}
	}
}

// Has reports whether a style is enabled.
func (m *StyleManager) Has(style UserStyle) bool {
	for _, s := range m.styles {
		if s == style {
			return true
		}
	}
	return false
}

// Styles returns the catalog in consultation order.
func (m *StyleManager) Styles() []UserStyle {
	return m.styles
}

const (
	boolTrue  = "true"
	boolFalse = "false"
)

func boolRaw(disabled bool) string {
	if disabled {
		return boolFalse
	}
	return boolTrue
}

// guessOpt builds the Process for one user style applied to a prefixed
// token. next is the argument following the token, when one exists. A nil
// return means the style cannot apply to this token shape at all; the
// policy then consults the next style.
func guessOpt(style UserStyle, token Token, next string, hasNext bool) *OptProcess {
	var matches []*OptMatch

	switch style {
	case UserStyleEqualWithValue:
		if token.HasValue {
			matches = append(matches, &OptMatch{
				prefix:   token.Prefix,
				name:     token.Name,
				style:    StyleArgument,
				arg:      token.Value,
				hasArg:   true,
				disabled: token.Disabled,
			})
		}
	case UserStyleArgument:
		if !token.HasValue {
			matches = append(matches, &OptMatch{
				prefix:   token.Prefix,
				name:     token.Name,
				style:    StyleArgument,
				arg:      next,
				hasArg:   hasNext,
				consume:  true,
				disabled: token.Disabled,
			})
		}
	case UserStyleEmbeddedValue:
		if !token.HasValue {
			if runes := []rune(token.Name); len(runes) >= 2 {
				matches = append(matches, &OptMatch{
					prefix:   token.Prefix,
					name:     string(runes[:1]),
					style:    StyleArgument,
					arg:      string(runes[1:]),
					hasArg:   true,
					disabled: token.Disabled,
				})
			}
		}
	case UserStyleEmbeddedValuePlus:
		if !token.HasValue {
			// one candidate per split point, name at least two characters
			// and value at least one; any single hit confirms the token
			if runes := []rune(token.Name); len(runes) >= 3 {
				process := &OptProcess{anyMatch: true}
				for at := 2; at < len(runes); at++ {
					process.matches = append(process.matches, &OptMatch{
						prefix:   token.Prefix,
						name:     string(runes[:at]),
						style:    StyleArgument,
						arg:      string(runes[at:]),
						hasArg:   true,
						disabled: token.Disabled,
					})
				}
				return process
			}
		}
	case UserStyleCombinedOption:
		if !token.HasValue {
			if runes := []rune(token.Name); len(runes) > 1 {
				for _, r := range runes {
					matches = append(matches, &OptMatch{
						prefix:   token.Prefix,
						name:     string(r),
						style:    StyleCombined,
						arg:      boolRaw(token.Disabled),
						hasArg:   true,
						disabled: token.Disabled,
					})
				}
			}
		}
	case UserStyleBoolean:
		if !token.HasValue {
			matches = append(matches, &OptMatch{
				prefix:   token.Prefix,
				name:     token.Name,
				style:    StyleBoolean,
				arg:      boolRaw(token.Disabled),
				hasArg:   true,
				disabled: token.Disabled,
			})
		}
	}

	if len(matches) == 0 {
		return nil
	}
	return &OptProcess{matches: matches}
}

// guessNOA builds the Process for one positional slot. index is the 1-based
// NOA position (0 for Main), total the full NOA count.
func guessNOA(style UserStyle, name string, index, total int, args []string) *NOAProcess {
	var matchStyle Style

	switch style {
	case UserStylePos:
		matchStyle = StylePos
	case UserStyleCmd:
		matchStyle = StyleCmd
	case UserStyleMain:
		matchStyle = StyleMain
	default:
		return nil
	}
	return &NOAProcess{
		match: &NOAMatch{
			name:         name,
			style:        matchStyle,
			index:        index,
			total:        total,
			args:         args,
			matchedUid:   InvalidUid,
			matchedIndex: -1,
		},
	}
}
