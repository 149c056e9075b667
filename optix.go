// Copyright 2025-2026, the optix authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package optix resolves command line arguments against a set of registered
// options. Arguments are classified into prefixed tokens and non-option
// arguments, tokens are tried against the enabled syntax styles, and a
// policy decides when confirmed matches store their values and fire their
// callbacks.
package optix

import (
	"github.com/farnil/optix/parse"
	"github.com/farnil/optix/util"
)

// ConfigureParserFunc adjusts a parser during construction.
type ConfigureParserFunc func(p *Parser) error

// ConfigureOptionFunc adjusts an option during construction.
type ConfigureOptionFunc func(o *Option) error

// Parser owns the option registry, the syntax configuration and the results
// of the most recent parse run. A Parser is not safe for concurrent use.
type Parser struct {
	registry     *Registry
	styles       *StyleManager
	prefixes     []string
	strict       bool
	overload     bool
	combinedBare bool
	policy       Policy
	subParsers   map[string]*Parser

	errors     []error
	bindings   []Binding
	delegation *Delegation

	secureInput func(prompt string) (string, error)
}

// NewParser returns a parser with the default configuration: prefixes "--"
// and "-", strict mode on, the default style catalog and the Forward
// policy.
func NewParser() *Parser {
	return &Parser{
		registry:    NewRegistry(),
		styles:      NewStyleManager(),
		prefixes:    []string{"--", "-"},
		strict:      true,
		policy:      NewForwardPolicy(),
		subParsers:  map[string]*Parser{},
		secureInput: util.GetSecureString,
	}
}

// NewParserWith returns a parser adjusted by the given configuration
// functions, applied in order.
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()
	for _, config := range configs {
		if err := config(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ensureInit makes a zero-value Parser usable. Boolean knobs keep their
// zero values, so such a parser is lenient; NewParser is the strict
// default.
func (p *Parser) ensureInit() {
	if p.registry == nil {
		p.registry = NewRegistry()
	}
	if p.styles == nil {
		p.styles = NewStyleManager()
	}
	if p.prefixes == nil {
		p.prefixes = []string{"--", "-"}
	}
	if p.policy == nil {
		p.policy = NewForwardPolicy()
	}
	if p.subParsers == nil {
		p.subParsers = map[string]*Parser{}
	}
	if p.secureInput == nil {
		p.secureInput = util.GetSecureString
	}
}

// Add registers an option and returns its uid.
func (p *Parser) Add(opt *Option) Uid {
	p.ensureInit()
	return p.registry.Add(opt)
}

// AddWith builds an option from a base and configuration functions, then
// registers it.
func (p *Parser) AddWith(opt *Option, configs ...ConfigureOptionFunc) (Uid, error) {
	p.ensureInit()
	for _, config := range configs {
		if err := config(opt); err != nil {
			return InvalidUid, err
		}
	}
	return p.registry.Add(opt), nil
}

// Registry exposes the option registry.
func (p *Parser) Registry() *Registry {
	p.ensureInit()
	return p.registry
}

// Styles exposes the user style catalog.
func (p *Parser) Styles() *StyleManager {
	p.ensureInit()
	return p.styles
}

// Prefixes returns the configured prefixes.
func (p *Parser) Prefixes() []string {
	return p.prefixes
}

// Policy returns the active policy.
func (p *Parser) Policy() Policy {
	return p.policy
}

// SubParser returns the nested parser registered under name.
func (p *Parser) SubParser(name string) (*Parser, error) {
	sub, ok := p.subParsers[name]
	if !ok {
		return nil, newError(InvalidUid, ErrUnknownSubParser, "%s", name)
	}
	return sub, nil
}

// Parse resolves an argument vector in the shape of os.Args: the first
// element is the program name and is skipped. Returns true when the run
// produced no errors; the details are available through Errors.
func (p *Parser) Parse(argv []string) bool {
	var args []string
	if len(argv) > 1 {
		args = argv[1:]
	}
	return p.parseArgs(args) == nil
}

// ParseString splits a command line with shell quoting rules and parses it.
// The first field is treated as the program name, as in Parse.
func (p *Parser) ParseString(line string) bool {
	p.ensureInit()
	argv, err := parse.Split(line)
	if err != nil {
		p.resetRun()
		p.errors = append(p.errors, err)
		return false
	}
	return p.Parse(argv)
}

func (p *Parser) parseArgs(args []string) error {
	p.ensureInit()
	p.resetRun()
	if err := p.policy.Parse(p, args); err != nil {
		p.errors = append(p.errors, err)
		return err
	}
	return nil
}

func (p *Parser) resetRun() {
	p.registry.resetRun()
	p.errors = nil
	p.bindings = nil
	p.delegation = nil
}

// Errors returns the errors recorded by the most recent parse run.
func (p *Parser) Errors() []error {
	return p.errors
}

// Error returns the first recorded error, or nil.
func (p *Parser) Error() error {
	if len(p.errors) == 0 {
		return nil
	}
	return p.errors[0]
}

// Bindings returns the ordered (uid, position, value) log of the most
// recent parse run.
func (p *Parser) Bindings() []Binding {
	return p.bindings
}

// Delegation reports where the most recent Pre parse handed off, or nil.
func (p *Parser) Delegation() *Delegation {
	return p.delegation
}

// Opt returns the option registered under uid, or nil.
func (p *Parser) Opt(uid Uid) *Option {
	return p.registry.Opt(uid)
}

// Find returns the overload bucket for a (prefix, name) pair.
func (p *Parser) Find(prefix, name string) []*Option {
	return p.registry.Find(prefix, name)
}

// lookup finds the first option answering to a bare name, primary or alias,
// regardless of prefix.
func (p *Parser) lookup(name string) *Option {
	p.ensureInit()
	for _, opt := range p.registry.opts {
		if opt.name == name {
			return opt
		}
		for _, alias := range opt.aliases {
			if alias.Name == name {
				return opt
			}
		}
	}
	return nil
}

// Get returns the current value of the named option, falling back to its
// declared default. The second return is false when the option is unknown
// or has no value.
func (p *Parser) Get(name string) (Value, bool) {
	opt := p.lookup(name)
	if opt == nil {
		return Value{}, false
	}
	return opt.Val()
}

// GetString returns the named option's string value.
func (p *Parser) GetString(name string) (string, bool) {
	v, ok := p.Get(name)
	if !ok || v.Kind != KindString {
		return "", false
	}
	return v.Str, true
}

// GetBool returns the named option's boolean value.
func (p *Parser) GetBool(name string) (bool, bool) {
	v, ok := p.Get(name)
	if !ok || v.Kind != KindBool {
		return false, false
	}
	return v.Bool, true
}

// GetInt returns the named option's integer value.
func (p *Parser) GetInt(name string) (int64, bool) {
	v, ok := p.Get(name)
	if !ok || v.Kind != KindInt {
		return 0, false
	}
	return v.Int, true
}

// Count returns how many times the named option matched, honoring counting
// actions.
func (p *Parser) Count(name string) int {
	opt := p.lookup(name)
	if opt == nil {
		return 0
	}
	return opt.Count()
}
