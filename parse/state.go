package parse

import "errors"

// State is a cursor over the raw argument vector. Policies advance it one
// argument at a time; value-consuming styles skip the argument they consumed.
type State interface {
	Pos() int                      // Get the current position
	Skip()                         // Skip the next argument (it was consumed as a value)
	Args() []string                // Get the entire argument list
	CurrentArg() string            // Get the current argument
	Peek() (string, bool)          // Peek at the next argument
	Advance() bool                 // Advance to the next argument
	Remaining() []string           // Arguments after the current position
	ArgAt(pos int) (string, error) // Get the argument at a specific position
	Len() int                      // Length of the argument list
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State instance with the given argument list
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Skip advances the current position past the next argument
func (s *DefaultState) Skip() {
	s.pos++
}

// Args returns the entire argument list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next argument without advancing the current position
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}
	return "", false
}

// Remaining returns the arguments after the current position without
// advancing. Used when a scan stops early and hands the tail to a nested
// parser.
func (s *DefaultState) Remaining() []string {
	if s.pos+1 >= len(s.args) {
		return nil
	}
	rest := make([]string, len(s.args)-s.pos-1)
	copy(rest, s.args[s.pos+1:])
	return rest
}

// ArgAt returns the argument at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}
	return s.args[pos], nil
}

// Len returns the length of the argument list
func (s *DefaultState) Len() int {
	return len(s.args)
}
