package parse

import "github.com/google/shlex"

// Split splits a command line string into arguments following shell quoting
// rules.
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
