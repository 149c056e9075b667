package optix

import (
	"regexp"
	"sort"
	"strings"
)

// Uid is the stable numeric identity of a registered option, assigned at
// registration time. Uids index directly into the registry arena.
type Uid int

// InvalidUid marks the absence of an option identity.
const InvalidUid Uid = -1

// Token is the classification of one raw argument:
//
//	[--][/][name][=][value]
//	  |   |    |   |    |
//	  |   |    |   |    value part, optional
//	  |   |    |   delimiter between name and value
//	  |   |    name part, required
//	  |   deactivation marker, optional
//	  prefix, one of the configured prefixes
//
// A token with HasPrefix false is a non-option-argument candidate, never an
// error.
type Token struct {
	Prefix    string
	Name      string
	Value     string
	HasPrefix bool
	HasValue  bool
	Disabled  bool
}

// Name must be non-empty and free of '='; a value, when present, must be
// non-empty. Anything else falls back to NOA classification.
var tokenPattern = regexp.MustCompile(`^(/)?([^=]+)(=(.+))?$`)

// Tokenize splits one raw argument against the configured prefixes. The
// longest matching prefix wins, so "--flag" resolves to prefix "--" even
// when "-" is also configured. Arguments matching no prefix, or malformed
// after the prefix (empty name, empty "=" value), come back with HasPrefix
// false.
func Tokenize(raw string, prefixes []string) Token {
	matching := make([]string, 0, len(prefixes))
	for _, prefix := range prefixes {
		if strings.HasPrefix(raw, prefix) {
			matching = append(matching, prefix)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return len(matching[i]) > len(matching[j])
	})

	// A longer prefix can leave a malformed remainder (e.g. "--=xar" with
	// {"--", "-"}); a shorter one may still yield a valid token.
	for _, prefix := range matching {
		groups := tokenPattern.FindStringSubmatch(raw[len(prefix):])
		if groups == nil {
			continue
		}
		token := Token{
			Prefix:    prefix,
			Name:      groups[2],
			HasPrefix: true,
			Disabled:  groups[1] == "/",
		}
		if groups[3] != "" {
			token.Value = groups[4]
			token.HasValue = true
		}
		return token
	}
	return Token{}
}
