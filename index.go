package optix

import (
	"fmt"
	"strconv"
	"strings"
)

// IndexKind enumerates the position-constraint shapes a positional option
// may declare.
type IndexKind int

const (
	IndexNull IndexKind = iota
	IndexForward
	IndexBackward
	IndexList
	IndexExcept
	IndexGreater
	IndexLess
	IndexAnywhere
)

// Index is the position constraint of a positional option. NOA positions
// are 1-based; backward and open-ended constraints can only be evaluated
// once the total NOA count is known.
//
// For ["--afl", "--bfl=42", "pos1", "--cfl", "pos2", "--dfl", "value", "pos3"]:
//
//	@1    matches "pos1"            (forward)
//	@-1   matches "pos3"            (backward)
//	@[1,3]  matches "pos1" or "pos3"  (list)
//	@-[2]   matches "pos1" or "pos3"  (exclude list)
//	@>1   matches "pos2" or "pos3"  (greater)
//	@<2   matches "pos1"            (less)
//	@*    matches any position      (anywhere)
type Index struct {
	Kind IndexKind
	Pos  int
	List []int
}

func ForwardIndex(pos int) Index  { return Index{Kind: IndexForward, Pos: pos} }
func BackwardIndex(pos int) Index { return Index{Kind: IndexBackward, Pos: pos} }
func ListIndex(list ...int) Index { return Index{Kind: IndexList, List: list} }
func ExceptIndex(list ...int) Index {
	return Index{Kind: IndexExcept, List: list}
}
func GreaterIndex(pos int) Index { return Index{Kind: IndexGreater, Pos: pos} }
func LessIndex(pos int) Index    { return Index{Kind: IndexLess, Pos: pos} }
func AnywhereIndex() Index       { return Index{Kind: IndexAnywhere} }

// IsNull reports whether no constraint was declared.
func (i Index) IsNull() bool {
	return i.Kind == IndexNull
}

// Calc resolves the constraint against a concrete (position, total) pair,
// returning the concrete position the constraint designates and whether it
// applies at all.
func (i Index) Calc(index, total int) (int, bool) {
	switch i.Kind {
	case IndexForward:
		if i.Pos <= total {
			return i.Pos, true
		}
	case IndexBackward:
		if i.Pos <= total {
			return total - i.Pos + 1, true
		}
	case IndexList:
		for _, pos := range i.List {
			if pos <= total && pos == index {
				return pos, true
			}
		}
	case IndexExcept:
		if index <= total {
			for _, pos := range i.List {
				if pos == index {
					return 0, false
				}
			}
			return index, true
		}
	case IndexGreater:
		if i.Pos <= total && i.Pos < index {
			return index, true
		}
	case IndexLess:
		if i.Pos <= total && i.Pos > index {
			return index, true
		}
	case IndexAnywhere:
		return index, true
	}
	return 0, false
}

// Match reports whether a NOA at the given 1-based position satisfies the
// constraint, given the total NOA count.
func (i Index) Match(index, total int) bool {
	pos, ok := i.Calc(index, total)
	return ok && pos == index
}

// String renders the constraint in "@" notation without the leading "@".
func (i Index) String() string {
	switch i.Kind {
	case IndexForward:
		return strconv.Itoa(i.Pos)
	case IndexBackward:
		return fmt.Sprintf("-%d", i.Pos)
	case IndexList:
		return fmt.Sprintf("[%s]", joinInts(i.List))
	case IndexExcept:
		return fmt.Sprintf("-[%s]", joinInts(i.List))
	case IndexGreater:
		return fmt.Sprintf(">%d", i.Pos)
	case IndexLess:
		return fmt.Sprintf("<%d", i.Pos)
	case IndexAnywhere:
		return "*"
	}
	return ""
}

func joinInts(list []int) string {
	parts := make([]string, len(list))
	for i, v := range list {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}

// ParseIndex parses the "@" notation used when declaring positional
// options: "3", "-3", "[1,3]", "-[2]", ">2", "<4" and "*". "0" is an alias
// for "*". A leading "@" is accepted and ignored.
func ParseIndex(spec string) (Index, error) {
	spec = strings.TrimSpace(strings.TrimPrefix(spec, "@"))
	if spec == "" {
		return Index{}, newError(InvalidUid, ErrInvalidIndex, "empty index")
	}

	switch {
	case spec == "*" || spec == "0":
		return AnywhereIndex(), nil
	case strings.HasPrefix(spec, ">"):
		pos, err := parseIndexPos(spec[1:])
		if err != nil {
			return Index{}, err
		}
		return GreaterIndex(pos), nil
	case strings.HasPrefix(spec, "<"):
		pos, err := parseIndexPos(spec[1:])
		if err != nil {
			return Index{}, err
		}
		return LessIndex(pos), nil
	case strings.HasPrefix(spec, "-["):
		list, err := parseIndexList(spec[1:])
		if err != nil {
			return Index{}, err
		}
		return ExceptIndex(list...), nil
	case strings.HasPrefix(spec, "["):
		list, err := parseIndexList(spec)
		if err != nil {
			return Index{}, err
		}
		return ListIndex(list...), nil
	case strings.HasPrefix(spec, "-"):
		pos, err := parseIndexPos(spec[1:])
		if err != nil {
			return Index{}, err
		}
		return BackwardIndex(pos), nil
	default:
		pos, err := parseIndexPos(spec)
		if err != nil {
			return Index{}, err
		}
		return ForwardIndex(pos), nil
	}
}

func parseIndexPos(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 0 {
		return 0, newError(InvalidUid, ErrInvalidIndex, "%q is not a valid position", s)
	}
	return pos, nil
}

func parseIndexList(s string) ([]int, error) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, newError(InvalidUid, ErrInvalidIndex, "%q is not a valid position list", s)
	}
	var list []int
	for _, part := range strings.Split(s[1:len(s)-1], ",") {
		pos, err := parseIndexPos(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		list = append(list, pos)
	}
	if len(list) == 0 {
		return nil, newError(InvalidUid, ErrInvalidIndex, "%q is an empty position list", s)
	}
	return list, nil
}
