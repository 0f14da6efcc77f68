package todo

import (
	"errors"
	"slices"
	"strconv"
	"strings"
)

// Keyword is a selector word that stands for a group of tasks.
type Keyword string

const (
	KeywordAll     Keyword = "all"
	KeywordChecked Keyword = "checked"
)

// keywordAliases maps accepted spellings to keywords.
var keywordAliases = map[string]Keyword{
	"all":       KeywordAll,
	"checked":   KeywordChecked,
	"completed": KeywordChecked,
}

// Selector identifies the tasks a command targets: either a keyword or a
// set of 1-based positions.
type Selector struct {
	Keyword   Keyword
	Positions []int
}

// IsKeyword reports whether the selector is a keyword selector.
func (s Selector) IsKeyword() bool {
	return s.Keyword != ""
}

// Positions builds a position selector.
func Positions(positions ...int) Selector {
	return Selector{Positions: positions}
}

// All is the selector for every task.
func All() Selector {
	return Selector{Keyword: KeywordAll}
}

// Checked is the selector for every done task.
func Checked() Selector {
	return Selector{Keyword: KeywordChecked}
}

// ParseSelector parses command arguments into a Selector.
// A keyword must be the only argument and must be listed in allowed.
// Positions are only checked for syntax here; range checks happen when the
// selector is applied to a list.
func ParseSelector(args []string, allowed ...Keyword) (Selector, error) {
	if len(args) == 0 {
		return Selector{}, ErrEmptyArgument
	}

	for _, arg := range args {
		kw, ok := keywordAliases[strings.ToLower(strings.TrimSpace(arg))]
		if !ok {
			continue
		}
		if !slices.Contains(allowed, kw) {
			return Selector{}, &InvalidSelectorError{Arg: arg, Reason: "keyword not supported by this command"}
		}
		if len(args) > 1 {
			return Selector{}, &InvalidSelectorError{Arg: arg, Reason: "keyword cannot be combined with other arguments"}
		}
		return Selector{Keyword: kw}, nil
	}

	positions := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if errors.Is(err, strconv.ErrRange) {
			return Selector{}, &OutOfRangeError{Position: n, Len: -1, Arg: strings.TrimSpace(arg)}
		}
		if err != nil {
			return Selector{}, &InvalidSelectorError{Arg: arg, Reason: "not a position"}
		}
		positions = append(positions, n)
	}
	return Selector{Positions: positions}, nil
}
