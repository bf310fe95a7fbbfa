package grammar

import (
	"slices"
	"strconv"
	"strings"
)

// String prints the canonical form: single spaces around '=' and after
// each comma, keys in source order.
func (a *Args) String() string {
	parts := make([]string, len(a.Assigns))
	for i, assign := range a.Assigns {
		parts[i] = assign.String()
	}
	return strings.Join(parts, ", ")
}

func (a *Assign) String() string {
	return a.Key + " = " + a.Value.String()
}

func (l *Literal) String() string {
	switch {
	case l.Str != nil:
		return "'" + *l.Str + "'"
	case l.Number != nil:
		return strconv.FormatInt(*l.Number, 10)
	}
	return ""
}

// Sorted returns a copy with the assignments ordered by key.
func (a *Args) Sorted() *Args {
	sorted := &Args{Pos: a.Pos, Assigns: slices.Clone(a.Assigns)}
	slices.SortFunc(sorted.Assigns, func(x, y *Assign) int {
		return strings.Compare(x.Key, y.Key)
	})
	return sorted
}

// Format parses source and returns its canonical form.
func Format(filename, source string, sortKeys bool) (string, error) {
	args, err := ParseString(filename, source)
	if err != nil {
		return "", err
	}
	if sortKeys {
		args = args.Sorted()
	}
	return args.String(), nil
}
