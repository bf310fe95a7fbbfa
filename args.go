package namedargs

import (
	"slices"
	"sort"
	"strings"

	"namedargs/internal/parser"
)

type (
	Value     = parser.Value
	ValueKind = parser.ValueKind
	Binding   = parser.Binding
	Position  = parser.Position
)

const (
	IntValue    = parser.IntValue
	StringValue = parser.StringValue
)

// Args is the finalized set of bindings from one parse, ordered by key.
// It is never modified after construction and may be shared between
// goroutines.
type Args struct {
	bindings []Binding
}

func newArgs(bindings []Binding) *Args {
	sorted := slices.Clone(bindings)
	slices.SortFunc(sorted, func(a, b Binding) int {
		return strings.Compare(a.Key, b.Key)
	})
	return &Args{bindings: sorted}
}

// Lookup finds key by binary search.
func (a *Args) Lookup(key string) (Value, bool) {
	b, ok := a.binding(key)
	return b.Value, ok
}

func (a *Args) binding(key string) (Binding, bool) {
	i := sort.Search(len(a.bindings), func(i int) bool {
		return a.bindings[i].Key >= key
	})
	if i < len(a.bindings) && a.bindings[i].Key == key {
		return a.bindings[i], true
	}
	return Binding{}, false
}

func (a *Args) Len() int {
	return len(a.bindings)
}

// Keys returns the keys in ascending order.
func (a *Args) Keys() []string {
	keys := make([]string, len(a.bindings))
	for i, b := range a.bindings {
		keys[i] = b.Key
	}
	return keys
}

// Bindings returns a copy of the bindings in key order.
func (a *Args) Bindings() []Binding {
	return slices.Clone(a.bindings)
}

// Each calls yield for every binding in key order until it returns false.
// It has the shape of an iter.Seq, so it works with range:
//
//	for b := range args.Each { ... }
func (a *Args) Each(yield func(Binding) bool) {
	for _, b := range a.bindings {
		if !yield(b) {
			return
		}
	}
}

// String renders the bindings as argument text, ordered by key. Parsing the
// result yields the same bindings.
func (a *Args) String() string {
	parts := make([]string, len(a.bindings))
	for i, b := range a.bindings {
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}
