package namedargs

import (
	"reflect"
	"slices"
)

// Accessor is the read view over Args handed to a conversion routine. It
// remembers which keys were requested, which is what strict parsing checks
// against. An Accessor must not be shared between goroutines.
type Accessor struct {
	args      *Args
	requested map[string]struct{}
}

func newAccessor(args *Args) *Accessor {
	return &Accessor{
		args:      args,
		requested: make(map[string]struct{}),
	}
}

// Lookup returns the value bound to key.
func (a *Accessor) Lookup(key string) (Value, bool) {
	b, ok := a.lookup(key)
	return b.Value, ok
}

func (a *Accessor) lookup(key string) (Binding, bool) {
	a.requested[key] = struct{}{}
	return a.args.binding(key)
}

// Has reports whether key was bound, without marking it as requested.
func (a *Accessor) Has(key string) bool {
	_, ok := a.args.binding(key)
	return ok
}

// Args returns the underlying bindings.
func (a *Accessor) Args() *Args {
	return a.args
}

// Requested returns the keys looked up so far, sorted.
func (a *Accessor) Requested() []string {
	keys := make([]string, 0, len(a.requested))
	for k := range a.requested {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Unused returns the bindings whose keys were never looked up, in key order.
func (a *Accessor) Unused() []Binding {
	var unused []Binding
	for _, b := range a.args.bindings {
		if _, ok := a.requested[b.Key]; !ok {
			unused = append(unused, b)
		}
	}
	return unused
}

func (a *Accessor) checkUnused() error {
	if unused := a.Unused(); len(unused) > 0 {
		return unknownKey(unused[0], a.Requested())
	}
	return nil
}

// Assignable lists the target types AssignOr can fill. Integer values fit
// any integer type they do not overflow; string values fit string types.
type Assignable interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AssignOr sets *dst to the value bound to key, or to def when key is not
// bound. A bound value that does not fit T is an ErrTypeMismatch and leaves
// *dst unchanged.
func AssignOr[T Assignable](a *Accessor, dst *T, key string, def T) error {
	b, ok := a.lookup(key)
	if !ok {
		*dst = def
		return nil
	}
	return assign(reflect.ValueOf(dst).Elem(), b)
}

func assign(dst reflect.Value, b Binding) error {
	switch dst.Kind() {
	case reflect.String:
		if s, ok := b.Value.Str(); ok {
			dst.SetString(s)
			return nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, ok := b.Value.Int(); ok && !dst.OverflowInt(n) {
			dst.SetInt(n)
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if n, ok := b.Value.Int(); ok && n >= 0 && !dst.OverflowUint(uint64(n)) {
			dst.SetUint(uint64(n))
			return nil
		}
	case reflect.Interface:
		if dst.NumMethod() == 0 {
			dst.Set(reflect.ValueOf(b.Value.Interface()))
			return nil
		}
	}
	return typeMismatch(b, dst.Type().String())
}
