package namedargs

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Unmarshaler is implemented by types that populate themselves from parsed
// arguments.
type Unmarshaler interface {
	UnmarshalArgs(a *Accessor) error
}

// Unmarshal parses input and stores the bindings in v, which must be a
// non-nil pointer.
//
// If v implements Unmarshaler its UnmarshalArgs method is called. A
// map[string]any receives every binding as int64 or string. A struct
// has each exported field assigned as by AssignOr, with the field's current
// value as the default. The key is taken from the `nargs` tag, or is the
// field name with its first letter lowered; the tag "-" skips the field.
// Fields of untagged embedded structs are promoted as encoding/json
// promotes them.
//
//	type params struct {
//		Num   int    // key "num"
//		Label string `nargs:"str"`
//	}
func Unmarshal(input string, v any, opts ...Option) error {
	_, err := Parse(input, func(a *Accessor) (struct{}, error) {
		return struct{}{}, decode(a, v)
	}, opts...)
	return err
}

func decode(a *Accessor, v any) error {
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalArgs(a)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("namedargs: Unmarshal(%T): destination must be a non-nil pointer", v)
	}

	d := rv.Elem()
	switch d.Kind() {
	case reflect.Struct:
		return decodeStruct(a, d)
	case reflect.Map:
		if d.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("namedargs: Unmarshal(%T): map keys must be strings", v)
		}
		return decodeMap(a, d)
	default:
		return fmt.Errorf("namedargs: Unmarshal(%T): unsupported destination", v)
	}
}

func decodeStruct(a *Accessor, d reflect.Value) error {
	for _, f := range structFields(d.Type()) {
		b, ok := a.lookup(f.key)
		if !ok {
			continue
		}
		if err := assign(fieldByIndex(d, f.index), b); err != nil {
			return fmt.Errorf("setting field %s: %w", f.name, err)
		}
	}
	return nil
}

type structField struct {
	index []int
	name  string
	key   string
}

// structFields lists the settable fields of t, promoting the fields of
// untagged embedded structs. A key bound at a shallower depth hides the
// deeper ones, and a key claimed twice at one depth is dropped.
func structFields(t reflect.Type) []structField {
	type embedded struct {
		typ   reflect.Type
		index []int
	}

	var fields []structField
	bound := map[string]bool{}
	visited := map[reflect.Type]bool{}

	for current := []embedded{{typ: t}}; len(current) > 0; {
		var next []embedded
		var level []structField
		count := map[string]int{}

		for _, e := range current {
			if visited[e.typ] {
				continue
			}
			visited[e.typ] = true

			for i := 0; i < e.typ.NumField(); i++ {
				field := e.typ.Field(i)
				index := append(slices.Clone(e.index), i)

				if field.Anonymous && field.Tag.Get("nargs") == "" {
					ft := field.Type
					if ft.Kind() == reflect.Pointer && field.IsExported() {
						ft = ft.Elem()
					}
					if ft.Kind() == reflect.Struct {
						next = append(next, embedded{typ: ft, index: index})
						continue
					}
				}
				if !field.IsExported() {
					continue
				}

				key := fieldKey(field)
				if key == "-" || bound[key] {
					continue
				}
				count[key]++
				level = append(level, structField{index: index, name: field.Name, key: key})
			}
		}

		for _, f := range level {
			if count[f.key] == 1 {
				fields = append(fields, f)
			}
		}
		for key := range count {
			bound[key] = true
		}
		current = next
	}
	return fields
}

// fieldByIndex walks index from d, allocating nil embedded pointers.
func fieldByIndex(d reflect.Value, index []int) reflect.Value {
	v := d
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

func decodeMap(a *Accessor, d reflect.Value) error {
	if d.IsNil() {
		d.Set(reflect.MakeMap(d.Type()))
	}
	elemType := d.Type().Elem()
	for _, b := range a.args.bindings {
		a.requested[b.Key] = struct{}{}
		elem := reflect.New(elemType).Elem()
		if err := assign(elem, b); err != nil {
			return err
		}
		d.SetMapIndex(reflect.ValueOf(b.Key).Convert(d.Type().Key()), elem)
	}
	return nil
}

// fieldKey returns the argument key for a struct field.
func fieldKey(field reflect.StructField) string {
	if tag := field.Tag.Get("nargs"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		return name
	}
	r, size := utf8.DecodeRuneInString(field.Name)
	return string(unicode.ToLower(r)) + field.Name[size:]
}
