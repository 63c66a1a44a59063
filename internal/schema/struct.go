package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// FromStruct reflects a Go struct into a Definition so callers can declare
// output shapes as plain structs. Field names come from json tags, steering
// text from desc tags, and value sets from enum tags:
//
//	type Person struct {
//		Name string `json:"name" desc:"Full name of the person"`
//		Age  int    `json:"age" desc:"Age in years"`
//		Role string `json:"role,omitempty" enum:"admin,member"`
//	}
//
// Fields tagged json:"-" are skipped; omitempty and pointer fields become
// Optional.
func FromStruct(name string, v any) (*Definition, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("FromStruct requires a struct, got %T", v)
	}

	fields, err := structFields(t)
	if err != nil {
		return nil, err
	}

	d := &Definition{Name: name, Fields: fields}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func structFields(t reflect.Type) ([]Field, error) {
	fields := make([]Field, 0, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, optional := jsonName(sf)
		if name == "" {
			continue
		}

		f := Field{
			Name:        name,
			Description: sf.Tag.Get("desc"),
			Optional:    optional,
		}
		if enum := sf.Tag.Get("enum"); enum != "" {
			f.Enum = strings.Split(enum, ",")
		}

		ft := sf.Type
		if ft.Kind() == reflect.Pointer {
			f.Optional = true
			ft = ft.Elem()
		}

		if err := applyFieldType(&f, ft); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func applyFieldType(f *Field, t reflect.Type) error {
	switch t.Kind() {
	case reflect.String:
		f.Type = String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f.Type = Integer
	case reflect.Float32, reflect.Float64:
		f.Type = Number
	case reflect.Bool:
		f.Type = Boolean
	case reflect.Struct:
		nested, err := structFields(t)
		if err != nil {
			return err
		}
		f.Type = Object
		f.Fields = nested
	case reflect.Slice, reflect.Array:
		return applyArrayType(f, t.Elem())
	default:
		return fmt.Errorf("unsupported Go type %s", t)
	}
	return nil
}

func applyArrayType(f *Field, elem reflect.Type) error {
	if elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}

	f.Type = Array
	switch elem.Kind() {
	case reflect.String:
		f.Items = String
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		f.Items = Integer
	case reflect.Float32, reflect.Float64:
		f.Items = Number
	case reflect.Bool:
		f.Items = Boolean
	case reflect.Struct:
		nested, err := structFields(elem)
		if err != nil {
			return err
		}
		f.Items = Object
		f.Fields = nested
	default:
		return fmt.Errorf("unsupported array element type %s", elem)
	}
	return nil
}

// jsonName returns the effective field name and whether omitempty was set.
// An empty name means the field is excluded.
func jsonName(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}

	name := sf.Name
	optional := false
	if tag != "" {
		parts := strings.Split(tag, ",")
		if parts[0] != "" {
			name = parts[0]
		}
		for _, opt := range parts[1:] {
			if opt == "omitempty" {
				optional = true
			}
		}
	}
	return name, optional
}
