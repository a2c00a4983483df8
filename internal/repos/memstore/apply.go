package memstore

import (
	"reflect"
	"strings"
)

// applyUpdates sets struct fields on dst from a column-keyed update map,
// the same shape the database implementations pass to gorm. Column names
// are resolved from the "column:" part of each field's gorm tag. Values
// must be assignable to the field (a bare value may be applied to a
// pointer field).
func applyUpdates(dst any, updates map[string]any) {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		col := columnName(t.Field(i))
		if col == "" {
			continue
		}
		raw, ok := updates[col]
		if !ok {
			continue
		}
		field := v.Field(i)
		if raw == nil {
			field.Set(reflect.Zero(field.Type()))
			continue
		}
		val := reflect.ValueOf(raw)
		switch {
		case val.Type().AssignableTo(field.Type()):
			field.Set(val)
		case field.Kind() == reflect.Pointer && val.Type().AssignableTo(field.Type().Elem()):
			p := reflect.New(field.Type().Elem())
			p.Elem().Set(val)
			field.Set(p)
		case val.Kind() == reflect.Pointer && !val.IsNil() && val.Type().Elem().AssignableTo(field.Type()):
			field.Set(val.Elem())
		case val.Type().ConvertibleTo(field.Type()):
			field.Set(val.Convert(field.Type()))
		}
	}
}

func columnName(f reflect.StructField) string {
	tag := f.Tag.Get("gorm")
	for _, part := range strings.Split(tag, ";") {
		if rest, ok := strings.CutPrefix(part, "column:"); ok {
			return rest
		}
	}
	return ""
}
