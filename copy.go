package hud

import "reflect"

// DeepCopy returns a structurally independent copy of a prop or user-data
// value graph: maps, slices, arrays, pointers, and structs with only
// exported fields are copied recursively; everything else (numbers, strings,
// bools, structs carrying unexported fields, channels, funcs) is copied by
// assignment.
//
// Shared substructure is preserved: two references to the same source map
// (or slice, or pointer target) map to the same copied value, and cyclic
// graphs terminate. The visited set is keyed by the value's data pointer —
// a stable handle that identifies the referenced storage.
func DeepCopy(v any) any {
	if v == nil {
		return nil
	}
	visited := make(map[copyKey]reflect.Value)
	return deepCopyValue(reflect.ValueOf(v), visited).Interface()
}

// copyKey identifies one piece of referenced storage. Slices carry their
// length as well, so two slices over the same base array with different
// lengths are not conflated.
type copyKey struct {
	ptr uintptr
	len int
}

func deepCopyValue(v reflect.Value, visited map[copyKey]reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		return deepCopyValue(v.Elem(), visited)

	case reflect.Map:
		if v.IsNil() {
			return v
		}
		key := copyKey{ptr: v.Pointer()}
		if c, ok := visited[key]; ok {
			return c
		}
		c := reflect.MakeMapWithSize(v.Type(), v.Len())
		visited[key] = c
		iter := v.MapRange()
		for iter.Next() {
			c.SetMapIndex(
				deepCopyValue(iter.Key(), visited),
				deepCopyValue(iter.Value(), visited))
		}
		return c

	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		key := copyKey{ptr: v.Pointer(), len: v.Len()}
		if c, ok := visited[key]; ok {
			return c
		}
		c := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		visited[key] = c
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(deepCopyValue(v.Index(i), visited))
		}
		return c

	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		key := copyKey{ptr: v.Pointer()}
		if c, ok := visited[key]; ok {
			return c
		}
		c := reflect.New(v.Type().Elem())
		visited[key] = c
		c.Elem().Set(deepCopyValue(v.Elem(), visited))
		return c

	case reflect.Array:
		c := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			c.Index(i).Set(deepCopyValue(v.Index(i), visited))
		}
		return c

	case reflect.Struct:
		// A struct with unexported fields cannot be rebuilt field by field;
		// it is copied by assignment, keeping any reference-typed storage
		// shared with the original.
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).PkgPath != "" {
				return v
			}
		}
		c := reflect.New(t).Elem()
		for i := 0; i < v.NumField(); i++ {
			c.Field(i).Set(deepCopyValue(v.Field(i), visited))
		}
		return c

	default:
		return v
	}
}
