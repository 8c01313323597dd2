package hud

import "testing"

func TestDeepCopyNil(t *testing.T) {
	if got := DeepCopy(nil); got != nil {
		t.Errorf("DeepCopy(nil) = %v, want nil", got)
	}
}

func TestDeepCopyScalars(t *testing.T) {
	if got := DeepCopy(42); got != 42 {
		t.Errorf("DeepCopy(42) = %v", got)
	}
	if got := DeepCopy("hi"); got != "hi" {
		t.Errorf("DeepCopy(%q) = %v", "hi", got)
	}
}

func TestDeepCopyMapIndependence(t *testing.T) {
	src := map[string]any{"a": 1, "nested": map[string]any{"b": 2}}
	dst := DeepCopy(src).(map[string]any)

	dst["a"] = 99
	dst["nested"].(map[string]any)["b"] = 99

	if src["a"] != 1 {
		t.Errorf("src[a] = %v, want 1 after mutating copy", src["a"])
	}
	if src["nested"].(map[string]any)["b"] != 2 {
		t.Errorf("src nested b = %v, want 2 after mutating copy", src["nested"].(map[string]any)["b"])
	}
}

func TestDeepCopyPreservesSharing(t *testing.T) {
	shared := map[string]any{"k": 1}
	src := map[string]any{"first": shared, "second": shared}
	dst := DeepCopy(src).(map[string]any)

	first := dst["first"].(map[string]any)
	second := dst["second"].(map[string]any)

	// Both references must point at the same copied map.
	first["k"] = 42
	if second["k"] != 42 {
		t.Error("shared substructure was duplicated instead of shared")
	}
	// And the copy must be independent of the original.
	if shared["k"] != 1 {
		t.Errorf("original shared map mutated: k = %v", shared["k"])
	}
}

func TestDeepCopyCycle(t *testing.T) {
	src := map[string]any{}
	src["self"] = src

	dst := DeepCopy(src).(map[string]any)
	inner, ok := dst["self"].(map[string]any)
	if !ok {
		t.Fatal("cycle entry has wrong type")
	}
	inner["probe"] = true
	if _, ok := dst["probe"]; !ok {
		t.Error("cyclic reference does not point back at the copy")
	}
	if _, ok := src["probe"]; ok {
		t.Error("mutating the copy reached the original")
	}
}

func TestDeepCopySlices(t *testing.T) {
	inner := []any{1, 2}
	src := []any{inner, inner}
	dst := DeepCopy(src).([]any)

	a := dst[0].([]any)
	b := dst[1].([]any)
	a[0] = 99
	if b[0] != 99 {
		t.Error("shared slice was duplicated instead of shared")
	}
	if inner[0] != 1 {
		t.Errorf("original slice mutated: %v", inner[0])
	}
}

func TestDeepCopyStructFields(t *testing.T) {
	type payload struct {
		Name string
		Tags map[string]int
	}
	src := &payload{Name: "unit", Tags: map[string]int{"hp": 10}}
	dst := DeepCopy(src).(*payload)

	dst.Tags["hp"] = 99
	if src.Tags["hp"] != 10 {
		t.Errorf("mutating the copy mutated the original: hp = %v", src.Tags["hp"])
	}
	if dst.Name != "unit" {
		t.Errorf("scalar field lost: %q", dst.Name)
	}
}

func TestDeepCopyStructSharing(t *testing.T) {
	type payload struct {
		A, B map[string]int
	}
	shared := map[string]int{"k": 1}
	dst := DeepCopy(payload{A: shared, B: shared}).(payload)

	dst.A["k"] = 42
	if dst.B["k"] != 42 {
		t.Error("shared field storage was duplicated instead of shared")
	}
	if shared["k"] != 1 {
		t.Errorf("original shared map mutated: k = %v", shared["k"])
	}
}

func TestDeepCopyStructUnexportedByAssignment(t *testing.T) {
	type opaque struct {
		hidden int
	}
	src := opaque{hidden: 3}
	dst := DeepCopy(src).(opaque)
	if dst != src {
		t.Errorf("opaque struct copy = %+v, want %+v", dst, src)
	}
}

func TestDeepCopyPointer(t *testing.T) {
	v := 7
	src := map[string]any{"p": &v, "q": &v}
	dst := DeepCopy(src).(map[string]any)

	p := dst["p"].(*int)
	q := dst["q"].(*int)
	if p != q {
		t.Error("shared pointer target was duplicated")
	}
	*p = 99
	if v != 7 {
		t.Errorf("original pointee mutated: %v", v)
	}
}
