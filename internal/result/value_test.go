package result

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFromAnyTagsKinds(t *testing.T) {
	cases := []struct {
		in   any
		want Kind
	}{
		{nil, KindNull},
		{42, KindNumber},
		{int64(-7), KindNumber},
		{3.14, KindNumber},
		{"hello", KindText},
		{[]any{1, "two"}, KindSequence},
		{map[string]any{"k": 1}, KindMapping},
		{true, KindOpaque},
		{struct{}{}, KindOpaque},
	}
	for _, c := range cases {
		got := FromAny(c.in)
		if got.Kind() != c.want {
			t.Fatalf("FromAny(%v): expected kind %s, got %s", c.in, c.want, got.Kind())
		}
	}
}

func TestFromAnyNested(t *testing.T) {
	v := FromAny(map[string]any{
		"items": []any{1, 2, 3},
		"meta":  map[string]any{"name": "x"},
	})
	if v.Kind() != KindMapping {
		t.Fatalf("expected mapping, got %s", v.Kind())
	}
	items := v.Mapping()["items"]
	if items.Kind() != KindSequence || items.Len() != 3 {
		t.Fatalf("expected 3-element sequence, got %s len %d", items.Kind(), items.Len())
	}
	if n, ok := items.Sequence()[0].AsNumber(); !ok || n != 1 {
		t.Fatalf("expected first element 1, got %v ok=%v", n, ok)
	}
}

func TestStringRendering(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Null(), "null"},
		{Number(-10), "-10"},
		{Number(33.33), "33.33"},
		{Number(math.NaN()), "NaN"},
		{Text("abc"), "abc"},
		{Sequence(Number(1), Text("x")), "[1, x]"},
		{Mapping(map[string]Value{"b": Number(2), "a": Number(1)}), "{a: 1, b: 2}"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("expected %q, got %q", c.want, got)
		}
	}
}

func TestEqualStructural(t *testing.T) {
	a := Mapping(map[string]Value{"xs": Sequence(Number(1), Number(2))})
	b := Mapping(map[string]Value{"xs": Sequence(Number(1), Number(2))})
	if !a.Equal(b) {
		t.Fatal("expected structurally equal mappings")
	}
	c := Mapping(map[string]Value{"xs": Sequence(Number(1), Number(3))})
	if a.Equal(c) {
		t.Fatal("expected unequal mappings")
	}
	if Number(1).Equal(Text("1")) {
		t.Fatal("number should not equal text")
	}
	if !Null().Equal(Null()) {
		t.Fatal("null should equal null")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	var v Value
	raw := []byte(`{"count": 3, "names": ["a", "b"], "missing": null}`)
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Kind() != KindMapping {
		t.Fatalf("expected mapping, got %s", v.Kind())
	}
	if v.Mapping()["missing"].Kind() != KindNull {
		t.Fatalf("expected null member, got %s", v.Mapping()["missing"].Kind())
	}

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Value
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal round trip: %v", err)
	}
	if !v.Equal(back) {
		t.Fatalf("round trip changed value: %s vs %s", v, back)
	}
}
