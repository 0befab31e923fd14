package generator

import (
	"testing"

	"github.com/justtrackio/avro/v2"
)

func TestCoerceOptionScalarTypes(t *testing.T) {
	tests := []struct {
		name   string
		schema avro.Schema
		in     any
		want   any
	}{
		{name: "bool", schema: testBooleanSchema(), in: true, want: true},
		{name: "int from float64", schema: testIntSchema(), in: float64(7), want: int32(7)},
		{name: "long from int", schema: testLongSchema(), in: 9, want: int64(9)},
		{name: "double from int", schema: testDoubleSchema(), in: 3, want: float64(3)},
		{name: "string", schema: testStringSchema(), in: "hi", want: "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := node{schema: tt.schema}
			got, err := coerceOption(n, tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %#v (%T), want %#v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestCoerceOptionEnum(t *testing.T) {
	es, err := avro.NewEnumSchema("Color", "", []string{"RED", "GREEN"})
	if err != nil {
		t.Fatalf("NewEnumSchema: %v", err)
	}
	n := node{schema: es}

	got, err := coerceOption(n, "GREEN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ev, ok := got.(EnumValue)
	if !ok || ev.Symbol != "GREEN" {
		t.Fatalf("got %#v, want EnumValue{Symbol: GREEN}", got)
	}

	if _, err := coerceOption(n, "PURPLE"); err == nil {
		t.Fatalf("expected error for unknown symbol")
	}
}

func TestCoerceOptionRecord(t *testing.T) {
	idField, err := avro.NewField("id", testLongSchema())
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	rs, err := avro.NewRecordSchema("Thing", "", []*avro.Field{idField})
	if err != nil {
		t.Fatalf("NewRecordSchema: %v", err)
	}
	n := node{schema: rs}

	got, err := coerceOption(n, map[string]any{"id": 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := got.(map[string]any)
	if m["id"] != int64(42) {
		t.Fatalf("id = %#v, want int64(42)", m["id"])
	}

	if _, err := coerceOption(n, map[string]any{}); err == nil {
		t.Fatalf("expected error for missing required field")
	}
}

func TestCoerceOptionArray(t *testing.T) {
	as := avro.NewArraySchema(testLongSchema())
	n := node{schema: as}

	got, err := coerceOption(n, []any{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr := got.([]any)
	if len(arr) != 3 || arr[0] != int64(1) {
		t.Fatalf("got %#v", arr)
	}
}

func TestCoerceOptionListEmptyRejected(t *testing.T) {
	f := fieldWithDirective(t, "s", testStringSchema(), map[string]any{"options": []any{}})
	d, err := resolveDirectives(fieldNode(f))
	if err != nil {
		t.Fatalf("resolveDirectives: %v", err)
	}

	g := NewBuilder(recordWithFields(t, "R", f)).WithSeed(1).Build()
	_, err = g.resolveOptions(nil, fieldNode(f), d) //nolint:staticcheck // nil context ok, decoder unused on inline path
	if err == nil {
		t.Fatalf("expected error for empty options list")
	}
}
