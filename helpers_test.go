package generator

import (
	"testing"

	"github.com/justtrackio/avro/v2"
)

func testStringSchema() avro.Schema {
	return avro.NewPrimitiveSchema(avro.String, nil)
}

func testLongSchema() avro.Schema {
	return avro.NewPrimitiveSchema(avro.Long, nil)
}

func testIntSchema() avro.Schema {
	return avro.NewPrimitiveSchema(avro.Int, nil)
}

func testBooleanSchema() avro.Schema {
	return avro.NewPrimitiveSchema(avro.Boolean, nil)
}

func testDoubleSchema() avro.Schema {
	return avro.NewPrimitiveSchema(avro.Double, nil)
}

// fieldWithDirective builds a record field of the given type carrying the
// given arg.properties directive object.
func fieldWithDirective(t *testing.T, name string, typ avro.Schema, directive map[string]any) *avro.Field {
	t.Helper()
	props := map[string]interface{}{"arg.properties": directive}
	f, err := avro.NewField(name, typ, avro.WithProps(props))
	if err != nil {
		t.Fatalf("NewField(%s): %v", name, err)
	}
	return f
}

func recordWithFields(t *testing.T, name string, fields ...*avro.Field) *avro.RecordSchema {
	t.Helper()
	rs, err := avro.NewRecordSchema(name, "", fields)
	if err != nil {
		t.Fatalf("NewRecordSchema(%s): %v", name, err)
	}
	return rs
}
