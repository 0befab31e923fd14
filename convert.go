package generator

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// decodeWeak decodes a raw directive sub-object (a map[string]interface{}
// produced by JSON-unmarshalling a schema's arg.properties property) into
// a typed struct, coercing JSON's float64 numbers into the struct's
// int/int64 fields. Used for the directive shapes that are flat enough to
// express as a struct (length, range); iteration and options have
// branching defaulting/validation logic that a straight field-by-field
// decode would not capture, so those stay on the toInt64/toFloat64
// helpers below.
func decodeWeak(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// toInt coerces a decoded JSON-ish numeric value (float64, int, int64) to
// an int, as needed when reading directive fields out of a
// map[string]interface{} produced by avro.Schema.Prop.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	case float32:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		return int64(n), nil
	case float32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

func toString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("expected a string, got %T", v)
	}
	return s, nil
}

func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected a boolean, got %T", v)
	}
	return b, nil
}
