package generator

import (
	"math/rand"
	"testing"
)

func TestDefaultLengthBounds(t *testing.T) {
	b := defaultLengthBounds()
	if b.min != 8 || b.max != 16 {
		t.Fatalf("default bounds = (%d,%d), want (8,16)", b.min, b.max)
	}
}

func TestExactLength(t *testing.T) {
	b := exactLength(5)
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		if got := b.sample(r); got != 5 {
			t.Fatalf("sample() = %d, want 5", got)
		}
	}
}

func TestLengthBoundsSample(t *testing.T) {
	b := lengthBounds{min: 3, max: 7}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		got := b.sample(r)
		if got < 3 || got >= 7 {
			t.Fatalf("sample() = %d, want in [3,7)", got)
		}
	}
}

func TestParseLengthDirective(t *testing.T) {
	n := rootNode(testStringSchema())

	tests := []struct {
		name    string
		raw     any
		want    lengthBounds
		wantErr bool
	}{
		{name: "nil defaults", raw: nil, want: defaultLengthBounds()},
		{name: "exact int", raw: 5, want: exactLength(5)},
		{name: "exact float64 (JSON-decoded)", raw: float64(5), want: exactLength(5)},
		{name: "negative exact", raw: -1, wantErr: true},
		{name: "object min/max", raw: map[string]any{"min": 2, "max": 9}, want: lengthBounds{min: 2, max: 9}},
		{name: "object min only", raw: map[string]any{"min": 2}, want: lengthBounds{min: 2, max: int(^uint(0) >> 1)}},
		{name: "object max only", raw: map[string]any{"max": 9}, want: lengthBounds{min: 0, max: 9}},
		{name: "object max<=min", raw: map[string]any{"min": 5, "max": 5}, wantErr: true},
		{name: "empty object", raw: map[string]any{}, wantErr: true},
		{name: "wrong shape", raw: "oops", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLengthDirective(n, tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got bounds %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
