package core

import (
	"errors"
	"testing"
	"time"
)

func TestField_String(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"string", Field{Key: "k", Kind: StringKind, Str: "value"}, "value"},
		{"int", Field{Key: "k", Kind: IntKind, Num: 42}, "42"},
		{"int64", Field{Key: "k", Kind: Int64Kind, Num: -7}, "-7"},
		{"float", Field{Key: "k", Kind: Float64Kind, Float: 3.14}, "3.14"},
		{"bool_true", Field{Key: "k", Kind: BoolKind, Num: 1}, "true"},
		{"bool_false", Field{Key: "k", Kind: BoolKind, Num: 0}, "false"},
		{"time", Field{Key: "k", Kind: TimeKind, Num: ts.UnixNano()}, ts.Format(time.RFC3339)},
		{"duration", Field{Key: "k", Kind: DurationKind, Num: int64(90 * time.Second)}, "1m30s"},
		{"error", Field{Key: "k", Kind: ErrorKind, Str: errors.New("bad").Error()}, "bad"},
		{"any", Field{Key: "k", Kind: AnyKind, Any: []int{1, 2}}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCopyFields(t *testing.T) {
	if CopyFields(nil) != nil {
		t.Error("Expected nil for nil input")
	}
	if CopyFields([]Field{}) != nil {
		t.Error("Expected nil for empty input")
	}

	src := []Field{
		{Key: "a", Kind: StringKind, Str: "1"},
		{Key: "b", Kind: IntKind, Num: 2},
	}
	dst := CopyFields(src)
	if len(dst) != 2 {
		t.Fatalf("Expected 2 fields, got %d", len(dst))
	}

	// Mutating the copy must not touch the original
	dst[0].Str = "changed"
	if src[0].Str != "1" {
		t.Error("CopyFields did not produce an independent slice")
	}
}
