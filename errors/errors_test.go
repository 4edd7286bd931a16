package errors

import (
	"errors"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseDecode,
				Kind:    KindOutOfBounds,
				Path:    []string{"module", "type", "0"},
				GoType:  "int32",
				WitType: "i32",
				Detail:  "index out of range",
			},
			contains: []string{"[decode]", "out_of_bounds", "module.type.0", "int32", "i32", "index out of range"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindTruncated,
			},
			contains: []string{"[decode]", "truncated"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindSinkFailure,
				Detail: "BeginModule failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[decode]", "sink_failure", "BeginModule failed", "caused by", "underlying error"},
		},
		{
			name: "error with offset",
			err: &Error{
				Phase:     PhaseDecode,
				Kind:      KindMalformedLEB,
				Offset:    12,
				HasOffset: true,
			},
			contains: []string{"[decode]", "malformed_leb", "@12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsSubstring(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindUnfinishedWindow,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	// Test with errors.Unwrap
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindOrdering,
		Path:  []string{"section"},
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindOrdering}) {
		t.Error("Is should match same phase and kind")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseDecode, Kind: KindOrdering}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindUnexpectedOpcode).
		Path("code", "0").
		GoType("int32").
		WitType("i32").
		Value(42).
		Cause(cause).
		Offset(7).
		Detail("expected %s, got %s", "i32", "i64").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindUnexpectedOpcode {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnexpectedOpcode)
	}
	if len(err.Path) != 2 || err.Path[0] != "code" || err.Path[1] != "0" {
		t.Errorf("Path = %v, want [code 0]", err.Path)
	}
	if err.GoType != "int32" {
		t.Errorf("GoType = %v, want 'int32'", err.GoType)
	}
	if err.WitType != "i32" {
		t.Errorf("WitType = %v, want 'i32'", err.WitType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !err.HasOffset || err.Offset != 7 {
		t.Errorf("Offset = %v HasOffset = %v, want 7 true", err.Offset, err.HasOffset)
	}
	if err.Detail != "expected i32, got i64" {
		t.Errorf("Detail = %v, want 'expected i32, got i64'", err.Detail)
	}
}

func containsSubstring(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && containsSubstringHelper(s, substr)))
}

func containsSubstringHelper(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
