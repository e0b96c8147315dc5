package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateParamName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "latency", false},
		{"dotted", "cpu.user", false},
		{"unicode", "Durchsatz_ä", false},
		{"empty", "", true},
		{"control", "lat\nency", true},
		{"null byte", "lat\x00", true},
		{"too long", strings.Repeat("a", 257), true},
		{"max length", strings.Repeat("a", 256), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParamName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateParamName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %q, want INVALID_INPUT", GetCode(err))
			}
		})
	}
}

func TestValidateNodeCount(t *testing.T) {
	if err := ValidateNodeCount(10, 0); err != nil {
		t.Errorf("disabled limit: %v", err)
	}
	if err := ValidateNodeCount(10, 10); err != nil {
		t.Errorf("at limit: %v", err)
	}
	if err := ValidateNodeCount(11, 10); err == nil {
		t.Error("over limit should fail")
	}
}

func TestValidateFinite(t *testing.T) {
	if err := ValidateFinite(map[string]float64{"left": -1, "right": 1}); err != nil {
		t.Errorf("finite values: %v", err)
	}
	if err := ValidateFinite(map[string]float64{"left": math.NaN()}); err == nil {
		t.Error("NaN should fail")
	}
	if err := ValidateFinite(map[string]float64{"top": math.Inf(1)}); err == nil {
		t.Error("Inf should fail")
	}
}
