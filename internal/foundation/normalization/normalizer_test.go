package normalization

import (
	"testing"
)

type testEnum string

const (
	testEnumAlpha testEnum = "alpha"
	testEnumBeta  testEnum = "beta"
	testEnumGamma testEnum = "gamma"
)

func newTestNormalizer() *Normalizer[testEnum] {
	return NewNormalizer("test enum", map[string]testEnum{
		"alpha": testEnumAlpha,
		"Beta":  testEnumBeta,
		"gamma": testEnumGamma,
	}, testEnumAlpha)
}

func TestNormalizer_Basic(t *testing.T) {
	normalizer := newTestNormalizer()

	tests := []struct {
		name     string
		input    string
		expected testEnum
	}{
		{"exact match", "alpha", testEnumAlpha},
		{"case insensitive", "ALPHA", testEnumAlpha},
		{"with spaces", "  beta  ", testEnumBeta},
		{"mixed case spaces", "  GaMmA  ", testEnumGamma},
		{"invalid input", "invalid", testEnumAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizer.Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	normalizer := newTestNormalizer()

	if got, err := normalizer.NormalizeWithError("GAMMA"); err != nil || got != testEnumGamma {
		t.Fatalf("NormalizeWithError(GAMMA) = %v, %v", got, err)
	}

	_, err := normalizer.NormalizeWithError("delta")
	if err == nil {
		t.Fatal("expected error for unknown value")
	}
	want := `invalid test enum "delta", valid options: alpha, beta, gamma`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestNormalizer_ValidKeysIsCopy(t *testing.T) {
	normalizer := newTestNormalizer()
	keys := normalizer.ValidKeys()
	keys[0] = "mutated"

	if normalizer.ValidKeys()[0] != "alpha" {
		t.Error("ValidKeys must return a copy")
	}
	if !normalizer.Valid(" Beta") || normalizer.Valid("delta") {
		t.Error("Valid() mismatch")
	}
}
