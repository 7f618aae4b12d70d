package domain

import (
	"regexp"
	"testing"
)

// legal prefixes of a complete plate, as the field fills in
var prefixRe = regexp.MustCompile(`^([A-Z]{0,3}|[A-Z]{3}-|[A-Z]{3}-[0-9]{1,2}[0-9A-Z]?)$`)

func TestNormalizePlateKeystrokes(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		text     string
		want     string
	}{
		{"first letter uppercased", "", "a", "A"},
		{"second letter", "A", "ab", "AB"},
		{"hyphen inserted after third letter", "AB", "abc", "ABC-"},
		{"digit rejected inside letter segment", "AB", "AB1", "AB"},
		{"symbol rejected inside letter segment", "AB", "AB$", "AB"},
		{"first digit", "ABC-", "ABC-1", "ABC-1"},
		{"second digit", "ABC-1", "ABC-12", "ABC-12"},
		{"third digit accepted", "ABC-12", "ABC-123", "ABC-123"},
		{"motorcycle suffix accepted", "ABC-12", "ABC-12x", "ABC-12X"},
		{"letter rejected mid digits", "ABC-1", "ABC-1x", "ABC-1"},
		{"symbol rejected at last position", "ABC-12", "ABC-12$", "ABC-12"},
		{"eighth character dropped", "ABC-123", "ABC-1234", "ABC-123"},
		{"hyphen re-inserted when typed over", "ABC-12", "ABC123", "ABC-123"},
		{"cleared field", "ABC-12", "", ""},
		{"backspace over hyphen not re-inserted", "ABC-", "ABC", "ABC"},
		{"backspace into digits", "ABC-12", "ABC-1", "ABC-1"},
		{"accented letter removed whole", "", "Ñ", ""},
		{"accented letter after two letters", "AB", "ABÑ", "AB"},
		{"accented letter in digit segment", "ABC-1", "ABC-1Ñ", "ABC-1"},
		{"accented letter at last position", "ABC-12", "ABC-12ñ", "ABC-12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePlate(tt.previous, tt.text)
			if got != tt.want {
				t.Errorf("NormalizePlate(%q, %q) = %q, want %q", tt.previous, tt.text, got, tt.want)
			}
		})
	}
}

// Typing any sequence of characters one at a time must keep the field a
// legal prefix and never let it exceed 7 characters.
func TestNormalizePlateForwardTypingInvariant(t *testing.T) {
	inputs := []string{
		"abc123",
		"abc12x",
		"ABC-12X",
		"xyz999",
		"ab9cd12",
		"a1b2c3d4",
		"$$$abc--12..3xx",
		"mno12345",
		"ñabÑc1ñ23",
		"ábc-123",
		"abÑc12x",
	}
	for _, input := range inputs {
		field := ""
		for _, r := range input {
			field = NormalizePlate(field, field+string(r))
			if len(field) > 7 {
				t.Fatalf("input %q: field %q exceeds 7 characters", input, field)
			}
			if !prefixRe.MatchString(field) {
				t.Fatalf("input %q: field %q is not a legal plate prefix", input, field)
			}
		}
	}
}

func TestValidPlate(t *testing.T) {
	valid := []string{"ABC-12", "ABC-123", "ABC-12X"}
	for _, p := range valid {
		if !ValidPlate(p) {
			t.Errorf("ValidPlate(%q) = false, want true", p)
		}
	}
	invalid := []string{"", "ABC", "ABC-", "ABC-1", "abc-123", "AB1-123", "ABC-12$", "ABC-1234"}
	for _, p := range invalid {
		if ValidPlate(p) {
			t.Errorf("ValidPlate(%q) = true, want false", p)
		}
	}
}

func TestVehicleTypeFromPlate(t *testing.T) {
	tests := []struct {
		plate string
		want  VehicleType
	}{
		{"ABC-123", TypeCar},        // trailing digit
		{"ABC-12X", TypeMotorcycle}, // trailing letter
		{"ABC-12", TypeMotorcycle},  // six characters, no trailing position
	}
	for _, tt := range tests {
		if got := VehicleTypeFromPlate(tt.plate); got != tt.want {
			t.Errorf("VehicleTypeFromPlate(%q) = %v, want %v", tt.plate, got, tt.want)
		}
	}
}

func TestBarcodeValue(t *testing.T) {
	if got := BarcodeValue("ABC-123"); got != "ABC123" {
		t.Errorf("BarcodeValue(%q) = %q, want %q", "ABC-123", got, "ABC123")
	}
}
