package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Plate grammar: three letters, a hyphen, then digits, with an optional
// trailing letter that marks a motorcycle. The field is capped at 7
// characters including the hyphen.
var completePlateRe = regexp.MustCompile(`^[A-Z]{3}-[0-9]{2}[0-9A-Z]?$`)

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !('a' <= r && r <= 'z') && !('A' <= r && r <= 'Z') {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// NormalizePlate is the per-keystroke plate formatter. It receives the field
// value before and after the keystroke and returns what the field should hold:
// always a prefix of a complete plate, uppercased, with the hyphen inserted
// after the third letter only while typing forward (so backspacing over the
// hyphen does not immediately re-insert it). An invalid trailing character is
// dropped instead of rejecting the whole input.
func NormalizePlate(previous, text string) string {
	// positions and slices are in runes, so a rejected multi-byte
	// keystroke (say an accented letter) is removed whole
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	if len(runes) < 4 {
		if isAlphabetic(text) {
			up := strings.ToUpper(text)
			if len(runes) == 3 && len(runes) > utf8.RuneCountInString(previous) {
				return up + "-"
			}
			return up
		}
		return strings.ToUpper(string(runes[:len(runes)-1]))
	}

	if runes[3] != '-' {
		inserted := make([]rune, 0, len(runes)+1)
		inserted = append(inserted, runes[:3]...)
		inserted = append(inserted, '-')
		inserted = append(inserted, runes[3:]...)
		runes = inserted
	}

	switch {
	case len(runes) < 7:
		if isNumeric(string(runes[4:])) {
			return strings.ToUpper(string(runes))
		}
		return strings.ToUpper(string(runes[:len(runes)-1]))
	case len(runes) == 7:
		if isNumeric(string(runes[4:6])) && (isAlphabetic(string(runes[6:])) || isNumeric(string(runes[6:]))) {
			return strings.ToUpper(string(runes))
		}
		return strings.ToUpper(string(runes[:len(runes)-1]))
	default:
		return strings.ToUpper(string(runes[:len(runes)-1]))
	}
}

// ValidPlate reports whether plate is a complete, registrable plate.
func ValidPlate(plate string) bool {
	return len(plate) >= 6 && completePlateRe.MatchString(plate)
}

// VehicleTypeFromPlate classifies a complete plate. A trailing letter, or a
// plate that ends at the digits (6 characters), means motorcycle; a trailing
// digit means car. Registration and capacity checks both rely on this rule.
func VehicleTypeFromPlate(plate string) VehicleType {
	if (len(plate) > 6 && isAlphabetic(plate[6:7])) || len(plate) == 6 {
		return TypeMotorcycle
	}
	return TypeCar
}

// BarcodeValue is what the ticket printer encodes: the plate without the hyphen.
func BarcodeValue(plate string) string {
	return strings.ReplaceAll(plate, "-", "")
}
