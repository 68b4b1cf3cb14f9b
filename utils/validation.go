// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	taxIDStripRegex = regexp.MustCompile(`[.\-/\s]`)
	phoneStripRegex = regexp.MustCompile(`[\s\-()]`)
	plateStripRegex = regexp.MustCompile(`[-\s]`)
	digitsOnlyRegex = regexp.MustCompile(`\D`)

	legacyPlateRegex   = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)
	mercosulPlateRegex = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z][0-9]{2}$`)

	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizeTaxID strips the CPF/CNPJ formatting characters (dots, dashes,
// slashes, spaces).
func NormalizeTaxID(taxID string) string {
	return taxIDStripRegex.ReplaceAllString(strings.TrimSpace(taxID), "")
}

// ValidTaxID accepts a normalized tax id of CPF (11) or CNPJ (14) length.
// Note: length is the only check — a 14-digit id declared as PF still
// qualifies. That matches the behavior the frontend was built against;
// tightening it needs a stakeholder decision first.
func ValidTaxID(taxID string) bool {
	return len(taxID) == 11 || len(taxID) == 14
}

// NormalizePhone strips spaces, dashes and parentheses.
func NormalizePhone(phone string) string {
	return phoneStripRegex.ReplaceAllString(phone, "")
}

// NormalizePlate strips dashes and spaces and upper-cases letters, so
// "abc-1234" and "ABC1234" compare and store identically.
func NormalizePlate(plate string) string {
	return strings.ToUpper(plateStripRegex.ReplaceAllString(plate, ""))
}

// ValidPlate accepts a normalized plate in the legacy (ABC1234) or
// Mercosul (ABC1D23) format.
func ValidPlate(plate string) bool {
	return legacyPlateRegex.MatchString(plate) || mercosulPlateRegex.MatchString(plate)
}

// ValidEmail checks the usual local@domain shape.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidGender accepts M, F or O (already upper-cased).
func ValidGender(gender string) bool {
	return gender == "M" || gender == "F" || gender == "O"
}

// ValidKind accepts PF or PJ (already upper-cased).
func ValidKind(kind string) bool {
	return kind == "PF" || kind == "PJ"
}

// DigitsOnly drops every non-digit character.
func DigitsOnly(s string) string {
	return digitsOnlyRegex.ReplaceAllString(s, "")
}

// CleanString trims the input and maps the empty result to nil, so optional
// fields reach the repository as proper nulls.
func CleanString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// CleanUpperString is CleanString plus upper-casing, for the fields stored
// in canonical upper case.
func CleanUpperString(s *string) *string {
	cleaned := CleanString(s)
	if cleaned == nil {
		return nil
	}
	upper := strings.ToUpper(*cleaned)
	return &upper
}
