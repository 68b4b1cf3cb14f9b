package utils

import "testing"

func TestNormalizePlate(t *testing.T) {
	cases := map[string]string{
		"ABC-1234": "ABC1234",
		"abc1234":  "ABC1234",
		"abc 1d23": "ABC1D23",
		"ABC1D23":  "ABC1D23",
	}
	for input, want := range cases {
		if got := NormalizePlate(input); got != want {
			t.Errorf("NormalizePlate(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidPlate(t *testing.T) {
	valid := []string{"ABC1234", "XYZ9876", "ABC1D23", "BRA2E19"}
	for _, plate := range valid {
		if !ValidPlate(plate) {
			t.Errorf("expected %q to be valid", plate)
		}
	}

	invalid := []string{"ABCD123", "AB12345", "ABC12345", "1BC1234", "ABC1DD3", ""}
	for _, plate := range invalid {
		if ValidPlate(plate) {
			t.Errorf("expected %q to be invalid", plate)
		}
	}
}

func TestPlateFormatsAfterNormalization(t *testing.T) {
	// Both spellings of the same legacy plate validate.
	for _, input := range []string{"ABC-1234", "abc1234"} {
		if !ValidPlate(NormalizePlate(input)) {
			t.Errorf("expected %q to validate after normalization", input)
		}
	}
	if ValidPlate(NormalizePlate("ABCD123")) {
		t.Error("expected ABCD123 to be rejected")
	}
}

func TestNormalizeTaxID(t *testing.T) {
	cases := map[string]string{
		"987.654.321-00":     "98765432100",
		"12.345.678/0001-95": "12345678000195",
		" 98765432100 ":      "98765432100",
	}
	for input, want := range cases {
		if got := NormalizeTaxID(input); got != want {
			t.Errorf("NormalizeTaxID(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestValidTaxID(t *testing.T) {
	if !ValidTaxID("98765432100") {
		t.Error("expected 11-digit tax id to be valid")
	}
	if !ValidTaxID("12345678000195") {
		t.Error("expected 14-digit tax id to be valid")
	}
	if ValidTaxID("1234567890") || ValidTaxID("123456789012") || ValidTaxID("") {
		t.Error("expected off-length tax ids to be invalid")
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone("(11) 98765-4321"); got != "11987654321" {
		t.Errorf("NormalizePhone = %q, want 11987654321", got)
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b@dominio.com.br"}
	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	invalid := []string{"user", "user@", "@example.com", "a b@example.com", "user@domain"}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidGenderAndKind(t *testing.T) {
	for _, g := range []string{"M", "F", "O"} {
		if !ValidGender(g) {
			t.Errorf("expected gender %q to be valid", g)
		}
	}
	if ValidGender("X") || ValidGender("m") {
		t.Error("unexpected gender accepted")
	}

	if !ValidKind("PF") || !ValidKind("PJ") {
		t.Error("expected PF and PJ to be valid")
	}
	if ValidKind("pf") || ValidKind("XX") {
		t.Error("unexpected kind accepted")
	}
}

func TestCleanString(t *testing.T) {
	if CleanString(nil) != nil {
		t.Error("expected nil for nil input")
	}

	empty := "   "
	if CleanString(&empty) != nil {
		t.Error("expected whitespace-only input to map to nil")
	}

	value := "  text  "
	if got := CleanString(&value); got == nil || *got != "text" {
		t.Errorf("expected trimmed value, got %v", got)
	}

	lower := " abc "
	if got := CleanUpperString(&lower); got == nil || *got != "ABC" {
		t.Errorf("expected upper-cased value, got %v", got)
	}
}
