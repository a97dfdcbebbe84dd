package htmltext

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"named entity", "A &amp; B", "A & B"},
		{"numeric entity", "TSV M&#252;nchen", "TSV München"},
		{"hex entity", "1&#x2e; BL", "1. BL"},
		{"already decoded", "A & B", "A & B"},
		{"plain text unchanged", "SG Schorndorf", "SG Schorndorf"},
		{"unknown entity passes through", "a &nosuch; b", "a &nosuch; b"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.input); got != tt.expected {
				t.Errorf("Decode(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeIdempotent(t *testing.T) {
	inputs := []string{
		"A &amp; B",
		"TV Refrath",
		"M&#252;lheim &amp; Co",
		"no entities at all",
	}

	for _, input := range inputs {
		once := Decode(input)
		twice := Decode(once)
		if once != twice {
			t.Errorf("Decode not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"collapses runs", "1.  Bundesliga", "1. Bundesliga"},
		{"trims and collapses newlines", "\n\tTV Refrath\n ", "TV Refrath"},
		{"decodes then collapses", "  A &amp;\nB ", "A & B"},
		{"non-breaking space", "TV\u00a0Refrath", "TV Refrath"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
