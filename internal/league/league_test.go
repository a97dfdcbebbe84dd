package league

import (
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		longKey  string
		expected string
	}{
		{
			name:     "first bundesliga 2017/18",
			longKey:  "Bundesligen 2017/18:1. Bundesliga (1. BL) - (001) 1. Bundesliga",
			expected: "1BL-2017",
		},
		{
			name:     "second bundesliga north",
			longKey:  "Bundesligen 2017/18:2. Bundesliga (2. BL-Nord) - (002) 2. Bundesliga Nord",
			expected: "2BLN-2017",
		},
		{
			name:     "playoff round maps to regular season code",
			longKey:  "Bundesligen 2016/17:1. Bundesliga 1. Bundesliga - PlayOff - Viertelfinale 1",
			expected: "1BL-2016",
		},
		{
			name:     "austrian league",
			longKey:  "BundesLiga 2017-2018:Bundesliga - 1. Bundesliga",
			expected: "OBL-2017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := Resolve(tt.longKey)
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.longKey, err)
			}
			if code != tt.expected {
				t.Errorf("Resolve(%q) = %q, expected %q", tt.longKey, code, tt.expected)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("Kreisliga Nord 2019:Staffel C")
	if err == nil {
		t.Fatal("expected error for unknown league key")
	}
	if !errors.Is(err, ErrUnknownLeague) {
		t.Errorf("expected ErrUnknownLeague, got %v", err)
	}
}

func TestKey(t *testing.T) {
	got := Key("Bundesligen 2017/18", "1. Bundesliga (1. BL) - (001) 1. Bundesliga")
	expected := "Bundesligen 2017/18:1. Bundesliga (1. BL) - (001) 1. Bundesliga"
	if got != expected {
		t.Errorf("Key = %q, expected %q", got, expected)
	}
}
