package aoi

import "testing"

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hello", "hello"},
		{"  hello world ", "hello-world"},
		{"valid-name_1.2", "valid-name_1.2"},
		{"Café  Nørd/Plaza", "Caf-Nrd-Plaza"},
		{"a/b\\c", "a-b-c"},
		{"日本語", ""},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveName(t *testing.T) {
	props := map[string]interface{}{
		"site":    "Harbor  East",
		"blank":   "   ",
		"numeric": 42,
	}

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"from field", Config{Field: "site", Name: "fallback"}, "Harbor-East"},
		{"blank field value", Config{Field: "blank", Name: "fallback"}, "fallback"},
		{"non-string field value", Config{Field: "numeric", Name: "fallback"}, "fallback"},
		{"missing field", Config{Field: "nope", Name: "fallback"}, "fallback"},
		{"no field", Config{Name: "fallback"}, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveName(props, tt.cfg); got != tt.want {
				t.Errorf("ResolveName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveNameGenerated(t *testing.T) {
	a := ResolveName(nil, Config{})
	b := ResolveName(nil, Config{})

	if len(a) != 6 || len(b) != 6 {
		t.Fatalf("generated names should be 6 chars, got %q and %q", a, b)
	}
	if a == b {
		t.Errorf("generated names should differ, got %q twice", a)
	}
}
