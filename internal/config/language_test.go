package config

import "testing"

func TestIsCJK(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"zh", true},
		{"zh-TW", true},
		{"jpn", true},
		{"ja", true},
		{"ko", true},
		{"en", false},
		{"eng", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsCJK(tt.code); got != tt.want {
			t.Errorf("IsCJK(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestJoiner(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"zh", ""},
		{"zh-TW", ""},
		{"ja", ""},
		{"ko", " "},
		{"en", " "},
		{"", " "},
	}
	for _, tt := range tests {
		if got := Joiner(tt.code); got != tt.want {
			t.Errorf("Joiner(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
