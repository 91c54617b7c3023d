package quiz

import "testing"

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		expected string
		actual   string
		want     bool
	}{
		{"Mexico City", "mexico-city", true},
		{"São Paulo", "sao paulo", true},
		{"Reykjavík", "reykjavik", true},
		{"Port-au-Prince", "port au prince", true},
		{"Washington, D.C.", "washington, d.c.", true},
		{"Paris", "  paris  ", true},
		{"Paris", "London", false},
		{"Nur-Sultan", "nursultan", false},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.expected+"/"+tt.actual, func(t *testing.T) {
			if got := AnswersMatch(tt.expected, tt.actual); got != tt.want {
				t.Errorf("AnswersMatch(%q, %q) = %v, want %v", tt.expected, tt.actual, got, tt.want)
			}
		})
	}
}

func TestAnswersMatchReflexive(t *testing.T) {
	for _, s := range []string{"Paris", "São Tomé", "ULAANBAATAR", "n'djamena", "Москва"} {
		if !AnswersMatch(s, s) {
			t.Errorf("AnswersMatch(%q, %q) = false, want true", s, s)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"São   Paulo", "sao paulo"},
		{"Mexico-City", "mexico city"},
		{"  Oslo\t", "oslo"},
		{"Yamoussoukro", "yamoussoukro"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
