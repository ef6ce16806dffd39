package normalize

import "testing"

func TestName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"LeBron James", "lebron james"},
		{"  LeBron   JAMES ", "lebron james"},
		{"lebron james", "lebron james"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Name(tt.in); got != tt.want {
			t.Errorf("Name(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTeamCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lal", "LAL"},
		{" gsw ", "GSW"},
		{"PHX", "PHX"},
	}
	for _, tt := range tests {
		if got := TeamCode(tt.in); got != tt.want {
			t.Errorf("TeamCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
