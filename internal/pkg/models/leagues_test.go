package models

import "testing"

func TestSportKeyFor(t *testing.T) {
	tests := []struct {
		league   string
		expected string
	}{
		{"mlb", "baseball_mlb"},
		{"MLB", "baseball_mlb"},
		{" nfl ", "americanfootball_nfl"},
		{"nba", "basketball_nba"},
		{"nhl", "icehockey_nhl"},
	}
	for _, tt := range tests {
		got, err := SportKeyFor(tt.league)
		if err != nil {
			t.Errorf("SportKeyFor(%q): unexpected error: %v", tt.league, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("SportKeyFor(%q) = %q, want %q", tt.league, got, tt.expected)
		}
	}

	if _, err := SportKeyFor("cricket"); err == nil {
		t.Error("expected error for unsupported league")
	}
}
