package services

import "testing"

func TestCookingTimeToMinutes(t *testing.T) {
	cases := []struct {
		preference string
		minutes    int
		ok         bool
	}{
		{"quick", 15, true},
		{"moderate", 30, true},
		{"elaborate", 60, true},
		{"", 0, false},
		{"whatever", 0, false},
	}

	for _, tc := range cases {
		minutes, ok := cookingTimeToMinutes(tc.preference)
		if minutes != tc.minutes || ok != tc.ok {
			t.Errorf("cookingTimeToMinutes(%q) = %d, %v; want %d, %v",
				tc.preference, minutes, ok, tc.minutes, tc.ok)
		}
	}
}
