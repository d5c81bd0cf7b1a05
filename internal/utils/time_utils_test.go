// Package utils
package utils

import "testing"

func TestFlightMinutes(t *testing.T) {
	tests := []struct {
		start    string
		end      string
		expected int
	}{
		{"09:00", "10:30", 90},
		{"10:00", "10:00", 0},
		{"23:30", "00:15", 45},
		{"00:00", "23:59", 1439},
		{"09:00:00", "10:30:00", 90},
		{"", "10:30", 0},
		{"09:00", "", 0},
		{"", "", 0},
		{"9時", "10:30", 0},
		{"25:00", "26:00", 0},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := FlightMinutes(test.start, test.end)
		if result != test.expected {
			fail++
			t.Errorf("FlightMinutes(%q, %q) = %d; expected %d", test.start, test.end, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestFlightMinutes: %d pass, %d fail", pass, fail)
}

func TestValidClock(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"00:00", true},
		{"23:59", true},
		{"09:30:00", true},
		{"24:00", false},
		{"12:60", false},
		{"12", false},
		{"ab:cd", false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := ValidClock(test.input)
		if result != test.expected {
			fail++
			t.Errorf("ValidClock(%q) = %v; expected %v", test.input, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestValidClock: %d pass, %d fail", pass, fail)
}
