// Package service
package service

import "testing"

func TestValidReportDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"2026-08-01", true},
		{"2026-12-31", true},
		{"2024-02-29", true},
		{"2026-02-29", false},
		{"2026-8-1", false},
		{"2026/08/01", false},
		{"20260801", false},
		{"2026-13-01", false},
		{"2026-08-32", false},
		{"", false},
		{"today", false},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := validReportDate(test.input)
		if result != test.expected {
			fail++
			t.Errorf("validReportDate(%q) = %v; expected %v", test.input, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestValidReportDate: %d pass, %d fail", pass, fail)
}
