// Package utils
package utils

import "testing"

func TestStrToInt(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue int
		expected     int
	}{
		{"1", 0, 1},
		{"8080", 0, 8080},
		{"-30", 0, -30},
		{"ABCD", 0, 0},
		{"ABCD", 100, 100},
		{"", 7, 7},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToInt(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToInt(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestStrToInt: %d pass, %d fail", pass, fail)
}

func TestStrToUint(t *testing.T) {
	tests := []struct {
		input        string
		defaultValue uint
		expected     uint
	}{
		{"1", 0, 1},
		{"65535", 0, 65535},
		{"-1", 3, 3},
		{"ABCD", 100, 100},
		{"", 7, 7},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := StrToUint(test.input, test.defaultValue)
		if result != test.expected {
			fail++
			t.Errorf("StrToUint(%q, %v) = %v; expected %v", test.input, test.defaultValue, result, test.expected)
			continue
		}
		pass++
	}
	t.Logf("TestStrToUint: %d pass, %d fail", pass, fail)
}
