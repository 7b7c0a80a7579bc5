package seq

import "testing"

func TestNormalizeCommaSpacing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"   ", ""},
		{"a,b,c", "a, b, c"},
		{"a ,  b,c  ", "a, b, c"},
		{"a, b, c", "a, b, c"},
		{",1", ", 1"},
		{"1,", "1, "},
		{",,", ", , "},
		{"no commas here", "no commas here"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeCommaSpacing(tt.input); got != tt.expected {
				t.Errorf("NormalizeCommaSpacing(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
