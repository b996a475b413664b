package validator

import "testing"

func TestContentTypeOf(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "data:image/png;base64,iVBORw0KGgo=", expected: "image/png"},
		{input: "data:image/jpeg;base64,", expected: "image/jpeg"},
		{input: "data:;base64,AAAA", expected: ""},
		{input: "image/png;base64,AAAA", expected: ""},
		{input: "data:image/png,AAAA", expected: ""},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		if got := contentTypeOf(tt.input); got != tt.expected {
			t.Errorf("contentTypeOf(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
