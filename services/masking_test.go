package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Long local part reveals first 3 chars",
			input:    "fernando@example.com",
			expected: "fer***@example.com",
		},
		{
			name:     "Short local part kept whole",
			input:    "ana@example.com",
			expected: "ana***@example.com",
		},
		{
			name:     "Single char local part",
			input:    "a@b.do",
			expected: "a***@b.do",
		},
		{
			name:     "No at sign returned unchanged",
			input:    "not-an-email",
			expected: "not-an-email",
		},
		{
			name:     "Empty string returned unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskEmail(tt.input))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Formatted phone keeps last 4 digits",
			input:    "(809) 555-1234",
			expected: "(***) ***-1234",
		},
		{
			name:     "Plain digits",
			input:    "8095551234",
			expected: "(***) ***-1234",
		},
		{
			name:     "Fewer than 4 digits fully masked",
			input:    "809",
			expected: "****",
		},
		{
			name:     "No digits fully masked",
			input:    "n/a",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskPhone(tt.input))
		})
	}
}

func TestMaskCedula(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Formatted cedula keeps last 4 digits",
			input:    "001-1234567-8901",
			expected: "***-*******-8901",
		},
		{
			name:     "Plain digits",
			input:    "00112345678901",
			expected: "***-*******-8901",
		},
		{
			name:     "Fewer than 4 digits fully masked",
			input:    "12",
			expected: "****",
		},
		{
			name:     "Empty string fully masked",
			input:    "",
			expected: "****",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCedula(tt.input))
		})
	}
}
