package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTerm(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase single word", "bitcoin", "Bitcoin"},
		{"already title-cased", "Bitcoin", "Bitcoin"},
		{"multiple words", "climate change", "Climate Change"},
		{"surrounding whitespace", "  tesla  ", "Tesla"},
		{"inner whitespace collapsed", "machine   learning", "Machine Learning"},
		{"empty", "", ""},
		{"only whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTerm(tt.in))
		})
	}
}
