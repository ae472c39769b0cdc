package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferencesSuggestions(t *testing.T) {
	tests := []struct {
		utterance string
		want      bool
	}{
		{"Les 3 points sont justes", true},
		{"le point 2 me convient", true},
		{"la deuxième option", true},
		{"le premier exemple", true},
		{"yes those ideas", true},
		{"oui, ces idées me plaisent", true},
		{"tous me conviennent", true},
		{"Peinture acrylique mate", false},
		{"environ 25 m²", false},
		{"je ne sais pas", false},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, ReferencesSuggestions(tt.utterance))
		})
	}
}

func TestSelectSuggestions(t *testing.T) {
	offered := []string{
		"Peinture acrylique mate",
		"Peinture glycéro satinée",
		"Peinture biosourcée",
	}

	tests := []struct {
		name      string
		utterance string
		want      []string
	}{
		{
			name:      "single index",
			utterance: "le point 2 me convient",
			want:      []string{"Peinture glycéro satinée"},
		},
		{
			name:      "ordinal word",
			utterance: "la première idée",
			want:      []string{"Peinture acrylique mate"},
		},
		{
			name:      "two indices keep presentation order",
			utterance: "les points 3 et 1",
			want:      []string{"Peinture acrylique mate", "Peinture biosourcée"},
		},
		{
			name:      "count of the whole list means all",
			utterance: "Les 3 points sont justes",
			want:      offered,
		},
		{
			name:      "bare validation means all",
			utterance: "oui parfait",
			want:      offered,
		},
		{
			name:      "out of range index falls back to all",
			utterance: "le point 7",
			want:      offered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectSuggestions(tt.utterance, offered))
		})
	}
}

func TestSelectSuggestions_Empty(t *testing.T) {
	assert.Nil(t, SelectSuggestions("oui", nil))
}
