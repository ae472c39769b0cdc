package validator

import (
	"errors"
	"testing"

	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }

var surfaceArea = entity.FieldDefinition{
	ID:         "surface_area",
	Type:       entity.FieldTypeNumber,
	Validation: &entity.Validation{Min: f64(1), Max: f64(10000)},
}

func TestValidateFieldValue_Number(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"plain number", "25", false},
		{"number with unit", "environ 25 m²", false},
		{"comma decimal", "12,5", false},
		{"negative surface", "-3", true},
		{"above max", "999999", true},
		{"not a number", "je ne sais pas trop", true},
		{"empty", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldValue(surfaceArea, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, entity.ErrInvalidFieldValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFieldValue_Select(t *testing.T) {
	def := entity.FieldDefinition{
		ID:      "room_type",
		Type:    entity.FieldTypeSelect,
		Options: []string{"cuisine", "salon", "chambre"},
	}

	assert.NoError(t, ValidateFieldValue(def, "salon"))
	assert.NoError(t, ValidateFieldValue(def, "SALON"))
	assert.ErrorIs(t, ValidateFieldValue(def, "garage"), entity.ErrInvalidFieldValue)
}

func TestValidateFieldValue_Multiselect(t *testing.T) {
	def := entity.FieldDefinition{
		ID:      "services",
		Type:    entity.FieldTypeMultiselect,
		Options: []string{"tonte", "taille", "débroussaillage"},
	}

	assert.NoError(t, ValidateFieldValue(def, "tonte; taille"))
	assert.ErrorIs(t, ValidateFieldValue(def, "tonte; élagage"), entity.ErrInvalidFieldValue)
}

func TestValidateFieldValue_Boolean(t *testing.T) {
	def := entity.FieldDefinition{ID: "photos_ok", Type: entity.FieldTypeBoolean}

	for _, v := range []string{"oui", "Oui", "non", "yes", "no", "d'accord"} {
		assert.NoError(t, ValidateFieldValue(def, v), v)
	}
	assert.ErrorIs(t, ValidateFieldValue(def, "peut-être"), entity.ErrInvalidFieldValue)
}

func TestValidateFieldValue_TextLength(t *testing.T) {
	def := entity.FieldDefinition{
		ID:         "project_description",
		Type:       entity.FieldTypeText,
		Validation: &entity.Validation{MinLen: 10, MaxLen: 50},
	}

	assert.ErrorIs(t, ValidateFieldValue(def, "trop peu"), entity.ErrInvalidFieldValue)
	assert.NoError(t, ValidateFieldValue(def, "Repeindre le salon et le couloir."))
}

func TestValidateFieldValue_PhotosAndLocation(t *testing.T) {
	photos := entity.FieldDefinition{ID: "photos_uploaded", Type: entity.FieldTypePhotos}
	location := entity.FieldDefinition{ID: "project_location", Type: entity.FieldTypeLocation}

	assert.NoError(t, ValidateFieldValue(photos, "oui, deux photos"))
	assert.NoError(t, ValidateFieldValue(location, "Lyon 69003"))
	assert.ErrorIs(t, ValidateFieldValue(photos, ""), entity.ErrInvalidFieldValue)
}

func TestNormalizeFieldValue(t *testing.T) {
	assert.Equal(t, "25", NormalizeFieldValue(surfaceArea, "environ 25 m²"))
	assert.Equal(t, "12.5", NormalizeFieldValue(surfaceArea, "12,5"))

	boolean := entity.FieldDefinition{ID: "b", Type: entity.FieldTypeBoolean}
	assert.Equal(t, "oui", NormalizeFieldValue(boolean, "Yes"))
	assert.Equal(t, "non", NormalizeFieldValue(boolean, "NON"))

	sel := entity.FieldDefinition{ID: "s", Type: entity.FieldTypeSelect, Options: []string{"cuisine"}}
	assert.Equal(t, "cuisine", NormalizeFieldValue(sel, "Cuisine"))
}

func TestConstraintMessage(t *testing.T) {
	err := ValidateFieldValue(surfaceArea, "-3")
	assert.Equal(t, "la valeur doit être au moins 1", ConstraintMessage(err))

	assert.Equal(t, "plain", ConstraintMessage(errors.New("plain")))
}
