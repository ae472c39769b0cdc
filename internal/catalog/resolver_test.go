package catalog

import (
	"testing"

	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolve_PeintureOrderAndLength(t *testing.T) {
	cat, err := Default(zap.NewNop())
	require.NoError(t, err)

	ids := cat.Resolve("Peinture")

	assert.Equal(t, []string{
		entity.FieldProjectCategory,
		entity.FieldServiceType,
		entity.FieldProjectDescription,
		"surface_area",
		"room_type",
		"current_state",
		"materials_preferences",
		entity.FieldPhotosUploaded,
		entity.FieldProjectLocation,
	}, ids)
	assert.Len(t, ids, 9)
}

func TestResolve_EveryCategoryHasFixedShape(t *testing.T) {
	cat, err := Default(zap.NewNop())
	require.NoError(t, err)

	for _, category := range cat.Categories() {
		ids := cat.Resolve(category)

		require.GreaterOrEqual(t, len(ids), 5, category)
		assert.Equal(t, entity.FieldProjectCategory, ids[0], category)
		assert.Equal(t, entity.FieldServiceType, ids[1], category)
		assert.Equal(t, entity.FieldProjectDescription, ids[2], category)
		assert.Equal(t, entity.FieldPhotosUploaded, ids[len(ids)-2], category)
		assert.Equal(t, entity.FieldProjectLocation, ids[len(ids)-1], category)

		seen := make(map[string]bool)
		for _, id := range ids {
			assert.False(t, seen[id], "duplicate %s in %s", id, category)
			seen[id] = true
		}
	}
}

func TestResolve_UnknownCategoryDegradesToFixedFields(t *testing.T) {
	cat, err := Default(zap.NewNop())
	require.NoError(t, err)

	for _, category := range []string{"", "Toiture", "unknown"} {
		assert.Equal(t, []string{
			entity.FieldProjectCategory,
			entity.FieldServiceType,
			entity.FieldProjectDescription,
			entity.FieldPhotosUploaded,
			entity.FieldProjectLocation,
		}, cat.Resolve(category))
	}
}

func TestResolve_ExtrasDedupedAgainstHeadAndTail(t *testing.T) {
	fields := append([]entity.FieldDefinition{}, defaultFields...)
	categories := map[string][]string{
		"Peinture": {entity.FieldProjectDescription, "surface_area", entity.FieldProjectLocation, "surface_area"},
	}

	cat, err := New(fields, categories, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{
		entity.FieldProjectCategory,
		entity.FieldServiceType,
		entity.FieldProjectDescription,
		"surface_area",
		entity.FieldPhotosUploaded,
		entity.FieldProjectLocation,
	}, cat.Resolve("Peinture"))
}

func TestMissingFields_SkipsInapplicableAndIsIdempotent(t *testing.T) {
	cat, err := Default(zap.NewNop())
	require.NoError(t, err)

	values := map[string]string{
		entity.FieldProjectCategory: "Peinture",
		entity.FieldServiceType:     "Peinture intérieure",
	}

	missing := cat.MissingFields("Peinture", values)

	// materials_preferences depends on current_state, which has no value
	// yet, so it must not be presented.
	assert.NotContains(t, missing, "materials_preferences")
	assert.Contains(t, missing, "current_state")
	assert.Contains(t, missing, "room_type")

	// Resolution is a pure function of the inputs.
	assert.Equal(t, missing, cat.MissingFields("Peinture", values))

	// Once current_state is collected, the dependent field surfaces.
	values["current_state"] = "Ancienne peinture écaillée"
	assert.Contains(t, cat.MissingFields("Peinture", values), "materials_preferences")
}

func TestMissingFields_AppliesIfExcludesField(t *testing.T) {
	cat, err := Default(zap.NewNop())
	require.NoError(t, err)

	// room_type only applies to Peinture and Ménage; a Plomberie-style
	// draft that somehow lists it as extra must skip it.
	fields := append([]entity.FieldDefinition{}, defaultFields...)
	categories := map[string][]string{"Plomberie": {"room_type", "urgency_level"}}
	cat, err = New(fields, categories, zap.NewNop())
	require.NoError(t, err)

	values := map[string]string{entity.FieldProjectCategory: "Plomberie"}
	missing := cat.MissingFields("Plomberie", values)

	assert.NotContains(t, missing, "room_type")
	assert.Contains(t, missing, "urgency_level")
}

func TestNextMissing_CompleteDraft(t *testing.T) {
	cat, err := Default(zap.NewNop())
	require.NoError(t, err)

	values := map[string]string{
		entity.FieldProjectCategory:    "Plomberie",
		entity.FieldServiceType:        "Réparation de fuite",
		entity.FieldProjectDescription: "Fuite sous l'évier de la cuisine depuis hier soir.",
		"urgency_level":                "immédiate",
		"issue_location":               "Fuite sous l'évier de la cuisine",
		entity.FieldPhotosUploaded:     "oui",
		entity.FieldProjectLocation:    "Lyon 69003",
	}

	_, ok := cat.NextMissing("Plomberie", values)
	assert.False(t, ok)

	// Removing any collected value reverts completeness.
	delete(values, "urgency_level")
	next, ok := cat.NextMissing("Plomberie", values)
	assert.True(t, ok)
	assert.Equal(t, "urgency_level", next)
}
