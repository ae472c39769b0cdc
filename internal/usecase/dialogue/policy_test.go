package dialogue

import (
	"testing"

	"github.com/ouvrio/intake-backend/internal/catalog"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPolicy(t *testing.T) *Policy {
	t.Helper()
	cat, err := catalog.Default(zap.NewNop())
	require.NoError(t, err)
	return NewPolicy(cat)
}

func peintureDraft(values map[string]string) *entity.Draft {
	draft := entity.NewDraft("d-1", "", "")
	for id, v := range values {
		draft.SetValue(id, v)
	}
	return draft
}

func TestPolicy_CompleteAnswerStoresAndAdvances(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(nil)
	draft.AwaitField(entity.FieldProjectCategory)

	decision := p.Apply(draft, entity.IntentCompleteAnswer, "Peinture")

	assert.Equal(t, ActionAskField, decision.Action)
	assert.Equal(t, entity.FieldServiceType, decision.FieldID)
	assert.Equal(t, "Peinture", decision.StoredValue)
	assert.Equal(t, "Peinture", draft.Category)
	assert.Equal(t, entity.PhaseAwaitingField, draft.State.Phase)
}

func TestPolicy_NeedHelpOffersSuggestions(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{entity.FieldProjectCategory: "Peinture"})
	draft.AwaitField(entity.FieldServiceType)

	for _, intent := range []entity.Intent{
		entity.IntentNeedHelp, entity.IntentUncertainty, entity.IntentSuggestionRequest,
	} {
		decision := p.Apply(draft, intent, "je ne sais pas")

		assert.Equal(t, ActionOfferSuggestions, decision.Action)
		assert.Equal(t, entity.FieldServiceType, decision.FieldID)
		// The draft only enters the help phase once the suggestions are
		// actually generated.
		assert.Equal(t, entity.PhaseAwaitingField, draft.State.Phase)
	}
}

func TestPolicy_MetaQuestionsNeverConsumeAField(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{entity.FieldProjectCategory: "Peinture"})
	draft.AwaitField("surface_area")

	for _, intent := range []entity.Intent{entity.IntentQuestionBack, entity.IntentClarification} {
		decision := p.Apply(draft, intent, "pourquoi cette question ?")

		assert.Equal(t, ActionAnswerMeta, decision.Action)
		assert.Equal(t, "surface_area", decision.FieldID)
		assert.Equal(t, entity.PhaseAwaitingField, draft.State.Phase)
		assert.Equal(t, "surface_area", draft.State.FieldID)
		_, collected := draft.Value("surface_area")
		assert.False(t, collected)
	}

	// Same while help is open.
	draft.OfferSuggestions("surface_area", []string{"20", "40"})
	decision := p.Apply(draft, entity.IntentQuestionBack, "en m² ou en m ?")
	assert.Equal(t, ActionAnswerMeta, decision.Action)
	assert.Equal(t, entity.PhaseOfferingHelp, draft.State.Phase)
}

func TestPolicy_InvalidValueReasksSameField(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{entity.FieldProjectCategory: "Peinture"})
	draft.AwaitField("surface_area")

	decision := p.Apply(draft, entity.IntentCompleteAnswer, "-3")

	assert.Equal(t, ActionReask, decision.Action)
	assert.Equal(t, "surface_area", decision.FieldID)
	assert.Equal(t, "la valeur doit être au moins 1", decision.Constraint)
	assert.Equal(t, entity.PhaseAwaitingField, draft.State.Phase)
	assert.Equal(t, "surface_area", draft.State.FieldID)
	_, collected := draft.Value("surface_area")
	assert.False(t, collected)
}

func TestPolicy_ValidatesSuggestionsStoresOfferedValue(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{
		entity.FieldProjectCategory:    "Peinture",
		entity.FieldServiceType:        "Peinture intérieure",
		entity.FieldProjectDescription: "Repeindre entièrement le salon et le couloir.",
		"surface_area":                 "25",
		"room_type":                    "salon",
		"current_state":                "Ancienne peinture écaillée",
	})
	offered := []string{
		"Peinture acrylique mate",
		"Peinture glycéro satinée",
		"Peinture biosourcée",
	}
	draft.OfferSuggestions("materials_preferences", offered)
	require.Equal(t, entity.PhaseOfferingHelp, draft.State.Phase)

	decision := p.Apply(draft, entity.IntentValidatesSuggestions, "Les 3 points sont justes")

	assert.Equal(t, ActionAskField, decision.Action)
	assert.Equal(t, entity.FieldPhotosUploaded, decision.FieldID)

	value, collected := draft.Value("materials_preferences")
	require.True(t, collected)
	assert.Equal(t, "Peinture acrylique mate; Peinture glycéro satinée; Peinture biosourcée", value)
	assert.Nil(t, draft.Suggestions)
}

func TestPolicy_SingleSuggestionConfirmation(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{entity.FieldProjectCategory: "Peinture"})
	draft.OfferSuggestions(entity.FieldServiceType, []string{"Rénovation complète"})
	require.Equal(t, entity.PhaseConfirmingSuggestion, draft.State.Phase)

	decision := p.Apply(draft, entity.IntentValidatesSuggestions, "oui exactement")

	assert.Equal(t, ActionAskField, decision.Action)
	value, _ := draft.Value(entity.FieldServiceType)
	assert.Equal(t, "Rénovation complète", value)
}

func TestPolicy_DirectAnswerBypassesSuggestions(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{entity.FieldProjectCategory: "Peinture"})
	draft.OfferSuggestions(entity.FieldServiceType, []string{"Rénovation complète", "Réparation"})

	decision := p.Apply(draft, entity.IntentCompleteAnswer, "Peinture des volets en bois")

	assert.Equal(t, ActionAskField, decision.Action)
	value, _ := draft.Value(entity.FieldServiceType)
	assert.Equal(t, "Peinture des volets en bois", value)
}

func TestPolicy_LastFieldCompletes(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{
		entity.FieldProjectCategory:    "Plomberie",
		entity.FieldServiceType:        "Réparation de fuite",
		entity.FieldProjectDescription: "Fuite sous l'évier de la cuisine depuis hier soir.",
		"urgency_level":                "immédiate",
		"issue_location":               "Fuite sous l'évier de la cuisine",
		entity.FieldPhotosUploaded:     "oui",
	})
	draft.AwaitField(entity.FieldProjectLocation)

	decision := p.Apply(draft, entity.IntentCompleteAnswer, "Lyon 69003")

	assert.Equal(t, ActionComplete, decision.Action)
	assert.Equal(t, entity.PhaseComplete, draft.State.Phase)
	assert.Empty(t, draft.State.FieldID)
	assert.Empty(t, p.MissingFields(draft))
}

func TestPolicy_NumberNormalizedBeforeStore(t *testing.T) {
	p := testPolicy(t)
	draft := peintureDraft(map[string]string{entity.FieldProjectCategory: "Peinture"})
	draft.AwaitField("surface_area")

	p.Apply(draft, entity.IntentCompleteAnswer, "environ 25 m²")

	value, _ := draft.Value("surface_area")
	assert.Equal(t, "25", value)
}
