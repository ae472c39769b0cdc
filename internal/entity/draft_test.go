package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDraft_SetValueUpdatesHeader(t *testing.T) {
	draft := NewDraft("d-1", "", "")

	draft.SetValue(FieldProjectCategory, "Peinture")
	draft.SetValue(FieldServiceType, "Peinture intérieure")
	draft.SetValue("surface_area", "25")

	assert.Equal(t, "Peinture", draft.Category)
	assert.Equal(t, "Peinture intérieure", draft.Service)

	value, ok := draft.Value("surface_area")
	assert.True(t, ok)
	assert.Equal(t, "25", value)

	draft.ClearValue("surface_area")
	_, ok = draft.Value("surface_area")
	assert.False(t, ok)
}

func TestDraft_OfferSuggestionsPhases(t *testing.T) {
	draft := NewDraft("d-1", "Peinture", "")

	draft.OfferSuggestions("current_state", []string{"Murs neufs", "Peinture écaillée"})
	assert.Equal(t, PhaseOfferingHelp, draft.State.Phase)
	assert.True(t, draft.HelpOpen())

	draft.OfferSuggestions("current_state", []string{"Murs neufs"})
	assert.Equal(t, PhaseConfirmingSuggestion, draft.State.Phase)
	assert.True(t, draft.HelpOpen())

	draft.AwaitField("materials_preferences")
	assert.Equal(t, PhaseAwaitingField, draft.State.Phase)
	assert.False(t, draft.HelpOpen())
	assert.Nil(t, draft.Suggestions)

	draft.MarkComplete()
	assert.Equal(t, PhaseComplete, draft.State.Phase)
	assert.Empty(t, draft.State.FieldID)
}

func TestDraft_RecentTurnsWindow(t *testing.T) {
	draft := NewDraft("d-1", "", "")
	for i := 0; i < 5; i++ {
		draft.AddSystemTurn("question")
		draft.AddUserTurn("réponse", IntentCompleteAnswer)
	}

	assert.Len(t, draft.RecentTurns(4), 4)
	assert.Len(t, draft.RecentTurns(100), 10)
	assert.Nil(t, draft.RecentTurns(0))

	last := draft.RecentTurns(1)[0]
	assert.Equal(t, SpeakerUser, last.Speaker)
}
