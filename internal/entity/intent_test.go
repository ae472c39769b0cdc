package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		label string
		want  Intent
		ok    bool
	}{
		{"complete_answer", IntentCompleteAnswer, true},
		{"validates_suggestions", IntentValidatesSuggestions, true},
		{"need_help", IntentNeedHelp, true},
		{"uncertainty", IntentUncertainty, true},
		{"question_back", IntentQuestionBack, true},
		{"clarification", IntentClarification, true},
		{"suggestion_request", IntentSuggestionRequest, true},
		{"  Need_Help \n", IntentNeedHelp, true},
		{"banana", IntentCompleteAnswer, false},
		{"", IntentCompleteAnswer, false},
		{"complete answer", IntentCompleteAnswer, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			intent, ok := ParseIntent(tt.label)
			assert.Equal(t, tt.want, intent)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
