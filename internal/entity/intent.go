package entity

import "strings"

// Intent is the classified purpose of one user utterance.
type Intent string

const (
	IntentCompleteAnswer       Intent = "complete_answer"
	IntentValidatesSuggestions Intent = "validates_suggestions"
	IntentNeedHelp             Intent = "need_help"
	IntentUncertainty          Intent = "uncertainty"
	IntentQuestionBack         Intent = "question_back"
	IntentClarification        Intent = "clarification"
	IntentSuggestionRequest    Intent = "suggestion_request"
)

// ValidIntents is the closed set of intents the engine accepts.
// Anything outside it is coerced to IntentCompleteAnswer.
var ValidIntents = map[Intent]bool{
	IntentCompleteAnswer:       true,
	IntentValidatesSuggestions: true,
	IntentNeedHelp:             true,
	IntentUncertainty:          true,
	IntentQuestionBack:         true,
	IntentClarification:        true,
	IntentSuggestionRequest:    true,
}

// ParseIntent normalizes a raw classifier label against the closed
// intent set. The second return value reports whether the label was
// recognized; callers fall back to IntentCompleteAnswer when it is not.
func ParseIntent(label string) (Intent, bool) {
	intent := Intent(strings.ToLower(strings.TrimSpace(label)))
	if ValidIntents[intent] {
		return intent, true
	}
	return IntentCompleteAnswer, false
}
