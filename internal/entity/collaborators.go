package entity

// Wire types for the two external text collaborators. Both are plain
// request/response HTTP services; the engine validates everything they
// return and never depends on their availability.

// TurnContext is one history entry sent to the classifier so it can
// disambiguate references like "point 2".
type TurnContext struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

type ClassifyIntentRequest struct {
	Utterance          string        `json:"utterance"`
	OpenField          string        `json:"open_field"` // short description of the open question
	RecentTurns        []TurnContext `json:"recent_turns,omitempty"`
	OfferedSuggestions []string      `json:"offered_suggestions,omitempty"`
}

type ClassifyIntentResponse struct {
	Intent string `json:"intent"`
}

// CollectedField is one entry of the condensed draft summary passed to
// the text generator.
type CollectedField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FieldContext carries the metadata of the field a generated text is
// about.
type FieldContext struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Prompt      string   `json:"prompt"`
	Examples    []string `json:"examples,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type GenerateQuestionRequest struct {
	Field        FieldContext     `json:"field"`
	DraftSummary []CollectedField `json:"draft_summary,omitempty"`
	// Acknowledge holds the value just stored when the question should
	// open with a short acknowledgment of the previous answer.
	Acknowledge string `json:"acknowledge,omitempty"`
}

type GenerateSuggestionsRequest struct {
	Field        FieldContext     `json:"field"`
	DraftSummary []CollectedField `json:"draft_summary,omitempty"`
	Count        int              `json:"count"`
}

type GenerateAnswerRequest struct {
	Field        FieldContext     `json:"field"`
	Question     string           `json:"question"` // the user's meta-question
	DraftSummary []CollectedField `json:"draft_summary,omitempty"`
}

type GenerateTextResponse struct {
	Text string `json:"text"`
}

type GenerateSuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// ClassificationResult is the outcome of one intent classification.
// Fallback reports that the conservative default was applied instead of
// a collaborator answer (timeout, transport error, invalid label).
type ClassificationResult struct {
	Intent   Intent
	Fallback bool
}

// GenerationResult is the outcome of one text generation. Fallback
// reports that the field's deterministic prompt was used.
type GenerationResult struct {
	Text        string
	Suggestions []string
	Fallback    bool
}
