package entity

import (
	"time"
)

// DialoguePhase represents the current position of a dialogue session
// in the intake state machine.
type DialoguePhase string

const (
	PhaseAwaitingField        DialoguePhase = "AWAITING_FIELD"
	PhaseOfferingHelp         DialoguePhase = "OFFERING_HELP"
	PhaseConfirmingSuggestion DialoguePhase = "CONFIRMING_SUGGESTION"
	PhaseComplete             DialoguePhase = "COMPLETE"
)

// DialogueState is the phase plus the field the phase refers to.
// FieldID is empty once the dialogue is complete.
type DialogueState struct {
	Phase   DialoguePhase `json:"phase"`
	FieldID string        `json:"field_id,omitempty"`
}

type Speaker string

const (
	SpeakerUser   Speaker = "user"
	SpeakerSystem Speaker = "system"
)

// Turn is one exchange in the conversation history. Intent is set only
// on user turns.
type Turn struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Intent    Intent    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft is the per-session record of collected field values and
// dialogue state. A draft has a single owner (its session) and is
// mutated only by the next-action policy, one turn at a time.
type Draft struct {
	ID       string            `json:"dialogue_id"`
	Category string            `json:"category,omitempty"`
	Service  string            `json:"service,omitempty"`
	Values   map[string]string `json:"values"`
	History  []Turn            `json:"history"`
	State    DialogueState     `json:"state"`

	// Suggestions last offered for State.FieldID, in the order they
	// were presented. Cleared when the field advances.
	Suggestions []string `json:"suggestions,omitempty"`

	// PendingHandoff marks a draft whose fields are all collected but
	// whose persistence handoff failed; the next user turn retries it.
	PendingHandoff bool `json:"pending_handoff,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDraft creates an empty draft. Category may be unknown at session
// start; it is filled once the project_category field is collected.
func NewDraft(id, category, service string) *Draft {
	now := time.Now().UTC()
	return &Draft{
		ID:        id,
		Category:  category,
		Service:   service,
		Values:    make(map[string]string),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Value returns the collected value of a field, if any.
func (d *Draft) Value(fieldID string) (string, bool) {
	v, ok := d.Values[fieldID]
	return v, ok
}

// SetValue stores a validated value. The category and service fields
// additionally update the draft header so the requirement resolver
// picks up the category's extra fields on the next pass.
func (d *Draft) SetValue(fieldID, value string) {
	d.Values[fieldID] = value
	switch fieldID {
	case FieldProjectCategory:
		d.Category = value
	case FieldServiceType:
		d.Service = value
	}
	d.UpdatedAt = time.Now().UTC()
}

// ClearValue removes a collected value, e.g. when the user corrects a
// previous answer.
func (d *Draft) ClearValue(fieldID string) {
	delete(d.Values, fieldID)
	d.UpdatedAt = time.Now().UTC()
}

// AddUserTurn appends a classified user turn to the history.
func (d *Draft) AddUserTurn(text string, intent Intent) {
	d.History = append(d.History, Turn{
		Speaker:   SpeakerUser,
		Text:      text,
		Intent:    intent,
		CreatedAt: time.Now().UTC(),
	})
	d.UpdatedAt = time.Now().UTC()
}

// AddSystemTurn appends a system turn to the history. Every failure
// path in the engine ends in one of these; a session never terminates
// silently.
func (d *Draft) AddSystemTurn(text string) {
	d.History = append(d.History, Turn{
		Speaker:   SpeakerSystem,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
	d.UpdatedAt = time.Now().UTC()
}

// RecentTurns returns up to n most recent turns, oldest first. Used as
// the bounded classification context window.
func (d *Draft) RecentTurns(n int) []Turn {
	if n <= 0 || len(d.History) == 0 {
		return nil
	}
	if len(d.History) <= n {
		return d.History
	}
	return d.History[len(d.History)-n:]
}

// OfferSuggestions records the suggestions presented for the given
// field and moves the dialogue into the matching help phase. A single
// candidate puts the session into CONFIRMING_SUGGESTION, several into
// OFFERING_HELP.
func (d *Draft) OfferSuggestions(fieldID string, suggestions []string) {
	d.Suggestions = suggestions
	phase := PhaseOfferingHelp
	if len(suggestions) == 1 {
		phase = PhaseConfirmingSuggestion
	}
	d.State = DialogueState{Phase: phase, FieldID: fieldID}
	d.UpdatedAt = time.Now().UTC()
}

// AwaitField moves the dialogue to AWAITING_FIELD for the given field
// and drops any suggestions offered for the previous one.
func (d *Draft) AwaitField(fieldID string) {
	d.Suggestions = nil
	d.State = DialogueState{Phase: PhaseAwaitingField, FieldID: fieldID}
	d.UpdatedAt = time.Now().UTC()
}

// MarkComplete transitions the dialogue to its terminal phase.
func (d *Draft) MarkComplete() {
	d.Suggestions = nil
	d.State = DialogueState{Phase: PhaseComplete}
	d.UpdatedAt = time.Now().UTC()
}

// HelpOpen reports whether suggestions are currently on the table.
func (d *Draft) HelpOpen() bool {
	return d.State.Phase == PhaseOfferingHelp || d.State.Phase == PhaseConfirmingSuggestion
}
