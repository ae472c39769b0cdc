package dialogue

import (
	"strings"

	"github.com/ouvrio/intake-backend/internal/catalog"
	"github.com/ouvrio/intake-backend/internal/entity"
	"github.com/ouvrio/intake-backend/internal/pkg/validator"
)

// Action is what the policy decided the system should do next. The
// responder turns it into literal dialogue text.
type Action int

const (
	// ActionAskField asks the question for Decision.FieldID.
	ActionAskField Action = iota
	// ActionOfferSuggestions presents candidate values for Decision.FieldID.
	ActionOfferSuggestions
	// ActionAnswerMeta answers the user's question without consuming a field.
	ActionAnswerMeta
	// ActionReask repeats the current question with the violated constraint.
	ActionReask
	// ActionComplete hands the draft off for persistence.
	ActionComplete
)

// Decision is the outcome of applying one classified turn to a draft.
type Decision struct {
	Action  Action
	FieldID string

	// StoredValue is the value just written, set on ActionAskField and
	// ActionComplete transitions that followed a successful store.
	StoredValue string

	// Constraint is the human-readable rule the rejected value violated,
	// set on ActionReask.
	Constraint string
}

// Policy is the next-action state machine. It owns every mutation of a
// draft: exactly one user turn in, exactly one transition out. It is
// deliberately free of I/O so the transition table can be tested
// against values alone.
type Policy struct {
	catalog *catalog.Catalog
}

func NewPolicy(cat *catalog.Catalog) *Policy {
	return &Policy{catalog: cat}
}

// Apply transitions the draft according to the classified intent and
// returns what the system should do next. Validation failures never
// advance the field cursor; skipping happens only through
// inapplicability inside the resolver.
func (p *Policy) Apply(draft *entity.Draft, intent entity.Intent, utterance string) Decision {
	fieldID := draft.State.FieldID

	// Meta-questions leave the state untouched in every phase.
	if intent == entity.IntentQuestionBack || intent == entity.IntentClarification {
		return Decision{Action: ActionAnswerMeta, FieldID: fieldID}
	}

	switch draft.State.Phase {
	case entity.PhaseAwaitingField:
		switch intent {
		case entity.IntentNeedHelp, entity.IntentUncertainty, entity.IntentSuggestionRequest:
			return Decision{Action: ActionOfferSuggestions, FieldID: fieldID}
		default:
			return p.storeValue(draft, fieldID, utterance)
		}

	case entity.PhaseOfferingHelp, entity.PhaseConfirmingSuggestion:
		switch intent {
		case entity.IntentValidatesSuggestions:
			value := strings.Join(SelectSuggestions(utterance, draft.Suggestions), "; ")
			return p.storeValue(draft, fieldID, value)
		case entity.IntentNeedHelp, entity.IntentUncertainty, entity.IntentSuggestionRequest:
			return Decision{Action: ActionOfferSuggestions, FieldID: fieldID}
		default:
			// A direct answer bypasses the offered suggestions.
			return p.storeValue(draft, fieldID, utterance)
		}
	}

	// COMPLETE is guarded upstream; reaching here means the handoff is
	// being retried.
	return Decision{Action: ActionComplete}
}

// storeValue validates, normalizes and stores a value for the open
// field, then advances the cursor to the next missing applicable field
// or to completion.
func (p *Policy) storeValue(draft *entity.Draft, fieldID, value string) Decision {
	def, ok := p.catalog.Field(fieldID)
	if !ok {
		// The cursor always points at a catalog field; a miss means the
		// catalog changed under a live draft. Recompute and move on.
		return p.advance(draft, "")
	}

	if err := validator.ValidateFieldValue(def, value); err != nil {
		return Decision{
			Action:     ActionReask,
			FieldID:    fieldID,
			Constraint: validator.ConstraintMessage(err),
		}
	}

	stored := validator.NormalizeFieldValue(def, value)
	draft.SetValue(fieldID, stored)

	return p.advance(draft, stored)
}

// advance recomputes the next missing applicable field and moves the
// draft there, or marks it complete when none remain.
func (p *Policy) advance(draft *entity.Draft, stored string) Decision {
	next, ok := p.catalog.NextMissing(draft.Category, draft.Values)
	if !ok {
		draft.MarkComplete()
		return Decision{Action: ActionComplete, StoredValue: stored}
	}

	draft.AwaitField(next)
	return Decision{Action: ActionAskField, FieldID: next, StoredValue: stored}
}

// MissingFields exposes the resolver's view of the draft for the read
// API and for completion checks.
func (p *Policy) MissingFields(draft *entity.Draft) []string {
	return p.catalog.MissingFields(draft.Category, draft.Values)
}
