package entity

import "time"

type StartDialogueRequest struct {
	Category string `json:"category,omitempty"`
	Service  string `json:"service,omitempty"`
}

type PostMessageRequest struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type TurnDTO struct {
	Speaker   Speaker   `json:"speaker"`
	Text      string    `json:"text"`
	Intent    Intent    `json:"intent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DialogueReply is the engine's answer to one user turn.
type DialogueReply struct {
	DialogueID string        `json:"dialogue_id"`
	State      DialogueState `json:"state"`
	Reply      string        `json:"reply"`
	// Intent the utterance was classified as, after coercion.
	Intent Intent `json:"intent,omitempty"`
	// ProjectRequestID is set once the completed draft has been handed
	// off to persistence successfully.
	ProjectRequestID string `json:"project_request_id,omitempty"`
}

type DialogueDTO struct {
	DialogueID    string            `json:"dialogue_id"`
	Category      string            `json:"category,omitempty"`
	Service       string            `json:"service,omitempty"`
	State         DialogueState     `json:"state"`
	Values        map[string]string `json:"values"`
	MissingFields []string          `json:"missing_fields"`
	History       []TurnDTO         `json:"history"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type ProjectRequestDTO struct {
	ID         string            `json:"id"`
	DialogueID string            `json:"dialogue_id"`
	Category   string            `json:"category"`
	Service    string            `json:"service"`
	Fields     map[string]string `json:"fields"`
	CreatedAt  time.Time         `json:"created_at"`
}
