package entity

import "time"

// ProjectRequestPayload is the ProjectDraft-shaped payload handed to
// the persistence collaborator once a dialogue is complete.
type ProjectRequestPayload struct {
	DialogueID string            `json:"dialogue_id"`
	Category   string            `json:"category"`
	Service    string            `json:"service"`
	Fields     map[string]string `json:"fields"`
}

// ProjectRequest is a persisted, completed service request.
type ProjectRequest struct {
	ID         string            `json:"id"`
	DialogueID string            `json:"dialogue_id"`
	Category   string            `json:"category"`
	Service    string            `json:"service"`
	Fields     map[string]string `json:"fields"`
	CreatedAt  time.Time         `json:"created_at"`
}

// ResultFormat selects the export format of a project request brief.
type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

func (f ResultFormat) Validate() error {
	switch f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return nil
	default:
		return ErrInvalidParameter
	}
}
