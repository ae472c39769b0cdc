package dialogue

import (
	"context"

	"github.com/ouvrio/intake-backend/internal/entity"
)

// IntentClassifier is the external text-understanding collaborator.
// Implemented by integration/classifier.Connector and its mock.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, req *entity.ClassifyIntentRequest) (*entity.ClassifyIntentResponse, error)
}

// TextGenerator is the external text-generation collaborator.
// Implemented by integration/generation.Connector and its mock.
type TextGenerator interface {
	GenerateQuestion(ctx context.Context, req *entity.GenerateQuestionRequest) (string, error)
	GenerateSuggestions(ctx context.Context, req *entity.GenerateSuggestionsRequest) ([]string, error)
	GenerateAnswer(ctx context.Context, req *entity.GenerateAnswerRequest) (string, error)
}

// ProjectCreator is the persistence collaborator that receives a
// completed draft. Implemented by repository.ProjectRequestPostgres.
type ProjectCreator interface {
	CreateProjectRequest(ctx context.Context, payload entity.ProjectRequestPayload) (*entity.ProjectRequest, error)
}

// DraftStore holds in-flight drafts between turns.
type DraftStore interface {
	SaveDraft(ctx context.Context, draft *entity.Draft) error
	GetDraft(ctx context.Context, id string) (*entity.Draft, error)
	DeleteDraft(ctx context.Context, id string) error
}
