package dialogue

import (
	"context"

	"github.com/ouvrio/intake-backend/internal/entity"
	dialogueuc "github.com/ouvrio/intake-backend/internal/usecase/dialogue"
	requestuc "github.com/ouvrio/intake-backend/internal/usecase/request"
)

// DialogueUsecase defines the dialogue operations the API exposes
type DialogueUsecase interface {
	StartDialogue(ctx context.Context, category, service string) (*dialogueuc.TurnResult, error)
	HandleMessage(ctx context.Context, dialogueID, text string) (*dialogueuc.TurnResult, error)
	GetDialogue(ctx context.Context, dialogueID string) (*entity.Draft, []string, error)
	CancelDialogue(ctx context.Context, dialogueID string) error
}

// BriefProvider renders the document of the request a dialogue produced
type BriefProvider interface {
	GetBriefByDialogue(ctx context.Context, dialogueID string, format entity.ResultFormat) (*requestuc.Brief, error)
}
