package dialogue

import (
	"github.com/ouvrio/intake-backend/internal/entity"
	dialogueuc "github.com/ouvrio/intake-backend/internal/usecase/dialogue"
)

func toDialogueReply(result *dialogueuc.TurnResult) entity.DialogueReply {
	return entity.DialogueReply{
		DialogueID:       result.Draft.ID,
		State:            result.Draft.State,
		Reply:            result.Reply,
		Intent:           result.Intent,
		ProjectRequestID: result.ProjectRequestID,
	}
}

func toDialogueDTO(draft *entity.Draft, missing []string) entity.DialogueDTO {
	history := make([]entity.TurnDTO, 0, len(draft.History))
	for _, turn := range draft.History {
		history = append(history, entity.TurnDTO{
			Speaker:   turn.Speaker,
			Text:      turn.Text,
			Intent:    turn.Intent,
			CreatedAt: turn.CreatedAt,
		})
	}

	if missing == nil {
		missing = []string{}
	}

	return entity.DialogueDTO{
		DialogueID:    draft.ID,
		Category:      draft.Category,
		Service:       draft.Service,
		State:         draft.State,
		Values:        draft.Values,
		MissingFields: missing,
		History:       history,
		CreatedAt:     draft.CreatedAt,
		UpdatedAt:     draft.UpdatedAt,
	}
}
