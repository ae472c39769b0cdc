package request

import "github.com/ouvrio/intake-backend/internal/entity"

func toRequestDTO(req *entity.ProjectRequest) entity.ProjectRequestDTO {
	return entity.ProjectRequestDTO{
		ID:         req.ID,
		DialogueID: req.DialogueID,
		Category:   req.Category,
		Service:    req.Service,
		Fields:     req.Fields,
		CreatedAt:  req.CreatedAt,
	}
}
