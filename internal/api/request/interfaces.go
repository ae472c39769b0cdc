package request

import (
	"context"

	"github.com/ouvrio/intake-backend/internal/entity"
	requestuc "github.com/ouvrio/intake-backend/internal/usecase/request"
)

// RequestUsecase defines the project request operations the API exposes
type RequestUsecase interface {
	GetRequest(ctx context.Context, id string) (*entity.ProjectRequest, error)
	ListRequests(ctx context.Context, category string, limit, offset int) ([]entity.ProjectRequest, error)
	GetBrief(ctx context.Context, id string, format entity.ResultFormat) (*requestuc.Brief, error)
}
