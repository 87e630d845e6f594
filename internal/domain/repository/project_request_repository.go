package repository

import (
	"context"

	"visionmatch/internal/domain/entity"
)

// Fields is a partial document update keyed by stored field name.
type Fields map[string]interface{}

type ProjectRequestRepository interface {
	Create(ctx context.Context, request *entity.ProjectRequest) error
	GetByID(ctx context.Context, id string) (*entity.ProjectRequest, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.ProjectRequest, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.ProjectRequest, error)
	Update(ctx context.Context, id string, fields Fields) error
	AddReferenceImage(ctx context.Context, id string, image entity.ReferenceImage) error
}
