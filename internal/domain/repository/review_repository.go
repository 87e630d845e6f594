package repository

import (
	"context"

	"visionmatch/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Review, error)
}
