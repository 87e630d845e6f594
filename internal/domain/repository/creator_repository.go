package repository

import (
	"context"

	"visionmatch/internal/domain/entity"
)

// CreatorRepository reads creator profiles from Users and writes the rating
// aggregate to creators.
type CreatorRepository interface {
	GetStartingPrice(ctx context.Context, creatorID string) (float64, error)
	SaveRating(ctx context.Context, rating *entity.CreatorRating) error
}
