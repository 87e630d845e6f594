package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

type firestoreCreatorRepository struct {
	client *firestore.Client
}

func NewFirestoreCreatorRepository(client *firestore.Client) repository.CreatorRepository {
	return &firestoreCreatorRepository{
		client: client,
	}
}

// GetStartingPrice returns 0 when the user exists but has no usable starting_price.
func (r *firestoreCreatorRepository) GetStartingPrice(ctx context.Context, creatorID string) (float64, error) {
	doc, err := r.client.Collection(usersCollection).Doc(creatorID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return 0, errors.NotFound("Creator", err)
		}
		return 0, errors.Internal("Failed to get creator", err)
	}

	value, err := doc.DataAt("starting_price")
	if err != nil {
		return 0, nil
	}

	switch v := value.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, nil
	}
}

func (r *firestoreCreatorRepository) SaveRating(ctx context.Context, rating *entity.CreatorRating) error {
	_, err := r.client.Collection(creatorsCollection).Doc(rating.CreatorID).Set(ctx, map[string]interface{}{
		"rating":      rating.Rating,
		"reviewCount": rating.ReviewCount,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update creator rating", err)
	}
	return nil
}
