package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	return getDoc[entity.Review](ctx, r.client.Collection(reviewsCollection).Doc(id), "Review")
}

func (r *firestoreReviewRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).Where("creatorId", "==", creatorID)
	return queryDocs[entity.Review](ctx, query, "reviews")
}
