package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

type firestoreProjectRequestRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRequestRepository(client *firestore.Client) repository.ProjectRequestRepository {
	return &firestoreProjectRequestRepository{
		client: client,
	}
}

func (r *firestoreProjectRequestRepository) Create(ctx context.Context, request *entity.ProjectRequest) error {
	_, err := r.client.Collection(projectRequestsCollection).Doc(request.ID).Set(ctx, request)
	if err != nil {
		return errors.Internal("Failed to create project request", err)
	}
	return nil
}

func (r *firestoreProjectRequestRepository) GetByID(ctx context.Context, id string) (*entity.ProjectRequest, error) {
	return getDoc[entity.ProjectRequest](ctx, r.client.Collection(projectRequestsCollection).Doc(id), "Request")
}

func (r *firestoreProjectRequestRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.ProjectRequest, error) {
	query := r.client.Collection(projectRequestsCollection).Where("clientId", "==", clientID)
	return queryDocs[entity.ProjectRequest](ctx, query, "project requests")
}

func (r *firestoreProjectRequestRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.ProjectRequest, error) {
	query := r.client.Collection(projectRequestsCollection).Where("creatorId", "==", creatorID)
	return queryDocs[entity.ProjectRequest](ctx, query, "project requests")
}

func (r *firestoreProjectRequestRepository) Update(ctx context.Context, id string, fields repository.Fields) error {
	return updateDoc(ctx, r.client.Collection(projectRequestsCollection).Doc(id), "Request", fields)
}

func (r *firestoreProjectRequestRepository) AddReferenceImage(ctx context.Context, id string, image entity.ReferenceImage) error {
	return updateDoc(ctx, r.client.Collection(projectRequestsCollection).Doc(id), "Request", repository.Fields{
		"referenceImages": firestore.ArrayUnion(image),
	})
}
