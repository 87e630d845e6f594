package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

type firestoreNegotiationMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreNegotiationMessageRepository(client *firestore.Client) repository.NegotiationMessageRepository {
	return &firestoreNegotiationMessageRepository{
		client: client,
	}
}

func (r *firestoreNegotiationMessageRepository) messages(requestID string) *firestore.CollectionRef {
	return r.client.Collection(projectMessagesCollection).Doc(requestID).Collection(messagesSubcollection)
}

func (r *firestoreNegotiationMessageRepository) Create(ctx context.Context, requestID string, message *entity.NegotiationMessage) error {
	_, err := r.messages(requestID).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to store negotiation message", err)
	}
	return nil
}

func (r *firestoreNegotiationMessageRepository) ListByRequest(ctx context.Context, requestID string) ([]*entity.NegotiationMessage, error) {
	return queryDocs[entity.NegotiationMessage](ctx, r.messages(requestID).Query, "negotiation messages")
}
