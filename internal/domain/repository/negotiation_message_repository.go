package repository

import (
	"context"

	"visionmatch/internal/domain/entity"
)

type NegotiationMessageRepository interface {
	Create(ctx context.Context, requestID string, message *entity.NegotiationMessage) error
	ListByRequest(ctx context.Context, requestID string) ([]*entity.NegotiationMessage, error)
}
