package repository

import (
	"context"

	"visionmatch/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	GetByRequestID(ctx context.Context, requestID string) (*entity.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Booking, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Booking, error)
	Update(ctx context.Context, id string, fields Fields) error
}
