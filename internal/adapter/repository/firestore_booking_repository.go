package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	_, err := r.client.Collection(bookingsCollection).Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}
	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	return getDoc[entity.Booking](ctx, r.client.Collection(bookingsCollection).Doc(id), "Booking")
}

func (r *firestoreBookingRepository) GetByRequestID(ctx context.Context, requestID string) (*entity.Booking, error) {
	iter := r.client.Collection(bookingsCollection).Where("requestId", "==", requestID).Limit(1).Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Booking for request", nil)
		}
		return nil, errors.Internal("Failed to query booking", err)
	}

	var booking entity.Booking
	if err := doc.DataTo(&booking); err != nil {
		return nil, errors.Internal("Failed to parse booking data", err)
	}
	if booking.ID == "" {
		booking.ID = doc.Ref.ID
	}
	return &booking, nil
}

func (r *firestoreBookingRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Booking, error) {
	query := r.client.Collection(bookingsCollection).Where("clientId", "==", clientID)
	return queryDocs[entity.Booking](ctx, query, "bookings")
}

func (r *firestoreBookingRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Booking, error) {
	query := r.client.Collection(bookingsCollection).Where("creatorId", "==", creatorID)
	return queryDocs[entity.Booking](ctx, query, "bookings")
}

func (r *firestoreBookingRepository) Update(ctx context.Context, id string, fields repository.Fields) error {
	return updateDoc(ctx, r.client.Collection(bookingsCollection).Doc(id), "Booking", fields)
}
