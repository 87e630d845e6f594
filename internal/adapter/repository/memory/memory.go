// Package memory holds map-backed repositories with the same semantics as the
// Firestore ones. Tests use them in place of the emulator.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/pkg/errors"
)

// applyFields merges a partial update into doc through its JSON form. JSON
// tags mirror the stored field names, so the merge matches a Firestore update.
func applyFields(doc interface{}, fields repository.Fields) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	merged := map[string]interface{}{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return err
	}
	for k, v := range fields {
		merged[k] = v
	}
	raw, err = json.Marshal(merged)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, doc)
}

func clone[T any](v *T) *T {
	raw, _ := json.Marshal(v)
	var out T
	json.Unmarshal(raw, &out)
	return &out
}

type ProjectRequestRepository struct {
	mu   sync.RWMutex
	docs map[string]*entity.ProjectRequest
}

func NewProjectRequestRepository() *ProjectRequestRepository {
	return &ProjectRequestRepository{docs: make(map[string]*entity.ProjectRequest)}
}

func (r *ProjectRequestRepository) Create(_ context.Context, request *entity.ProjectRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[request.ID] = clone(request)
	return nil
}

func (r *ProjectRequestRepository) GetByID(_ context.Context, id string) (*entity.ProjectRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound("Request", nil)
	}
	return clone(doc), nil
}

func (r *ProjectRequestRepository) ListByClient(_ context.Context, clientID string) ([]*entity.ProjectRequest, error) {
	return r.filter(func(p *entity.ProjectRequest) bool { return p.ClientID == clientID }), nil
}

func (r *ProjectRequestRepository) ListByCreator(_ context.Context, creatorID string) ([]*entity.ProjectRequest, error) {
	return r.filter(func(p *entity.ProjectRequest) bool { return p.CreatorID == creatorID }), nil
}

func (r *ProjectRequestRepository) filter(match func(*entity.ProjectRequest) bool) []*entity.ProjectRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.ProjectRequest{}
	for _, doc := range r.docs {
		if match(doc) {
			out = append(out, clone(doc))
		}
	}
	return out
}

func (r *ProjectRequestRepository) Update(_ context.Context, id string, fields repository.Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return errors.NotFound("Request", nil)
	}
	if err := applyFields(doc, fields); err != nil {
		return errors.Internal("Failed to update Request", err)
	}
	return nil
}

func (r *ProjectRequestRepository) AddReferenceImage(_ context.Context, id string, image entity.ReferenceImage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return errors.NotFound("Request", nil)
	}
	for _, existing := range doc.ReferenceImages {
		if existing == image {
			return nil
		}
	}
	doc.ReferenceImages = append(doc.ReferenceImages, image)
	return nil
}

type NegotiationMessageRepository struct {
	mu       sync.RWMutex
	messages map[string][]*entity.NegotiationMessage
}

func NewNegotiationMessageRepository() *NegotiationMessageRepository {
	return &NegotiationMessageRepository{messages: make(map[string][]*entity.NegotiationMessage)}
}

func (r *NegotiationMessageRepository) Create(_ context.Context, requestID string, message *entity.NegotiationMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[requestID] = append(r.messages[requestID], clone(message))
	return nil
}

func (r *NegotiationMessageRepository) ListByRequest(_ context.Context, requestID string) ([]*entity.NegotiationMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.NegotiationMessage{}
	for _, m := range r.messages[requestID] {
		out = append(out, clone(m))
	}
	return out, nil
}

type BookingRepository struct {
	mu   sync.RWMutex
	docs map[string]*entity.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{docs: make(map[string]*entity.Booking)}
}

func (r *BookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[booking.ID] = clone(booking)
	return nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound("Booking", nil)
	}
	return clone(doc), nil
}

func (r *BookingRepository) GetByRequestID(_ context.Context, requestID string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.docs {
		if doc.RequestID == requestID {
			return clone(doc), nil
		}
	}
	return nil, errors.NotFound("Booking for request", nil)
}

func (r *BookingRepository) ListByClient(_ context.Context, clientID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.ClientID == clientID }), nil
}

func (r *BookingRepository) ListByCreator(_ context.Context, creatorID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.CreatorID == creatorID }), nil
}

func (r *BookingRepository) filter(match func(*entity.Booking) bool) []*entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.Booking{}
	for _, doc := range r.docs {
		if match(doc) {
			out = append(out, clone(doc))
		}
	}
	return out
}

func (r *BookingRepository) Update(_ context.Context, id string, fields repository.Fields) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return errors.NotFound("Booking", nil)
	}
	if err := applyFields(doc, fields); err != nil {
		return errors.Internal("Failed to update Booking", err)
	}
	return nil
}

type ReviewRepository struct {
	mu   sync.RWMutex
	docs map[string]*entity.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{docs: make(map[string]*entity.Review)}
}

func (r *ReviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[review.ID] = clone(review)
	return nil
}

func (r *ReviewRepository) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, errors.NotFound("Review", nil)
	}
	return clone(doc), nil
}

func (r *ReviewRepository) ListByCreator(_ context.Context, creatorID string) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.Review{}
	for _, doc := range r.docs {
		if doc.CreatorID == creatorID {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

// CreatorRepository keeps starting prices (Users) and rating aggregates (creators).
type CreatorRepository struct {
	mu      sync.RWMutex
	prices  map[string]float64
	ratings map[string]*entity.CreatorRating
}

func NewCreatorRepository() *CreatorRepository {
	return &CreatorRepository{
		prices:  make(map[string]float64),
		ratings: make(map[string]*entity.CreatorRating),
	}
}

func (r *CreatorRepository) SetStartingPrice(creatorID string, price float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prices[creatorID] = price
}

func (r *CreatorRepository) GetStartingPrice(_ context.Context, creatorID string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	price, ok := r.prices[creatorID]
	if !ok {
		return 0, errors.NotFound("Creator", nil)
	}
	return price, nil
}

func (r *CreatorRepository) SaveRating(_ context.Context, rating *entity.CreatorRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ratings[rating.CreatorID] = clone(rating)
	return nil
}

func (r *CreatorRepository) Rating(creatorID string) (*entity.CreatorRating, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rating, ok := r.ratings[creatorID]
	if !ok {
		return nil, false
	}
	return clone(rating), true
}

var (
	_ repository.ProjectRequestRepository     = (*ProjectRequestRepository)(nil)
	_ repository.NegotiationMessageRepository = (*NegotiationMessageRepository)(nil)
	_ repository.BookingRepository            = (*BookingRepository)(nil)
	_ repository.ReviewRepository             = (*ReviewRepository)(nil)
	_ repository.CreatorRepository            = (*CreatorRepository)(nil)
)
