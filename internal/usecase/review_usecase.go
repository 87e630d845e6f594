package usecase

import (
	"context"
	"sort"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/internal/domain/service"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/logger"
	"visionmatch/pkg/utils"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	bookingRepo repository.BookingRepository
	creatorRepo repository.CreatorRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	bookingRepo repository.BookingRepository,
	creatorRepo repository.CreatorRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		creatorRepo: creatorRepo,
	}
}

type CreateReviewInput struct {
	BookingID     string
	ClientID      string
	CreatorID     string
	OverallRating int
	Aspects       map[string]int
	Review        string
	Recommend     bool
	SelectedTags  []string
	SharePublicly bool
}

// CreateReview stores the client's review of a booking, links it back to the
// booking and refreshes the creator's rating.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.Reviewed || booking.ReviewID != "" {
		return nil, errors.Conflict("Booking has already been reviewed")
	}

	aspects := input.Aspects
	if aspects == nil {
		aspects = map[string]int{}
	}

	review := &entity.Review{
		ID:            utils.ShortID("rev"),
		BookingID:     input.BookingID,
		ClientID:      input.ClientID,
		CreatorID:     input.CreatorID,
		OverallRating: input.OverallRating,
		Aspects:       aspects,
		Review:        input.Review,
		Recommend:     input.Recommend,
		SelectedTags:  nonNil(input.SelectedTags),
		SharePublicly: input.SharePublicly,
		CreatedAt:     utils.NowMillis(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uc.bookingRepo.Update(ctx, booking.ID, repository.Fields{
		"reviewId":  review.ID,
		"reviewed":  true,
		"updatedAt": utils.NowMillis(),
	}); err != nil {
		return nil, err
	}

	if err := uc.refreshCreatorRating(ctx, review.CreatorID); err != nil {
		logger.Error("Failed to update rating for creator %s: %v", review.CreatorID, err)
	}

	logger.Info("Review %s created for booking %s", review.ID, booking.ID)
	return review, nil
}

func (uc *ReviewUseCase) GetReview(ctx context.Context, id string) (*entity.Review, error) {
	return uc.reviewRepo.GetByID(ctx, id)
}

// ListCreatorReviews returns a creator's reviews, newest first.
func (uc *ReviewUseCase) ListCreatorReviews(ctx context.Context, creatorID string) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt > reviews[j].CreatedAt
	})
	return reviews, nil
}

// CheckReviewStatus resolves the booking for a request id, or treats the id
// as a booking id, and reports whether it carries a review. A missing booking
// is not an error.
func (uc *ReviewUseCase) CheckReviewStatus(ctx context.Context, requestID string) (*entity.ReviewStatus, error) {
	booking, err := uc.bookingRepo.GetByRequestID(ctx, requestID)
	if errors.IsNotFound(err) {
		booking, err = uc.bookingRepo.GetByID(ctx, requestID)
	}
	if errors.IsNotFound(err) {
		return &entity.ReviewStatus{HasReview: false, Message: "No booking found for this request"}, nil
	}
	if err != nil {
		return nil, err
	}

	status := &entity.ReviewStatus{BookingID: booking.ID, ReviewID: booking.ReviewID}
	if !booking.Reviewed || booking.ReviewID == "" {
		return status, nil
	}

	review, err := uc.reviewRepo.GetByID(ctx, booking.ReviewID)
	if errors.IsNotFound(err) {
		logger.Warn("Booking %s references missing review %s", booking.ID, booking.ReviewID)
		return status, nil
	}
	if err != nil {
		return nil, err
	}

	status.HasReview = true
	status.Review = review
	return status, nil
}

func (uc *ReviewUseCase) refreshCreatorRating(ctx context.Context, creatorID string) error {
	reviews, err := uc.reviewRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return err
	}
	return uc.creatorRepo.SaveRating(ctx, service.AggregateRating(creatorID, reviews))
}
