package handler

import (
	"github.com/labstack/echo/v4"

	"visionmatch/internal/usecase"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	BookingID     string         `json:"bookingId" validate:"required"`
	ClientID      string         `json:"clientId" validate:"required"`
	CreatorID     string         `json:"creatorId" validate:"required"`
	OverallRating int            `json:"overallRating" validate:"required,min=1,max=5"`
	Aspects       map[string]int `json:"aspects" validate:"omitempty,dive,min=1,max=5"`
	Review        string         `json:"review"`
	Recommend     bool           `json:"recommend"`
	SelectedTags  []string       `json:"selectedTags"`
	SharePublicly bool           `json:"sharePublicly"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		BookingID:     req.BookingID,
		ClientID:      req.ClientID,
		CreatorID:     req.CreatorID,
		OverallRating: req.OverallRating,
		Aspects:       req.Aspects,
		Review:        req.Review,
		Recommend:     req.Recommend,
		SelectedTags:  req.SelectedTags,
		SharePublicly: req.SharePublicly,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"reviewId": review.ID})
}

func (h *ReviewHandler) ListCreatorReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListCreatorReviews(c.Request().Context(), c.Param("creatorId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, reviews, len(reviews))
}

func (h *ReviewHandler) CheckReviewStatus(c echo.Context) error {
	status, err := h.reviewUseCase.CheckReviewStatus(c.Request().Context(), c.Param("requestId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, status)
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	review, err := h.reviewUseCase.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}
