package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/infrastructure/storage"
	"visionmatch/internal/usecase"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/logger"
	"visionmatch/pkg/response"
)

const maxReferenceImageSize = 5 * 1024 * 1024

type ProjectRequestHandler struct {
	requestUseCase     *usecase.ProjectRequestUseCase
	negotiationUseCase *usecase.NegotiationUseCase
}

func NewProjectRequestHandler(requestUseCase *usecase.ProjectRequestUseCase, negotiationUseCase *usecase.NegotiationUseCase) *ProjectRequestHandler {
	return &ProjectRequestHandler{
		requestUseCase:     requestUseCase,
		negotiationUseCase: negotiationUseCase,
	}
}

type createProjectRequest struct {
	ClientID              string                  `json:"clientId" validate:"required"`
	CreatorID             string                  `json:"creatorId" validate:"required"`
	PackageID             interface{}             `json:"packageId"`
	PackageName           string                  `json:"packageName"`
	PackagePrice          interface{}             `json:"packagePrice"`
	IsInquiry             bool                    `json:"isInquiry"`
	ServiceType           string                  `json:"serviceType"`
	Category              string                  `json:"category"`
	EventDate             string                  `json:"eventDate"`
	Duration              interface{}             `json:"duration"`
	Location              string                  `json:"location"`
	Budget                string                  `json:"budget"`
	SelectedStyles        []string                `json:"selectedStyles"`
	StyleNotes            string                  `json:"styleNotes"`
	PinterestLink         string                  `json:"pinterestLink"`
	ReferenceImages       []entity.ReferenceImage `json:"referenceImages"`
	Message               string                  `json:"message"`
	CreatorName           string                  `json:"creatorName"`
	CreatorSpecialisation string                  `json:"creatorSpecialisation"`
}

// scalarOrNil reports whether v decoded from a JSON string, number or null.
func scalarOrNil(v interface{}) bool {
	switch v.(type) {
	case nil, string, float64:
		return true
	default:
		return false
	}
}

type respondRequest struct {
	Action  string `json:"action" validate:"required"`
	Message string `json:"message"`
}

type sendMessageRequest struct {
	Sender       string   `json:"sender" validate:"required,oneof=client creator"`
	SenderID     string   `json:"senderId"`
	Message      string   `json:"message"`
	Type         string   `json:"type" validate:"omitempty,oneof=text offer counter accepted"`
	Price        *float64 `json:"price"`
	Deliverables string   `json:"deliverables"`
}

func (h *ProjectRequestHandler) CreateRequest(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}
	if !scalarOrNil(req.Duration) {
		return response.Error(c, errors.BadRequest("duration must be a number or string", nil))
	}
	if !scalarOrNil(req.PackageID) || !scalarOrNil(req.PackagePrice) {
		return response.Error(c, errors.BadRequest("packageId and packagePrice must be a number or string", nil))
	}

	created, err := h.requestUseCase.CreateRequest(c.Request().Context(), usecase.CreateRequestInput{
		ClientID:              req.ClientID,
		CreatorID:             req.CreatorID,
		Package: entity.Package{
			ID:    req.PackageID,
			Name:  req.PackageName,
			Price: req.PackagePrice,
		},
		IsInquiry:             req.IsInquiry,
		ServiceType:           req.ServiceType,
		Category:              req.Category,
		EventDate:             req.EventDate,
		Duration:              req.Duration,
		Location:              req.Location,
		Budget:                req.Budget,
		SelectedStyles:        req.SelectedStyles,
		StyleNotes:            req.StyleNotes,
		PinterestLink:         req.PinterestLink,
		ReferenceImages:       req.ReferenceImages,
		Message:               req.Message,
		CreatorName:           req.CreatorName,
		CreatorSpecialisation: req.CreatorSpecialisation,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{"requestId": created.ID})
}

func (h *ProjectRequestHandler) GetRequest(c echo.Context) error {
	request, err := h.requestUseCase.GetRequest(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, request)
}

func (h *ProjectRequestHandler) ListClientRequests(c echo.Context) error {
	requests, err := h.requestUseCase.ListClientRequests(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, requests, len(requests))
}

func (h *ProjectRequestHandler) ListCreatorRequests(c echo.Context) error {
	requests, err := h.requestUseCase.ListCreatorRequests(c.Request().Context(), c.Param("creatorId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, requests, len(requests))
}

func (h *ProjectRequestHandler) Respond(c echo.Context) error {
	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.requestUseCase.Respond(c.Request().Context(), c.Param("id"), usecase.RespondInput{
		Action:  req.Action,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *ProjectRequestHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.negotiationUseCase.SendMessage(c.Request().Context(), c.Param("id"), usecase.SendMessageInput{
		Sender:       req.Sender,
		SenderID:     req.SenderID,
		Message:      req.Message,
		Type:         req.Type,
		Price:        req.Price,
		Deliverables: req.Deliverables,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ProjectRequestHandler) ListMessages(c echo.Context) error {
	messages, err := h.negotiationUseCase.ListMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.List(c, messages, len(messages))
}

func (h *ProjectRequestHandler) UploadReferenceImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > maxReferenceImageSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", maxReferenceImageSize/(1024*1024)), nil))
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.IsSupportedImage(contentType) {
		return response.Error(c, errors.BadRequest("Only JPEG, PNG, GIF and WebP images are allowed", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	image, err := h.requestUseCase.AddReferenceImage(c.Request().Context(), c.Param("id"), file.Filename, contentType, src)
	if err != nil {
		return response.Error(c, err)
	}

	logger.Info("Reference image %s added to request %s", image.ID, c.Param("id"))
	return response.Created(c, image)
}
