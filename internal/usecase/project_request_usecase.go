package usecase

import (
	"context"
	"io"
	"net/http"
	"sort"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/internal/domain/service"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/logger"
	"visionmatch/pkg/utils"
)

const (
	ActionAccept    = "accept"
	ActionDecline   = "decline"
	ActionNegotiate = "negotiate"
)

// ReferenceImageStore uploads an image for a request and returns its public URL.
type ReferenceImageStore interface {
	UploadReferenceImage(ctx context.Context, requestID, contentType string, file io.Reader) (string, error)
}

type ProjectRequestUseCase struct {
	requestRepo repository.ProjectRequestRepository
	creatorRepo repository.CreatorRepository
	images      ReferenceImageStore
}

func NewProjectRequestUseCase(
	requestRepo repository.ProjectRequestRepository,
	creatorRepo repository.CreatorRepository,
	images ReferenceImageStore,
) *ProjectRequestUseCase {
	return &ProjectRequestUseCase{
		requestRepo: requestRepo,
		creatorRepo: creatorRepo,
		images:      images,
	}
}

type CreateRequestInput struct {
	ClientID              string
	CreatorID             string
	Package               entity.Package
	IsInquiry             bool
	ServiceType           string
	Category              string
	EventDate             string
	Duration              interface{}
	Location              string
	Budget                string
	SelectedStyles        []string
	StyleNotes            string
	PinterestLink         string
	ReferenceImages       []entity.ReferenceImage
	Message               string
	CreatorName           string
	CreatorSpecialisation string
}

type RespondInput struct {
	Action  string
	Message string
}

type RespondResult struct {
	Status     string        `json:"status"`
	FinalOffer *entity.Offer `json:"finalOffer,omitempty"`
}

func (uc *ProjectRequestUseCase) CreateRequest(ctx context.Context, input CreateRequestInput) (*entity.ProjectRequest, error) {
	pkg := input.Package
	if pkg.Name == "" {
		pkg.Name = entity.DefaultPackageName
	}
	if isBlankPrice(pkg.Price) {
		pkg.Price = entity.DefaultPackagePrice
	}

	now := utils.NowMillis()
	request := &entity.ProjectRequest{
		ID:                    utils.ShortID("req"),
		ClientID:              input.ClientID,
		CreatorID:             input.CreatorID,
		Package:               pkg,
		IsInquiry:             input.IsInquiry,
		ServiceType:           input.ServiceType,
		Category:              input.Category,
		EventDate:             input.EventDate,
		Duration:              input.Duration,
		Location:              input.Location,
		Budget:                input.Budget,
		CreatorStartingPrice:  uc.startingPrice(ctx, input.CreatorID),
		SelectedStyles:        nonNil(input.SelectedStyles),
		StyleNotes:            input.StyleNotes,
		PinterestLink:         input.PinterestLink,
		ReferenceImages:       nonNil(input.ReferenceImages),
		Message:               input.Message,
		CreatorName:           input.CreatorName,
		CreatorSpecialisation: input.CreatorSpecialisation,
		Status:                entity.RequestStatusPendingCreator,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	logger.Info("Project request %s created for creator %s", request.ID, request.CreatorID)
	return request, nil
}

func (uc *ProjectRequestUseCase) GetRequest(ctx context.Context, id string) (*entity.ProjectRequest, error) {
	return uc.requestRepo.GetByID(ctx, id)
}

func (uc *ProjectRequestUseCase) ListClientRequests(ctx context.Context, clientID string) ([]*entity.ProjectRequest, error) {
	return uc.requestRepo.ListByClient(ctx, clientID)
}

// ListCreatorRequests returns the creator's inbox, newest first.
func (uc *ProjectRequestUseCase) ListCreatorRequests(ctx context.Context, creatorID string) ([]*entity.ProjectRequest, error) {
	requests, err := uc.requestRepo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})
	return requests, nil
}

// Respond records the creator's answer. Only an accept sets finalOffer.
func (uc *ProjectRequestUseCase) Respond(ctx context.Context, id string, input RespondInput) (*RespondResult, error) {
	request, err := uc.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var status string
	switch input.Action {
	case ActionAccept:
		status = entity.RequestStatusAccepted
	case ActionDecline:
		status = entity.RequestStatusDeclined
	case ActionNegotiate:
		status = entity.RequestStatusNegotiationProposed
	default:
		return nil, errors.BadRequest("Invalid action", nil)
	}

	fields := repository.Fields{
		"status":          status,
		"creator_message": input.Message,
		"updatedAt":       utils.NowMillis(),
	}

	result := &RespondResult{Status: status}
	if input.Action == ActionAccept {
		result.FinalOffer = service.ResolveFinalOffer(request, func() float64 {
			return uc.basePrice(ctx, request)
		})
		if result.FinalOffer != nil {
			fields["finalOffer"] = result.FinalOffer
		} else {
			logger.Warn("Request %s accepted without a resolvable price", id)
		}
	}

	if err := uc.requestRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	logger.Info("Creator responded %s to request %s", input.Action, id)
	return result, nil
}

// AddReferenceImage stores an uploaded image and appends it to the request.
func (uc *ProjectRequestUseCase) AddReferenceImage(ctx context.Context, id, name, contentType string, file io.Reader) (*entity.ReferenceImage, error) {
	if uc.images == nil {
		return nil, errors.New("STORAGE_DISABLED", "Reference image storage is not configured", http.StatusServiceUnavailable, nil)
	}

	if _, err := uc.requestRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	url, err := uc.images.UploadReferenceImage(ctx, id, contentType, file)
	if err != nil {
		return nil, errors.Internal("Failed to upload reference image", err)
	}

	image := entity.ReferenceImage{
		ID:   utils.ShortID("img"),
		Name: name,
		URL:  url,
	}
	if err := uc.requestRepo.AddReferenceImage(ctx, id, image); err != nil {
		return nil, err
	}
	return &image, nil
}

// startingPrice snapshots the creator's base price; lookup failures yield 0.
func (uc *ProjectRequestUseCase) startingPrice(ctx context.Context, creatorID string) float64 {
	price, err := uc.creatorRepo.GetStartingPrice(ctx, creatorID)
	if err != nil {
		logger.Warn("Could not fetch starting price for creator %s: %v", creatorID, err)
		return 0
	}
	return price
}

// basePrice prefers the creator's current price over the snapshot on the request.
func (uc *ProjectRequestUseCase) basePrice(ctx context.Context, request *entity.ProjectRequest) float64 {
	if price := uc.startingPrice(ctx, request.CreatorID); price > 0 {
		return price
	}
	return request.CreatorStartingPrice
}

func isBlankPrice(price interface{}) bool {
	switch v := price.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
