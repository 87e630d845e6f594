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

// MessagePublisher fans a stored message out to live subscribers of a request.
type MessagePublisher interface {
	Publish(room string, v interface{})
}

type NegotiationUseCase struct {
	requestRepo repository.ProjectRequestRepository
	messageRepo repository.NegotiationMessageRepository
	publisher   MessagePublisher
}

func NewNegotiationUseCase(
	requestRepo repository.ProjectRequestRepository,
	messageRepo repository.NegotiationMessageRepository,
	publisher MessagePublisher,
) *NegotiationUseCase {
	return &NegotiationUseCase{
		requestRepo: requestRepo,
		messageRepo: messageRepo,
		publisher:   publisher,
	}
}

type SendMessageInput struct {
	Sender       string
	SenderID     string
	Message      string
	Type         string
	Price        *float64
	Deliverables string
}

// SendMessage appends a message to the request thread. Offers and counters
// replace currentOffer; an accepted message fixes finalOffer.
func (uc *NegotiationUseCase) SendMessage(ctx context.Context, requestID string, input SendMessageInput) (*entity.NegotiationMessage, error) {
	if input.Type == "" {
		input.Type = entity.MessageTypeText
	}

	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	message := &entity.NegotiationMessage{
		ID:           utils.ShortID("msg"),
		RequestID:    requestID,
		Sender:       input.Sender,
		SenderID:     input.SenderID,
		Message:      input.Message,
		Type:         input.Type,
		Price:        input.Price,
		Deliverables: input.Deliverables,
		Timestamp:    utils.NowMillis(),
		Status:       entity.MessageStatusSent,
	}

	if message.IsOffer() && (input.Price == nil || *input.Price <= 0) {
		return nil, errors.BadRequest("Offer price must be greater than zero", nil)
	}

	if err := uc.messageRepo.Create(ctx, requestID, message); err != nil {
		return nil, err
	}

	if fields := offerUpdate(request, message); fields != nil {
		if err := uc.requestRepo.Update(ctx, requestID, fields); err != nil {
			return nil, err
		}
	}

	if uc.publisher != nil {
		uc.publisher.Publish(requestID, message)
	}

	logger.Debug("Message %s (%s) stored on request %s", message.ID, message.Type, requestID)
	return message, nil
}

// ListMessages returns the thread oldest first.
func (uc *NegotiationUseCase) ListMessages(ctx context.Context, requestID string) ([]*entity.NegotiationMessage, error) {
	messages, err := uc.messageRepo.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
	for _, m := range messages {
		m.RequestID = requestID
	}
	return messages, nil
}

func offerUpdate(request *entity.ProjectRequest, message *entity.NegotiationMessage) repository.Fields {
	switch {
	case message.IsOffer():
		return repository.Fields{
			"currentOffer": &entity.Offer{
				Price:        *message.Price,
				Deliverables: message.Deliverables,
				From:         message.Sender,
			},
			"status":    entity.RequestStatusNegotiating,
			"updatedAt": message.Timestamp,
		}
	case message.Type == entity.MessageTypeAccepted:
		fields := repository.Fields{
			"status":    entity.RequestStatusAccepted,
			"updatedAt": message.Timestamp,
		}
		if offer := acceptedOffer(request, message); offer != nil {
			fields["finalOffer"] = offer
		}
		return fields
	default:
		return nil
	}
}

// acceptedOffer uses the price carried by the message, falling back to the
// offer on the table when the acceptance names none.
func acceptedOffer(request *entity.ProjectRequest, message *entity.NegotiationMessage) *entity.Offer {
	if message.Price != nil && *message.Price > 0 {
		deliverables := message.Deliverables
		if deliverables == "" && request.CurrentOffer != nil {
			deliverables = request.CurrentOffer.Deliverables
		}
		if deliverables == "" {
			deliverables = entity.DefaultDeliverables
		}
		return &entity.Offer{Price: *message.Price, Deliverables: deliverables}
	}
	return service.ResolveFinalOffer(request, func() float64 { return request.CreatorStartingPrice })
}
