package usecase

import (
	"context"
	"fmt"

	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/repository"
	"visionmatch/internal/domain/service"
	"visionmatch/pkg/errors"
	"visionmatch/pkg/logger"
	"visionmatch/pkg/utils"
)

// ReceiptSender mails the payment receipt after escrow is funded.
type ReceiptSender interface {
	SendPaymentReceipt(ctx context.Context, data service.PaymentReceiptEmail) error
}

type BookingUseCase struct {
	bookingRepo repository.BookingRepository
	requestRepo repository.ProjectRequestRepository
	receipts    ReceiptSender
}

func NewBookingUseCase(
	bookingRepo repository.BookingRepository,
	requestRepo repository.ProjectRequestRepository,
	receipts ReceiptSender,
) *BookingUseCase {
	return &BookingUseCase{
		bookingRepo: bookingRepo,
		requestRepo: requestRepo,
		receipts:    receipts,
	}
}

type ConfirmPaymentInput struct {
	RequestID     string
	TransactionID string
	ClientEmail   string
	ClientName    string
	CreatorName   string
}

type ConfirmEventInput struct {
	Confirmed bool
	Reason    string
}

// ConfirmPayment books an accepted request once the client has paid into
// escrow. The receipt email is best effort.
func (uc *BookingUseCase) ConfirmPayment(ctx context.Context, input ConfirmPaymentInput) (*entity.Booking, error) {
	request, err := uc.requestRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.RequestStatusAccepted || request.FinalOffer == nil {
		return nil, errors.BadRequest("Request has not been accepted with a final price", nil)
	}

	if _, err := uc.bookingRepo.GetByRequestID(ctx, request.ID); err == nil {
		return nil, errors.Conflict("Payment already confirmed for this request")
	} else if !errors.IsNotFound(err) {
		return nil, err
	}

	escrow := service.CalculateEscrow(request.FinalOffer.Price)
	now := utils.NowMillis()
	booking := &entity.Booking{
		ID:            utils.ShortID("bk"),
		RequestID:     request.ID,
		ClientID:      request.ClientID,
		CreatorID:     request.CreatorID,
		ServiceType:   request.ServiceType,
		EventDate:     request.EventDate,
		Location:      request.Location,
		Status:        entity.BookingStatusConfirmed,
		EscrowStatus:  entity.EscrowHeld,
		Amount:        escrow.Amount,
		PlatformFee:   escrow.PlatformFee,
		GST:           escrow.GST,
		TotalAmount:   escrow.Total,
		TransactionID: input.TransactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	logger.Info("Booking %s created for request %s, %s held in escrow", booking.ID, request.ID, formatAmount(booking.TotalAmount))

	if input.ClientEmail != "" && uc.receipts != nil {
		creatorName := input.CreatorName
		if creatorName == "" {
			creatorName = request.CreatorName
		}
		receipt := service.PaymentReceiptEmail{
			ClientEmail:   input.ClientEmail,
			ClientName:    input.ClientName,
			CreatorName:   creatorName,
			ServiceType:   booking.ServiceType,
			EventDate:     booking.EventDate,
			Location:      booking.Location,
			BookingID:     booking.ID,
			TotalAmount:   formatAmount(booking.Amount),
			PlatformFee:   formatAmount(booking.PlatformFee),
			GST:           formatAmount(booking.GST),
			FinalAmount:   formatAmount(booking.TotalAmount),
			TransactionID: booking.TransactionID,
		}
		if err := uc.receipts.SendPaymentReceipt(ctx, receipt); err != nil {
			logger.Warn("Payment receipt for booking %s not sent: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (uc *BookingUseCase) GetBooking(ctx context.Context, id string) (*entity.Booking, error) {
	return uc.bookingRepo.GetByID(ctx, id)
}

func (uc *BookingUseCase) ListClientBookings(ctx context.Context, clientID string) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListByClient(ctx, clientID)
}

func (uc *BookingUseCase) ListCreatorBookings(ctx context.Context, creatorID string) ([]*entity.Booking, error) {
	return uc.bookingRepo.ListByCreator(ctx, creatorID)
}

// ConfirmEvent releases escrow when the client confirms the event took place,
// otherwise marks the booking disputed and keeps the funds held.
func (uc *BookingUseCase) ConfirmEvent(ctx context.Context, id string, input ConfirmEventInput) (string, error) {
	if _, err := uc.bookingRepo.GetByID(ctx, id); err != nil {
		return "", err
	}

	now := utils.NowMillis()
	fields := repository.Fields{"updatedAt": now}
	status := entity.BookingStatusCompleted
	if input.Confirmed {
		fields["status"] = status
		fields["escrowStatus"] = entity.EscrowReleased
		fields["eventConfirmedAt"] = now
	} else {
		status = entity.BookingStatusDisputed
		fields["status"] = status
		fields["escrowStatus"] = entity.EscrowHeld
		fields["disputeReason"] = input.Reason
		fields["disputedAt"] = now
	}

	if err := uc.bookingRepo.Update(ctx, id, fields); err != nil {
		return "", err
	}

	logger.Info("Booking %s marked %s", id, status)
	return status, nil
}

// formatAmount renders whole rupees with Indian digit grouping, e.g. ₹1,29,800.
func formatAmount(amount float64) string {
	n := int64(amount + 0.5)
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return "₹" + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	grouped := ""
	for len(head) > 2 {
		grouped = "," + head[len(head)-2:] + grouped
		head = head[:len(head)-2]
	}
	return "₹" + head + grouped + "," + tail
}
