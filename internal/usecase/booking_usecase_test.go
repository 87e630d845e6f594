package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"visionmatch/internal/adapter/repository/memory"
	"visionmatch/internal/domain/entity"
	"visionmatch/internal/domain/service"
	"visionmatch/pkg/errors"
)

type MockReceiptSender struct {
	mock.Mock
}

func (m *MockReceiptSender) SendPaymentReceipt(ctx context.Context, data service.PaymentReceiptEmail) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func newBookingFixture(t *testing.T) (*BookingUseCase, *memory.BookingRepository, *memory.ProjectRequestRepository, *MockReceiptSender) {
	t.Helper()
	bookings := memory.NewBookingRepository()
	requests := memory.NewProjectRequestRepository()
	receipts := &MockReceiptSender{}
	return NewBookingUseCase(bookings, requests, receipts), bookings, requests, receipts
}

func acceptedRequest(id string, amount float64) *entity.ProjectRequest {
	return &entity.ProjectRequest{
		ID:          id,
		ClientID:    "client-1",
		CreatorID:   "creator-1",
		CreatorName: "Rhea Lens",
		ServiceType: "Wedding Photography",
		EventDate:   "2026-12-12",
		Location:    "Jaipur",
		Status:      entity.RequestStatusAccepted,
		FinalOffer:  &entity.Offer{Price: amount, Deliverables: "As discussed"},
	}
}

func TestConfirmPaymentCreatesHeldBooking(t *testing.T) {
	uc, bookings, requests, receipts := newBookingFixture(t)
	seedRequest(t, requests, acceptedRequest("req_pay00001", 10000))

	receipts.On("SendPaymentReceipt", mock.Anything, mock.MatchedBy(func(data service.PaymentReceiptEmail) bool {
		return data.ClientEmail == "asha@example.com" &&
			data.CreatorName == "Rhea Lens" &&
			data.TotalAmount == "₹10,000" &&
			data.PlatformFee == "₹1,000" &&
			data.GST == "₹1,980" &&
			data.FinalAmount == "₹12,980"
	})).Return(nil).Once()

	booking, err := uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{
		RequestID:     "req_pay00001",
		TransactionID: "pay_123",
		ClientEmail:   "asha@example.com",
		ClientName:    "Asha",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^bk_[0-9a-f]{8}$`, booking.ID)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, entity.EscrowHeld, booking.EscrowStatus)
	assert.Equal(t, float64(10000), booking.Amount)
	assert.Equal(t, float64(1000), booking.PlatformFee)
	assert.Equal(t, float64(1980), booking.GST)
	assert.Equal(t, float64(12980), booking.TotalAmount)
	assert.Equal(t, "client-1", booking.ClientID)
	assert.Equal(t, "creator-1", booking.CreatorID)

	stored, err := bookings.GetByRequestID(context.Background(), "req_pay00001")
	require.NoError(t, err)
	assert.Equal(t, booking.ID, stored.ID)

	receipts.AssertExpectations(t)
}

func TestConfirmPaymentSurvivesReceiptFailure(t *testing.T) {
	uc, _, requests, receipts := newBookingFixture(t)
	seedRequest(t, requests, acceptedRequest("req_pay00002", 5000))
	receipts.On("SendPaymentReceipt", mock.Anything, mock.Anything).Return(errors.SendFailed("Failed to send payment success email", nil))

	booking, err := uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{
		RequestID:   "req_pay00002",
		ClientEmail: "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EscrowHeld, booking.EscrowStatus)
}

func TestConfirmPaymentWithoutEmailSkipsReceipt(t *testing.T) {
	uc, _, requests, receipts := newBookingFixture(t)
	seedRequest(t, requests, acceptedRequest("req_pay00003", 5000))

	_, err := uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{RequestID: "req_pay00003"})
	require.NoError(t, err)
	receipts.AssertNotCalled(t, "SendPaymentReceipt", mock.Anything, mock.Anything)
}

func TestConfirmPaymentRejections(t *testing.T) {
	uc, _, requests, _ := newBookingFixture(t)

	pending := acceptedRequest("req_pay00004", 5000)
	pending.Status = entity.RequestStatusNegotiating
	seedRequest(t, requests, pending)

	noOffer := acceptedRequest("req_pay00005", 0)
	noOffer.FinalOffer = nil
	seedRequest(t, requests, noOffer)

	seedRequest(t, requests, acceptedRequest("req_pay00006", 5000))

	_, err := uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{RequestID: "req_missing0"})
	assert.True(t, errors.IsNotFound(err))

	_, err = uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{RequestID: "req_pay00004"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{RequestID: "req_pay00005"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{RequestID: "req_pay00006"})
	require.NoError(t, err)
	_, err = uc.ConfirmPayment(context.Background(), ConfirmPaymentInput{RequestID: "req_pay00006"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestConfirmEvent(t *testing.T) {
	t.Run("confirmed releases escrow", func(t *testing.T) {
		uc, bookings, _, _ := newBookingFixture(t)
		require.NoError(t, bookings.Create(context.Background(), &entity.Booking{
			ID: "bk_00000001", Status: entity.BookingStatusConfirmed, EscrowStatus: entity.EscrowHeld,
		}))

		status, err := uc.ConfirmEvent(context.Background(), "bk_00000001", ConfirmEventInput{Confirmed: true})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCompleted, status)

		stored, err := bookings.GetByID(context.Background(), "bk_00000001")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusCompleted, stored.Status)
		assert.Equal(t, entity.EscrowReleased, stored.EscrowStatus)
		assert.NotZero(t, stored.EventConfirmedAt)
		assert.Zero(t, stored.DisputedAt)
	})

	t.Run("not confirmed disputes and keeps funds held", func(t *testing.T) {
		uc, bookings, _, _ := newBookingFixture(t)
		require.NoError(t, bookings.Create(context.Background(), &entity.Booking{
			ID: "bk_00000002", Status: entity.BookingStatusConfirmed, EscrowStatus: entity.EscrowHeld,
		}))

		status, err := uc.ConfirmEvent(context.Background(), "bk_00000002", ConfirmEventInput{Confirmed: false, Reason: "Photographer did not show up"})
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusDisputed, status)

		stored, err := bookings.GetByID(context.Background(), "bk_00000002")
		require.NoError(t, err)
		assert.Equal(t, entity.BookingStatusDisputed, stored.Status)
		assert.Equal(t, entity.EscrowHeld, stored.EscrowStatus)
		assert.Equal(t, "Photographer did not show up", stored.DisputeReason)
		assert.NotZero(t, stored.DisputedAt)
	})

	t.Run("missing booking", func(t *testing.T) {
		uc, _, _, _ := newBookingFixture(t)
		_, err := uc.ConfirmEvent(context.Background(), "bk_missing0", ConfirmEventInput{Confirmed: true})
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestListBookings(t *testing.T) {
	uc, bookings, _, _ := newBookingFixture(t)
	ctx := context.Background()
	require.NoError(t, bookings.Create(ctx, &entity.Booking{ID: "bk_1", ClientID: "client-1", CreatorID: "creator-1"}))
	require.NoError(t, bookings.Create(ctx, &entity.Booking{ID: "bk_2", ClientID: "client-1", CreatorID: "creator-2"}))
	require.NoError(t, bookings.Create(ctx, &entity.Booking{ID: "bk_3", ClientID: "client-2", CreatorID: "creator-2"}))

	byClient, err := uc.ListClientBookings(ctx, "client-1")
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	byCreator, err := uc.ListCreatorBookings(ctx, "creator-2")
	require.NoError(t, err)
	assert.Len(t, byCreator, 2)

	none, err := uc.ListClientBookings(ctx, "client-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹0", formatAmount(0))
	assert.Equal(t, "₹999", formatAmount(999))
	assert.Equal(t, "₹1,000", formatAmount(1000))
	assert.Equal(t, "₹12,980", formatAmount(12980))
	assert.Equal(t, "₹1,29,800", formatAmount(129800))
	assert.Equal(t, "₹1,00,00,000", formatAmount(10000000))
}
