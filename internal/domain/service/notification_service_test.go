package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "visionmatch/pkg/errors"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func TestSendNewBookingNotifiesClientThenCreator(t *testing.T) {
	mailer := new(MockMailer)
	var bodies []string
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { bodies = append(bodies, args.String(3)) }).
		Return(nil)

	svc := NewNotificationService(mailer)
	err := svc.SendNewBooking(context.Background(), NewBookingEmail{
		ClientEmail:   "client@example.com",
		ClientName:    "Asha",
		CreatorEmail:  "creator@example.com",
		CreatorName:   "Ravi",
		BookingID:     "req_1234abcd",
		PackagePrice:  "₹10,000",
		ClientMessage: "Sunset shoot please",
	})
	require.NoError(t, err)

	require.Len(t, mailer.Calls, 2)
	assert.Equal(t, "client@example.com", mailer.Calls[0].Arguments.String(1))
	assert.Equal(t, subjectBookingClient, mailer.Calls[0].Arguments.String(2))
	assert.Equal(t, "creator@example.com", mailer.Calls[1].Arguments.String(1))
	assert.Equal(t, subjectBookingCreator, mailer.Calls[1].Arguments.String(2))

	assert.Contains(t, bodies[0], "Hello Asha,")
	assert.Contains(t, bodies[0], "Price: ₹10,000")
	assert.Contains(t, bodies[0], "Service: Photography/Videography")
	assert.Contains(t, bodies[0], "Event Date: To be confirmed")
	assert.Contains(t, bodies[1], `"Sunset shoot please"`)
}

func TestSendNewBookingStopsWhenClientEmailFails(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "client@example.com", mock.Anything, mock.Anything).
		Return(errors.New("connection refused"))

	svc := NewNotificationService(mailer)
	err := svc.SendNewBooking(context.Background(), NewBookingEmail{
		ClientEmail:  "client@example.com",
		CreatorEmail: "creator@example.com",
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "EMAIL_SEND_FAILED"))
	mailer.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendBookingDeclinedOmitsEmptyMessage(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "client@example.com", subjectBookingDeclined, mock.MatchedBy(func(body string) bool {
		return !strings.Contains(body, "Creator's Message") &&
			strings.Contains(body, "Booking ID: req_1")
	})).Return(nil)

	svc := NewNotificationService(mailer)
	err := svc.SendBookingDeclined(context.Background(), BookingDeclinedEmail{
		ClientEmail: "client@example.com",
		ClientName:  "Asha",
		CreatorName: "Ravi",
		BookingID:   "req_1",
	})

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestSendPaymentReceiptPlaceholders(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "client@example.com", subjectPaymentReceipt, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Transaction ID: N/A") &&
			strings.Contains(body, "Total Paid: ₹12,980") &&
			strings.Contains(body, "held in escrow")
	})).Return(nil)

	svc := NewNotificationService(mailer)
	err := svc.SendPaymentReceipt(context.Background(), PaymentReceiptEmail{
		ClientEmail: "client@example.com",
		ClientName:  "Asha",
		CreatorName: "Ravi",
		BookingID:   "bk_1",
		FinalAmount: "₹12,980",
	})

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestSendSignupSuccess(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "new@example.com", subjectSignup, mock.MatchedBy(func(body string) bool {
		return strings.Contains(body, "Welcome to VisionMatch!")
	})).Return(nil)

	require.NoError(t, NewNotificationService(mailer).SendSignupSuccess(context.Background(), "new@example.com"))
	mailer.AssertExpectations(t)
}
