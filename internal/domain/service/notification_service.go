package service

import (
	"bytes"
	"context"
	"text/template"

	"visionmatch/pkg/errors"
	"visionmatch/pkg/logger"
)

const (
	subjectSignup          = "Welcome to VisionMatch 🎉 | Signup Successful"
	subjectBookingClient   = "📸 Booking Request Sent | VisionMatch"
	subjectBookingCreator  = "🎉 New Booking Request | VisionMatch"
	subjectBookingAccepted = "Booking Accepted | VisionMatch"
	subjectBookingDeclined = "Booking Update | VisionMatch"
	subjectPaymentReceipt  = "💰 Payment Successful | VisionMatch"
)

// Mailer delivers one plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type NewBookingEmail struct {
	ClientEmail   string `json:"client_email" validate:"required,email"`
	ClientName    string `json:"client_name" validate:"required"`
	CreatorEmail  string `json:"creator_email" validate:"required,email"`
	CreatorName   string `json:"creator_name" validate:"required"`
	ServiceType   string `json:"service_type,omitempty"`
	EventDate     string `json:"event_date,omitempty"`
	Location      string `json:"location,omitempty"`
	PackageName   string `json:"package_name,omitempty"`
	PackagePrice  string `json:"package_price,omitempty"`
	BookingID     string `json:"booking_id" validate:"required"`
	ClientMessage string `json:"client_message,omitempty"`
}

type BookingAcceptedEmail struct {
	ClientEmail string `json:"client_email" validate:"required,email"`
	ClientName  string `json:"client_name" validate:"required"`
	CreatorName string `json:"creator_name" validate:"required"`
	ServiceType string `json:"service_type,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
	Location    string `json:"location,omitempty"`
	FinalPrice  string `json:"final_price,omitempty"`
	BookingID   string `json:"booking_id" validate:"required"`
}

type BookingDeclinedEmail struct {
	ClientEmail    string `json:"client_email" validate:"required,email"`
	ClientName     string `json:"client_name" validate:"required"`
	CreatorName    string `json:"creator_name" validate:"required"`
	BookingID      string `json:"booking_id" validate:"required"`
	DeclineMessage string `json:"decline_message,omitempty"`
}

type PaymentReceiptEmail struct {
	ClientEmail   string `json:"client_email" validate:"required,email"`
	ClientName    string `json:"client_name" validate:"required"`
	CreatorName   string `json:"creator_name" validate:"required"`
	ServiceType   string `json:"service_type,omitempty"`
	EventDate     string `json:"event_date,omitempty"`
	Location      string `json:"location,omitempty"`
	BookingID     string `json:"booking_id" validate:"required"`
	TotalAmount   string `json:"total_amount,omitempty"`
	PlatformFee   string `json:"platform_fee,omitempty"`
	GST           string `json:"gst,omitempty"`
	FinalAmount   string `json:"final_amount,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// NotificationService renders the transactional templates and hands them to
// the Mailer. Delivery is attempted once; there is no retry or queue.
type NotificationService struct {
	mailer Mailer
}

func NewNotificationService(mailer Mailer) *NotificationService {
	return &NotificationService{
		mailer: mailer,
	}
}

func (s *NotificationService) SendSignupSuccess(ctx context.Context, email string) error {
	return s.send(ctx, email, subjectSignup, signupTemplate, nil, "Failed to send signup success email")
}

// SendNewBooking notifies the client first and then the creator. A failure on
// the client email stops before the creator is contacted.
func (s *NotificationService) SendNewBooking(ctx context.Context, data NewBookingEmail) error {
	if err := s.send(ctx, data.ClientEmail, subjectBookingClient, bookingClientTemplate, data, "Failed to send booking emails"); err != nil {
		return err
	}
	return s.send(ctx, data.CreatorEmail, subjectBookingCreator, bookingCreatorTemplate, data, "Failed to send booking emails")
}

func (s *NotificationService) SendBookingAccepted(ctx context.Context, data BookingAcceptedEmail) error {
	return s.send(ctx, data.ClientEmail, subjectBookingAccepted, bookingAcceptedTemplate, data, "Failed to send booking accepted email")
}

func (s *NotificationService) SendBookingDeclined(ctx context.Context, data BookingDeclinedEmail) error {
	return s.send(ctx, data.ClientEmail, subjectBookingDeclined, bookingDeclinedTemplate, data, "Failed to send booking declined email")
}

func (s *NotificationService) SendPaymentReceipt(ctx context.Context, data PaymentReceiptEmail) error {
	return s.send(ctx, data.ClientEmail, subjectPaymentReceipt, paymentReceiptTemplate, data, "Failed to send payment success email")
}

func (s *NotificationService) send(ctx context.Context, to, subject string, tmpl *template.Template, data interface{}, failure string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Internal("Failed to render email", err)
	}

	if err := s.mailer.Send(ctx, to, subject, body.String()); err != nil {
		logger.Error("Email %q to %s failed: %v", subject, to, err)
		return errors.SendFailed(failure, err)
	}

	logger.Info("Email %q sent to %s", subject, to)
	return nil
}
