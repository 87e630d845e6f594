package entity

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusDisputed  = "disputed"
)

const (
	EscrowHeld     = "held"
	EscrowReleased = "released"
)

// Booking is created once the client's escrow payment for an accepted request is confirmed.
type Booking struct {
	ID        string `json:"id" firestore:"id"`
	RequestID string `json:"requestId" firestore:"requestId"`
	ClientID  string `json:"clientId" firestore:"clientId"`
	CreatorID string `json:"creatorId" firestore:"creatorId"`

	ServiceType string `json:"serviceType,omitempty" firestore:"serviceType,omitempty"`
	EventDate   string `json:"eventDate,omitempty" firestore:"eventDate,omitempty"`
	Location    string `json:"location,omitempty" firestore:"location,omitempty"`

	Status       string `json:"status" firestore:"status"`
	EscrowStatus string `json:"escrowStatus" firestore:"escrowStatus"`

	Amount        float64 `json:"amount" firestore:"amount"`
	PlatformFee   float64 `json:"platformFee" firestore:"platformFee"`
	GST           float64 `json:"gst" firestore:"gst"`
	TotalAmount   float64 `json:"totalAmount" firestore:"totalAmount"`
	TransactionID string  `json:"transactionId,omitempty" firestore:"transactionId,omitempty"`

	ReviewID string `json:"reviewId,omitempty" firestore:"reviewId,omitempty"`
	Reviewed bool   `json:"reviewed" firestore:"reviewed"`

	DisputeReason    string `json:"disputeReason,omitempty" firestore:"disputeReason,omitempty"`
	DisputedAt       int64  `json:"disputedAt,omitempty" firestore:"disputedAt,omitempty"`
	EventConfirmedAt int64  `json:"eventConfirmedAt,omitempty" firestore:"eventConfirmedAt,omitempty"`

	CreatedAt int64 `json:"createdAt" firestore:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" firestore:"updatedAt"`
}
