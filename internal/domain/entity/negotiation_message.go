package entity

const (
	SenderClient  = "client"
	SenderCreator = "creator"
)

const (
	MessageTypeText     = "text"
	MessageTypeOffer    = "offer"
	MessageTypeCounter  = "counter"
	MessageTypeAccepted = "accepted"
)

const MessageStatusSent = "sent"

// NegotiationMessage lives in ProjectMessages/{requestId}/messages and is never edited.
type NegotiationMessage struct {
	ID           string   `json:"id" firestore:"id"`
	RequestID    string   `json:"requestId,omitempty" firestore:"-"`
	Sender       string   `json:"sender" firestore:"sender"`
	SenderID     string   `json:"senderId" firestore:"senderId"`
	Message      string   `json:"message" firestore:"message"`
	Type         string   `json:"type" firestore:"type"`
	Price        *float64 `json:"price,omitempty" firestore:"price,omitempty"`
	Deliverables string   `json:"deliverables,omitempty" firestore:"deliverables,omitempty"`
	Timestamp    int64    `json:"timestamp" firestore:"timestamp"`
	Status       string   `json:"status" firestore:"status"`
}

// IsOffer reports whether the message replaces the request's current offer.
func (m *NegotiationMessage) IsOffer() bool {
	return m.Type == MessageTypeOffer || m.Type == MessageTypeCounter
}
