package entity

// Review is written once per booking by the client.
type Review struct {
	ID            string         `json:"id" firestore:"id"`
	BookingID     string         `json:"bookingId" firestore:"bookingId"`
	ClientID      string         `json:"clientId" firestore:"clientId"`
	CreatorID     string         `json:"creatorId" firestore:"creatorId"`
	OverallRating int            `json:"overallRating" firestore:"overallRating"`
	Aspects       map[string]int `json:"aspects" firestore:"aspects"`
	Review        string         `json:"review" firestore:"review"`
	Recommend     bool           `json:"recommend" firestore:"recommend"`
	SelectedTags  []string       `json:"selectedTags" firestore:"selectedTags"`
	SharePublicly bool           `json:"sharePublicly" firestore:"sharePublicly"`
	CreatedAt     int64          `json:"createdAt" firestore:"createdAt"`
}

// ReviewStatus answers whether the booking behind a request has been reviewed.
type ReviewStatus struct {
	HasReview bool    `json:"hasReview"`
	BookingID string  `json:"bookingId,omitempty"`
	ReviewID  string  `json:"reviewId,omitempty"`
	Review    *Review `json:"review,omitempty"`
	Message   string  `json:"message,omitempty"`
}
