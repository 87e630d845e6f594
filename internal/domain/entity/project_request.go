package entity

import "encoding/json"

const (
	RequestStatusPendingCreator      = "pending_creator"
	RequestStatusAccepted            = "accepted"
	RequestStatusDeclined            = "declined"
	RequestStatusNegotiating         = "negotiating"
	RequestStatusNegotiationProposed = "negotiation_proposed"
)

const (
	DefaultPackageName  = "Custom Inquiry"
	DefaultPackagePrice = "To be discussed"
	DefaultDeliverables = "As discussed"
)

// Package is the creator offering a request was made against. ID is whatever
// the client sent (string or number). Price is either a number or free text
// such as "₹10,000" or "To be discussed".
type Package struct {
	ID    interface{} `json:"id" firestore:"id"`
	Name  string      `json:"name" firestore:"name"`
	Price interface{} `json:"price" firestore:"price"`
}

// ReferenceImage is an inspiration image attached to a request.
type ReferenceImage struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
	URL  string `json:"url" firestore:"url"`
}

// UnmarshalJSON also accepts a bare URL string.
func (r *ReferenceImage) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		*r = ReferenceImage{URL: url}
		return nil
	}

	type plain ReferenceImage
	var img plain
	if err := json.Unmarshal(data, &img); err != nil {
		return err
	}
	*r = ReferenceImage(img)
	return nil
}

type Offer struct {
	Price        float64 `json:"price" firestore:"price"`
	Deliverables string  `json:"deliverables" firestore:"deliverables"`
	From         string  `json:"from,omitempty" firestore:"from,omitempty"`
}

// ProjectRequest is a client inquiry to a creator, negotiated until accepted or declined.
type ProjectRequest struct {
	ID        string  `json:"id" firestore:"id"`
	ClientID  string  `json:"clientId" firestore:"clientId"`
	CreatorID string  `json:"creatorId" firestore:"creatorId"`
	Package   Package `json:"package" firestore:"package"`
	IsInquiry bool    `json:"isInquiry" firestore:"isInquiry"`

	ServiceType string      `json:"serviceType" firestore:"serviceType"`
	Category    string      `json:"category" firestore:"category"`
	EventDate   string      `json:"eventDate" firestore:"eventDate"`
	Duration    interface{} `json:"duration" firestore:"duration"`
	Location    string      `json:"location" firestore:"location"`
	Budget      string      `json:"budget" firestore:"budget"`

	CreatorStartingPrice float64 `json:"creator_starting_price" firestore:"creator_starting_price"`

	SelectedStyles  []string         `json:"selectedStyles" firestore:"selectedStyles"`
	StyleNotes      string           `json:"styleNotes" firestore:"styleNotes"`
	PinterestLink   string           `json:"pinterestLink" firestore:"pinterestLink"`
	ReferenceImages []ReferenceImage `json:"referenceImages" firestore:"referenceImages"`

	Message               string `json:"message" firestore:"message"`
	CreatorName           string `json:"creatorName" firestore:"creatorName"`
	CreatorSpecialisation string `json:"creatorSpecialisation" firestore:"creatorSpecialisation"`

	Status         string `json:"status" firestore:"status"`
	CreatorMessage string `json:"creator_message,omitempty" firestore:"creator_message,omitempty"`
	CurrentOffer   *Offer `json:"currentOffer,omitempty" firestore:"currentOffer,omitempty"`
	FinalOffer     *Offer `json:"finalOffer,omitempty" firestore:"finalOffer,omitempty"`

	CreatedAt int64 `json:"createdAt" firestore:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" firestore:"updatedAt"`
}
