package entity

// CreatorRating is the denormalized aggregate kept on creators/{id}.
type CreatorRating struct {
	CreatorID   string  `json:"creatorId" firestore:"-"`
	Rating      float64 `json:"rating" firestore:"rating"`
	ReviewCount int     `json:"reviewCount" firestore:"reviewCount"`
}
