package service

import (
	"strconv"

	"visionmatch/internal/domain/entity"
)

// AggregateRating recomputes a creator's rating from every review they have:
// the arithmetic mean of overallRating rounded to one decimal, ties to even.
func AggregateRating(creatorID string, reviews []*entity.Review) *entity.CreatorRating {
	rating := &entity.CreatorRating{CreatorID: creatorID, ReviewCount: len(reviews)}
	if len(reviews) == 0 {
		return rating
	}

	total := 0
	for _, r := range reviews {
		total += r.OverallRating
	}
	avg := float64(total) / float64(len(reviews))
	rating.Rating = roundTenths(avg)
	return rating
}

// roundTenths rounds the exact binary value of v, so 4.25 gives 4.2 and
// 4.35 (stored just below) gives 4.3.
func roundTenths(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return rounded
}
