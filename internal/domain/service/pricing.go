package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"visionmatch/internal/domain/entity"
)

const (
	PlatformFeeRate = 0.10
	GSTRate         = 0.18
)

var digitRun = regexp.MustCompile(`\d+`)

// ParsePackagePrice converts a stored package price to a number. Numbers are
// taken as-is; text yields its first run of digits once thousands separators
// are removed, so "₹10,000" becomes 10000. Anything else yields 0.
func ParsePackagePrice(price interface{}) float64 {
	switch v := price.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		match := digitRun.FindString(strings.ReplaceAll(v, ",", ""))
		if match == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// ResolveFinalOffer picks the accepted price for a request: the negotiated
// offer, then the package price, then the creator's base price. basePrice is
// only called when the first two are missing. Returns nil when no positive
// price exists.
func ResolveFinalOffer(request *entity.ProjectRequest, basePrice func() float64) *entity.Offer {
	if offer := request.CurrentOffer; offer != nil && offer.Price > 0 {
		deliverables := offer.Deliverables
		if deliverables == "" {
			deliverables = entity.DefaultDeliverables
		}
		return &entity.Offer{Price: offer.Price, Deliverables: deliverables}
	}

	price := ParsePackagePrice(request.Package.Price)
	if price <= 0 && basePrice != nil {
		price = basePrice()
	}
	if price <= 0 {
		return nil
	}

	return &entity.Offer{Price: price, Deliverables: entity.DefaultDeliverables}
}

// EscrowBreakdown is what the client pays into escrow for a booking.
type EscrowBreakdown struct {
	Amount      float64 `json:"amount"`
	PlatformFee float64 `json:"platformFee"`
	GST         float64 `json:"gst"`
	Total       float64 `json:"totalAmount"`
}

// CalculateEscrow applies the platform fee on the agreed amount and GST on
// amount plus fee, each rounded to whole currency units.
func CalculateEscrow(amount float64) EscrowBreakdown {
	fee := math.Round(amount * PlatformFeeRate)
	gst := math.Round((amount + fee) * GSTRate)
	return EscrowBreakdown{
		Amount:      amount,
		PlatformFee: fee,
		GST:         gst,
		Total:       amount + fee + gst,
	}
}
