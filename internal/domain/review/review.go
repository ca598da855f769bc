package review

import (
	"math"

	"github.com/UpServices02/service-booking/internal/httperr"
)

// ===============================
// Rating
// ===============================

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// ValidateRating aceita notas de 0 a 5 em passos de 0.5
func ValidateRating(r float64) error {
	if r < MinRating || r > MaxRating {
		return httperr.ErrBusiness("invalid_rating")
	}

	steps := r * 2
	if math.Abs(steps-math.Round(steps)) > 1e-9 {
		return httperr.ErrBusiness("invalid_rating")
	}
	return nil
}
