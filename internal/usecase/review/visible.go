package review

import (
	"context"

	booking "github.com/UpServices02/service-booking/internal/domain/booking"
	domain "github.com/UpServices02/service-booking/internal/domain/review"
	"github.com/UpServices02/service-booking/internal/dto"
	"github.com/UpServices02/service-booking/internal/models"
)

type GetVisibleReviews struct {
	bookings booking.Repository
	reviews  domain.Repository
}

func NewGetVisibleReviews(
	bookings booking.Repository,
	reviews domain.Repository,
) *GetVisibleReviews {
	return &GetVisibleReviews{
		bookings: bookings,
		reviews:  reviews,
	}
}

// Execute aplica a regra de paridade: conteúdo só sai quando os dois
// lados avaliaram; antes disso, só os flags — para qualquer viewer.
func (uc *GetVisibleReviews) Execute(
	ctx context.Context,
	appointmentID uint,
	viewerRole string,
) (*dto.VisibleReviewsDTO, error) {

	role, err := booking.ParseRole(viewerRole)
	if err != nil {
		return nil, err
	}

	if _, err := uc.bookings.GetAppointmentByID(ctx, appointmentID); err != nil {
		return nil, err
	}

	pair, err := uc.reviews.GetPair(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	vis := domain.Visible(pair, role)

	out := &dto.VisibleReviewsDTO{
		YourReviewDone:        vis.YourReviewDone,
		CounterpartReviewDone: vis.CounterpartReviewDone,
	}

	if vis.Mine != nil && vis.Theirs != nil {
		out.Reviews = &dto.ReviewContentsDTO{
			Mine:   toReviewDTO(vis.Mine),
			Theirs: toReviewDTO(vis.Theirs),
		}
	}

	return out, nil
}

func toReviewDTO(rv *models.Review) dto.ReviewDTO {
	return dto.ReviewDTO{
		RaterRole: rv.RaterRole,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
		CreatedAt: rv.CreatedAt,
	}
}
