package review

import (
	"context"

	booking "github.com/UpServices02/service-booking/internal/domain/booking"
	domain "github.com/UpServices02/service-booking/internal/domain/review"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SubmitReviewInput struct {
	AppointmentID uint
	RaterRole     string
	ActorID       uint
	Rating        float64
	Comment       string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitReview struct {
	bookings booking.Repository
	reviews  domain.Repository
	events   *events.Dispatcher
	tz       string
}

func NewSubmitReview(
	bookings booking.Repository,
	reviews domain.Repository,
	dispatcher *events.Dispatcher,
	tz string,
) *SubmitReview {
	return &SubmitReview{
		bookings: bookings,
		reviews:  reviews,
		events:   dispatcher,
		tz:       tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitReview) Execute(
	ctx context.Context,
	in SubmitReviewInput,
) (*models.Review, error) {

	// 1. Papel e nota
	role, err := booking.ParseRole(in.RaterRole)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	// 2. Agendamento avaliável: aceito + data já alcançada.
	// Só quem participa do agendamento avalia.
	ap, err := uc.bookings.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !partyOf(ap, role, in.ActorID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	if !booking.IsReviewable(ap, timezone.Today(uc.tz)) {
		return nil, httperr.ErrBusiness("not_yet_reviewable")
	}

	// 3. Uma avaliação por (agendamento, papel). A checagem aqui
	// é cortesia; o índice único decide nas corridas.
	existing, err := uc.reviews.GetByAppointmentAndRole(
		ctx, in.AppointmentID, string(role),
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness("duplicate_review")
	}

	rv := &models.Review{
		AppointmentID: in.AppointmentID,
		RaterRole:     string(role),
		Rating:        in.Rating,
		Comment:       in.Comment,
	}

	if err := uc.reviews.CreateReview(ctx, rv); err != nil {
		return nil, err
	}

	// 4. Evento (derruba o cache de média do prestador)
	uc.events.Dispatch(events.Event{
		Action:    events.ReviewSubmitted,
		Entity:    "review",
		EntityID:  &rv.ID,
		ActorRole: string(role),
		ActorID:   &in.ActorID,
		Metadata:  map[string]uint{"provider_id": ap.ProviderID},
	})

	return rv, nil
}

func partyOf(ap *models.Appointment, role booking.Role, actorID uint) bool {
	switch role {
	case booking.RoleClient:
		return ap.ClientID == actorID
	case booking.RoleProvider:
		return ap.ProviderID == actorID
	}
	return false
}
