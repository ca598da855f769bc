package booking

import (
	"context"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

type AcceptBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
	tz     string
}

func NewAcceptBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
	tz string,
) *AcceptBooking {
	return &AcceptBooking{
		repo:   repo,
		events: dispatcher,
		tz:     tz,
	}
}

func (uc *AcceptBooking) Execute(
	ctx context.Context,
	providerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForProvider(ctx, appointmentID, providerID)
	if err != nil {
		return nil, err
	}

	// Re-checagem defensiva do slot: por construção o pending já o
	// ocupa, mas um estado inconsistente nunca deve virar aceite.
	if err := uc.repo.AssertSlotFree(
		ctx,
		ap.ProviderID,
		ap.Date,
		domain.Period(ap.Period),
		ap.ID,
	); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Accept(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:    events.AppointmentAccepted,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		ActorRole: string(domain.RoleProvider),
		ActorID:   &providerID,
	})

	return ap, nil
}
