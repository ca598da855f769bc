package booking

import (
	"context"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

type DeclineBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
	tz     string
}

func NewDeclineBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
	tz string,
) *DeclineBooking {
	return &DeclineBooking{
		repo:   repo,
		events: dispatcher,
		tz:     tz,
	}
}

func (uc *DeclineBooking) Execute(
	ctx context.Context,
	providerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForProvider(ctx, appointmentID, providerID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Decline(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:    events.AppointmentDeclined,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		ActorRole: string(domain.RoleProvider),
		ActorID:   &providerID,
	})

	return ap, nil
}
