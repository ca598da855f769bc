package booking

import (
	"context"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

type CancelBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
	tz     string
}

func NewCancelBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
	tz string,
) *CancelBooking {
	return &CancelBooking{
		repo:   repo,
		events: dispatcher,
		tz:     tz,
	}
}

// Execute: qualquer uma das partes cancela um agendamento ativo.
// Cancelar no dia (ou depois) é permitido — restrição de data é só da UI.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	actorRole domain.Role,
	actorID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !ownsAppointment(ap, actorRole, actorID) {
		return nil, httperr.ErrBusiness("forbidden")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, actorRole, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.Dispatch(events.Event{
		Action:    events.AppointmentCancelled,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		ActorRole: string(actorRole),
		ActorID:   &actorID,
		Metadata:  map[string]string{"cancelled_by": string(actorRole)},
	})

	return ap, nil
}

func ownsAppointment(ap *models.Appointment, role domain.Role, actorID uint) bool {
	switch role {
	case domain.RoleClient:
		return ap.ClientID == actorID
	case domain.RoleProvider:
		return ap.ProviderID == actorID
	}
	return false
}
