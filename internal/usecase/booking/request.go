package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/events"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RequestBookingInput struct {
	ClientID   uint
	ProviderID uint
	CategoryID uint

	Date   string
	Period string

	Description    string
	SuggestedPrice *float64
}

// ======================================================
// USE CASE
// ======================================================

type RequestBooking struct {
	repo   domain.Repository
	events *events.Dispatcher
	tz     string
}

func NewRequestBooking(
	repo domain.Repository,
	dispatcher *events.Dispatcher,
	tz string,
) *RequestBooking {
	return &RequestBooking{
		repo:   repo,
		events: dispatcher,
		tz:     tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RequestBooking) Execute(
	ctx context.Context,
	in RequestBookingInput,
) (*models.Appointment, error) {

	// 1. Período (meio-dia)
	period, err := domain.ParsePeriod(in.Period)
	if err != nil {
		return nil, err
	}

	// 2. Data no timezone do serviço; passado estrito é rejeitado
	date, err := timezone.ParseDate(uc.tz, in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if date.Before(timezone.Today(uc.tz)) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// 3. Referências externas (User Directory / Catálogo)
	if _, err := uc.repo.GetClientByID(ctx, in.ClientID); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProviderByID(ctx, in.ProviderID); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetCategoryByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	// 4. Criação guardada pelo conflict checker (mesma transação).
	// O slot é disputado aqui, no request — nunca no accept.
	ap := &models.Appointment{
		Reference:      uuid.NewString(),
		ClientID:       in.ClientID,
		ProviderID:     in.ProviderID,
		CategoryID:     in.CategoryID,
		Date:           date,
		Period:         string(period),
		Status:         string(domain.InitialStatus()),
		Description:    in.Description,
		SuggestedPrice: in.SuggestedPrice,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// 5. Evento
	uc.events.Dispatch(events.Event{
		Action:    events.AppointmentRequested,
		Entity:    "appointment",
		EntityID:  &ap.ID,
		ActorRole: string(domain.RoleClient),
		ActorID:   &in.ClientID,
	})

	return ap, nil
}
