package booking

import (
	"context"
	"time"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/dto"
	"github.com/UpServices02/service-booking/internal/models"
	"github.com/UpServices02/service-booking/internal/timezone"
)

type ListBookings struct {
	repo domain.Repository
	tz   string
}

func NewListBookings(repo domain.Repository, tz string) *ListBookings {
	return &ListBookings{repo: repo, tz: tz}
}

func (uc *ListBookings) ForClient(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentDTO, error) {

	apps, err := uc.repo.ListForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	return uc.toDTOs(apps), nil
}

func (uc *ListBookings) ForProvider(
	ctx context.Context,
	providerID uint,
) ([]dto.AppointmentDTO, error) {

	apps, err := uc.repo.ListForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return uc.toDTOs(apps), nil
}

func (uc *ListBookings) PendingForProvider(
	ctx context.Context,
	providerID uint,
) ([]dto.AppointmentDTO, error) {

	apps, err := uc.repo.ListPendingForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return uc.toDTOs(apps), nil
}

func (uc *ListBookings) toDTOs(apps []models.Appointment) []dto.AppointmentDTO {
	today := timezone.Today(uc.tz)

	out := make([]dto.AppointmentDTO, 0, len(apps))
	for i := range apps {
		out = append(out, toDTO(&apps[i], today))
	}
	return out
}

func toDTO(ap *models.Appointment, today time.Time) dto.AppointmentDTO {
	return dto.AppointmentDTO{
		ID:             ap.ID,
		Reference:      ap.Reference,
		Date:           ap.Date.Format("2006-01-02"),
		Period:         ap.Period,
		Status:         ap.Status,
		Description:    ap.Description,
		SuggestedPrice: ap.SuggestedPrice,
		ClientName:     ap.Client.Name,
		ProviderName:   ap.Provider.Name,
		CategoryName:   ap.Category.Name,
		CancelledBy:    ap.CancelledBy,
		Reviewable:     domain.IsReviewable(ap, today),
	}
}
