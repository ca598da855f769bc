package booking

import (
	"context"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
)

type GetAgenda struct {
	repo domain.Repository
}

func NewGetAgenda(repo domain.Repository) *GetAgenda {
	return &GetAgenda{repo: repo}
}

// Execute responde "quais meios-dias estão ocupados" no intervalo,
// só agendamentos ativos (declined/cancelled nunca ocupam slot)
func (uc *GetAgenda) Execute(
	ctx context.Context,
	in domain.AgendaInput,
) ([]domain.OccupiedSlot, error) {

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return uc.repo.ListOccupiedSlots(ctx, in.ProviderID, in.From, in.To)
}
