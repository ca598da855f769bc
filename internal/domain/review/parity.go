package review

import (
	"github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/models"
)

// ===============================
// Paridade (avaliação cega mútua)
// ===============================

// Pair: as duas avaliações unilaterais de um agendamento,
// qualquer uma podendo ainda não existir.
type Pair struct {
	Client   *models.Review
	Provider *models.Review
}

func (p Pair) byRole(r booking.Role) *models.Review {
	if r == booking.RoleClient {
		return p.Client
	}
	return p.Provider
}

// Complete: paridade alcançada, os dois lados avaliaram
func (p Pair) Complete() bool {
	return p.Client != nil && p.Provider != nil
}

// Visibility é a projeção que cada lado enxerga.
// Antes da paridade só os booleanos saem — nunca conteúdo parcial.
type Visibility struct {
	YourReviewDone        bool
	CounterpartReviewDone bool
	Mine                  *models.Review
	Theirs                *models.Review
}

func Visible(p Pair, viewer booking.Role) Visibility {
	v := Visibility{
		YourReviewDone:        p.byRole(viewer) != nil,
		CounterpartReviewDone: p.byRole(booking.Counterpart(viewer)) != nil,
	}

	if p.Complete() {
		v.Mine = p.byRole(viewer)
		v.Theirs = p.byRole(booking.Counterpart(viewer))
	}

	return v
}
