package booking

import (
	"time"

	"github.com/UpServices02/service-booking/internal/httperr"
)

// ===============================
// Availability (agenda do prestador)
// ===============================

type AgendaInput struct {
	ProviderID uint
	From       time.Time
	To         time.Time
}

// OccupiedSlot: meio-dia ocupado por um agendamento ativo
type OccupiedSlot struct {
	Date   string `json:"date"`
	Period string `json:"period"`
	Status string `json:"status"`
}

func (in AgendaInput) Validate() error {
	if in.From.After(in.To) {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}
