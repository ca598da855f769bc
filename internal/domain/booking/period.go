package booking

import "github.com/UpServices02/service-booking/internal/httperr"

// ===============================
// Period (meio-dia)
// ===============================

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// ParsePeriod valida o período informado pelo cliente
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodMorning, PeriodAfternoon:
		return Period(raw), nil
	}
	return "", httperr.ErrBusiness("invalid_period")
}

// ===============================
// Actor roles
// ===============================

type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
)

func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleClient, RoleProvider:
		return Role(raw), nil
	}
	return "", httperr.ErrBusiness("invalid_role")
}

// Counterpart devolve o outro lado do agendamento
func Counterpart(r Role) Role {
	if r == RoleClient {
		return RoleProvider
	}
	return RoleClient
}
