package booking

import "github.com/UpServices02/service-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCancelled Status = "cancelled"
)

// IsActive indica se o agendamento ocupa o slot (pending ou accepted)
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusAccepted
}

// IsTerminal indica estado final (declined/cancelled)
func IsTerminal(s Status) bool {
	return s == StatusDeclined || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanAccept define se um agendamento pode ser aceito
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanDecline define se um agendamento pode ser recusado
func CanDecline(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if !IsActive(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCreate valida status inicial
func InitialStatus() Status {
	return StatusPending
}
