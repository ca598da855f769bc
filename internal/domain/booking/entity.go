package booking

import (
	"time"

	"github.com/UpServices02/service-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Accept(ap *models.Appointment, now time.Time) error {
	if err := CanAccept(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusAccepted)
	ap.AcceptedAt = &now
	return nil
}

func Decline(ap *models.Appointment, now time.Time) error {
	if err := CanDecline(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusDeclined)
	ap.DeclinedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, by Role, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	role := string(by)
	ap.Status = string(StatusCancelled)
	ap.CancelledBy = &role
	ap.CancelledAt = &now
	return nil
}

// IsReviewable: aceito e com data já alcançada (não existe status "completed";
// a conclusão é derivada na consulta)
func IsReviewable(ap *models.Appointment, today time.Time) bool {
	return Status(ap.Status) == StatusAccepted && !ap.Date.After(today)
}
