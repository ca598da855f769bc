package review

import (
	"context"

	"github.com/UpServices02/service-booking/internal/models"
)

type Repository interface {
	// CreateReview insere a avaliação; violação do índice único
	// (appointment_id, rater_role) vira duplicate_review.
	CreateReview(
		ctx context.Context,
		rv *models.Review,
	) error

	GetByAppointmentAndRole(
		ctx context.Context,
		appointmentID uint,
		raterRole string,
	) (*models.Review, error)

	// GetPair carrega os dois lados (nil quando ausente)
	GetPair(
		ctx context.Context,
		appointmentID uint,
	) (Pair, error)

	// AverageForProvider: média aritmética das notas de clientes
	// sobre todos os agendamentos do prestador (0 avaliações => ok=false)
	AverageForProvider(
		ctx context.Context,
		providerID uint,
	) (avg float64, count int64, err error)
}
