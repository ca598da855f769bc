package booking

import (
	"context"
	"time"

	"github.com/UpServices02/service-booking/internal/models"
)

type Repository interface {
	// -------- Referências externas --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetCategoryByID(
		ctx context.Context,
		id uint,
	) (*models.Category, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment roda as duas checagens de conflito e o insert
	// na mesma transação. Violações de unicidade do slot viram
	// provider_slot_taken.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertNoConflict avalia os dois predicados independentes:
	// slot do prestador ocupado (meio-dia) e cliente já agendado
	// com o mesmo prestador no mesmo dia (dia inteiro).
	AssertNoConflict(
		ctx context.Context,
		providerID uint,
		clientID uint,
		date time.Time,
		period Period,
	) error

	// AssertSlotFree re-valida o slot ignorando o próprio agendamento
	// (usado no accept).
	AssertSlotFree(
		ctx context.Context,
		providerID uint,
		date time.Time,
		period Period,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForProvider(
		ctx context.Context,
		appointmentID uint,
		providerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Projections --------
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListForProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Appointment, error)

	ListPendingForProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListOccupiedSlots(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]OccupiedSlot, error)
}
