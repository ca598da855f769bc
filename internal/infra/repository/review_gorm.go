package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	booking "github.com/UpServices02/service-booking/internal/domain/booking"
	domain "github.com/UpServices02/service-booking/internal/domain/review"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	rv *models.Review,
) error {

	err := r.db.WithContext(ctx).Create(rv).Error
	if isUniqueViolation(err, "uniq_review_per_role") {
		return httperr.ErrBusiness("duplicate_review")
	}
	return err
}

func (r *ReviewGormRepository) GetByAppointmentAndRole(
	ctx context.Context,
	appointmentID uint,
	raterRole string,
) (*models.Review, error) {

	var rv models.Review
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ? AND rater_role = ?", appointmentID, raterRole).
		First(&rv).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &rv, nil
}

func (r *ReviewGormRepository) GetPair(
	ctx context.Context,
	appointmentID uint,
) (domain.Pair, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Find(&reviews).Error; err != nil {
		return domain.Pair{}, err
	}

	var pair domain.Pair
	for i := range reviews {
		switch booking.Role(reviews[i].RaterRole) {
		case booking.RoleClient:
			pair.Client = &reviews[i]
		case booking.RoleProvider:
			pair.Provider = &reviews[i]
		}
	}

	return pair, nil
}

// AverageForProvider: média das notas dadas por clientes ao prestador,
// calculada na leitura (o cache em redis fica por cima, ver internal/cache)
func (r *ReviewGormRepository) AverageForProvider(
	ctx context.Context,
	providerID uint,
) (float64, int64, error) {

	type aggregate struct {
		Avg   float64
		Count int64
	}

	var agg aggregate
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COALESCE(AVG(reviews.rating), 0) AS avg, COUNT(reviews.id) AS count").
		Joins("JOIN appointments ON appointments.id = reviews.appointment_id").
		Where(
			"appointments.provider_id = ? AND reviews.rater_role = ?",
			providerID, string(booking.RoleClient),
		).
		Scan(&agg).Error

	if err != nil {
		return 0, 0, err
	}

	return agg.Avg, agg.Count, nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)
