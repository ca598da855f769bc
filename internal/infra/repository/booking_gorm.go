package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/UpServices02/service-booking/internal/domain/booking"
	"github.com/UpServices02/service-booking/internal/httperr"
	"github.com/UpServices02/service-booking/internal/models"
)

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusAccepted),
}

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Referências externas (User Directory / Catálogo)
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("provider_not_found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var cl models.Client
	if err := r.db.WithContext(ctx).First(&cl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		return nil, err
	}
	return &cl, nil
}

func (r *BookingGormRepository) GetCategoryByID(
	ctx context.Context,
	id uint,
) (*models.Category, error) {

	var cat models.Category
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("category_not_found")
		}
		return nil, err
	}
	return &cat, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) assertNoConflict(
	ctx context.Context,
	tx *gorm.DB,
	providerID uint,
	clientID uint,
	date time.Time,
	period domain.Period,
) error {

	// Regra 1 — slot do prestador (meio-dia)
	var count int64
	if err := tx.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"provider_id = ? AND date = ? AND period = ? AND status IN ?",
			providerID, date, string(period), activeStatuses,
		).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("provider_slot_taken")
	}

	// Regra 2 — cliente já tem agendamento com este prestador no dia,
	// qualquer período
	if err := tx.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"client_id = ? AND provider_id = ? AND date = ? AND status IN ?",
			clientID, providerID, date, activeStatuses,
		).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("client_already_booked")
	}

	return nil
}

func (r *BookingGormRepository) AssertNoConflict(
	ctx context.Context,
	providerID uint,
	clientID uint,
	date time.Time,
	period domain.Period,
) error {
	return r.assertNoConflict(ctx, r.db, providerID, clientID, date, period)
}

// CreateAppointment: checagem + insert na mesma transação.
// Os índices parciais fecham a janela check-then-act entre
// requests concorrentes, para as duas regras.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.assertNoConflict(
			ctx, tx,
			ap.ProviderID, ap.ClientID,
			ap.Date, domain.Period(ap.Period),
		); err != nil {
			return err
		}

		return tx.Create(ap).Error
	})

	return translateCreateConflict(err)
}

func (r *BookingGormRepository) AssertSlotFree(
	ctx context.Context,
	providerID uint,
	date time.Time,
	period domain.Period,
	excludeID uint,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"provider_id = ? AND date = ? AND period = ? AND status IN ? AND id <> ?",
			providerID, date, string(period), activeStatuses, excludeID,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("provider_slot_taken")
	}

	return nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		First(&ap, appointmentID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) GetAppointmentForProvider(
	ctx context.Context,
	appointmentID uint,
	providerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", appointmentID, providerID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Projections
// --------------------------------------------------

func (r *BookingGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("Category").
		Where("client_id = ?", clientID).
		Order("date DESC, period ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Where("provider_id = ?", providerID).
		Order("date DESC, period ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListPendingForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Where(
			"provider_id = ? AND status = ?",
			providerID, string(domain.StatusPending),
		).
		Order("date ASC, period ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListOccupiedSlots(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]domain.OccupiedSlot, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("date", "period", "status").
		Where(
			"provider_id = ? AND date >= ? AND date <= ? AND status IN ?",
			providerID, from, to, activeStatuses,
		).
		Order("date ASC, period ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	slots := make([]domain.OccupiedSlot, 0, len(apps))
	for _, ap := range apps {
		slots = append(slots, domain.OccupiedSlot{
			Date:   ap.Date.Format("2006-01-02"),
			Period: ap.Period,
			Status: ap.Status,
		})
	}

	return slots, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
