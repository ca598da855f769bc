package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/UpServices02/service-booking/internal/config"
	"github.com/UpServices02/service-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Provider{},
		&models.Category{},
		&models.Appointment{},
		&models.Review{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Garantia autoritativa das invariantes, independente de checagem
	// na aplicação: no máximo um agendamento ativo por slot do
	// prestador, um agendamento ativo por (cliente, prestador, dia),
	// e uma avaliação por (agendamento, papel).
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_provider_slot_active
        ON appointments (provider_id, date, period)
        WHERE status IN ('pending', 'accepted')
    `)

	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_client_provider_day_active
        ON appointments (client_id, provider_id, date)
        WHERE status IN ('pending', 'accepted')
    `)

	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_review_per_role
        ON reviews (appointment_id, rater_role)
    `)

	return db
}
