package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/UpServices02/service-booking/internal/httperr"
)

const pgUniqueViolation = "23505"

// translateCreateConflict: o insert concorrente pode estourar qualquer
// um dos índices parciais; cada um corresponde a uma regra de negócio.
func translateCreateConflict(err error) error {
	if isUniqueViolation(err, "uniq_provider_slot_active") {
		return httperr.ErrBusiness("provider_slot_taken")
	}
	if isUniqueViolation(err, "uniq_client_provider_day_active") {
		return httperr.ErrBusiness("client_already_booked")
	}
	return err
}

// isUniqueViolation detecta 23505 vindo do driver (pgx por baixo do gorm)
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
