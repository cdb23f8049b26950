package postgresql

import (
	"errors"
	"parking_control/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

var constraintKeys = map[string]repository.UniqueKey{
	"tb_parking_spot_license_plate_car_key":   repository.KeyLicensePlateCar,
	"tb_parking_spot_parking_spot_number_key": repository.KeyParkingSpotNumber,
	"tb_parking_spot_apartment_block_key":     repository.KeyApartmentBlock,
}

// duplicateEntry maps a unique_violation from either driver to a DuplicateEntryError.
// It returns nil for anything else.
func duplicateEntry(err error) error {
	var constraint string

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		if pgErr.Code != uniqueViolation {
			return nil
		}
		constraint = pgErr.ConstraintName
	case errors.As(err, &pqErr):
		if pqErr.Code != uniqueViolation {
			return nil
		}
		constraint = pqErr.Constraint
	default:
		return nil
	}

	key, ok := constraintKeys[constraint]
	if !ok {
		return repository.ErrDuplicateEntry
	}
	return &repository.DuplicateEntryError{Key: key}
}
