package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"parking_control/internal/domain"
	"parking_control/internal/repository"
	"time"

	"github.com/google/uuid"
)

const parkingSpotColumns = `id, parking_spot_number, license_plate_car, brand_car, model_car, color_car,
	registration_date, responsible_name, apartment, block`

type rowScanner interface {
	Scan(dest ...any) error
}

type pgParkingSpotRepository struct {
	db *sql.DB
}

func NewPgParkingSpotRepository(db *sql.DB) repository.ParkingSpotRepository {
	return &pgParkingSpotRepository{db: db}
}

func scanParkingSpot(row rowScanner) (*domain.ParkingSpot, error) {
	spot := &domain.ParkingSpot{}
	err := row.Scan(
		&spot.ID, &spot.ParkingSpotNumber, &spot.LicensePlateCar, &spot.BrandCar, &spot.ModelCar, &spot.ColorCar,
		&spot.RegistrationDate, &spot.ResponsibleName, &spot.Apartment, &spot.Block,
	)
	if err != nil {
		return nil, err
	}
	spot.RegistrationDate = spot.RegistrationDate.In(time.UTC)
	return spot, nil
}

func (r *pgParkingSpotRepository) Create(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	query := `INSERT INTO tb_parking_spot (` + parkingSpotColumns + `)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	           RETURNING registration_date`
	err := r.db.QueryRowContext(ctx, query,
		spot.ID, spot.ParkingSpotNumber, spot.LicensePlateCar, spot.BrandCar, spot.ModelCar, spot.ColorCar,
		spot.RegistrationDate, spot.ResponsibleName, spot.Apartment, spot.Block,
	).Scan(&spot.RegistrationDate)
	if err != nil {
		if dupErr := duplicateEntry(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("ParkingSpotRepository.Create: %w", err)
	}
	spot.RegistrationDate = spot.RegistrationDate.In(time.UTC)
	return spot, nil
}

func (r *pgParkingSpotRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error) {
	query := `SELECT ` + parkingSpotColumns + ` FROM tb_parking_spot WHERE id = $1`
	spot, err := scanParkingSpot(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("ParkingSpotRepository.FindByID: %w", err)
	}
	return spot, nil
}

func (r *pgParkingSpotRepository) FindAll(ctx context.Context) ([]domain.ParkingSpot, error) {
	query := `SELECT ` + parkingSpotColumns + ` FROM tb_parking_spot`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ParkingSpotRepository.FindAll: %w", err)
	}
	defer rows.Close()

	spots := []domain.ParkingSpot{}
	for rows.Next() {
		spot, err := scanParkingSpot(rows)
		if err != nil {
			return nil, fmt.Errorf("ParkingSpotRepository.FindAll (scanning row): %w", err)
		}
		spots = append(spots, *spot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ParkingSpotRepository.FindAll (rows error): %w", err)
	}
	return spots, nil
}

// Update rewrites the descriptive columns. registration_date is never part of the SET list.
func (r *pgParkingSpotRepository) Update(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	query := `UPDATE tb_parking_spot
	           SET parking_spot_number = $1, license_plate_car = $2, brand_car = $3, model_car = $4, color_car = $5,
	               responsible_name = $6, apartment = $7, block = $8
	           WHERE id = $9
	           RETURNING registration_date`
	err := r.db.QueryRowContext(ctx, query,
		spot.ParkingSpotNumber, spot.LicensePlateCar, spot.BrandCar, spot.ModelCar, spot.ColorCar,
		spot.ResponsibleName, spot.Apartment, spot.Block, spot.ID,
	).Scan(&spot.RegistrationDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		if dupErr := duplicateEntry(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("ParkingSpotRepository.Update: %w", err)
	}
	spot.RegistrationDate = spot.RegistrationDate.In(time.UTC)
	return spot, nil
}

func (r *pgParkingSpotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM tb_parking_spot WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("ParkingSpotRepository.Delete: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ParkingSpotRepository.Delete (checking rows affected): %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *pgParkingSpotRepository) ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error) {
	return r.exists(ctx, "ExistsByLicensePlateCar",
		`SELECT EXISTS (SELECT 1 FROM tb_parking_spot WHERE license_plate_car = $1)`, licensePlateCar)
}

func (r *pgParkingSpotRepository) ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error) {
	return r.exists(ctx, "ExistsByParkingSpotNumber",
		`SELECT EXISTS (SELECT 1 FROM tb_parking_spot WHERE parking_spot_number = $1)`, parkingSpotNumber)
}

func (r *pgParkingSpotRepository) ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error) {
	return r.exists(ctx, "ExistsByApartmentAndBlock",
		`SELECT EXISTS (SELECT 1 FROM tb_parking_spot WHERE apartment = $1 AND block = $2)`, apartment, block)
}

func (r *pgParkingSpotRepository) exists(ctx context.Context, op, query string, args ...any) (bool, error) {
	var found bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("ParkingSpotRepository.%s: %w", op, err)
	}
	return found, nil
}

func (r *pgParkingSpotRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
