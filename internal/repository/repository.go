package repository

import (
	"context"
	"errors"
	"fmt"
	"parking_control/internal/domain"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicateEntry = errors.New("record already exists")

// UniqueKey names one of the uniqueness invariants on parking spots.
type UniqueKey string

const (
	KeyLicensePlateCar   UniqueKey = "license_plate_car"
	KeyParkingSpotNumber UniqueKey = "parking_spot_number"
	KeyApartmentBlock    UniqueKey = "apartment_block"
)

// DuplicateEntryError is returned by a store when a write violates a unique key.
type DuplicateEntryError struct {
	Key UniqueKey
}

func (e *DuplicateEntryError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateEntry.Error(), e.Key)
}

func (e *DuplicateEntryError) Unwrap() error {
	return ErrDuplicateEntry
}

type ParkingSpotRepository interface {
	Create(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
	FindAll(ctx context.Context) ([]domain.ParkingSpot, error)
	Update(ctx context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ExistsByLicensePlateCar(ctx context.Context, licensePlateCar string) (bool, error)
	ExistsByParkingSpotNumber(ctx context.Context, parkingSpotNumber string) (bool, error)
	ExistsByApartmentAndBlock(ctx context.Context, apartment, block string) (bool, error)

	Ping(ctx context.Context) error
}
