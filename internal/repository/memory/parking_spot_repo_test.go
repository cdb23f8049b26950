package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"parking_control/internal/domain"
	"parking_control/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spot(number, plate, apartment, block string) *domain.ParkingSpot {
	return &domain.ParkingSpot{
		ID:                uuid.New(),
		ParkingSpotNumber: number,
		LicensePlateCar:   plate,
		BrandCar:          "Fiat",
		ModelCar:          "Uno",
		ColorCar:          "red",
		RegistrationDate:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		ResponsibleName:   "Maria",
		Apartment:         apartment,
		Block:             block,
	}
}

func duplicateKey(t *testing.T, err error) repository.UniqueKey {
	t.Helper()
	var dupErr *repository.DuplicateEntryError
	require.True(t, errors.As(err, &dupErr), "expected DuplicateEntryError, got %v", err)
	return dupErr.Key
}

func TestCreateAndFind(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	s := spot("5", "ABC123", "101", "A")
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, found)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateReturnsCopy(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	s := spot("5", "ABC123", "101", "A")
	created, err := repo.Create(ctx, s)
	require.NoError(t, err)
	created.BrandCar = "changed"

	found, err := repo.FindByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fiat", found.BrandCar)
}

func TestCreateEnforcesUniqueKeys(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, spot("5", "ABC123", "101", "A"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, spot("6", "ABC123", "102", "A"))
	assert.Equal(t, repository.KeyLicensePlateCar, duplicateKey(t, err))

	_, err = repo.Create(ctx, spot("5", "XYZ0001", "102", "A"))
	assert.Equal(t, repository.KeyParkingSpotNumber, duplicateKey(t, err))

	_, err = repo.Create(ctx, spot("6", "XYZ0001", "101", "A"))
	assert.Equal(t, repository.KeyApartmentBlock, duplicateKey(t, err))

	_, err = repo.Create(ctx, spot("6", "XYZ0001", "101", "B"))
	assert.NoError(t, err)
}

func TestUniqueKeyOrderAcrossRecords(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, spot("1", "AAA0001", "101", "A"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, spot("2", "BBB0002", "102", "A"))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err = repo.Create(ctx, spot("1", "BBB0002", "999", "Z"))
		assert.Equal(t, repository.KeyLicensePlateCar, duplicateKey(t, err))
	}
}

func TestUpdate(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	original := spot("5", "ABC123", "101", "A")
	_, err := repo.Create(ctx, original)
	require.NoError(t, err)
	other := spot("6", "XYZ0001", "102", "A")
	_, err = repo.Create(ctx, other)
	require.NoError(t, err)

	changed := *original
	changed.ColorCar = "blue"
	changed.RegistrationDate = time.Now()
	updated, err := repo.Update(ctx, &changed)
	require.NoError(t, err)
	assert.Equal(t, "blue", updated.ColorCar)
	assert.Equal(t, original.RegistrationDate, updated.RegistrationDate)

	clash := *original
	clash.LicensePlateCar = other.LicensePlateCar
	_, err = repo.Update(ctx, &clash)
	assert.Equal(t, repository.KeyLicensePlateCar, duplicateKey(t, err))

	_, err = repo.Update(ctx, spot("9", "NEW0001", "9", "9"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	s := spot("5", "ABC123", "101", "A")
	_, err := repo.Create(ctx, s)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, s.ID))
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), repository.ErrNotFound)

	_, err = repo.FindByID(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestFindAllAndExists(t *testing.T) {
	repo := NewMemParkingSpotRepository()
	ctx := context.Background()

	spots, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, spots)
	assert.Empty(t, spots)

	_, err = repo.Create(ctx, spot("5", "ABC123", "101", "A"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, spot("6", "XYZ0001", "102", "A"))
	require.NoError(t, err)

	spots, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, spots, 2)

	found, _ := repo.ExistsByLicensePlateCar(ctx, "ABC123")
	assert.True(t, found)
	found, _ = repo.ExistsByLicensePlateCar(ctx, "NOPE")
	assert.False(t, found)
	found, _ = repo.ExistsByParkingSpotNumber(ctx, "6")
	assert.True(t, found)
	found, _ = repo.ExistsByApartmentAndBlock(ctx, "102", "A")
	assert.True(t, found)
	found, _ = repo.ExistsByApartmentAndBlock(ctx, "102", "B")
	assert.False(t, found)

	assert.NoError(t, repo.Ping(ctx))
}
