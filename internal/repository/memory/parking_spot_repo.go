// Package memory keeps parking spots in process memory. It enforces the same
// unique keys as the SQL schema so callers see identical conflict behaviour.
package memory

import (
	"context"
	"parking_control/internal/domain"
	"parking_control/internal/repository"
	"sync"

	"github.com/google/uuid"
)

type memParkingSpotRepository struct {
	mu    sync.RWMutex
	spots map[uuid.UUID]domain.ParkingSpot
}

func NewMemParkingSpotRepository() repository.ParkingSpotRepository {
	return &memParkingSpotRepository{spots: make(map[uuid.UUID]domain.ParkingSpot)}
}

// violatedKey reports the first unique key, in index order, that spot would share
// with another record. Must be called with mu held.
func (r *memParkingSpotRepository) violatedKey(spot *domain.ParkingSpot) (repository.UniqueKey, bool) {
	checks := []struct {
		key   repository.UniqueKey
		match func(domain.ParkingSpot) bool
	}{
		{repository.KeyLicensePlateCar, func(o domain.ParkingSpot) bool { return o.LicensePlateCar == spot.LicensePlateCar }},
		{repository.KeyParkingSpotNumber, func(o domain.ParkingSpot) bool { return o.ParkingSpotNumber == spot.ParkingSpotNumber }},
		{repository.KeyApartmentBlock, func(o domain.ParkingSpot) bool { return o.Apartment == spot.Apartment && o.Block == spot.Block }},
	}
	for _, check := range checks {
		for id, other := range r.spots {
			if id != spot.ID && check.match(other) {
				return check.key, true
			}
		}
	}
	return "", false
}

func (r *memParkingSpotRepository) Create(_ context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spots[spot.ID]; ok {
		return nil, repository.ErrDuplicateEntry
	}
	if key, ok := r.violatedKey(spot); ok {
		return nil, &repository.DuplicateEntryError{Key: key}
	}
	r.spots[spot.ID] = *spot
	stored := *spot
	return &stored, nil
}

func (r *memParkingSpotRepository) FindByID(_ context.Context, id uuid.UUID) (*domain.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spot, ok := r.spots[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &spot, nil
}

func (r *memParkingSpotRepository) FindAll(_ context.Context) ([]domain.ParkingSpot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spots := make([]domain.ParkingSpot, 0, len(r.spots))
	for _, spot := range r.spots {
		spots = append(spots, spot)
	}
	return spots, nil
}

func (r *memParkingSpotRepository) Update(_ context.Context, spot *domain.ParkingSpot) (*domain.ParkingSpot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.spots[spot.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if key, ok := r.violatedKey(spot); ok {
		return nil, &repository.DuplicateEntryError{Key: key}
	}
	updated := *spot
	updated.RegistrationDate = existing.RegistrationDate
	r.spots[spot.ID] = updated
	return &updated, nil
}

func (r *memParkingSpotRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spots[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.spots, id)
	return nil
}

func (r *memParkingSpotRepository) ExistsByLicensePlateCar(_ context.Context, licensePlateCar string) (bool, error) {
	return r.matchAny(func(s domain.ParkingSpot) bool { return s.LicensePlateCar == licensePlateCar }), nil
}

func (r *memParkingSpotRepository) ExistsByParkingSpotNumber(_ context.Context, parkingSpotNumber string) (bool, error) {
	return r.matchAny(func(s domain.ParkingSpot) bool { return s.ParkingSpotNumber == parkingSpotNumber }), nil
}

func (r *memParkingSpotRepository) ExistsByApartmentAndBlock(_ context.Context, apartment, block string) (bool, error) {
	return r.matchAny(func(s domain.ParkingSpot) bool { return s.Apartment == apartment && s.Block == block }), nil
}

func (r *memParkingSpotRepository) matchAny(match func(domain.ParkingSpot) bool) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, spot := range r.spots {
		if match(spot) {
			return true
		}
	}
	return false
}

func (r *memParkingSpotRepository) Ping(context.Context) error {
	return nil
}
