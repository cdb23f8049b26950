package service

import (
	"context"
	"errors"
	"fmt"
	"parking_control/internal/domain"
	"parking_control/internal/repository"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var conflictMessages = map[repository.UniqueKey]string{
	repository.KeyLicensePlateCar:   "Conflict: License Plate Car is already in use!",
	repository.KeyParkingSpotNumber: "Conflict: Parking Spot is already in use!",
	repository.KeyApartmentBlock:    "Conflict: Parking Spot already registered for this apartment/block!",
}

// ConflictError reports which uniqueness rule a write would break. Its message is
// returned verbatim to clients.
type ConflictError struct {
	Key repository.UniqueKey
}

func (e *ConflictError) Error() string {
	if msg, ok := conflictMessages[e.Key]; ok {
		return msg
	}
	return "Conflict: " + string(e.Key)
}

func (e *ConflictError) Unwrap() error {
	return repository.ErrDuplicateEntry
}

// conflictFromStore turns a store-level unique violation into the same ConflictError
// the pre-checks produce. Other errors pass through.
func conflictFromStore(err error) error {
	var dupErr *repository.DuplicateEntryError
	if errors.As(err, &dupErr) {
		return &ConflictError{Key: dupErr.Key}
	}
	return err
}

type Option func(*ParkingSpotService)

func WithClock(now func() time.Time) Option {
	return func(s *ParkingSpotService) { s.now = now }
}

func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *ParkingSpotService) { s.newID = newID }
}

type ParkingSpotService struct {
	repo  repository.ParkingSpotRepository
	log   *zap.Logger
	now   func() time.Time
	newID func() uuid.UUID
}

func NewParkingSpotService(repo repository.ParkingSpotRepository, log *zap.Logger, opts ...Option) *ParkingSpotService {
	s := &ParkingSpotService{
		repo:  repo,
		log:   log,
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// checkAvailability runs the uniqueness rules in order and stops at the first hit.
func (s *ParkingSpotService) checkAvailability(ctx context.Context, dto domain.ParkingSpotDTO) error {
	taken, err := s.repo.ExistsByLicensePlateCar(ctx, dto.LicensePlateCar)
	if err != nil {
		return fmt.Errorf("checking license plate: %w", err)
	}
	if taken {
		return &ConflictError{Key: repository.KeyLicensePlateCar}
	}

	taken, err = s.repo.ExistsByParkingSpotNumber(ctx, dto.ParkingSpotNumber)
	if err != nil {
		return fmt.Errorf("checking parking spot number: %w", err)
	}
	if taken {
		return &ConflictError{Key: repository.KeyParkingSpotNumber}
	}

	taken, err = s.repo.ExistsByApartmentAndBlock(ctx, dto.Apartment, dto.Block)
	if err != nil {
		return fmt.Errorf("checking apartment/block: %w", err)
	}
	if taken {
		return &ConflictError{Key: repository.KeyApartmentBlock}
	}
	return nil
}

func (s *ParkingSpotService) Create(ctx context.Context, dto domain.ParkingSpotDTO) (*domain.ParkingSpot, error) {
	if err := s.checkAvailability(ctx, dto); err != nil {
		return nil, err
	}

	spot := domain.NewParkingSpotFromDTO(dto)
	spot.ID = s.newID()
	// microsecond precision, same as TIMESTAMPTZ
	spot.RegistrationDate = s.now().UTC().Truncate(time.Microsecond)

	created, err := s.repo.Create(ctx, spot)
	if err != nil {
		return nil, conflictFromStore(err)
	}
	s.log.Info("parking spot created",
		zap.String("id", created.ID.String()),
		zap.String("parking_spot_number", created.ParkingSpotNumber))
	return created, nil
}

func (s *ParkingSpotService) List(ctx context.Context) ([]domain.ParkingSpot, error) {
	return s.repo.FindAll(ctx)
}

func (s *ParkingSpotService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites the descriptive fields of an existing spot. Uniqueness is not
// pre-checked here; a clash is still caught by the store's unique keys.
func (s *ParkingSpotService) Update(ctx context.Context, id uuid.UUID, dto domain.ParkingSpotDTO) (*domain.ParkingSpot, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	spot := *existing
	spot.ApplyDTO(dto)

	updated, err := s.repo.Update(ctx, &spot)
	if err != nil {
		return nil, conflictFromStore(err)
	}
	s.log.Info("parking spot updated", zap.String("id", updated.ID.String()))
	return updated, nil
}

func (s *ParkingSpotService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("parking spot deleted", zap.String("id", id.String()))
	return nil
}

func (s *ParkingSpotService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
