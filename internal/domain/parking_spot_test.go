package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func sampleDTO() ParkingSpotDTO {
	return ParkingSpotDTO{
		ParkingSpotNumber: "5",
		LicensePlateCar:   "ABC123",
		BrandCar:          "Fiat",
		ModelCar:          "Uno",
		ColorCar:          "red",
		ResponsibleName:   "Maria",
		Apartment:         "101",
		Block:             "A",
	}
}

func TestNewParkingSpotFromDTO(t *testing.T) {
	spot := NewParkingSpotFromDTO(sampleDTO())

	assert.Equal(t, uuid.Nil, spot.ID)
	assert.True(t, spot.RegistrationDate.IsZero())
	assert.Equal(t, "5", spot.ParkingSpotNumber)
	assert.Equal(t, "ABC123", spot.LicensePlateCar)
	assert.Equal(t, "Fiat", spot.BrandCar)
	assert.Equal(t, "Uno", spot.ModelCar)
	assert.Equal(t, "red", spot.ColorCar)
	assert.Equal(t, "Maria", spot.ResponsibleName)
	assert.Equal(t, "101", spot.Apartment)
	assert.Equal(t, "A", spot.Block)
}

func TestApplyDTOKeepsIdentity(t *testing.T) {
	id := uuid.New()
	registered := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	spot := &ParkingSpot{ID: id, RegistrationDate: registered, LicensePlateCar: "OLD0001"}

	dto := sampleDTO()
	dto.LicensePlateCar = "NEW0001"
	spot.ApplyDTO(dto)

	assert.Equal(t, id, spot.ID)
	assert.Equal(t, registered, spot.RegistrationDate)
	assert.Equal(t, "NEW0001", spot.LicensePlateCar)
}
