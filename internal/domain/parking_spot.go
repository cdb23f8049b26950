package domain

import (
	"time"

	"github.com/google/uuid"
)

type ParkingSpot struct {
	ID                uuid.UUID `json:"id"`
	ParkingSpotNumber string    `json:"parkingSpotNumber"`
	LicensePlateCar   string    `json:"licensePlateCar"`
	BrandCar          string    `json:"brandCar"`
	ModelCar          string    `json:"modelCar"`
	ColorCar          string    `json:"colorCar"`
	RegistrationDate  time.Time `json:"registrationDate"`
	ResponsibleName   string    `json:"responsibleName"`
	Apartment         string    `json:"apartment"`
	Block             string    `json:"block"`
}

// ParkingSpotDTO is the request body for create and update. id and
// registrationDate are never read from it.
type ParkingSpotDTO struct {
	ParkingSpotNumber string `json:"parkingSpotNumber" binding:"required,notblank,max=10"`
	LicensePlateCar   string `json:"licensePlateCar" binding:"required,notblank,max=7"`
	BrandCar          string `json:"brandCar" binding:"required,notblank,max=70"`
	ModelCar          string `json:"modelCar" binding:"required,notblank,max=70"`
	ColorCar          string `json:"colorCar" binding:"required,notblank,max=70"`
	ResponsibleName   string `json:"responsibleName" binding:"required,notblank,max=130"`
	Apartment         string `json:"apartment" binding:"required,notblank,max=30"`
	Block             string `json:"block" binding:"required,notblank,max=30"`
}

func NewParkingSpotFromDTO(dto ParkingSpotDTO) *ParkingSpot {
	spot := &ParkingSpot{}
	spot.ApplyDTO(dto)
	return spot
}

// ApplyDTO overwrites every descriptive field. ID and RegistrationDate are left untouched.
func (p *ParkingSpot) ApplyDTO(dto ParkingSpotDTO) {
	p.ParkingSpotNumber = dto.ParkingSpotNumber
	p.LicensePlateCar = dto.LicensePlateCar
	p.BrandCar = dto.BrandCar
	p.ModelCar = dto.ModelCar
	p.ColorCar = dto.ColorCar
	p.ResponsibleName = dto.ResponsibleName
	p.Apartment = dto.Apartment
	p.Block = dto.Block
}
