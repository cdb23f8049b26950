package handler

import (
	"errors"
	"net/http"
	"parking_control/internal/domain"
	"parking_control/internal/repository"
	"parking_control/internal/service"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgNotFound        = "Parking Spot not found!"
	msgNotFoundOnWrite = "Parking Spot Not Found!"
	msgDeleted         = "Parking Spot deleted Successfully"
)

var registerOnce sync.Once

// registerValidators adds the "notblank" rule used by domain.ParkingSpotDTO to gin's validator.
func registerValidators() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("notblank", validators.NotBlank)
		}
	})
}

type ParkingSpotHandler struct {
	spotService *service.ParkingSpotService
	log         *zap.Logger
}

func NewParkingSpotHandler(ss *service.ParkingSpotService, log *zap.Logger) *ParkingSpotHandler {
	registerValidators()
	return &ParkingSpotHandler{spotService: ss, log: log}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parking spot id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ParkingSpotHandler) internalError(c *gin.Context, op string, err error) {
	h.log.Error(op, zap.Error(err))
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// POST /parking-spot
func (h *ParkingSpotHandler) CreateParkingSpot(c *gin.Context) {
	var dto domain.ParkingSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spot, err := h.spotService.Create(c.Request.Context(), dto)
	if err != nil {
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			c.String(http.StatusConflict, conflict.Error())
			return
		}
		if errors.Is(err, repository.ErrDuplicateEntry) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.internalError(c, "create parking spot", err)
		return
	}
	c.JSON(http.StatusCreated, spot)
}

// GET /parking-spot
func (h *ParkingSpotHandler) GetAllParkingSpots(c *gin.Context) {
	spots, err := h.spotService.List(c.Request.Context())
	if err != nil {
		h.internalError(c, "list parking spots", err)
		return
	}
	c.JSON(http.StatusOK, spots)
}

// GET /parking-spot/:id
func (h *ParkingSpotHandler) GetParkingSpotByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	spot, err := h.spotService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, msgNotFound)
			return
		}
		h.internalError(c, "get parking spot", err)
		return
	}
	c.JSON(http.StatusOK, spot)
}

// DELETE /parking-spot/:id
func (h *ParkingSpotHandler) DeleteParkingSpot(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.spotService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, msgNotFoundOnWrite)
			return
		}
		h.internalError(c, "delete parking spot", err)
		return
	}
	c.String(http.StatusOK, msgDeleted)
}

// PUT /parking-spot/:id
func (h *ParkingSpotHandler) UpdateParkingSpot(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var dto domain.ParkingSpotDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spot, err := h.spotService.Update(c.Request.Context(), id, dto)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, msgNotFoundOnWrite)
			return
		}
		var conflict *service.ConflictError
		if errors.As(err, &conflict) {
			c.String(http.StatusConflict, conflict.Error())
			return
		}
		h.internalError(c, "update parking spot", err)
		return
	}
	c.JSON(http.StatusOK, spot)
}
