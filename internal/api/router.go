package api

import (
	"parking_control/internal/api/handler"
	"parking_control/internal/api/middleware"
	"parking_control/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter(ss *service.ParkingSpotService, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	healthH := handler.NewHealthHandler(ss)
	r.GET("/healthz", healthH.Health)

	spotH := handler.NewParkingSpotHandler(ss, log)
	spotRoutes := r.Group("/parking-spot")
	{
		spotRoutes.POST("", spotH.CreateParkingSpot)
		spotRoutes.GET("", spotH.GetAllParkingSpots)
		spotRoutes.GET("/:id", spotH.GetParkingSpotByID)
		spotRoutes.PUT("/:id", spotH.UpdateParkingSpot)
		spotRoutes.DELETE("/:id", spotH.DeleteParkingSpot)
	}
	return r
}
