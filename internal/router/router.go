package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetAvailability(c *ginext.Context)
	AdmitReservation(c *ginext.Context)
	TransitionReservation(c *ginext.Context)
	GetReservation(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CreateVenue(c *ginext.Context)
	GetVenue(c *ginext.Context)
	ListVenues(c *ginext.Context)
	CreateShift(c *ginext.Context)
	ListShifts(c *ginext.Context)
	CreateResource(c *ginext.Context)
	ListResources(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Venues
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)

		// Venue configuration
		api.POST("/venues/:id/shifts", h.CreateShift)
		api.GET("/venues/:id/shifts", h.ListShifts)
		api.POST("/venues/:id/resources", h.CreateResource)
		api.GET("/venues/:id/resources", h.ListResources)

		// Availability and booking
		api.GET("/venues/:id/availability", h.GetAvailability)
		api.POST("/venues/:id/reservations", h.AdmitReservation)
		api.GET("/venues/:id/reservations", h.ListReservations)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/transition", h.TransitionReservation)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
