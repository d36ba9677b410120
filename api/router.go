package api

import (
	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

// NewRouter registers the resource routes and the legacy verb-style routes on
// a fresh gin engine.
func NewRouter(service store.UseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	airlines := NewAirlineHandler(service)
	passengers := NewPassengerHandler(service)
	airplanes := NewAirplaneHandler(service)
	flights := NewFlightHandler(service)
	seats := NewSeatHandler(service)
	payments := NewPaymentHandler(service)
	tickets := NewTicketHandler(service)

	airlines.Register(router.Group("/aerolineas"))
	passengers.Register(router.Group("/pasajeros"))
	airplanes.Register(router.Group("/aviones"))
	flights.Register(router.Group("/vuelos"))
	seats.Register(router.Group("/asientos"))
	payments.Register(router.Group("/pagos"))
	tickets.Register(router.Group("/boletas"))

	airlines.RegisterLegacy(router)
	passengers.RegisterLegacy(router)
	airplanes.RegisterLegacy(router)
	flights.RegisterLegacy(router)
	seats.RegisterLegacy(router)
	payments.RegisterLegacy(router)
	tickets.RegisterLegacy(router)

	return router
}
