package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service store.FlightUseCase
}

func NewFlightHandler(service store.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
}

func (h *FlightHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarVuelos", h.list)
	router.GET("/BuscarVuelo/:id", h.get)
	router.POST("/AgregarVuelo", h.create)
	router.PUT("/ModificarVuelo/:id", h.update)
	router.DELETE("/EstadoVuelo/:id", h.toggle)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.GetFlight(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req store.CreateFlightInput
	if !bindJSON(c, &req) {
		return
	}
	flight, err := h.service.CreateFlight(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdateFlightInput
	if !bindJSON(c, &req) {
		return
	}
	flight, err := h.service.UpdateFlight(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	flight, err := h.service.ToggleFlightStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}
