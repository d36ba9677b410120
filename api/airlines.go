package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type AirlineHandler struct {
	service store.AirlineUseCase
}

func NewAirlineHandler(service store.AirlineUseCase) *AirlineHandler {
	return &AirlineHandler{service: service}
}

func (h *AirlineHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
}

func (h *AirlineHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarAerolineas", h.list)
	router.GET("/BuscarAerolinea/:id", h.get)
	router.POST("/AgregarAerolinea", h.create)
	router.PUT("/ModificarAerolinea/:id", h.update)
	router.DELETE("/EstadoAerolinea/:id", h.toggle)
}

func (h *AirlineHandler) list(c *gin.Context) {
	airlines, err := h.service.ListAirlines(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

func (h *AirlineHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airline, err := h.service.GetAirline(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

func (h *AirlineHandler) create(c *gin.Context) {
	var req store.CreateAirlineInput
	if !bindJSON(c, &req) {
		return
	}
	airline, err := h.service.CreateAirline(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airline)
}

func (h *AirlineHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdateAirlineInput
	if !bindJSON(c, &req) {
		return
	}
	airline, err := h.service.UpdateAirline(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}

func (h *AirlineHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airline, err := h.service.ToggleAirlineStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}
