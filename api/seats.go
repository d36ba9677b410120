package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	service store.SeatUseCase
}

func NewSeatHandler(service store.SeatUseCase) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
	router.DELETE("/:id", h.delete)
}

func (h *SeatHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarAsientos", h.list)
	router.GET("/ListarAsientosPorClase/:clase", h.listByClassParam)
	router.GET("/BuscarAsiento/:id", h.get)
	router.POST("/AgregarAsiento", h.create)
	router.PUT("/ModificarAsiento/:id", h.update)
	router.DELETE("/EstadoAsiento/:id", h.toggle)
}

func (h *SeatHandler) list(c *gin.Context) {
	if class, ok := c.GetQuery("clase"); ok {
		h.listByClass(c, class)
		return
	}

	seats, err := h.service.ListSeats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *SeatHandler) listByClassParam(c *gin.Context) {
	h.listByClass(c, c.Param("clase"))
}

func (h *SeatHandler) listByClass(c *gin.Context, class string) {
	seats, err := h.service.ListSeatsByClass(c.Request.Context(), class)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seats)
}

func (h *SeatHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	seat, err := h.service.GetSeat(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}

func (h *SeatHandler) create(c *gin.Context) {
	var req store.CreateSeatInput
	if !bindJSON(c, &req) {
		return
	}
	seat, err := h.service.CreateSeat(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, seat)
}

func (h *SeatHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdateSeatInput
	if !bindJSON(c, &req) {
		return
	}
	seat, err := h.service.UpdateSeat(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}

func (h *SeatHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	seat, err := h.service.ToggleSeatStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}

func (h *SeatHandler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteSeat(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
