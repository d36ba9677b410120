package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service store.TicketUseCase
}

func NewTicketHandler(service store.TicketUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.issue)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
}

func (h *TicketHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarBoletas", h.list)
	router.GET("/BuscarBoleta/:id", h.get)
	router.POST("/GenerarBoleta", h.issue)
	router.PUT("/ModificarBoleta/:id", h.update)
	router.DELETE("/EstadoBoleta/:id", h.toggle)
}

func (h *TicketHandler) list(c *gin.Context) {
	tickets, err := h.service.ListTickets(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ticket, err := h.service.GetTicket(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) issue(c *gin.Context) {
	var req store.IssueTicketInput
	if !bindJSON(c, &req) {
		return
	}
	ticket, err := h.service.IssueTicket(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *TicketHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdateTicketInput
	if !bindJSON(c, &req) {
		return
	}
	ticket, err := h.service.UpdateTicket(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

func (h *TicketHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ticket, err := h.service.ToggleTicketStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}
