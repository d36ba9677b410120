package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service store.PaymentUseCase
}

func NewPaymentHandler(service store.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.pay)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
}

func (h *PaymentHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarPagos", h.list)
	router.GET("/BuscarPago/:id", h.get)
	router.PUT("/ModificarPago/:id", h.update)
	router.POST("/RealizarPago", h.pay)
	router.DELETE("/EstadoPago/:id", h.toggle)
}

func (h *PaymentHandler) list(c *gin.Context) {
	payments, err := h.service.ListPayments(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.GetPayment(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) pay(c *gin.Context) {
	var req store.PayInput
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.service.Pay(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdatePaymentInput
	if !bindJSON(c, &req) {
		return
	}
	payment, err := h.service.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.TogglePaymentStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
