package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type AirplaneHandler struct {
	service store.AirplaneUseCase
}

func NewAirplaneHandler(service store.AirplaneUseCase) *AirplaneHandler {
	return &AirplaneHandler{service: service}
}

func (h *AirplaneHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
}

func (h *AirplaneHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarAviones", h.list)
	router.GET("/BuscarAvion/:id", h.get)
	router.GET("/BuscarAvionPorModelo/:modelo", h.getByModel)
	router.POST("/AgregarAvion", h.create)
	router.DELETE("/ModificarEstadoAvion/:id", h.toggle)
}

func (h *AirplaneHandler) list(c *gin.Context) {
	if model, ok := c.GetQuery("modelo"); ok {
		h.findByModel(c, model)
		return
	}

	airplanes, err := h.service.ListAirplanes(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplanes)
}

func (h *AirplaneHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.GetAirplane(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) getByModel(c *gin.Context) {
	h.findByModel(c, c.Param("modelo"))
}

func (h *AirplaneHandler) findByModel(c *gin.Context, model string) {
	airplane, err := h.service.GetAirplaneByModel(c.Request.Context(), model)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) create(c *gin.Context) {
	var req store.CreateAirplaneInput
	if !bindJSON(c, &req) {
		return
	}
	airplane, err := h.service.CreateAirplane(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, airplane)
}

func (h *AirplaneHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdateAirplaneInput
	if !bindJSON(c, &req) {
		return
	}
	airplane, err := h.service.UpdateAirplane(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}

func (h *AirplaneHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	airplane, err := h.service.ToggleAirplaneStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, airplane)
}
