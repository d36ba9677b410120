package api

import (
	"net/http"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service store.PassengerUseCase
}

// passengerResponse never carries the password hash.
type passengerResponse struct {
	ID        int64                 `json:"id"`
	DNI       string                `json:"dni"`
	FirstName string                `json:"nombre"`
	LastName  string                `json:"apellido,omitempty"`
	Email     string                `json:"gmail,omitempty"`
	Phone     string                `json:"numero_telefono,omitempty"`
	Status    domain.ActivityStatus `json:"estado"`
}

func toPassengerResponse(p *domain.Passenger) passengerResponse {
	return passengerResponse{
		ID:        p.ID,
		DNI:       p.DNI,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Phone:     p.Phone,
		Status:    p.Status,
	}
}

func NewPassengerHandler(service store.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
	router.POST("", h.create)
	router.PUT("/:id", h.update)
	router.PATCH("/:id/estado", h.toggle)
}

func (h *PassengerHandler) RegisterLegacy(router gin.IRoutes) {
	router.GET("/ListarPasajeros", h.list)
	router.GET("/BuscarPasajero/:dni", h.getByDNI)
	router.POST("/SubirPasajero", h.create)
	router.PUT("/ModificarPasajero/:id", h.update)
	router.DELETE("/EstadoPasajero/:id", h.toggle)
}

// list answers ?dni= with the single matching passenger.
func (h *PassengerHandler) list(c *gin.Context) {
	if dni, ok := c.GetQuery("dni"); ok {
		h.findByDNI(c, dni)
		return
	}

	passengers, err := h.service.ListPassengers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]passengerResponse, 0, len(passengers))
	for i := range passengers {
		resp = append(resp, toPassengerResponse(&passengers[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PassengerHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	passenger, err := h.service.GetPassenger(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

func (h *PassengerHandler) getByDNI(c *gin.Context) {
	h.findByDNI(c, c.Param("dni"))
}

func (h *PassengerHandler) findByDNI(c *gin.Context, dni string) {
	passenger, err := h.service.GetPassengerByDNI(c.Request.Context(), dni)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req store.CreatePassengerInput
	if !bindJSON(c, &req) {
		return
	}
	passenger, err := h.service.CreatePassenger(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPassengerResponse(passenger))
}

func (h *PassengerHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req store.UpdatePassengerInput
	if !bindJSON(c, &req) {
		return
	}
	passenger, err := h.service.UpdatePassenger(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}

func (h *PassengerHandler) toggle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	passenger, err := h.service.TogglePassengerStatus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerResponse(passenger))
}
