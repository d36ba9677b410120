package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/Domenick1991/aerolinea/internal/service/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of store.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) ListFlights(ctx context.Context) ([]domain.FlightSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightUseCase) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) CreateFlight(ctx context.Context, input store.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) UpdateFlight(ctx context.Context, id int64, input store.UpdateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) ToggleFlightStatus(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/vuelos", nil)

	flights := []domain.FlightSummary{
		{
			Flight:        domain.Flight{ID: 1, AirplaneID: 1, Origin: "Lima", Destination: "Cusco", SeatLimit: 180, Status: domain.StatusActive},
			AirplaneModel: "737",
		},
	}

	mockService.On("ListFlights", c.Request.Context()).Return(flights, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]any
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response, 1)
	assert.Equal(t, "737", response[0]["avionModelo"])
	assert.Equal(t, "Lima", response[0]["origen"])
	assert.EqualValues(t, 180, response[0]["limiteAsientos"])

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/vuelos/1", nil)

	flight := &domain.Flight{ID: 1, AirplaneID: 1, Origin: "Lima", Destination: "Cusco", SeatLimit: 180, Status: domain.StatusActive}

	mockService.On("GetFlight", c.Request.Context(), int64(1)).Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.Flight
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, *flight, response)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_notFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest("GET", "/vuelos/7", nil)

	mockService.On("GetFlight", c.Request.Context(), int64(7)).Return(nil, domain.NotFound("store.GetFlight", "flight", 7))

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response errorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "flight 7 not found", response.Error)
	assert.Equal(t, codeNotFound, response.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_invalidID(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/vuelos/abc", nil)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetFlight", mock.Anything, mock.Anything)
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := store.CreateFlightInput{
		AirplaneID:    3,
		Origin:        "Lima",
		Destination:   "Cusco",
		DepartureTime: "08:00",
		ArrivalTime:   "09:20",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/vuelos", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	flight := &domain.Flight{ID: 1, AirplaneID: 3, Origin: "Lima", Destination: "Cusco", SeatLimit: 2, Status: domain.StatusActive}

	mockService.On("CreateFlight", c.Request.Context(), input).Return(flight, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_brokenAirplane(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := store.CreateFlightInput{AirplaneID: 3}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/vuelos", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("CreateFlight", c.Request.Context(), input).
		Return(nil, domain.NewError("store.CreateFlight", domain.ErrConflict, "airplane 3 is AVERIADO"))

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response errorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, codeConflict, response.Code)
	assert.Equal(t, "airplane 3 is AVERIADO", response.Error)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_malformedBody(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest("POST", "/vuelos", bytes.NewBufferString(`{"avionId": "one"`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateFlight", mock.Anything, mock.Anything)
}
