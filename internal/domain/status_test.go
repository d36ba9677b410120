package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusToggle_IsInvolution(t *testing.T) {
	assert.Equal(t, StatusActive, StatusActive.Toggle().Toggle())
	assert.Equal(t, StatusInactive, StatusInactive.Toggle().Toggle())
	assert.Equal(t, AirplaneStatusAvailable, AirplaneStatusAvailable.Toggle().Toggle())
	assert.Equal(t, AirplaneStatusBroken, AirplaneStatusBroken.Toggle().Toggle())
	assert.Equal(t, SeatStatusUnreserved, SeatStatusUnreserved.Toggle().Toggle())
	assert.Equal(t, SeatStatusReserved, SeatStatusReserved.Toggle().Toggle())
	assert.Equal(t, TicketStatusPurchased, TicketStatusPurchased.Toggle().Toggle())
	assert.Equal(t, TicketStatusCancelled, TicketStatusCancelled.Toggle().Toggle())
}

func TestStatusToggle_Flips(t *testing.T) {
	assert.Equal(t, StatusInactive, StatusActive.Toggle())
	assert.Equal(t, AirplaneStatusBroken, AirplaneStatusAvailable.Toggle())
	assert.Equal(t, SeatStatusReserved, SeatStatusUnreserved.Toggle())
	assert.Equal(t, TicketStatusCancelled, TicketStatusPurchased.Toggle())
}

func TestStatusToggle_UnknownConverges(t *testing.T) {
	assert.Equal(t, StatusInactive, ActivityStatus("").Toggle())
	assert.Equal(t, AirplaneStatusBroken, AirplaneStatus("").Toggle())
}

func TestNewDataset_HasEmptyCollections(t *testing.T) {
	ds := NewDataset()
	assert.NotNil(t, ds.Airlines)
	assert.NotNil(t, ds.Tickets)
	assert.Len(t, ds.Seats, 0)
}

func TestPassengerFullName(t *testing.T) {
	assert.Equal(t, "Ana", Passenger{FirstName: "Ana"}.FullName())
	assert.Equal(t, "Ana Perez", Passenger{FirstName: "Ana", LastName: "Perez"}.FullName())
}
