package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketUnmarshal(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		seatID     int64
		seatNumber string
	}{
		{"current shape", `{"id":1,"asientoId":7,"num_asiento":"12C"}`, 7, "12C"},
		{"seat id in num_asiento", `{"id":1,"num_asiento":7}`, 7, "7"},
		{"asientoId wins", `{"id":1,"asientoId":9,"num_asiento":7}`, 9, "7"},
		{"no seat", `{"id":1,"num_asiento":null}`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ticket Ticket
			require.NoError(t, json.Unmarshal([]byte(tt.body), &ticket))
			assert.Equal(t, int64(1), ticket.ID)
			assert.Equal(t, tt.seatID, ticket.SeatID)
			assert.Equal(t, tt.seatNumber, ticket.SeatNumber)
		})
	}
}

func TestTicketUnmarshal_BadSeatNumber(t *testing.T) {
	var ticket Ticket
	err := json.Unmarshal([]byte(`{"id":4,"num_asiento":true}`), &ticket)
	assert.ErrorContains(t, err, "num_asiento")
}

func TestTicketUnmarshal_RoundTrip(t *testing.T) {
	in := Ticket{ID: 2, SeatID: 5, SeatNumber: "5B", Status: TicketStatusPurchased, Route: Leg{Departure: "Lima", Arrival: "Cusco"}}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Ticket
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
