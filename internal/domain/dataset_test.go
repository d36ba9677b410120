package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consistentDataset() *Dataset {
	ds := NewDataset()
	ds.Passengers = append(ds.Passengers,
		Passenger{ID: 1, DNI: "111"},
		Passenger{ID: 2, DNI: "222"},
	)
	ds.Flights = append(ds.Flights, Flight{ID: 1, SeatLimit: 2}, Flight{ID: 2, SeatLimit: 1})
	ds.Seats = append(ds.Seats,
		Seat{ID: 1, FlightID: 1, Number: "1A"},
		Seat{ID: 2, FlightID: 1, Number: "1B"},
		Seat{ID: 3, FlightID: 2, Number: "1A"},
	)
	return ds
}

func TestDatasetCheck_Consistent(t *testing.T) {
	assert.NoError(t, consistentDataset().Check())
	assert.NoError(t, NewDataset().Check())
}

func TestDatasetCheck(t *testing.T) {
	tests := []struct {
		name    string
		breakIt func(ds *Dataset)
		message string
	}{
		{
			name:    "repeated id",
			breakIt: func(ds *Dataset) { ds.Airlines = append(ds.Airlines, Airline{ID: 4}, Airline{ID: 4}) },
			message: "aerolineas: id 4 repeated",
		},
		{
			name:    "shared dni",
			breakIt: func(ds *Dataset) { ds.Passengers = append(ds.Passengers, Passenger{ID: 3, DNI: "111"}) },
			message: "pasajeros: dni 111 used by 1 and 3",
		},
		{
			name:    "seat number repeated on a flight",
			breakIt: func(ds *Dataset) { ds.Seats[1].Number = "1A" },
			message: "asientos: 1A on flight 1 used by 1 and 2",
		},
		{
			name:    "flight over its seat limit",
			breakIt: func(ds *Dataset) { ds.Seats = append(ds.Seats, Seat{ID: 4, FlightID: 2, Number: "1B"}) },
			message: "vuelos: flight 2 holds 2 seats over its limit of 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := consistentDataset()
			tt.breakIt(ds)

			err := ds.Check()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var derr *Error
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.message, derr.Message())
		})
	}
}
