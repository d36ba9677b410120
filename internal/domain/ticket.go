package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Ticket is a denormalized snapshot taken at issue time; later edits to the
// passenger, seat or flight do not propagate.
type Ticket struct {
	ID            int64        `json:"id"`
	PassengerID   int64        `json:"pasajeroId"`
	SeatID        int64        `json:"asientoId"`
	PassengerName string       `json:"nombre"`
	SeatNumber    string       `json:"num_asiento"`
	Class         string       `json:"clase"`
	Price         float64      `json:"precio"`
	FlightID      int64        `json:"vuelo_id"`
	Schedule      Leg          `json:"horario"`
	Route         Leg          `json:"lugar"`
	Status        TicketStatus `json:"estado"`
	PurchasedAt   time.Time    `json:"fecha_compra"`
}

// UnmarshalJSON also reads tickets written before asientoId existed, where
// num_asiento held the numeric seat id.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	type ticket Ticket
	var raw struct {
		ticket
		SeatNumber json.RawMessage `json:"num_asiento"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = Ticket(raw.ticket)

	if len(raw.SeatNumber) == 0 || string(raw.SeatNumber) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw.SeatNumber, &t.SeatNumber); err == nil {
		return nil
	}

	var seatID int64
	if err := json.Unmarshal(raw.SeatNumber, &seatID); err != nil {
		return fmt.Errorf("ticket %d: num_asiento: %w", t.ID, err)
	}
	t.SeatNumber = strconv.FormatInt(seatID, 10)
	if t.SeatID == 0 {
		t.SeatID = seatID
	}
	return nil
}

// Leg holds a departure/arrival pair, either times or places.
type Leg struct {
	Departure string `json:"salida"`
	Arrival   string `json:"llegada"`
}
