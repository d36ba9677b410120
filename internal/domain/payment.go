package domain

import "time"

type Payment struct {
	ID          int64          `json:"id"`
	PassengerID int64          `json:"pasajeroId"`
	FlightID    int64          `json:"vueloId"`
	SeatID      int64          `json:"asientoId"`
	Method      string         `json:"metodoPago"`
	Date        time.Time      `json:"fecha"`
	Status      ActivityStatus `json:"estado"`
}
