package domain

type Seat struct {
	ID        int64      `json:"id"`
	FlightID  int64      `json:"vueloId"`
	Number    string     `json:"numero"`
	Class     string     `json:"clase"`
	Price     float64    `json:"precio"`
	Available bool       `json:"disponible"`
	Status    SeatStatus `json:"estado"`
}
