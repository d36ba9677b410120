package domain

// UnknownAirplaneModel is reported for flights whose airplane no longer resolves.
const UnknownAirplaneModel = "Desconocido"

type Flight struct {
	ID            int64          `json:"id"`
	AirplaneID    int64          `json:"avionId"`
	Origin        string         `json:"origen"`
	Destination   string         `json:"destino"`
	DepartureTime string         `json:"horario_salida"`
	ArrivalTime   string         `json:"horario_llegada"`
	SeatLimit     int            `json:"limiteAsientos"`
	Status        ActivityStatus `json:"estado"`
}

// FlightSummary is a flight listed together with its airplane model.
type FlightSummary struct {
	Flight
	AirplaneModel string `json:"avionModelo"`
}
