package domain

type Airplane struct {
	ID        int64          `json:"id"`
	Model     string         `json:"modelo"`
	Capacity  int            `json:"capacidad"`
	AirlineID int64          `json:"aerolineaId"`
	Status    AirplaneStatus `json:"estado"`
}
