package domain

type Airline struct {
	ID     int64          `json:"id"`
	Name   string         `json:"nombre"`
	Email  string         `json:"gmail"`
	Phone  string         `json:"numero_telefono"`
	Status ActivityStatus `json:"estado"`
}
