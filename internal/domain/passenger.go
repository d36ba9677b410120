package domain

type Passenger struct {
	ID           int64          `json:"id"`
	DNI          string         `json:"dni"`
	FirstName    string         `json:"nombre"`
	LastName     string         `json:"apellido,omitempty"`
	Email        string         `json:"gmail,omitempty"`
	Phone        string         `json:"numero_telefono,omitempty"`
	PasswordHash string         `json:"contrasena,omitempty"`
	Status       ActivityStatus `json:"estado"`
}

// FullName is the name printed on tickets.
func (p Passenger) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
