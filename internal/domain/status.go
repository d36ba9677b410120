package domain

// Each entity kind has exactly two states. Toggle maps any value that is not
// the "other" state back to it, so records written without a status converge
// after a single toggle.

type ActivityStatus string

const (
	StatusActive   ActivityStatus = "ACTIVO"
	StatusInactive ActivityStatus = "INACTIVO"
)

func (s ActivityStatus) Toggle() ActivityStatus {
	if s == StatusInactive {
		return StatusActive
	}
	return StatusInactive
}

type AirplaneStatus string

const (
	AirplaneStatusAvailable AirplaneStatus = "DISPONIBLE"
	AirplaneStatusBroken    AirplaneStatus = "AVERIADO"
)

func (s AirplaneStatus) Toggle() AirplaneStatus {
	if s == AirplaneStatusBroken {
		return AirplaneStatusAvailable
	}
	return AirplaneStatusBroken
}

type SeatStatus string

const (
	SeatStatusUnreserved SeatStatus = "SIN RESERVAR"
	SeatStatusReserved   SeatStatus = "RESERVADO"
)

func (s SeatStatus) Toggle() SeatStatus {
	if s == SeatStatusUnreserved {
		return SeatStatusReserved
	}
	return SeatStatusUnreserved
}

type TicketStatus string

const (
	TicketStatusPurchased TicketStatus = "COMPRADA"
	TicketStatusCancelled TicketStatus = "ANULADA"
)

func (s TicketStatus) Toggle() TicketStatus {
	if s == TicketStatusCancelled {
		return TicketStatusPurchased
	}
	return TicketStatusCancelled
}
