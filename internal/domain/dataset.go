package domain

import (
	"fmt"
	"strings"
)

// Dataset is the whole persisted document.
type Dataset struct {
	Airlines   []Airline   `json:"aerolineas"`
	Passengers []Passenger `json:"pasajeros"`
	Airplanes  []Airplane  `json:"aviones"`
	Flights    []Flight    `json:"vuelos"`
	Seats      []Seat      `json:"asientos"`
	Payments   []Payment   `json:"pagos"`
	Tickets    []Ticket    `json:"boletas"`
}

// Normalize replaces nil collections with empty ones so the document always
// serializes every key as an array.
func (d *Dataset) Normalize() *Dataset {
	if d.Airlines == nil {
		d.Airlines = []Airline{}
	}
	if d.Passengers == nil {
		d.Passengers = []Passenger{}
	}
	if d.Airplanes == nil {
		d.Airplanes = []Airplane{}
	}
	if d.Flights == nil {
		d.Flights = []Flight{}
	}
	if d.Seats == nil {
		d.Seats = []Seat{}
	}
	if d.Payments == nil {
		d.Payments = []Payment{}
	}
	if d.Tickets == nil {
		d.Tickets = []Ticket{}
	}
	return d
}

// NewDataset returns an empty, normalized dataset.
func NewDataset() *Dataset {
	return (&Dataset{}).Normalize()
}

// Check reports records that no store operation could have produced:
// repeated ids within a collection, a dni shared by two passengers, a seat
// number repeated on one flight and flights holding more seats than their limit.
func (d *Dataset) Check() error {
	var problems []string
	problems = append(problems, duplicateIDs("aerolineas", d.Airlines)...)
	problems = append(problems, duplicateIDs("pasajeros", d.Passengers)...)
	problems = append(problems, duplicateIDs("aviones", d.Airplanes)...)
	problems = append(problems, duplicateIDs("vuelos", d.Flights)...)
	problems = append(problems, duplicateIDs("asientos", d.Seats)...)
	problems = append(problems, duplicateIDs("pagos", d.Payments)...)
	problems = append(problems, duplicateIDs("boletas", d.Tickets)...)

	dnis := make(map[string]int64, len(d.Passengers))
	for _, p := range d.Passengers {
		if p.DNI == "" {
			continue
		}
		if first, ok := dnis[p.DNI]; ok {
			problems = append(problems, fmt.Sprintf("pasajeros: dni %s used by %d and %d", p.DNI, first, p.ID))
			continue
		}
		dnis[p.DNI] = p.ID
	}

	type seatKey struct {
		flightID int64
		number   string
	}
	numbers := make(map[seatKey]int64, len(d.Seats))
	perFlight := make(map[int64]int)
	for _, s := range d.Seats {
		perFlight[s.FlightID]++
		k := seatKey{s.FlightID, s.Number}
		if first, ok := numbers[k]; ok {
			problems = append(problems, fmt.Sprintf("asientos: %s on flight %d used by %d and %d", s.Number, s.FlightID, first, s.ID))
			continue
		}
		numbers[k] = s.ID
	}
	for _, f := range d.Flights {
		if n := perFlight[f.ID]; n > f.SeatLimit {
			problems = append(problems, fmt.Sprintf("vuelos: flight %d holds %d seats over its limit of %d", f.ID, n, f.SeatLimit))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return NewError("dataset.Check", ErrValidation, "%s", strings.Join(problems, "; "))
}

func duplicateIDs[T interface{ Key() int64 }](collection string, items []T) []string {
	seen := make(map[int64]bool, len(items))
	var out []string
	for _, item := range items {
		id := item.Key()
		if seen[id] {
			out = append(out, fmt.Sprintf("%s: id %d repeated", collection, id))
			continue
		}
		seen[id] = true
	}
	return out
}
