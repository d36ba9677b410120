package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

type FlightUseCase interface {
	ListFlights(ctx context.Context) ([]domain.FlightSummary, error)
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	CreateFlight(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
	UpdateFlight(ctx context.Context, id int64, input UpdateFlightInput) (*domain.Flight, error)
	ToggleFlightStatus(ctx context.Context, id int64) (*domain.Flight, error)
}

type CreateFlightInput struct {
	AirplaneID    int64  `json:"avionId" validate:"required"`
	Origin        string `json:"origen"`
	Destination   string `json:"destino"`
	DepartureTime string `json:"horario_salida"`
	ArrivalTime   string `json:"horario_llegada"`
}

type UpdateFlightInput struct {
	Origin        *string `json:"origen"`
	Destination   *string `json:"destino"`
	DepartureTime *string `json:"horario_salida"`
	ArrivalTime   *string `json:"horario_llegada"`
}

// ListFlights returns every flight with the model of its airplane.
func (s *Store) ListFlights(ctx context.Context) ([]domain.FlightSummary, error) {
	ds, err := s.snapshot(ctx, "store.ListFlights")
	if err != nil {
		return nil, err
	}

	models := make(map[int64]string, len(ds.Airplanes))
	for _, a := range ds.Airplanes {
		models[a.ID] = a.Model
	}

	out := make([]domain.FlightSummary, 0, len(ds.Flights))
	for _, f := range ds.Flights {
		model, ok := models[f.AirplaneID]
		if !ok {
			model = domain.UnknownAirplaneModel
		}
		out = append(out, domain.FlightSummary{Flight: f, AirplaneModel: model})
	}
	return out, nil
}

func (s *Store) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	const op = "store.GetFlight"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Flights, id)
	if i < 0 {
		return nil, domain.NotFound(op, "flight", id)
	}
	f := ds.Flights[i]
	return &f, nil
}

// CreateFlight fixes the seat limit to the airplane's capacity at creation.
func (s *Store) CreateFlight(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	const op = "store.CreateFlight"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var created domain.Flight
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Airplanes, input.AirplaneID)
		if i < 0 {
			return domain.NewError(op, domain.ErrReference, "airplane %d does not exist", input.AirplaneID)
		}
		airplane := ds.Airplanes[i]
		if airplane.Status == domain.AirplaneStatusBroken {
			return domain.NewError(op, domain.ErrConflict, "airplane %d is %s", airplane.ID, domain.AirplaneStatusBroken)
		}

		created = domain.Flight{
			ID:            nextID(ds.Flights),
			AirplaneID:    airplane.ID,
			Origin:        input.Origin,
			Destination:   input.Destination,
			DepartureTime: input.DepartureTime,
			ArrivalTime:   input.ArrivalTime,
			SeatLimit:     airplane.Capacity,
			Status:        domain.StatusActive,
		}
		ds.Flights = append(ds.Flights, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateFlight(ctx context.Context, id int64, input UpdateFlightInput) (*domain.Flight, error) {
	const op = "store.UpdateFlight"
	var updated domain.Flight
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Flights, id)
		if i < 0 {
			return domain.NotFound(op, "flight", id)
		}
		f := &ds.Flights[i]
		if input.Origin != nil {
			f.Origin = *input.Origin
		}
		if input.Destination != nil {
			f.Destination = *input.Destination
		}
		if input.DepartureTime != nil {
			f.DepartureTime = *input.DepartureTime
		}
		if input.ArrivalTime != nil {
			f.ArrivalTime = *input.ArrivalTime
		}
		updated = *f
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) ToggleFlightStatus(ctx context.Context, id int64) (*domain.Flight, error) {
	const op = "store.ToggleFlightStatus"
	var updated domain.Flight
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Flights, id)
		if i < 0 {
			return domain.NotFound(op, "flight", id)
		}
		ds.Flights[i].Status = ds.Flights[i].Status.Toggle()
		updated = ds.Flights[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
