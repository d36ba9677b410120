package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
)

type SeatUseCase interface {
	ListSeats(ctx context.Context) ([]domain.Seat, error)
	ListSeatsByClass(ctx context.Context, class string) ([]domain.Seat, error)
	GetSeat(ctx context.Context, id int64) (*domain.Seat, error)
	CreateSeat(ctx context.Context, input CreateSeatInput) (*domain.Seat, error)
	UpdateSeat(ctx context.Context, id int64, input UpdateSeatInput) (*domain.Seat, error)
	ToggleSeatStatus(ctx context.Context, id int64) (*domain.Seat, error)
	DeleteSeat(ctx context.Context, id int64) error
}

type CreateSeatInput struct {
	FlightID int64   `json:"vueloId" validate:"required"`
	Number   string  `json:"numero" validate:"required"`
	Class    string  `json:"clase" validate:"required"`
	Price    float64 `json:"precio"`
}

type UpdateSeatInput struct {
	Number *string  `json:"numero" validate:"omitnil,min=1"`
	Class  *string  `json:"clase" validate:"omitnil,min=1"`
	Price  *float64 `json:"precio"`
}

func (s *Store) ListSeats(ctx context.Context) ([]domain.Seat, error) {
	ds, err := s.snapshot(ctx, "store.ListSeats")
	if err != nil {
		return nil, err
	}
	return ds.Seats, nil
}

// ListSeatsByClass never fails on a miss; it returns an empty slice.
func (s *Store) ListSeatsByClass(ctx context.Context, class string) ([]domain.Seat, error) {
	ds, err := s.snapshot(ctx, "store.ListSeatsByClass")
	if err != nil {
		return nil, err
	}
	out := make([]domain.Seat, 0)
	for _, seat := range ds.Seats {
		if seat.Class == class {
			out = append(out, seat)
		}
	}
	return out, nil
}

func (s *Store) GetSeat(ctx context.Context, id int64) (*domain.Seat, error) {
	const op = "store.GetSeat"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Seats, id)
	if i < 0 {
		return nil, domain.NotFound(op, "seat", id)
	}
	seat := ds.Seats[i]
	return &seat, nil
}

func (s *Store) CreateSeat(ctx context.Context, input CreateSeatInput) (*domain.Seat, error) {
	const op = "store.CreateSeat"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var created domain.Seat
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		fi := indexByID(ds.Flights, input.FlightID)
		if fi < 0 {
			return domain.NewError(op, domain.ErrReference, "flight %d does not exist", input.FlightID)
		}
		flight := ds.Flights[fi]

		count := 0
		for _, seat := range ds.Seats {
			if seat.FlightID != flight.ID {
				continue
			}
			count++
			if seat.Number == input.Number {
				return domain.NewError(op, domain.ErrConflict, "seat %s already exists on flight %d", input.Number, flight.ID)
			}
		}
		if count >= flight.SeatLimit {
			return domain.NewError(op, domain.ErrConflict, "flight %d reached its seat limit of %d", flight.ID, flight.SeatLimit)
		}

		created = domain.Seat{
			ID:        nextID(ds.Seats),
			FlightID:  flight.ID,
			Number:    input.Number,
			Class:     input.Class,
			Price:     input.Price,
			Available: true,
			Status:    domain.SeatStatusUnreserved,
		}
		ds.Seats = append(ds.Seats, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Store) UpdateSeat(ctx context.Context, id int64, input UpdateSeatInput) (*domain.Seat, error) {
	const op = "store.UpdateSeat"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var updated domain.Seat
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Seats, id)
		if i < 0 {
			return domain.NotFound(op, "seat", id)
		}
		seat := &ds.Seats[i]
		if input.Number != nil && *input.Number != seat.Number {
			taken := indexWhere(ds.Seats, func(other domain.Seat) bool {
				return other.FlightID == seat.FlightID && other.Number == *input.Number
			}) >= 0
			if taken {
				return domain.NewError(op, domain.ErrConflict, "seat %s already exists on flight %d", *input.Number, seat.FlightID)
			}
			seat.Number = *input.Number
		}
		if input.Class != nil {
			seat.Class = *input.Class
		}
		if input.Price != nil {
			seat.Price = *input.Price
		}
		updated = *seat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ToggleSeatStatus keeps the legacy disponible flag in step with the status.
func (s *Store) ToggleSeatStatus(ctx context.Context, id int64) (*domain.Seat, error) {
	const op = "store.ToggleSeatStatus"
	var updated domain.Seat
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Seats, id)
		if i < 0 {
			return domain.NotFound(op, "seat", id)
		}
		seat := &ds.Seats[i]
		seat.Status = seat.Status.Toggle()
		seat.Available = seat.Status == domain.SeatStatusUnreserved
		updated = *seat
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSeat is the only hard delete. Seats referenced by an active payment
// or any ticket cannot be removed.
func (s *Store) DeleteSeat(ctx context.Context, id int64) error {
	const op = "store.DeleteSeat"
	return s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Seats, id)
		if i < 0 {
			return domain.NotFound(op, "seat", id)
		}
		if hasActivePayment(ds.Payments, id) {
			return domain.NewError(op, domain.ErrConflict, "seat %d has an active payment", id)
		}
		if hasTicket(ds.Tickets, id) {
			return domain.NewError(op, domain.ErrConflict, "seat %d has a ticket", id)
		}
		ds.Seats = append(ds.Seats[:i], ds.Seats[i+1:]...)
		return nil
	})
}
