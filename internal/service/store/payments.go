package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/Domenick1991/aerolinea/internal/kafka"
)

type PaymentUseCase interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	Pay(ctx context.Context, input PayInput) (*domain.Payment, error)
	UpdatePayment(ctx context.Context, id int64, input UpdatePaymentInput) (*domain.Payment, error)
	TogglePaymentStatus(ctx context.Context, id int64) (*domain.Payment, error)
}

type PayInput struct {
	PassengerID int64  `json:"pasajeroId" validate:"required"`
	FlightID    int64  `json:"vueloId" validate:"required"`
	SeatID      int64  `json:"asientoId" validate:"required"`
	Method      string `json:"metodoPago" validate:"required"`
}

type UpdatePaymentInput struct {
	Method *string `json:"metodoPago" validate:"omitnil,min=1"`
}

func (s *Store) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	ds, err := s.snapshot(ctx, "store.ListPayments")
	if err != nil {
		return nil, err
	}
	return ds.Payments, nil
}

func (s *Store) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	const op = "store.GetPayment"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Payments, id)
	if i < 0 {
		return nil, domain.NotFound(op, "payment", id)
	}
	p := ds.Payments[i]
	return &p, nil
}

// Pay records a payment and reserves the seat in the same write.
func (s *Store) Pay(ctx context.Context, input PayInput) (*domain.Payment, error) {
	const op = "store.Pay"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var (
		created   domain.Payment
		passenger domain.Passenger
		seat      domain.Seat
	)
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		pi, fi, si, err := resolveBooking(op, ds, input.PassengerID, input.FlightID, input.SeatID)
		if err != nil {
			return err
		}
		if hasActivePayment(ds.Payments, input.SeatID) {
			return domain.NewError(op, domain.ErrConflict, "seat %d already has an active payment", input.SeatID)
		}

		ds.Seats[si].Status = domain.SeatStatusReserved
		ds.Seats[si].Available = false

		created = domain.Payment{
			ID:          nextID(ds.Payments),
			PassengerID: ds.Passengers[pi].ID,
			FlightID:    ds.Flights[fi].ID,
			SeatID:      ds.Seats[si].ID,
			Method:      input.Method,
			Date:        s.now().UTC(),
			Status:      domain.StatusActive,
		}
		ds.Payments = append(ds.Payments, created)

		passenger = ds.Passengers[pi]
		seat = ds.Seats[si]
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.Event{
		Type:          kafka.EventPaymentCreated,
		EntityID:      created.ID,
		PassengerID:   passenger.ID,
		PassengerName: passenger.FullName(),
		Email:         passenger.Email,
		FlightID:      created.FlightID,
		SeatID:        seat.ID,
		SeatNumber:    seat.Number,
		Amount:        seat.Price,
		OccurredAt:    created.Date,
	})
	return &created, nil
}

func (s *Store) UpdatePayment(ctx context.Context, id int64, input UpdatePaymentInput) (*domain.Payment, error) {
	const op = "store.UpdatePayment"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var updated domain.Payment
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Payments, id)
		if i < 0 {
			return domain.NotFound(op, "payment", id)
		}
		if input.Method != nil {
			ds.Payments[i].Method = *input.Method
		}
		updated = ds.Payments[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// TogglePaymentStatus reactivating a payment is refused while another active
// payment holds the same seat.
func (s *Store) TogglePaymentStatus(ctx context.Context, id int64) (*domain.Payment, error) {
	const op = "store.TogglePaymentStatus"
	var updated domain.Payment
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Payments, id)
		if i < 0 {
			return domain.NotFound(op, "payment", id)
		}
		p := &ds.Payments[i]
		next := p.Status.Toggle()
		if next == domain.StatusActive && hasActivePayment(ds.Payments, p.SeatID) {
			return domain.NewError(op, domain.ErrConflict, "seat %d already has an active payment", p.SeatID)
		}
		p.Status = next
		updated = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// resolveBooking looks up the three records a payment or ticket points at and
// checks that the seat belongs to the flight.
func resolveBooking(op string, ds *domain.Dataset, passengerID, flightID, seatID int64) (pi, fi, si int, err error) {
	if pi = indexByID(ds.Passengers, passengerID); pi < 0 {
		return 0, 0, 0, domain.NotFound(op, "passenger", passengerID)
	}
	if fi = indexByID(ds.Flights, flightID); fi < 0 {
		return 0, 0, 0, domain.NotFound(op, "flight", flightID)
	}
	if si = indexByID(ds.Seats, seatID); si < 0 {
		return 0, 0, 0, domain.NotFound(op, "seat", seatID)
	}
	if ds.Seats[si].FlightID != flightID {
		return 0, 0, 0, domain.NewError(op, domain.ErrValidation, "seat %d does not belong to flight %d", seatID, flightID)
	}
	return pi, fi, si, nil
}

func hasActivePayment(payments []domain.Payment, seatID int64) bool {
	return indexWhere(payments, func(p domain.Payment) bool {
		return p.SeatID == seatID && p.Status == domain.StatusActive
	}) >= 0
}
