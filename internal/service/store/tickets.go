package store

import (
	"context"

	"github.com/Domenick1991/aerolinea/internal/domain"
	"github.com/Domenick1991/aerolinea/internal/kafka"
)

type TicketUseCase interface {
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	GetTicket(ctx context.Context, id int64) (*domain.Ticket, error)
	IssueTicket(ctx context.Context, input IssueTicketInput) (*domain.Ticket, error)
	UpdateTicket(ctx context.Context, id int64, input UpdateTicketInput) (*domain.Ticket, error)
	ToggleTicketStatus(ctx context.Context, id int64) (*domain.Ticket, error)
}

type IssueTicketInput struct {
	PassengerID int64 `json:"pasajeroId" validate:"required"`
	SeatID      int64 `json:"asientoId" validate:"required"`
	FlightID    int64 `json:"vueloId" validate:"required"`
}

// UpdateTicketInput only allows correcting the printed name; everything else
// on a ticket is a snapshot.
type UpdateTicketInput struct {
	PassengerName *string `json:"nombre" validate:"omitnil,min=1"`
}

func (s *Store) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	ds, err := s.snapshot(ctx, "store.ListTickets")
	if err != nil {
		return nil, err
	}
	return ds.Tickets, nil
}

func (s *Store) GetTicket(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "store.GetTicket"
	ds, err := s.snapshot(ctx, op)
	if err != nil {
		return nil, err
	}
	i := indexByID(ds.Tickets, id)
	if i < 0 {
		return nil, domain.NotFound(op, "ticket", id)
	}
	t := ds.Tickets[i]
	return &t, nil
}

func (s *Store) IssueTicket(ctx context.Context, input IssueTicketInput) (*domain.Ticket, error) {
	const op = "store.IssueTicket"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var (
		created domain.Ticket
		email   string
	)
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		pi, fi, si, err := resolveBooking(op, ds, input.PassengerID, input.FlightID, input.SeatID)
		if err != nil {
			return err
		}
		if hasTicket(ds.Tickets, input.SeatID) {
			return domain.NewError(op, domain.ErrConflict, "seat %d already has a ticket", input.SeatID)
		}

		passenger, flight, seat := ds.Passengers[pi], ds.Flights[fi], ds.Seats[si]
		created = domain.Ticket{
			ID:            nextID(ds.Tickets),
			PassengerID:   passenger.ID,
			SeatID:        seat.ID,
			PassengerName: passenger.FullName(),
			SeatNumber:    seat.Number,
			Class:         seat.Class,
			Price:         seat.Price,
			FlightID:      flight.ID,
			Schedule:      domain.Leg{Departure: flight.DepartureTime, Arrival: flight.ArrivalTime},
			Route:         domain.Leg{Departure: flight.Origin, Arrival: flight.Destination},
			Status:        domain.TicketStatusPurchased,
			PurchasedAt:   s.now().UTC(),
		}
		ds.Tickets = append(ds.Tickets, created)
		email = passenger.Email
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.Event{
		Type:          kafka.EventTicketIssued,
		EntityID:      created.ID,
		PassengerID:   created.PassengerID,
		PassengerName: created.PassengerName,
		Email:         email,
		FlightID:      created.FlightID,
		SeatID:        created.SeatID,
		SeatNumber:    created.SeatNumber,
		Origin:        created.Route.Departure,
		Destination:   created.Route.Arrival,
		Departure:     created.Schedule.Departure,
		Amount:        created.Price,
		OccurredAt:    created.PurchasedAt,
	})
	return &created, nil
}

func (s *Store) UpdateTicket(ctx context.Context, id int64, input UpdateTicketInput) (*domain.Ticket, error) {
	const op = "store.UpdateTicket"
	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	var updated domain.Ticket
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Tickets, id)
		if i < 0 {
			return domain.NotFound(op, "ticket", id)
		}
		if input.PassengerName != nil {
			ds.Tickets[i].PassengerName = *input.PassengerName
		}
		updated = ds.Tickets[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Store) ToggleTicketStatus(ctx context.Context, id int64) (*domain.Ticket, error) {
	const op = "store.ToggleTicketStatus"
	var updated domain.Ticket
	err := s.mutate(ctx, op, func(ds *domain.Dataset) error {
		i := indexByID(ds.Tickets, id)
		if i < 0 {
			return domain.NotFound(op, "ticket", id)
		}
		ds.Tickets[i].Status = ds.Tickets[i].Status.Toggle()
		updated = ds.Tickets[i]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func hasTicket(tickets []domain.Ticket, seatID int64) bool {
	return indexWhere(tickets, func(t domain.Ticket) bool { return t.SeatID == seatID }) >= 0
}
