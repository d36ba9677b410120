package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/aerolinea/internal/kafka"
)

// Sender renders passenger notifications. Delivery is a write to out; a real
// mail gateway plugs in here.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func NewSenderTo(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.Event) error {
	if event.Email == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(s.out, "to=%s subject=%q\n%s\n", event.Email, Subject(event), Body(event))
	return err
}

func Subject(event kafka.Event) string {
	switch event.Type {
	case kafka.EventPaymentCreated:
		return fmt.Sprintf("Payment received for flight %d", event.FlightID)
	case kafka.EventTicketIssued:
		return fmt.Sprintf("Your ticket for flight %d", event.FlightID)
	default:
		return fmt.Sprintf("Booking update (%s)", event.Type)
	}
}

func Body(event kafka.Event) string {
	switch event.Type {
	case kafka.EventPaymentCreated:
		return fmt.Sprintf("Hello %s, seat %s on flight %d is now reserved for you.",
			event.PassengerName, event.SeatNumber, event.FlightID)
	case kafka.EventTicketIssued:
		return fmt.Sprintf("Hello %s, ticket #%d: %s -> %s departing %s, seat %s, price %.2f.",
			event.PassengerName, event.EntityID, event.Origin, event.Destination, event.Departure, event.SeatNumber, event.Amount)
	default:
		return fmt.Sprintf("Hello %s, flight %d seat %s was updated.", event.PassengerName, event.FlightID, event.SeatNumber)
	}
}
