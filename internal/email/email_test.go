package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/Domenick1991/aerolinea/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_SendTicketIssued(t *testing.T) {
	var buf bytes.Buffer
	sender := NewSenderTo(&buf)

	err := sender.Send(context.Background(), kafka.Event{
		Type:          kafka.EventTicketIssued,
		EntityID:      4,
		PassengerName: "Ana Perez",
		Email:         "ana@example.com",
		FlightID:      2,
		SeatNumber:    "12A",
		Origin:        "Lima",
		Destination:   "Cusco",
		Departure:     "2024-06-01T10:00",
		Amount:        99.5,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "to=ana@example.com")
	assert.Contains(t, out, "Your ticket for flight 2")
	assert.Contains(t, out, "Lima -> Cusco")
	assert.Contains(t, out, "99.50")
}

func TestSender_SkipsWithoutEmail(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSenderTo(&buf).Send(context.Background(), kafka.Event{Type: kafka.EventPaymentCreated}))
	assert.Empty(t, buf.String())
}

func TestSubject_Payment(t *testing.T) {
	assert.Equal(t, "Payment received for flight 7", Subject(kafka.Event{Type: kafka.EventPaymentCreated, FlightID: 7}))
}
