package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/travelwise/travelwise-api/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	Close() error
}

type Bus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
}

type NATSBus struct {
	conn *nats.Conn
}

func NewNATSBus(url string) (*NATSBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSBus{conn: conn}, nil
}

func (n *NATSBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
		})
	})
	return err
}

func (n *NATSBus) Close() error {
	n.conn.Close()
	return nil
}

// Subjects published by the API.
const (
	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"

	DestinationCreated = "destination.created"
	DestinationUpdated = "destination.updated"
	DestinationDeleted = "destination.deleted"

	HotelCreated = "hotel.created"
	HotelUpdated = "hotel.updated"
	HotelDeleted = "hotel.deleted"

	UserRegistered = "user.registered"
)

type BookingCreatedEvent struct {
	BookingID  string  `json:"booking_id"`
	UserID     string  `json:"user_id"`
	Type       string  `json:"type"`
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

type BookingStatusChangedEvent struct {
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	Status    string `json:"status"`
}

type CatalogItemEvent struct {
	ItemID string `json:"item_id"`
	Name   string `json:"name,omitempty"`
}

type UserRegisteredEvent struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
