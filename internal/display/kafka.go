package display

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/checkout"
	"github.com/IbrahimKhaled19/Fawry-Challenge/internal/shipping"
	"github.com/IbrahimKhaled19/Fawry-Challenge/pkg/logging"
)

const (
	EventShipmentCreated = "shipment.created"
	EventOrderCompleted  = "order.completed"
	EventBalanceSettled  = "balance.settled"

	publishTimeout = 5 * time.Second
)

// Event is what downstream consumers receive for each checkout report.
type Event struct {
	EventID   string         `json:"event_id"`
	OrderID   string         `json:"order_id,omitempty"`
	Type      string         `json:"type"`
	CreatedAt time.Time      `json:"created_at"`
	Payload   map[string]any `json:"payload"`
}

// ParseBrokers splits a comma-separated broker list, dropping empty entries.
// An empty result means event publishing is disabled.
func ParseBrokers(brokersCSV string) []string {
	var brokers []string
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// KafkaSink publishes checkout reports as JSON events. Publish failures are
// logged, never surfaced: the checkout itself must not fail on a slow broker.
// Implements checkout.Sink.
type KafkaSink struct {
	writer *kafka.Writer
}

func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (s *KafkaSink) ShipmentNotice(notice shipping.Notice) {
	descriptions := make([]string, 0, len(notice.Items))
	for _, item := range notice.Items {
		descriptions = append(descriptions, item.Description)
	}
	s.publish(NewEvent(EventShipmentCreated, "", map[string]any{
		"items":        descriptions,
		"total_weight": notice.TotalWeight,
	}))
}

func (s *KafkaSink) Receipt(receipt checkout.Receipt) {
	s.publish(NewEvent(EventOrderCompleted, receipt.OrderID.String(), map[string]any{
		"lines":    receipt.Lines,
		"subtotal": receipt.Subtotal,
		"shipping": receipt.Shipping,
		"total":    receipt.Total,
	}))
}

func (s *KafkaSink) Balance(balance decimal.Decimal) {
	s.publish(NewEvent(EventBalanceSettled, "", map[string]any{
		"balance": balance,
	}))
}

func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

// NewEvent stamps a payload with an event id and creation time.
func NewEvent(eventType, orderID string, payload map[string]any) Event {
	return Event{
		EventID:   uuid.New().String(),
		OrderID:   orderID,
		Type:      eventType,
		CreatedAt: time.Now().UTC(),
		Payload:   payload,
	}
}

func (s *KafkaSink) publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logging.Log(logging.Fields{Service: "display", Step: "publish", Status: "failed", Message: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	key := event.OrderID
	if key == "" {
		key = event.EventID
	}
	err = s.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: data, Time: event.CreatedAt})
	if err != nil {
		logging.Log(logging.Fields{Service: "display", OrderID: event.OrderID, Step: "publish", Status: "failed", Message: err.Error()})
	}
}
