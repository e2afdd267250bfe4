package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"

	"github.com/sicparvisventures/reserve4you/internal/domain"
	"github.com/sicparvisventures/reserve4you/internal/schedule"
)

const (
	queueAdmitted      = "reservation.admitted"
	queueStatusChanged = "reservation.status_changed"

	publishTimeout = 5 * time.Second
)

// Publisher pushes reservation lifecycle messages to RabbitMQ for external
// collaborators (usage accounting, guest notification delivery). An empty
// URL disables publishing entirely; failures are logged, never propagated.
type Publisher struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	logger logger.Logger
}

func NewPublisher(url string, log logger.Logger) (*Publisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, reservation events disabled")
		return &Publisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	for _, q := range []string{queueAdmitted, queueStatusChanged} {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return nil, fmt.Errorf("declare queue %s: %w", q, err)
		}
	}

	return &Publisher{conn: conn, ch: ch, logger: log}, nil
}

func (p *Publisher) Close() error {
	if p.conn == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		return fmt.Errorf("close channel: %w", err)
	}
	return p.conn.Close()
}

type admittedMessage struct {
	ReservationID string  `json:"reservation_id"`
	VenueID       string  `json:"venue_id"`
	ShiftID       string  `json:"shift_id,omitempty"`
	ResourceID    *string `json:"resource_id,omitempty"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	PartySize     int     `json:"party_size"`
	AdmittedAt    string  `json:"admitted_at"`
}

type statusChangedMessage struct {
	ReservationID string `json:"reservation_id"`
	VenueID       string `json:"venue_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ChangedAt     string `json:"changed_at"`
}

func (p *Publisher) ReservationAdmitted(ctx context.Context, r *domain.Reservation) {
	p.publish(ctx, queueAdmitted, admittedMessage{
		ReservationID: r.ID,
		VenueID:       r.VenueID,
		ShiftID:       r.ShiftID,
		ResourceID:    r.ResourceID,
		Date:          r.Date,
		Time:          schedule.FormatClock(r.StartMin),
		PartySize:     r.PartySize,
		AdmittedAt:    r.CreatedAt.Format(time.RFC3339),
	})
}

func (p *Publisher) ReservationStatusChanged(ctx context.Context, r *domain.Reservation, from domain.ReservationStatus) {
	p.publish(ctx, queueStatusChanged, statusChangedMessage{
		ReservationID: r.ID,
		VenueID:       r.VenueID,
		From:          string(from),
		To:            string(r.Status),
		Date:          r.Date,
		Time:          schedule.FormatClock(r.StartMin),
		ChangedAt:     r.UpdatedAt.Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, queue string, msg any) {
	if p.ch == nil {
		return
	}

	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("marshal event",
			logger.String("queue", queue),
			logger.String("error", err.Error()),
		)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(pubCtx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		p.logger.Error("publish event",
			logger.String("queue", queue),
			logger.String("error", err.Error()),
		)
	}
}
