package notify

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the dispatch queue and fans each event out to email and
// SMS. Send failures are logged and the delivery is acked anyway: delivery is
// at-most-once with no retry queue, and a failed notification never rolls back
// the booking write that produced it.
type Consumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mailer  *Mailer
	sms     *SMSSender
	log     *zap.Logger
}

func NewConsumer(url string, mailer *Mailer, sms *SMSSender, log *zap.Logger) (*Consumer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	q, err := ch.QueueDeclare(QueueName, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	if err := ch.QueueBind(q.Name, "booking.*", ExchangeName, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq queue bind: %w", err)
	}

	return &Consumer{
		conn:    conn,
		channel: ch,
		mailer:  mailer,
		sms:     sms,
		log:     log.With(zap.String("component", "notify_consumer")),
	}, nil
}

// Start consumes until the context is cancelled or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq consume: %w", err)
	}

	c.log.Info("Notification consumer started", zap.String("queue", QueueName))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					c.log.Warn("Notification channel closed")
					return
				}
				c.dispatch(delivery)
				delivery.Ack(false)
			}
		}
	}()

	return nil
}

func (c *Consumer) dispatch(delivery amqp.Delivery) {
	switch delivery.RoutingKey {
	case RouteBookingCreated:
		var event BookingCreatedEvent
		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			c.log.Error("Failed to decode booking created event", zap.Error(err))
			return
		}
		c.handleBookingCreated(event)

	case RouteDriverAssigned:
		var event DriverAssignedEvent
		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			c.log.Error("Failed to decode driver assigned event", zap.Error(err))
			return
		}
		c.handleDriverAssigned(event)

	default:
		c.log.Warn("Unknown routing key", zap.String("routing_key", delivery.RoutingKey))
	}
}

func (c *Consumer) handleBookingCreated(event BookingCreatedEvent) {
	if event.CustomerEmail != "" {
		subject := fmt.Sprintf("Booking confirmed — %s", event.OrderID)
		html := fmt.Sprintf(
			"<p>Hi %s,</p><p>Your ride is booked.</p><ul><li>Order: %s</li><li>Pickup: %s</li><li>Dropoff: %s</li><li>When: %s</li><li>Total: $%.2f</li></ul>",
			event.CustomerName, event.OrderID, event.PickupAddress, event.DropoffAddress,
			event.PickupAt.Format("Mon, Jan 2 2006 3:04 PM"), event.TotalPrice,
		)
		text := fmt.Sprintf("Your ride %s is booked for %s. Pickup: %s. Total: $%.2f",
			event.OrderID, event.PickupAt.Format("Jan 2 3:04 PM"), event.PickupAddress, event.TotalPrice)

		if err := c.mailer.SendEmail(event.CustomerEmail, subject, html, text); err != nil {
			c.log.Warn("Failed to send confirmation email",
				zap.Error(err),
				zap.String("order_id", event.OrderID),
			)
		}
	}

	if event.CustomerPhone != "" {
		message := fmt.Sprintf("Your ride %s is confirmed for %s. Pickup at %s.",
			event.OrderID, event.PickupAt.Format("Jan 2 3:04 PM"), event.PickupAddress)

		if err := c.sms.SendSMS(event.CustomerPhone, message); err != nil {
			c.log.Warn("Failed to send confirmation SMS",
				zap.Error(err),
				zap.String("order_id", event.OrderID),
			)
		}
	}
}

func (c *Consumer) handleDriverAssigned(event DriverAssignedEvent) {
	if event.CustomerEmail != "" {
		subject := fmt.Sprintf("Your driver for %s", event.OrderID)
		html := fmt.Sprintf(
			"<p>Your driver is %s.</p><p>Reach them at %s.</p><p>Pickup: %s at %s.</p>",
			event.DriverName, event.DriverPhone, event.PickupAddress,
			event.PickupAt.Format("Mon, Jan 2 2006 3:04 PM"),
		)

		if err := c.mailer.SendEmail(event.CustomerEmail, subject, html, ""); err != nil {
			c.log.Warn("Failed to send driver info email",
				zap.Error(err),
				zap.String("order_id", event.OrderID),
			)
		}
	}

	if event.DriverPhone != "" {
		message := fmt.Sprintf("New ride %s assigned to you. Pickup %s at %s.",
			event.OrderID, event.PickupAddress, event.PickupAt.Format("Jan 2 3:04 PM"))

		if err := c.sms.SendSMS(event.DriverPhone, message); err != nil {
			c.log.Warn("Failed to send driver SMS",
				zap.Error(err),
				zap.String("order_id", event.OrderID),
			)
		}
	}
}

func (c *Consumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
