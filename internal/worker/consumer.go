package worker

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/mfcayala/mpc-court/internal/events"
	"github.com/mfcayala/mpc-court/internal/notifier"
	"github.com/mfcayala/mpc-court/pkg/mq"
)

// Consumer turns reservation events into member notifications.
type Consumer struct {
	mq  *mq.Consumer
	n   notifier.Notifier
	log *zap.Logger
}

func New(c *mq.Consumer, n notifier.Notifier, log *zap.Logger) *Consumer {
	return &Consumer{mq: c, n: n, log: log}
}

func (c *Consumer) Run(ctx context.Context) error {
	msgs, err := c.mq.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consume failed: %w", err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := c.handleDelivery(d); err != nil {
				c.log.Warn("handle delivery failed, requeueing",
					zap.String("key", d.RoutingKey), zap.Error(err))
				_ = d.Nack(false, true)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func (c *Consumer) handleDelivery(d amqp.Delivery) error {
	switch d.RoutingKey {
	case events.RKReservationCreated:
		ev, err := events.MustUnmarshal[events.ReservationCreated](d.Body)
		if err != nil {
			return err
		}
		return c.n.Notify("Court reserved",
			fmt.Sprintf("Court %d booked for %s (%d guests, total %d).",
				ev.Court, notifier.HumanSlotRange(ev.Date, ev.SlotIDs), ev.Guests, ev.Total))

	case events.RKReservationCancelled:
		ev, err := events.MustUnmarshal[events.ReservationCancelled](d.Body)
		if err != nil {
			return err
		}
		return c.n.Notify("Reservation cancelled",
			fmt.Sprintf("Court %d on %s is free again.",
				ev.Court, notifier.HumanSlotRange(ev.Date, []string{ev.SlotID})))

	default:
		c.log.Info("skip unknown key", zap.String("key", d.RoutingKey))
	}
	return nil
}
