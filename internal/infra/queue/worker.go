package queue

import (
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/lead-intake/internal/infra/http/middleware"
)

// NotificationSender is the contract for delivering the two lead emails.
type NotificationSender interface {
	SendProspectConfirmation(to, firstName, lastName string) error
	SendStaffAlert(email, firstName, lastName, resumePath string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  NotificationSender
	Logger  *slog.Logger
}

func NewWorker(ch *amqp.Channel, sender NotificationSender, logger *slog.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
		Logger:  logger,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Logger.Error("failed to register RabbitMQ consumer", slog.Any("err", err))
		return
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload NotificationPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				w.Logger.Error("invalid notification payload", slog.Any("err", err))
				// Malformed message. Reject without requeue so it hits the DLQ.
				d.Nack(false, false)
				continue
			}

			// Delivery is best effort and never retried: the message is
			// acked even when the send fails.
			if err := w.processMessage(payload); err != nil {
				w.Logger.Error("failed to send lead notification",
					slog.String("kind", payload.Kind),
					slog.Int64("lead_id", payload.LeadID),
					slog.Any("err", err),
				)
				middleware.RecordNotificationError(payload.Kind)
			}

			d.Ack(false)
		}
	}()

	w.Logger.Info("notification worker waiting on queue", slog.String("queue", queueName))
	<-forever
}

func (w *Worker) processMessage(payload NotificationPayload) error {
	switch payload.Kind {
	case KindProspectConfirmation:
		return w.Sender.SendProspectConfirmation(payload.Email, payload.FirstName, payload.LastName)

	case KindStaffAlert:
		return w.Sender.SendStaffAlert(payload.Email, payload.FirstName, payload.LastName, payload.ResumeS3Path)

	default:
		w.Logger.Warn("unknown notification kind, dropping", slog.String("kind", payload.Kind))
		return nil
	}
}
