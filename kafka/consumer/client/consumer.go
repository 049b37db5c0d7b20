package client

import (
	"context"

	localConsumer "atlas-marina/kafka/consumer"
	"atlas-marina/kafka/message"
	clientMsg "atlas-marina/kafka/message/client"
	reservationMsg "atlas-marina/kafka/message/reservation"
	"atlas-marina/kafka/producer"
	reservationService "atlas-marina/reservation"
	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	kafka "github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewConfig creates a new consumer configuration for client events
func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) consumer.Config {
	return localConsumer.NewConfig(l)
}

// InitHandlers initializes all client event handlers
func InitHandlers(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) []handler.Handler {
	reservationProcessor := reservationService.NewProcessor(l, ctx, db)

	return []handler.Handler{
		// Client deleted event handler
		kafka.AdaptHandler(kafka.PersistentConfig(handleClientDeleted(l, ctx, reservationProcessor))),

		// Client blocked event handler
		kafka.AdaptHandler(kafka.PersistentConfig(handleClientBlocked(l, ctx, reservationProcessor))),
	}
}

// handleClientDeleted handles client deleted status events
func handleClientDeleted(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[clientMsg.StatusEvent[clientMsg.DeletedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, event clientMsg.StatusEvent[clientMsg.DeletedStatusEventBody]) {
		l.WithFields(logrus.Fields{
			"type":     event.Type,
			"clientId": event.ClientId,
		}).Debug("Processing client deleted event")

		if event.Type != clientMsg.StatusEventTypeDeleted {
			return
		}

		transactionId := uuid.New()

		err := processor.HandleClientDeletionAndEmit(transactionId, event.ClientId)
		if err != nil {
			l.WithError(err).WithField("deletedClientId", event.ClientId).Error("Failed to process client deletion")

			errorProvider := reservationService.ErrorEventProvider(
				event.ClientId,
				0,
				"CLIENT_DELETION_FAILED",
				err.Error(),
			)
			if emitErr := message.Emit(producer.ProviderImpl(l)(ctx))(func(buf *message.Buffer) error {
				return buf.Put(reservationMsg.EnvEventTopicStatus, errorProvider)
			}); emitErr != nil {
				l.WithError(emitErr).Error("Failed to emit error event for client deletion failure")
			}
			return
		}

		l.WithField("deletedClientId", event.ClientId).Info("Client deletion processed successfully")
	}
}

// handleClientBlocked handles client blocked status events
func handleClientBlocked(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[clientMsg.StatusEvent[clientMsg.BlockedStatusEventBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, event clientMsg.StatusEvent[clientMsg.BlockedStatusEventBody]) {
		l.WithFields(logrus.Fields{
			"type":     event.Type,
			"clientId": event.ClientId,
			"reason":   event.Body.Reason,
		}).Debug("Processing client blocked event")

		if event.Type != clientMsg.StatusEventTypeBlocked {
			return
		}

		err := processor.HandleClientBlock(event.ClientId)
		if err != nil {
			l.WithError(err).WithField("blockedClientId", event.ClientId).Error("Failed to process client block")
			return
		}

		l.WithField("blockedClientId", event.ClientId).Info("Client block processed successfully")
	}
}

// InitConsumers initializes the client event consumers
func InitConsumers(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			// Initialize consumer for client status events
			config := NewConfig(l)("client_status_events")(clientMsg.EnvEventTopicStatus)(consumerGroupId)

			// Set up header parsers for tenant and span context
			rf(config,
				consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser),
			)
		}
	}
}
