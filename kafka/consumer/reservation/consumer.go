package reservation

import (
	"context"

	"atlas-marina/calendar"
	localConsumer "atlas-marina/kafka/consumer"
	"atlas-marina/kafka/message"
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

// NewConfig creates a new consumer configuration for reservation commands
func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) consumer.Config {
	return localConsumer.NewConfig(l)
}

// InitHandlers initializes all reservation command handlers
func InitHandlers(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) []handler.Handler {
	reservationProcessor := reservationService.NewProcessor(l, ctx, db)

	return []handler.Handler{
		// Booking command handlers
		kafka.AdaptHandler(kafka.PersistentConfig(handleCreate(l, ctx, reservationProcessor))),
		kafka.AdaptHandler(kafka.PersistentConfig(handleReschedule(l, ctx, reservationProcessor))),
		kafka.AdaptHandler(kafka.PersistentConfig(handleDelete(l, ctx, reservationProcessor))),

		// Lifecycle command handlers
		kafka.AdaptHandler(kafka.PersistentConfig(handleAdvanceStatus(l, ctx, reservationProcessor))),
		kafka.AdaptHandler(kafka.PersistentConfig(handleCompleteCheckIn(l, ctx, reservationProcessor))),

		// Evidence command handlers
		kafka.AdaptHandler(kafka.PersistentConfig(handleAttachTripPhotos(l, ctx, reservationProcessor))),
		kafka.AdaptHandler(kafka.PersistentConfig(handleAttachFuelReceipt(l, ctx, reservationProcessor))),

		// Maintenance command handlers
		kafka.AdaptHandler(kafka.PersistentConfig(handleSetMaintenance(l, ctx, reservationProcessor))),
		kafka.AdaptHandler(kafka.PersistentConfig(handleClearMaintenance(l, ctx, reservationProcessor))),
	}
}

// emitError emits a reservation error event back to the requester
func emitError(l logrus.FieldLogger, ctx context.Context, clientId uint32, reservationId uint32, code string, detail string) {
	errorProvider := reservationService.ErrorEventProvider(clientId, reservationId, code, detail)
	if emitErr := message.Emit(producer.ProviderImpl(l)(ctx))(func(buf *message.Buffer) error {
		return buf.Put(reservationMsg.EnvEventTopicStatus, errorProvider)
	}); emitErr != nil {
		l.WithError(emitErr).Error("Failed to emit reservation error event")
	}
}

// errorCode extracts the denial code from a refused command
func errorCode(err error, fallback string) string {
	if eligibilityErr, ok := err.(reservationService.EligibilityError); ok {
		return eligibilityErr.Code
	}
	if transitionErr, ok := err.(reservationService.TransitionError); ok {
		return transitionErr.Code
	}
	return fallback
}

// handleCreate handles reservation booking commands
func handleCreate(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.CreateCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.CreateCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":     cmd.Type,
			"clientId": cmd.ClientId,
			"date":     cmd.Body.Date,
		}).Debug("Processing reservation create command")

		if cmd.Type != reservationMsg.CommandCreate {
			return
		}

		transactionId := uuid.New()

		date, err := calendar.ParseDate(cmd.Body.Date)
		if err != nil {
			l.WithError(err).WithField("date", cmd.Body.Date).Error("Rejected booking with malformed date")
			emitError(l, ctx, cmd.ClientId, 0, "INVALID_DATE", err.Error())
			return
		}

		reservation, err := processor.CreateAndEmit(transactionId, cmd.ClientId, date, cmd.Body.TimeOfDay, cmd.Body.Route)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"clientId": cmd.ClientId,
				"date":     cmd.Body.Date,
			}).Error("Failed to process reservation booking")
			emitError(l, ctx, cmd.ClientId, 0, errorCode(err, "CREATE_FAILED"), err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"reservationId": reservation.Id(),
			"clientId":      cmd.ClientId,
			"date":          cmd.Body.Date,
		}).Info("Reservation booking processed successfully")
	}
}

// handleReschedule handles reservation edit commands
func handleReschedule(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.RescheduleCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.RescheduleCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":          cmd.Type,
			"clientId":      cmd.ClientId,
			"reservationId": cmd.Body.ReservationId,
		}).Debug("Processing reservation reschedule command")

		if cmd.Type != reservationMsg.CommandReschedule {
			return
		}

		transactionId := uuid.New()

		date, err := calendar.ParseDate(cmd.Body.Date)
		if err != nil {
			l.WithError(err).WithField("date", cmd.Body.Date).Error("Rejected reschedule with malformed date")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, "INVALID_DATE", err.Error())
			return
		}

		reservation, err := processor.RescheduleAndEmit(transactionId, cmd.Body.ReservationId, cmd.ClientId, date, cmd.Body.TimeOfDay, cmd.Body.Route)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"reservationId": cmd.Body.ReservationId,
				"clientId":      cmd.ClientId,
			}).Error("Failed to process reservation reschedule")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, errorCode(err, "RESCHEDULE_FAILED"), err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"reservationId": reservation.Id(),
			"date":          cmd.Body.Date,
		}).Info("Reservation reschedule processed successfully")
	}
}

// handleDelete handles reservation cancellation commands
func handleDelete(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.DeleteCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.DeleteCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":          cmd.Type,
			"clientId":      cmd.ClientId,
			"reservationId": cmd.Body.ReservationId,
			"staff":         cmd.Body.Staff,
		}).Debug("Processing reservation delete command")

		if cmd.Type != reservationMsg.CommandDelete {
			return
		}

		transactionId := uuid.New()

		err := processor.DeleteAndEmit(transactionId, cmd.Body.ReservationId, cmd.ClientId, cmd.Body.Staff)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"reservationId": cmd.Body.ReservationId,
				"clientId":      cmd.ClientId,
			}).Error("Failed to process reservation deletion")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, errorCode(err, "DELETE_FAILED"), err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"reservationId": cmd.Body.ReservationId,
			"clientId":      cmd.ClientId,
		}).Info("Reservation deletion processed successfully")
	}
}

// handleAdvanceStatus handles lifecycle transition commands
func handleAdvanceStatus(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.AdvanceStatusCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.AdvanceStatusCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":          cmd.Type,
			"clientId":      cmd.ClientId,
			"reservationId": cmd.Body.ReservationId,
			"targetStatus":  cmd.Body.TargetStatus,
		}).Debug("Processing status advance command")

		if cmd.Type != reservationMsg.CommandAdvanceStatus {
			return
		}

		transactionId := uuid.New()

		target, err := reservationService.ParseStatus(cmd.Body.TargetStatus)
		if err != nil {
			l.WithError(err).WithField("targetStatus", cmd.Body.TargetStatus).Error("Rejected transition to unknown status")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, "INVALID_STATUS", err.Error())
			return
		}

		reservation, err := processor.AdvanceStatusAndEmit(transactionId, cmd.Body.ReservationId, target)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"reservationId": cmd.Body.ReservationId,
				"targetStatus":  cmd.Body.TargetStatus,
			}).Error("Failed to advance reservation status")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, errorCode(err, "ADVANCE_FAILED"), err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"reservationId": reservation.Id(),
			"status":        reservation.Status().String(),
		}).Info("Reservation status advance processed successfully")
	}
}

// handleCompleteCheckIn handles staff check-in commands
func handleCompleteCheckIn(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.CompleteCheckInCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.CompleteCheckInCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":          cmd.Type,
			"clientId":      cmd.ClientId,
			"reservationId": cmd.Body.ReservationId,
			"photoCount":    len(cmd.Body.Photos),
		}).Debug("Processing check-in command")

		if cmd.Type != reservationMsg.CommandCompleteCheckIn {
			return
		}

		transactionId := uuid.New()

		reservation, err := processor.CompleteCheckInAndEmit(transactionId, cmd.Body.ReservationId, cmd.Body.Photos)
		if err != nil {
			l.WithError(err).WithField("reservationId", cmd.Body.ReservationId).Error("Failed to process check-in")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, errorCode(err, "CHECK_IN_FAILED"), err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"reservationId": reservation.Id(),
			"photoCount":    len(reservation.CheckInPhotos()),
		}).Info("Check-in processed successfully")
	}
}

// handleAttachTripPhotos handles trip photo attachment commands
func handleAttachTripPhotos(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.AttachTripPhotosCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.AttachTripPhotosCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":          cmd.Type,
			"clientId":      cmd.ClientId,
			"reservationId": cmd.Body.ReservationId,
			"photoCount":    len(cmd.Body.Photos),
		}).Debug("Processing trip photo attachment command")

		if cmd.Type != reservationMsg.CommandAttachTripPhotos {
			return
		}

		transactionId := uuid.New()

		reservation, err := processor.AttachTripPhotosAndEmit(transactionId, cmd.Body.ReservationId, cmd.Body.Photos)
		if err != nil {
			l.WithError(err).WithField("reservationId", cmd.Body.ReservationId).Error("Failed to attach trip photos")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, errorCode(err, "TRIP_PHOTOS_FAILED"), err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"reservationId": reservation.Id(),
			"photoCount":    len(reservation.TripPhotos()),
		}).Info("Trip photo attachment processed successfully")
	}
}

// handleAttachFuelReceipt handles fuel receipt commands
func handleAttachFuelReceipt(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.AttachFuelReceiptCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.AttachFuelReceiptCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":          cmd.Type,
			"clientId":      cmd.ClientId,
			"reservationId": cmd.Body.ReservationId,
		}).Debug("Processing fuel receipt command")

		if cmd.Type != reservationMsg.CommandAttachFuelReceipt {
			return
		}

		transactionId := uuid.New()

		reservation, err := processor.AttachFuelReceiptAndEmit(transactionId, cmd.Body.ReservationId, cmd.Body.Image, cmd.Body.PayeeName, cmd.Body.PayeeKey)
		if err != nil {
			l.WithError(err).WithField("reservationId", cmd.Body.ReservationId).Error("Failed to attach fuel receipt")
			emitError(l, ctx, cmd.ClientId, cmd.Body.ReservationId, errorCode(err, "FUEL_RECEIPT_FAILED"), err.Error())
			return
		}

		l.WithField("reservationId", reservation.Id()).Info("Fuel receipt processed successfully")
	}
}

// handleSetMaintenance handles maintenance block commands
func handleSetMaintenance(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.SetMaintenanceCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.SetMaintenanceCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":       cmd.Type,
			"vesselName": cmd.Body.VesselName,
			"date":       cmd.Body.Date,
		}).Debug("Processing maintenance set command")

		if cmd.Type != reservationMsg.CommandSetMaintenance {
			return
		}

		transactionId := uuid.New()

		date, err := calendar.ParseDate(cmd.Body.Date)
		if err != nil {
			l.WithError(err).WithField("date", cmd.Body.Date).Error("Rejected maintenance block with malformed date")
			emitError(l, ctx, cmd.ClientId, 0, "INVALID_DATE", err.Error())
			return
		}

		block, err := processor.SetMaintenanceAndEmit(transactionId, cmd.Body.VesselName, date)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"vesselName": cmd.Body.VesselName,
				"date":       cmd.Body.Date,
			}).Error("Failed to set maintenance block")
			emitError(l, ctx, cmd.ClientId, 0, "MAINTENANCE_SET_FAILED", err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"blockId":    block.Id(),
			"vesselName": block.VesselName(),
			"date":       block.Date(),
		}).Info("Maintenance block processed successfully")
	}
}

// handleClearMaintenance handles maintenance clear commands
func handleClearMaintenance(l logrus.FieldLogger, ctx context.Context, processor reservationService.Processor) kafka.Handler[reservationMsg.Command[reservationMsg.ClearMaintenanceCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd reservationMsg.Command[reservationMsg.ClearMaintenanceCommandBody]) {
		l.WithFields(logrus.Fields{
			"type":       cmd.Type,
			"vesselName": cmd.Body.VesselName,
			"date":       cmd.Body.Date,
		}).Debug("Processing maintenance clear command")

		if cmd.Type != reservationMsg.CommandClearMaintenance {
			return
		}

		transactionId := uuid.New()

		date, err := calendar.ParseDate(cmd.Body.Date)
		if err != nil {
			l.WithError(err).WithField("date", cmd.Body.Date).Error("Rejected maintenance clear with malformed date")
			emitError(l, ctx, cmd.ClientId, 0, "INVALID_DATE", err.Error())
			return
		}

		err = processor.ClearMaintenanceAndEmit(transactionId, cmd.Body.VesselName, date)
		if err != nil {
			l.WithError(err).WithFields(logrus.Fields{
				"vesselName": cmd.Body.VesselName,
				"date":       cmd.Body.Date,
			}).Error("Failed to clear maintenance block")
			emitError(l, ctx, cmd.ClientId, 0, "MAINTENANCE_CLEAR_FAILED", err.Error())
			return
		}

		l.WithFields(logrus.Fields{
			"vesselName": cmd.Body.VesselName,
			"date":       cmd.Body.Date,
		}).Info("Maintenance clear processed successfully")
	}
}

// InitConsumers initializes the reservation command consumers
func InitConsumers(l logrus.FieldLogger, ctx context.Context, db *gorm.DB) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			// Initialize consumer for reservation commands
			config := NewConfig(l)("reservation_commands")(reservationMsg.EnvCommandTopic)(consumerGroupId)

			// Set up header parsers for tenant and span context
			rf(config,
				consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser),
			)
		}
	}
}
