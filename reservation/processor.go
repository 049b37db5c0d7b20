package reservation

import (
	"context"
	"errors"
	"time"

	"atlas-marina/calendar"
	"atlas-marina/client"
	"atlas-marina/kafka/message"
	reservationMsg "atlas-marina/kafka/message/reservation"
	"atlas-marina/kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Processor interface defines the reservation processing operations
type Processor interface {
	WithClientProcessor(clientProcessor client.Processor) Processor

	// Booking operations
	Create(clientId uint32, date calendar.Date, timeOfDay string, route string) model.Provider[Reservation]
	CreateAndEmit(transactionId uuid.UUID, clientId uint32, date calendar.Date, timeOfDay string, route string) (Reservation, error)
	Reschedule(reservationId uint32, clientId uint32, date calendar.Date, timeOfDay string, route string) model.Provider[Reservation]
	RescheduleAndEmit(transactionId uuid.UUID, reservationId uint32, clientId uint32, date calendar.Date, timeOfDay string, route string) (Reservation, error)
	Delete(reservationId uint32, clientId uint32, staff bool) model.Provider[Reservation]
	DeleteAndEmit(transactionId uuid.UUID, reservationId uint32, clientId uint32, staff bool) error

	// Eligibility
	EvaluateBooking(clientId uint32, date calendar.Date) error
	BlockedDates(clientId uint32) model.Provider[[]calendar.Date]

	// Lifecycle operations
	AdvanceStatus(reservationId uint32, target Status) model.Provider[Reservation]
	AdvanceStatusAndEmit(transactionId uuid.UUID, reservationId uint32, target Status) (Reservation, error)
	CompleteCheckIn(reservationId uint32, photos []string) model.Provider[Reservation]
	CompleteCheckInAndEmit(transactionId uuid.UUID, reservationId uint32, photos []string) (Reservation, error)

	// Evidence operations
	AttachTripPhotos(reservationId uint32, photos []string) model.Provider[Reservation]
	AttachTripPhotosAndEmit(transactionId uuid.UUID, reservationId uint32, photos []string) (Reservation, error)
	AttachFuelReceipt(reservationId uint32, image string, payeeName string, payeeKey string) model.Provider[Reservation]
	AttachFuelReceiptAndEmit(transactionId uuid.UUID, reservationId uint32, image string, payeeName string, payeeKey string) (Reservation, error)

	// Maintenance operations
	SetMaintenance(vesselName string, date calendar.Date) model.Provider[MaintenanceBlock]
	SetMaintenanceAndEmit(transactionId uuid.UUID, vesselName string, date calendar.Date) (MaintenanceBlock, error)
	ClearMaintenance(vesselName string, date calendar.Date) error
	ClearMaintenanceAndEmit(transactionId uuid.UUID, vesselName string, date calendar.Date) error

	// Client lifecycle reactions
	HandleClientBlock(clientId uint32) error
	HandleClientDeletionAndEmit(transactionId uuid.UUID, clientId uint32) error

	// Background operations
	ProcessOverdueReservations() (int, error)
	AnnounceDayUnlocked(date calendar.Date) error

	// Queries
	GetById(reservationId uint32) model.Provider[Reservation]
	GetByClient(clientId uint32) model.Provider[[]Reservation]
	GetAll() model.Provider[[]Reservation]
	GetMaintenanceByVessel(vesselName string) model.Provider[[]MaintenanceBlock]
	GetAllMaintenance() model.Provider[[]MaintenanceBlock]
}

// ProcessorImpl implements the Processor interface
type ProcessorImpl struct {
	log             logrus.FieldLogger
	ctx             context.Context
	db              *gorm.DB
	producer        producer.Provider
	clientProcessor client.Processor
}

// NewProcessor creates a new processor instance
func NewProcessor(log logrus.FieldLogger, ctx context.Context, db *gorm.DB) Processor {
	return &ProcessorImpl{
		log:             log,
		ctx:             ctx,
		db:              db,
		producer:        producer.ProviderImpl(log)(ctx),
		clientProcessor: client.NewProcessor(log, ctx, db),
	}
}

// WithClientProcessor creates a new processor instance with a custom client processor for testing
func (p *ProcessorImpl) WithClientProcessor(clientProcessor client.Processor) Processor {
	return &ProcessorImpl{
		log:             p.log,
		ctx:             p.ctx,
		db:              p.db,
		producer:        p.producer,
		clientProcessor: clientProcessor,
	}
}

// snapshotFor loads the booking state relevant to the client's decision:
// their own non-terminal reservations, the non-terminal reservations on
// their vessel, and the vessel's maintenance blocks
func (p *ProcessorImpl) snapshotFor(c client.Model, tenantId uuid.UUID) (Snapshot, error) {
	own, err := GetActiveReservationsByClientProvider(p.db, p.log)(c.Id(), tenantId)()
	if err != nil {
		return Snapshot{}, err
	}

	seen := make(map[uint32]struct{}, len(own))
	reservations := make([]Reservation, 0, len(own))
	for _, r := range own {
		seen[r.Id()] = struct{}{}
		reservations = append(reservations, r)
	}

	onVessel, err := GetActiveReservationsByVesselProvider(p.db, p.log)(c.VesselName(), tenantId)()
	if err != nil {
		return Snapshot{}, err
	}
	for _, r := range onVessel {
		if _, ok := seen[r.Id()]; ok {
			continue
		}
		reservations = append(reservations, r)
	}

	maintenance, err := GetMaintenanceBlocksByVesselProvider(p.db, p.log)(c.VesselName(), tenantId)()
	if err != nil {
		return Snapshot{}, err
	}

	return NewSnapshot(reservations, maintenance), nil
}

// EvaluateBooking runs the booking decision for a client and date without
// creating anything. A nil result means the booking would be accepted.
func (p *ProcessorImpl) EvaluateBooking(clientId uint32, date calendar.Date) error {
	t := tenant.MustFromContext(p.ctx)

	c, err := p.clientProcessor.GetById(clientId)
	if err != nil {
		return err
	}

	snap, err := p.snapshotFor(c, t.Id())
	if err != nil {
		return err
	}

	return Evaluate(c, date, snap, time.Now())
}

// Create books a reservation after a fresh eligibility evaluation
func (p *ProcessorImpl) Create(clientId uint32, date calendar.Date, timeOfDay string, route string) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithFields(logrus.Fields{
			"clientId": clientId,
			"date":     date,
		}).Debug("Processing reservation booking")

		t := tenant.MustFromContext(p.ctx)

		c, err := p.clientProcessor.GetById(clientId)
		if err != nil {
			return Reservation{}, err
		}

		// Decision and insert run against the same snapshot read; a stale
		// advisory calendar on the caller side is corrected here.
		snap, err := p.snapshotFor(c, t.Id())
		if err != nil {
			return Reservation{}, err
		}

		if err := Evaluate(c, date, snap, time.Now()); err != nil {
			return Reservation{}, err
		}

		entityProvider := CreateReservation(p.db, p.log)(clientId, c.Name(), c.VesselName(), date, timeOfDay, route, t.Id())
		entity, err := entityProvider()
		if err != nil {
			return Reservation{}, err
		}

		reservation, err := Make(entity)
		if err != nil {
			return Reservation{}, err
		}

		p.log.WithFields(logrus.Fields{
			"reservationId": reservation.Id(),
			"clientId":      clientId,
			"date":          date,
		}).Info("Reservation created successfully")

		return reservation, nil
	}
}

// CreateAndEmit books a reservation and emits the created event
func (p *ProcessorImpl) CreateAndEmit(transactionId uuid.UUID, clientId uint32, date calendar.Date, timeOfDay string, route string) (Reservation, error) {
	reservation, err := p.Create(clientId, date, timeOfDay, route)()
	if err != nil {
		return Reservation{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := CreatedEventProvider(
			reservation.Id(),
			clientId,
			reservation.VesselName(),
			string(reservation.Date()),
			reservation.TimeOfDay(),
			reservation.Route(),
			reservation.CreatedAt(),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return Reservation{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservation.Id(),
	}).Debug("Created event emitted")

	return reservation, nil
}

// Reschedule edits a held reservation after re-running the booking decision
// with the edited reservation excluded from every scan
func (p *ProcessorImpl) Reschedule(reservationId uint32, clientId uint32, date calendar.Date, timeOfDay string, route string) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithFields(logrus.Fields{
			"reservationId": reservationId,
			"clientId":      clientId,
			"date":          date,
		}).Debug("Processing reservation reschedule")

		t := tenant.MustFromContext(p.ctx)

		reservation, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
		if err != nil {
			return Reservation{}, err
		}

		if !reservation.BelongsTo(clientId) {
			return Reservation{}, errors.New("reservation does not belong to client")
		}

		c, err := p.clientProcessor.GetById(clientId)
		if err != nil {
			return Reservation{}, err
		}

		snap, err := p.snapshotFor(c, t.Id())
		if err != nil {
			return Reservation{}, err
		}

		if err := EvaluateReschedule(c, date, reservationId, snap, time.Now()); err != nil {
			return Reservation{}, err
		}

		updated, err := reservation.Reschedule(date, timeOfDay, route)
		if err != nil {
			return Reservation{}, err
		}

		entity, err := UpdateReservation(p.db, p.log)(updated)()
		if err != nil {
			return Reservation{}, err
		}

		return Make(entity)
	}
}

// RescheduleAndEmit edits a reservation and emits the rescheduled event
func (p *ProcessorImpl) RescheduleAndEmit(transactionId uuid.UUID, reservationId uint32, clientId uint32, date calendar.Date, timeOfDay string, route string) (Reservation, error) {
	reservation, err := p.Reschedule(reservationId, clientId, date, timeOfDay, route)()
	if err != nil {
		return Reservation{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := RescheduledEventProvider(
			reservation.Id(),
			clientId,
			string(reservation.Date()),
			reservation.TimeOfDay(),
			reservation.Route(),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return Reservation{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservation.Id(),
	}).Debug("Rescheduled event emitted")

	return reservation, nil
}

// Delete cancels a reservation. Owners may only cancel a reservation that
// has not started; staff may cancel at any point.
func (p *ProcessorImpl) Delete(reservationId uint32, clientId uint32, staff bool) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithFields(logrus.Fields{
			"reservationId": reservationId,
			"clientId":      clientId,
			"staff":         staff,
		}).Debug("Processing reservation deletion")

		t := tenant.MustFromContext(p.ctx)

		reservation, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
		if err != nil {
			return Reservation{}, err
		}

		if !reservation.CanDelete(clientId, staff) {
			return Reservation{}, errors.New("reservation cannot be deleted")
		}

		if err := DeleteReservation(p.db, p.log)(reservationId, t.Id()); err != nil {
			return Reservation{}, err
		}

		return reservation, nil
	}
}

// DeleteAndEmit cancels a reservation and emits the deleted event
func (p *ProcessorImpl) DeleteAndEmit(transactionId uuid.UUID, reservationId uint32, clientId uint32, staff bool) error {
	reservation, err := p.Delete(reservationId, clientId, staff)()
	if err != nil {
		return err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := DeletedEventProvider(
			reservation.Id(),
			reservation.ClientId(),
			reservation.VesselName(),
			string(reservation.Date()),
			staff,
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservationId,
	}).Debug("Deleted event emitted")

	return nil
}

// BlockedDates computes the advisory unselectable dates for the client
func (p *ProcessorImpl) BlockedDates(clientId uint32) model.Provider[[]calendar.Date] {
	return func() ([]calendar.Date, error) {
		t := tenant.MustFromContext(p.ctx)

		c, err := p.clientProcessor.GetById(clientId)
		if err != nil {
			return nil, err
		}

		onVessel, err := GetActiveReservationsByVesselProvider(p.db, p.log)(c.VesselName(), t.Id())()
		if err != nil {
			return nil, err
		}

		maintenance, err := GetMaintenanceBlocksByVesselProvider(p.db, p.log)(c.VesselName(), t.Id())()
		if err != nil {
			return nil, err
		}

		return BlockedDates(c, NewSnapshot(onVessel, maintenance)), nil
	}
}

// AdvanceStatus moves a reservation one step forward in its lifecycle
func (p *ProcessorImpl) AdvanceStatus(reservationId uint32, target Status) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithFields(logrus.Fields{
			"reservationId": reservationId,
			"target":        target.String(),
		}).Debug("Processing status advance")

		t := tenant.MustFromContext(p.ctx)

		reservation, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
		if err != nil {
			return Reservation{}, err
		}

		if err := RequestTransition(reservation, target, Evidence{}); err != nil {
			return Reservation{}, err
		}

		updated, err := reservation.AdvanceTo(target)
		if err != nil {
			return Reservation{}, err
		}

		entity, err := UpdateReservation(p.db, p.log)(updated)()
		if err != nil {
			return Reservation{}, err
		}

		return Make(entity)
	}
}

// AdvanceStatusAndEmit moves a reservation forward and emits the status event
func (p *ProcessorImpl) AdvanceStatusAndEmit(transactionId uuid.UUID, reservationId uint32, target Status) (Reservation, error) {
	t := tenant.MustFromContext(p.ctx)

	before, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
	if err != nil {
		return Reservation{}, err
	}

	reservation, err := p.AdvanceStatus(reservationId, target)()
	if err != nil {
		return Reservation{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := StatusAdvancedEventProvider(
			reservation.Id(),
			reservation.ClientId(),
			before.Status(),
			reservation.Status(),
			reservation.UpdatedAt(),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return Reservation{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservation.Id(),
		"status":        reservation.Status().String(),
	}).Debug("StatusAdvanced event emitted")

	return reservation, nil
}

// AttachTripPhotos adds client trip photos to an in-water reservation
func (p *ProcessorImpl) AttachTripPhotos(reservationId uint32, photos []string) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithFields(logrus.Fields{
			"reservationId": reservationId,
			"photoCount":    len(photos),
		}).Debug("Processing trip photo attachment")

		t := tenant.MustFromContext(p.ctx)

		reservation, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
		if err != nil {
			return Reservation{}, err
		}

		updated, err := reservation.AttachTripPhotos(photos)
		if err != nil {
			return Reservation{}, err
		}

		entity, err := UpdateReservation(p.db, p.log)(updated)()
		if err != nil {
			return Reservation{}, err
		}

		return Make(entity)
	}
}

// AttachTripPhotosAndEmit adds trip photos and emits the attachment event
func (p *ProcessorImpl) AttachTripPhotosAndEmit(transactionId uuid.UUID, reservationId uint32, photos []string) (Reservation, error) {
	reservation, err := p.AttachTripPhotos(reservationId, photos)()
	if err != nil {
		return Reservation{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := TripPhotosAttachedEventProvider(
			reservation.Id(),
			reservation.ClientId(),
			uint32(len(reservation.TripPhotos())),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return Reservation{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservation.Id(),
	}).Debug("TripPhotosAttached event emitted")

	return reservation, nil
}

// AttachFuelReceipt records fuel evidence on a navigating reservation
func (p *ProcessorImpl) AttachFuelReceipt(reservationId uint32, image string, payeeName string, payeeKey string) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithField("reservationId", reservationId).Debug("Processing fuel receipt attachment")

		t := tenant.MustFromContext(p.ctx)

		reservation, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
		if err != nil {
			return Reservation{}, err
		}

		receipt := NewFuelReceipt(image, payeeName, payeeKey, time.Now())
		updated, err := reservation.AttachFuelReceipt(receipt)
		if err != nil {
			return Reservation{}, err
		}

		entity, err := UpdateReservation(p.db, p.log)(updated)()
		if err != nil {
			return Reservation{}, err
		}

		return Make(entity)
	}
}

// AttachFuelReceiptAndEmit records fuel evidence, emits the attachment
// event, and shares the evidence with the vessel's previous renter on a
// best-effort basis. Propagation failure is logged and never surfaces to
// the requester.
func (p *ProcessorImpl) AttachFuelReceiptAndEmit(transactionId uuid.UUID, reservationId uint32, image string, payeeName string, payeeKey string) (Reservation, error) {
	reservation, err := p.AttachFuelReceipt(reservationId, image, payeeName, payeeKey)()
	if err != nil {
		return Reservation{}, err
	}

	receipt := reservation.FuelReceipt()

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := FuelReceiptAttachedEventProvider(
			reservation.Id(),
			reservation.ClientId(),
			receipt.PayeeName(),
			receipt.AttachedAt(),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return Reservation{}, err
	}

	if propagateErr := p.propagateFuelEvidence(reservation); propagateErr != nil {
		p.log.WithError(propagateErr).WithFields(logrus.Fields{
			"transactionId": transactionId,
			"reservationId": reservation.Id(),
		}).Warn("Failed to share fuel evidence with previous renter")
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservation.Id(),
	}).Debug("FuelReceiptAttached event emitted")

	return reservation, nil
}

// propagateFuelEvidence stores the receipt on the vessel's most recent
// completed reservation and notifies its holder
func (p *ProcessorImpl) propagateFuelEvidence(reservation Reservation) error {
	t := tenant.MustFromContext(p.ctx)

	previous, err := GetPreviousCompletedReservationProvider(p.db, p.log)(reservation.VesselName(), reservation.Id(), t.Id())()
	if err != nil {
		return err
	}
	if previous == nil {
		return nil
	}

	receipt := reservation.FuelReceipt()
	if receipt == nil {
		return nil
	}

	updated, err := previous.WithFuelReceipt(*receipt)
	if err != nil {
		return err
	}
	if _, err := UpdateReservation(p.db, p.log)(updated)(); err != nil {
		return err
	}

	return message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := FuelEvidenceSharedEventProvider(
			reservation.Id(),
			previous.Id(),
			previous.ClientId(),
			receipt.PayeeName(),
			receipt.PayeeKey(),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
}

// CompleteCheckIn attaches staff dock photos and closes the reservation
func (p *ProcessorImpl) CompleteCheckIn(reservationId uint32, photos []string) model.Provider[Reservation] {
	return func() (Reservation, error) {
		p.log.WithFields(logrus.Fields{
			"reservationId": reservationId,
			"photoCount":    len(photos),
		}).Debug("Processing check-in")

		t := tenant.MustFromContext(p.ctx)

		reservation, err := GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())()
		if err != nil {
			return Reservation{}, err
		}

		if err := RequestTransition(reservation, StatusCheckedIn, Evidence{CheckInPhotos: photos}); err != nil {
			return Reservation{}, err
		}

		if len(photos) > 0 {
			reservation, err = reservation.AttachCheckInPhotos(photos)
			if err != nil {
				return Reservation{}, err
			}
		}

		updated, err := reservation.CheckIn()
		if err != nil {
			return Reservation{}, err
		}

		entity, err := UpdateReservation(p.db, p.log)(updated)()
		if err != nil {
			return Reservation{}, err
		}

		p.log.WithField("reservationId", reservationId).Info("Reservation checked in successfully")

		return Make(entity)
	}
}

// CompleteCheckInAndEmit closes a reservation and emits the check-in event
func (p *ProcessorImpl) CompleteCheckInAndEmit(transactionId uuid.UUID, reservationId uint32, photos []string) (Reservation, error) {
	reservation, err := p.CompleteCheckIn(reservationId, photos)()
	if err != nil {
		return Reservation{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := CheckedInEventProvider(
			reservation.Id(),
			reservation.ClientId(),
			reservation.VesselName(),
			uint32(len(reservation.CheckInPhotos())),
			reservation.UpdatedAt(),
		)
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return Reservation{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"reservationId": reservation.Id(),
	}).Debug("CheckedIn event emitted")

	return reservation, nil
}

// SetMaintenance marks a vessel out of service for a date
func (p *ProcessorImpl) SetMaintenance(vesselName string, date calendar.Date) model.Provider[MaintenanceBlock] {
	return func() (MaintenanceBlock, error) {
		p.log.WithFields(logrus.Fields{
			"vesselName": vesselName,
			"date":       date,
		}).Debug("Processing maintenance block")

		t := tenant.MustFromContext(p.ctx)

		if !date.Valid() {
			return MaintenanceBlock{}, errors.New("valid date is required")
		}

		existing, err := GetMaintenanceBlocksByVesselProvider(p.db, p.log)(vesselName, t.Id())()
		if err != nil {
			return MaintenanceBlock{}, err
		}
		for _, block := range existing {
			if block.Covers(vesselName, date) {
				return block, nil
			}
		}

		entity, err := CreateMaintenanceBlock(p.db, p.log)(vesselName, date, t.Id())()
		if err != nil {
			return MaintenanceBlock{}, err
		}

		return MakeMaintenanceBlock(entity)
	}
}

// SetMaintenanceAndEmit marks a vessel out of service and emits the event
func (p *ProcessorImpl) SetMaintenanceAndEmit(transactionId uuid.UUID, vesselName string, date calendar.Date) (MaintenanceBlock, error) {
	block, err := p.SetMaintenance(vesselName, date)()
	if err != nil {
		return MaintenanceBlock{}, err
	}

	err = message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := MaintenanceSetEventProvider(block.VesselName(), string(block.Date()))
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return MaintenanceBlock{}, err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"vesselName":    vesselName,
		"date":          date,
	}).Debug("MaintenanceSet event emitted")

	return block, nil
}

// ClearMaintenance lifts the maintenance block for a vessel and date
func (p *ProcessorImpl) ClearMaintenance(vesselName string, date calendar.Date) error {
	t := tenant.MustFromContext(p.ctx)
	return DeleteMaintenanceBlocks(p.db, p.log)(vesselName, date, t.Id())
}

// ClearMaintenanceAndEmit lifts a maintenance block and emits the event
func (p *ProcessorImpl) ClearMaintenanceAndEmit(transactionId uuid.UUID, vesselName string, date calendar.Date) error {
	if err := p.ClearMaintenance(vesselName, date); err != nil {
		return err
	}

	err := message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := MaintenanceClearedEventProvider(vesselName, string(date))
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"vesselName":    vesselName,
		"date":          date,
	}).Debug("MaintenanceCleared event emitted")

	return nil
}

// HandleClientBlock logs the administrative hold. Held reservations are
// kept; the block is enforced at evaluation time on the next booking.
func (p *ProcessorImpl) HandleClientBlock(clientId uint32) error {
	t := tenant.MustFromContext(p.ctx)

	active, err := GetActiveReservationsByClientProvider(p.db, p.log)(clientId, t.Id())()
	if err != nil {
		return err
	}

	p.log.WithFields(logrus.Fields{
		"clientId":           clientId,
		"activeReservations": len(active),
	}).Info("Client blocked; future bookings will be refused")

	return nil
}

// HandleClientDeletionAndEmit removes the deleted client's reservations
// that have not started and emits a deleted event for each
func (p *ProcessorImpl) HandleClientDeletionAndEmit(transactionId uuid.UUID, clientId uint32) error {
	t := tenant.MustFromContext(p.ctx)

	active, err := GetActiveReservationsByClientProvider(p.db, p.log)(clientId, t.Id())()
	if err != nil {
		return err
	}

	for _, reservation := range active {
		if reservation.Status() != StatusAtDock {
			p.log.WithFields(logrus.Fields{
				"reservationId": reservation.Id(),
				"status":        reservation.Status().String(),
			}).Warn("Deleted client has an in-progress reservation; retained for staff resolution")
			continue
		}

		if err := DeleteReservation(p.db, p.log)(reservation.Id(), t.Id()); err != nil {
			return err
		}

		err = message.Emit(p.producer)(func(buf *message.Buffer) error {
			eventProvider := DeletedEventProvider(
				reservation.Id(),
				clientId,
				reservation.VesselName(),
				string(reservation.Date()),
				true,
			)
			return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
		})
		if err != nil {
			return err
		}
	}

	p.log.WithFields(logrus.Fields{
		"transactionId": transactionId,
		"clientId":      clientId,
	}).Info("Client deletion processed")

	return nil
}

// ProcessOverdueReservations flags non-terminal reservations whose date
// has passed. Returns the number of reservations flagged.
func (p *ProcessorImpl) ProcessOverdueReservations() (int, error) {
	t := tenant.MustFromContext(p.ctx)
	today := calendar.Today(time.Now())

	all, err := GetAllReservationsProvider(p.db, p.log)(t.Id())()
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, reservation := range all {
		if reservation.IsTerminal() || !reservation.Date().Before(today) {
			continue
		}

		r := reservation
		err = message.Emit(p.producer)(func(buf *message.Buffer) error {
			eventProvider := OverdueEventProvider(
				r.Id(),
				r.ClientId(),
				r.VesselName(),
				string(r.Date()),
				r.Status(),
			)
			return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
		})
		if err != nil {
			return flagged, err
		}

		flagged++
	}

	return flagged, nil
}

// AnnounceDayUnlocked emits the daily unlock event for the tenant
func (p *ProcessorImpl) AnnounceDayUnlocked(date calendar.Date) error {
	t := tenant.MustFromContext(p.ctx)

	return message.Emit(p.producer)(func(buf *message.Buffer) error {
		eventProvider := DayUnlockedEventProvider(t.Id(), string(date))
		return buf.Put(reservationMsg.EnvEventTopicStatus, eventProvider)
	})
}

// GetById retrieves a reservation by ID
func (p *ProcessorImpl) GetById(reservationId uint32) model.Provider[Reservation] {
	t := tenant.MustFromContext(p.ctx)
	return GetReservationByIdProvider(p.db, p.log)(reservationId, t.Id())
}

// GetByClient retrieves all reservations for a client
func (p *ProcessorImpl) GetByClient(clientId uint32) model.Provider[[]Reservation] {
	t := tenant.MustFromContext(p.ctx)
	return GetReservationsByClientProvider(p.db, p.log)(clientId, t.Id())
}

// GetAll retrieves the staff schedule board
func (p *ProcessorImpl) GetAll() model.Provider[[]Reservation] {
	t := tenant.MustFromContext(p.ctx)
	return GetAllReservationsProvider(p.db, p.log)(t.Id())
}

// GetMaintenanceByVessel retrieves maintenance blocks for a vessel
func (p *ProcessorImpl) GetMaintenanceByVessel(vesselName string) model.Provider[[]MaintenanceBlock] {
	t := tenant.MustFromContext(p.ctx)
	return GetMaintenanceBlocksByVesselProvider(p.db, p.log)(vesselName, t.Id())
}

// GetAllMaintenance retrieves every maintenance block for the tenant
func (p *ProcessorImpl) GetAllMaintenance() model.Provider[[]MaintenanceBlock] {
	t := tenant.MustFromContext(p.ctx)
	return GetAllMaintenanceBlocksProvider(p.db, p.log)(t.Id())
}
