package reservation

import (
	"time"

	reservation2 "atlas-marina/kafka/message/reservation"
	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// CreatedEventProvider creates a provider for reservation created events
func CreatedEventProvider(reservationId uint32, clientId uint32, vesselName string, date string, timeOfDay string, route string, createdAt time.Time) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.CreatedEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventCreated,
		Body: reservation2.CreatedEventBody{
			ReservationId: reservationId,
			VesselName:    vesselName,
			Date:          date,
			TimeOfDay:     timeOfDay,
			Route:         route,
			CreatedAt:     createdAt,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// RescheduledEventProvider creates a provider for reservation rescheduled events
func RescheduledEventProvider(reservationId uint32, clientId uint32, date string, timeOfDay string, route string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.RescheduledEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventRescheduled,
		Body: reservation2.RescheduledEventBody{
			ReservationId: reservationId,
			Date:          date,
			TimeOfDay:     timeOfDay,
			Route:         route,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// DeletedEventProvider creates a provider for reservation deleted events
func DeletedEventProvider(reservationId uint32, clientId uint32, vesselName string, date string, staff bool) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.DeletedEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventDeleted,
		Body: reservation2.DeletedEventBody{
			ReservationId: reservationId,
			VesselName:    vesselName,
			Date:          date,
			Staff:         staff,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// StatusAdvancedEventProvider creates a provider for status advanced events
func StatusAdvancedEventProvider(reservationId uint32, clientId uint32, previousStatus Status, status Status, transitionedAt time.Time) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.StatusAdvancedEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventStatusAdvanced,
		Body: reservation2.StatusAdvancedEventBody{
			ReservationId:  reservationId,
			PreviousStatus: previousStatus.String(),
			Status:         status.String(),
			TransitionedAt: transitionedAt,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// TripPhotosAttachedEventProvider creates a provider for trip photo events
func TripPhotosAttachedEventProvider(reservationId uint32, clientId uint32, photoCount uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.TripPhotosAttachedEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventTripPhotosAttached,
		Body: reservation2.TripPhotosAttachedEventBody{
			ReservationId: reservationId,
			PhotoCount:    photoCount,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// FuelReceiptAttachedEventProvider creates a provider for fuel receipt events
func FuelReceiptAttachedEventProvider(reservationId uint32, clientId uint32, payeeName string, attachedAt time.Time) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.FuelReceiptAttachedEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventFuelReceiptAttached,
		Body: reservation2.FuelReceiptAttachedEventBody{
			ReservationId: reservationId,
			PayeeName:     payeeName,
			AttachedAt:    attachedAt,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// FuelEvidenceSharedEventProvider creates a provider for fuel evidence
// notifications addressed to the vessel's previous renter
func FuelEvidenceSharedEventProvider(reservationId uint32, previousReservationId uint32, previousClientId uint32, payeeName string, payeeKey string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(previousClientId))
	value := &reservation2.Event[reservation2.FuelEvidenceSharedEventBody]{
		ClientId: previousClientId,
		Type:     reservation2.EventFuelEvidenceShared,
		Body: reservation2.FuelEvidenceSharedEventBody{
			ReservationId:         reservationId,
			PreviousReservationId: previousReservationId,
			PreviousClientId:      previousClientId,
			PayeeName:             payeeName,
			PayeeKey:              payeeKey,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// CheckedInEventProvider creates a provider for check-in events
func CheckedInEventProvider(reservationId uint32, clientId uint32, vesselName string, photoCount uint32, checkedInAt time.Time) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.CheckedInEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventCheckedIn,
		Body: reservation2.CheckedInEventBody{
			ReservationId: reservationId,
			VesselName:    vesselName,
			PhotoCount:    photoCount,
			CheckedInAt:   checkedInAt,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// MaintenanceSetEventProvider creates a provider for maintenance set events
func MaintenanceSetEventProvider(vesselName string, date string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(0)
	value := &reservation2.Event[reservation2.MaintenanceSetEventBody]{
		Type: reservation2.EventMaintenanceSet,
		Body: reservation2.MaintenanceSetEventBody{
			VesselName: vesselName,
			Date:       date,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// MaintenanceClearedEventProvider creates a provider for maintenance cleared events
func MaintenanceClearedEventProvider(vesselName string, date string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(0)
	value := &reservation2.Event[reservation2.MaintenanceClearedEventBody]{
		Type: reservation2.EventMaintenanceCleared,
		Body: reservation2.MaintenanceClearedEventBody{
			VesselName: vesselName,
			Date:       date,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// OverdueEventProvider creates a provider for overdue reservation events
func OverdueEventProvider(reservationId uint32, clientId uint32, vesselName string, date string, status Status) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.OverdueEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventOverdue,
		Body: reservation2.OverdueEventBody{
			ReservationId: reservationId,
			VesselName:    vesselName,
			Date:          date,
			Status:        status.String(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// DayUnlockedEventProvider creates a provider for daily unlock events
func DayUnlockedEventProvider(tenantId uuid.UUID, date string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(0)
	value := &reservation2.Event[reservation2.DayUnlockedEventBody]{
		Type: reservation2.EventDayUnlocked,
		Body: reservation2.DayUnlockedEventBody{
			TenantId: tenantId,
			Date:     date,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// ErrorEventProvider creates a provider for reservation error events
func ErrorEventProvider(clientId uint32, reservationId uint32, code string, message string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(clientId))
	value := &reservation2.Event[reservation2.ErrorEventBody]{
		ClientId: clientId,
		Type:     reservation2.EventError,
		Body: reservation2.ErrorEventBody{
			ReservationId: reservationId,
			Code:          code,
			Message:       message,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
