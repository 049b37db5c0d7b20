package reservation

import (
	"time"

	"github.com/google/uuid"
)

const (
	EnvCommandTopic     = "COMMAND_TOPIC_RESERVATION"
	EnvEventTopicStatus = "EVENT_TOPIC_RESERVATION_STATUS"

	CommandCreate            = "CREATE"
	CommandReschedule        = "RESCHEDULE"
	CommandDelete            = "DELETE"
	CommandAdvanceStatus     = "ADVANCE_STATUS"
	CommandAttachTripPhotos  = "ATTACH_TRIP_PHOTOS"
	CommandAttachFuelReceipt = "ATTACH_FUEL_RECEIPT"
	CommandCompleteCheckIn   = "COMPLETE_CHECK_IN"
	CommandSetMaintenance    = "SET_MAINTENANCE"
	CommandClearMaintenance  = "CLEAR_MAINTENANCE"

	EventCreated             = "CREATED"
	EventRescheduled         = "RESCHEDULED"
	EventDeleted             = "DELETED"
	EventStatusAdvanced      = "STATUS_ADVANCED"
	EventTripPhotosAttached  = "TRIP_PHOTOS_ATTACHED"
	EventFuelReceiptAttached = "FUEL_RECEIPT_ATTACHED"
	EventFuelEvidenceShared  = "FUEL_EVIDENCE_SHARED"
	EventCheckedIn           = "CHECKED_IN"
	EventMaintenanceSet      = "MAINTENANCE_SET"
	EventMaintenanceCleared  = "MAINTENANCE_CLEARED"
	EventOverdue             = "OVERDUE"
	EventDayUnlocked         = "DAY_UNLOCKED"
	EventError               = "ERROR"
)

// Command is the generic command envelope for reservation commands
type Command[E any] struct {
	ClientId uint32 `json:"clientId"`
	Type     string `json:"type"`
	Body     E      `json:"body"`
}

// CreateCommandBody carries a booking request
type CreateCommandBody struct {
	Date      string `json:"date"`
	TimeOfDay string `json:"timeOfDay"`
	Route     string `json:"route"`
}

// RescheduleCommandBody carries an edit to a held reservation
type RescheduleCommandBody struct {
	ReservationId uint32 `json:"reservationId"`
	Date          string `json:"date"`
	TimeOfDay     string `json:"timeOfDay"`
	Route         string `json:"route"`
}

// DeleteCommandBody carries a cancellation request
type DeleteCommandBody struct {
	ReservationId uint32 `json:"reservationId"`
	Staff         bool   `json:"staff"`
}

// AdvanceStatusCommandBody carries a lifecycle transition request
type AdvanceStatusCommandBody struct {
	ReservationId uint32 `json:"reservationId"`
	TargetStatus  string `json:"targetStatus"`
}

// AttachTripPhotosCommandBody carries client trip photo references
type AttachTripPhotosCommandBody struct {
	ReservationId uint32   `json:"reservationId"`
	Photos        []string `json:"photos"`
}

// AttachFuelReceiptCommandBody carries the fuel receipt evidence
type AttachFuelReceiptCommandBody struct {
	ReservationId uint32 `json:"reservationId"`
	Image         string `json:"image"`
	PayeeName     string `json:"payeeName"`
	PayeeKey      string `json:"payeeKey"`
}

// CompleteCheckInCommandBody carries the staff check-in with dock photos
type CompleteCheckInCommandBody struct {
	ReservationId uint32   `json:"reservationId"`
	Photos        []string `json:"photos"`
}

// SetMaintenanceCommandBody marks a vessel out of service for a date
type SetMaintenanceCommandBody struct {
	VesselName string `json:"vesselName"`
	Date       string `json:"date"`
}

// ClearMaintenanceCommandBody lifts a maintenance block
type ClearMaintenanceCommandBody struct {
	VesselName string `json:"vesselName"`
	Date       string `json:"date"`
}

// Event is the generic event envelope for reservation events
type Event[E any] struct {
	ClientId uint32 `json:"clientId"`
	Type     string `json:"type"`
	Body     E      `json:"body"`
}

// CreatedEventBody announces a new reservation
type CreatedEventBody struct {
	ReservationId uint32    `json:"reservationId"`
	VesselName    string    `json:"vesselName"`
	Date          string    `json:"date"`
	TimeOfDay     string    `json:"timeOfDay"`
	Route         string    `json:"route"`
	CreatedAt     time.Time `json:"createdAt"`
}

// RescheduledEventBody announces an edited reservation
type RescheduledEventBody struct {
	ReservationId uint32 `json:"reservationId"`
	Date          string `json:"date"`
	TimeOfDay     string `json:"timeOfDay"`
	Route         string `json:"route"`
}

// DeletedEventBody announces a cancelled reservation
type DeletedEventBody struct {
	ReservationId uint32 `json:"reservationId"`
	VesselName    string `json:"vesselName"`
	Date          string `json:"date"`
	Staff         bool   `json:"staff"`
}

// StatusAdvancedEventBody announces a lifecycle transition
type StatusAdvancedEventBody struct {
	ReservationId  uint32    `json:"reservationId"`
	PreviousStatus string    `json:"previousStatus"`
	Status         string    `json:"status"`
	TransitionedAt time.Time `json:"transitionedAt"`
}

// TripPhotosAttachedEventBody announces client trip photos
type TripPhotosAttachedEventBody struct {
	ReservationId uint32 `json:"reservationId"`
	PhotoCount    uint32 `json:"photoCount"`
}

// FuelReceiptAttachedEventBody announces a fuel receipt
type FuelReceiptAttachedEventBody struct {
	ReservationId uint32    `json:"reservationId"`
	PayeeName     string    `json:"payeeName"`
	AttachedAt    time.Time `json:"attachedAt"`
}

// FuelEvidenceSharedEventBody notifies the previous renter of the vessel
// that fuel evidence was recorded
type FuelEvidenceSharedEventBody struct {
	ReservationId         uint32 `json:"reservationId"`
	PreviousReservationId uint32 `json:"previousReservationId"`
	PreviousClientId      uint32 `json:"previousClientId"`
	PayeeName             string `json:"payeeName"`
	PayeeKey              string `json:"payeeKey"`
}

// CheckedInEventBody announces a completed reservation
type CheckedInEventBody struct {
	ReservationId uint32    `json:"reservationId"`
	VesselName    string    `json:"vesselName"`
	PhotoCount    uint32    `json:"photoCount"`
	CheckedInAt   time.Time `json:"checkedInAt"`
}

// MaintenanceSetEventBody announces a maintenance block
type MaintenanceSetEventBody struct {
	VesselName string `json:"vesselName"`
	Date       string `json:"date"`
}

// MaintenanceClearedEventBody announces a lifted maintenance block
type MaintenanceClearedEventBody struct {
	VesselName string `json:"vesselName"`
	Date       string `json:"date"`
}

// OverdueEventBody flags a reservation left unresolved past its date
type OverdueEventBody struct {
	ReservationId uint32 `json:"reservationId"`
	VesselName    string `json:"vesselName"`
	Date          string `json:"date"`
	Status        string `json:"status"`
}

// DayUnlockedEventBody announces that same-day booking has opened
type DayUnlockedEventBody struct {
	TenantId uuid.UUID `json:"tenantId"`
	Date     string    `json:"date"`
}

// ErrorEventBody carries a refused command back to the requester
type ErrorEventBody struct {
	ReservationId uint32 `json:"reservationId"`
	Code          string `json:"code"`
	Message       string `json:"message"`
}
