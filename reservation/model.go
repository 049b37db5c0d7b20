package reservation

import (
	"errors"
	"time"

	"atlas-marina/calendar"
	"github.com/google/uuid"
)

// MaxTripPhotos caps the client photo collection attached while in the water
const MaxTripPhotos = 6

// MaxCheckInPhotos caps the staff photo collection attached at check-in
const MaxCheckInPhotos = 10

// FuelReceipt carries refueling evidence plus the payee identity used for
// reimbursement by the next renter
type FuelReceipt struct {
	image      string
	payeeName  string
	payeeKey   string
	attachedAt time.Time
}

// NewFuelReceipt creates a fuel receipt value
func NewFuelReceipt(image string, payeeName string, payeeKey string, attachedAt time.Time) FuelReceipt {
	return FuelReceipt{
		image:      image,
		payeeName:  payeeName,
		payeeKey:   payeeKey,
		attachedAt: attachedAt,
	}
}

// Image returns the receipt image reference
func (f FuelReceipt) Image() string {
	return f.image
}

// PayeeName returns the name to reimburse
func (f FuelReceipt) PayeeName() string {
	return f.payeeName
}

// PayeeKey returns the payment key to reimburse through
func (f FuelReceipt) PayeeKey() string {
	return f.payeeKey
}

// AttachedAt returns when the receipt was attached
func (f FuelReceipt) AttachedAt() time.Time {
	return f.attachedAt
}

// Reservation represents an immutable scheduled outing
type Reservation struct {
	id            uint32
	clientId      uint32
	clientName    string
	vesselName    string
	date          calendar.Date
	timeOfDay     string
	route         string
	status        Status
	checkInPhotos []string
	tripPhotos    []string
	fuelReceipt   *FuelReceipt
	inWaterAt     *time.Time
	navigatingAt  *time.Time
	returnedAt    *time.Time
	checkedInAt   *time.Time
	tenantId      uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

// Id returns the reservation ID
func (r Reservation) Id() uint32 {
	return r.id
}

// ClientId returns the owning client ID
func (r Reservation) ClientId() uint32 {
	return r.clientId
}

// ClientName returns the owning client name
func (r Reservation) ClientName() string {
	return r.clientName
}

// VesselName returns the reserved vessel name
func (r Reservation) VesselName() string {
	return r.vesselName
}

// Date returns the outing date
func (r Reservation) Date() calendar.Date {
	return r.date
}

// TimeOfDay returns the planned departure time text
func (r Reservation) TimeOfDay() string {
	return r.timeOfDay
}

// Route returns the destination or route text
func (r Reservation) Route() string {
	return r.route
}

// Status returns the lifecycle status
func (r Reservation) Status() Status {
	return r.status
}

// CheckInPhotos returns the staff check-in photo references
func (r Reservation) CheckInPhotos() []string {
	return r.checkInPhotos
}

// TripPhotos returns the client trip photo references
func (r Reservation) TripPhotos() []string {
	return r.tripPhotos
}

// FuelReceipt returns the attached fuel receipt, if any
func (r Reservation) FuelReceipt() *FuelReceipt {
	return r.fuelReceipt
}

// InWaterAt returns the launch timestamp
func (r Reservation) InWaterAt() *time.Time {
	return r.inWaterAt
}

// NavigatingAt returns the departure timestamp
func (r Reservation) NavigatingAt() *time.Time {
	return r.navigatingAt
}

// ReturnedAt returns the return timestamp
func (r Reservation) ReturnedAt() *time.Time {
	return r.returnedAt
}

// CheckedInAt returns the check-in timestamp
func (r Reservation) CheckedInAt() *time.Time {
	return r.checkedInAt
}

// TenantId returns the tenant ID
func (r Reservation) TenantId() uuid.UUID {
	return r.tenantId
}

// CreatedAt returns the creation timestamp
func (r Reservation) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns the last update timestamp
func (r Reservation) UpdatedAt() time.Time {
	return r.updatedAt
}

// IsTerminal returns true once the reservation has been checked in
func (r Reservation) IsTerminal() bool {
	return r.status.IsTerminal()
}

// BelongsTo returns true if the reservation is owned by the given client
func (r Reservation) BelongsTo(clientId uint32) bool {
	return r.clientId == clientId
}

// OnVessel returns true if the reservation is for the given vessel name,
// compared under normalization. An unassigned vessel name never matches.
func (r Reservation) OnVessel(vesselName string) bool {
	if calendar.NormalizeVesselName(r.vesselName) == "" {
		return false
	}
	return calendar.SameVessel(r.vesselName, vesselName)
}

// CanDelete reports whether the given actor may delete the reservation.
// The owner may delete only while the vessel is still at dock; staff may
// delete at any stage.
func (r Reservation) CanDelete(clientId uint32, staff bool) bool {
	if staff {
		return true
	}
	return r.clientId == clientId && r.status == StatusAtDock
}

// Builder returns a new builder seeded with the reservation's state
func (r Reservation) Builder() *Builder {
	return &Builder{
		id:            r.id,
		clientId:      r.clientId,
		clientName:    r.clientName,
		vesselName:    r.vesselName,
		date:          r.date,
		timeOfDay:     r.timeOfDay,
		route:         r.route,
		status:        r.status,
		checkInPhotos: r.checkInPhotos,
		tripPhotos:    r.tripPhotos,
		fuelReceipt:   r.fuelReceipt,
		inWaterAt:     r.inWaterAt,
		navigatingAt:  r.navigatingAt,
		returnedAt:    r.returnedAt,
		checkedInAt:   r.checkedInAt,
		tenantId:      r.tenantId,
		createdAt:     r.createdAt,
		updatedAt:     r.updatedAt,
	}
}

// Launch creates a new reservation with the vessel in the water
func (r Reservation) Launch() (Reservation, error) {
	if !r.status.CanTransitionTo(StatusInWater) {
		return Reservation{}, errors.New("reservation cannot be launched in current state")
	}
	now := time.Now()
	return r.Builder().
		SetStatus(StatusInWater).
		SetInWaterAt(&now).
		SetUpdatedAt(now).
		Build()
}

// Depart creates a new reservation with the vessel navigating
func (r Reservation) Depart() (Reservation, error) {
	if !r.status.CanTransitionTo(StatusNavigating) {
		return Reservation{}, errors.New("reservation cannot depart in current state")
	}
	now := time.Now()
	return r.Builder().
		SetStatus(StatusNavigating).
		SetNavigatingAt(&now).
		SetUpdatedAt(now).
		Build()
}

// Return creates a new reservation with the vessel back at the marina
func (r Reservation) Return() (Reservation, error) {
	if !r.status.CanTransitionTo(StatusReturned) {
		return Reservation{}, errors.New("reservation cannot be returned in current state")
	}
	now := time.Now()
	return r.Builder().
		SetStatus(StatusReturned).
		SetReturnedAt(&now).
		SetUpdatedAt(now).
		Build()
}

// CheckIn creates a new checked-in reservation. At least one staff
// check-in photo must be attached before the transition is permitted.
func (r Reservation) CheckIn() (Reservation, error) {
	if !r.status.CanTransitionTo(StatusCheckedIn) {
		return Reservation{}, errors.New("reservation cannot be checked in from current state")
	}
	if len(r.checkInPhotos) == 0 {
		return Reservation{}, errors.New("check-in requires at least one photo")
	}
	now := time.Now()
	return r.Builder().
		SetStatus(StatusCheckedIn).
		SetCheckedInAt(&now).
		SetUpdatedAt(now).
		Build()
}

// AdvanceTo creates a new reservation at the target status, stamping the
// matching transition timestamp
func (r Reservation) AdvanceTo(target Status) (Reservation, error) {
	switch target {
	case StatusInWater:
		return r.Launch()
	case StatusNavigating:
		return r.Depart()
	case StatusReturned:
		return r.Return()
	case StatusCheckedIn:
		return r.CheckIn()
	default:
		return Reservation{}, errors.New("invalid target status")
	}
}

// AttachTripPhotos appends client trip photos. Only permitted while the
// vessel is in the water, and capped.
func (r Reservation) AttachTripPhotos(photos []string) (Reservation, error) {
	if r.status != StatusInWater {
		return Reservation{}, errors.New("trip photos may only be attached while in the water")
	}
	if len(r.tripPhotos)+len(photos) > MaxTripPhotos {
		return Reservation{}, errors.New("trip photo limit exceeded")
	}
	now := time.Now()
	combined := make([]string, 0, len(r.tripPhotos)+len(photos))
	combined = append(combined, r.tripPhotos...)
	combined = append(combined, photos...)
	return r.Builder().
		SetTripPhotos(combined).
		SetUpdatedAt(now).
		Build()
}

// AttachCheckInPhotos appends staff check-in photos. Only permitted once
// the vessel has returned, and capped.
func (r Reservation) AttachCheckInPhotos(photos []string) (Reservation, error) {
	if r.status != StatusReturned {
		return Reservation{}, errors.New("check-in photos may only be attached after return")
	}
	if len(r.checkInPhotos)+len(photos) > MaxCheckInPhotos {
		return Reservation{}, errors.New("check-in photo limit exceeded")
	}
	now := time.Now()
	combined := make([]string, 0, len(r.checkInPhotos)+len(photos))
	combined = append(combined, r.checkInPhotos...)
	combined = append(combined, photos...)
	return r.Builder().
		SetCheckInPhotos(combined).
		SetUpdatedAt(now).
		Build()
}

// AttachFuelReceipt sets the fuel receipt. Only permitted while navigating.
func (r Reservation) AttachFuelReceipt(receipt FuelReceipt) (Reservation, error) {
	if r.status != StatusNavigating {
		return Reservation{}, errors.New("fuel receipt may only be attached while navigating")
	}
	now := time.Now()
	return r.Builder().
		SetFuelReceipt(&receipt).
		SetUpdatedAt(now).
		Build()
}

// WithFuelReceipt sets the fuel receipt without a status precondition.
// Used when forwarding fuel evidence onto a prior completed reservation.
func (r Reservation) WithFuelReceipt(receipt FuelReceipt) (Reservation, error) {
	now := time.Now()
	return r.Builder().
		SetFuelReceipt(&receipt).
		SetUpdatedAt(now).
		Build()
}

// Reschedule creates a new reservation with updated booking fields. Only
// permitted while the vessel is still at dock.
func (r Reservation) Reschedule(date calendar.Date, timeOfDay string, route string) (Reservation, error) {
	if r.status != StatusAtDock {
		return Reservation{}, errors.New("reservation may only be edited while at dock")
	}
	now := time.Now()
	return r.Builder().
		SetDate(date).
		SetTimeOfDay(timeOfDay).
		SetRoute(route).
		SetUpdatedAt(now).
		Build()
}
