package reservation

import (
	"fmt"
	"sort"
	"time"

	"atlas-marina/calendar"
	"atlas-marina/client"
)

// Snapshot is the reservation and maintenance state a booking decision is
// evaluated against. The engine is a pure function of the snapshot; it
// never reads ambient state, so a stale snapshot gives a stale answer and
// callers re-evaluate against a fresh one before dispatching a mutation.
type Snapshot struct {
	reservations []Reservation
	maintenance  []MaintenanceBlock
}

// NewSnapshot creates a snapshot value
func NewSnapshot(reservations []Reservation, maintenance []MaintenanceBlock) Snapshot {
	return Snapshot{
		reservations: reservations,
		maintenance:  maintenance,
	}
}

// Reservations returns the reservations in the snapshot
func (s Snapshot) Reservations() []Reservation {
	return s.reservations
}

// MaintenanceBlocks returns the maintenance blocks in the snapshot
func (s Snapshot) MaintenanceBlocks() []MaintenanceBlock {
	return s.maintenance
}

// EligibilityError represents a specific booking denial
type EligibilityError struct {
	Code    string
	Message string
}

func (e EligibilityError) Error() string {
	return e.Message
}

// Predefined eligibility errors
var (
	ErrRegistrationIncomplete = EligibilityError{
		Code:    "REGISTRATION_INCOMPLETE",
		Message: "client registration is incomplete",
	}
	ErrClientBlocked = EligibilityError{
		Code:    "CLIENT_BLOCKED",
		Message: "client is under an administrative hold",
	}
	ErrUnresolvedPastReservation = EligibilityError{
		Code:    "UNRESOLVED_PAST_RESERVATION",
		Message: "unresolved past reservation; complete check-in first",
	}
	ErrFutureReservationOnFile = EligibilityError{
		Code:    "FUTURE_RESERVATION_ON_FILE",
		Message: "future reservation already on file; new booking only for today once unlocked",
	}
	ErrMaintenanceBlocked = EligibilityError{
		Code:    "MAINTENANCE_BLOCKED",
		Message: "date blocked for maintenance",
	}
	ErrDateTakenBySelf = EligibilityError{
		Code:    "DATE_TAKEN_BY_SELF",
		Message: "you already hold a reservation this date",
	}
)

// NewDateTakenByOtherError builds the denial naming the conflicting booker
func NewDateTakenByOtherError(bookerName string) EligibilityError {
	return EligibilityError{
		Code:    "DATE_TAKEN_BY_OTHER",
		Message: fmt.Sprintf("date already booked by another owner: %s", bookerName),
	}
}

// Evaluate decides whether the client may book the target date given the
// snapshot. A nil return means the booking is allowed; otherwise the
// returned EligibilityError carries the denial reason.
func Evaluate(c client.Model, date calendar.Date, snap Snapshot, now time.Time) error {
	return evaluate(c, date, 0, snap, now)
}

// EvaluateReschedule applies the same rules as Evaluate but excludes the
// reservation being edited from every scan
func EvaluateReschedule(c client.Model, date calendar.Date, excludeId uint32, snap Snapshot, now time.Time) error {
	return evaluate(c, date, excludeId, snap, now)
}

func evaluate(c client.Model, date calendar.Date, excludeId uint32, snap Snapshot, now time.Time) error {
	if !c.IsRegistrationComplete() {
		return ErrRegistrationIncomplete
	}

	if c.Blocked() {
		return ErrClientBlocked
	}

	today := calendar.Today(now)
	unlocked := calendar.Unlocked(now)

	// Sole owners carry no cross-client restriction. Their only conflict
	// axis is their own history.
	if c.Ownership() == client.OwnershipSole {
		for _, r := range snap.reservations {
			if r.Id() == excludeId || r.IsTerminal() || !r.BelongsTo(c.Id()) {
				continue
			}
			if r.Date() == date {
				return ErrDateTakenBySelf
			}
		}
		return nil
	}

	forwardBlocking := false
	for _, r := range snap.reservations {
		if r.Id() == excludeId || r.IsTerminal() || !r.BelongsTo(c.Id()) {
			continue
		}
		if r.Date().Before(today) {
			return ErrUnresolvedPastReservation
		}
		if r.Date().After(today) || (r.Date() == today && !unlocked) {
			forwardBlocking = true
		}
	}

	if forwardBlocking && date != today {
		return ErrFutureReservationOnFile
	}

	for _, m := range snap.maintenance {
		if m.Covers(c.VesselName(), date) {
			return ErrMaintenanceBlocked
		}
	}

	for _, r := range snap.reservations {
		if r.Id() == excludeId || r.IsTerminal() {
			continue
		}
		if !r.OnVessel(c.VesselName()) || r.Date() != date {
			continue
		}
		if r.BelongsTo(c.Id()) {
			return ErrDateTakenBySelf
		}
		return NewDateTakenByOtherError(r.ClientName())
	}

	return nil
}

// BlockedDates computes the advisory set of unselectable dates for the
// client's calendar. Scoped to shared vessels; sole owners have no
// cross-booking blocked-date concept. The set must be re-validated
// through Evaluate at submission time.
func BlockedDates(c client.Model, snap Snapshot) []calendar.Date {
	if c.Ownership() != client.OwnershipShared {
		return []calendar.Date{}
	}

	seen := make(map[calendar.Date]struct{})
	for _, r := range snap.reservations {
		if r.IsTerminal() || !r.OnVessel(c.VesselName()) {
			continue
		}
		seen[r.Date()] = struct{}{}
	}
	for _, m := range snap.maintenance {
		if !calendar.SameVessel(m.VesselName(), c.VesselName()) {
			continue
		}
		seen[m.Date()] = struct{}{}
	}

	dates := make([]calendar.Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
