package reservation

import (
	"errors"
	"time"

	"atlas-marina/calendar"
	"github.com/google/uuid"
)

// Builder provides fluent construction of Reservation models
type Builder struct {
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

// NewBuilder creates a new builder with required parameters
func NewBuilder(clientId uint32, vesselName string, date calendar.Date, tenantId uuid.UUID) *Builder {
	now := time.Now()
	return &Builder{
		clientId:   clientId,
		vesselName: vesselName,
		date:       date,
		status:     StatusAtDock,
		tenantId:   tenantId,
		createdAt:  now,
		updatedAt:  now,
	}
}

// SetId sets the reservation ID
func (b *Builder) SetId(id uint32) *Builder {
	b.id = id
	return b
}

// SetClientName sets the owning client name
func (b *Builder) SetClientName(name string) *Builder {
	b.clientName = name
	return b
}

// SetDate sets the outing date
func (b *Builder) SetDate(date calendar.Date) *Builder {
	b.date = date
	return b
}

// SetTimeOfDay sets the planned departure time text
func (b *Builder) SetTimeOfDay(timeOfDay string) *Builder {
	b.timeOfDay = timeOfDay
	return b
}

// SetRoute sets the destination or route text
func (b *Builder) SetRoute(route string) *Builder {
	b.route = route
	return b
}

// SetStatus sets the lifecycle status
func (b *Builder) SetStatus(status Status) *Builder {
	b.status = status
	return b
}

// SetCheckInPhotos sets the staff check-in photo references
func (b *Builder) SetCheckInPhotos(photos []string) *Builder {
	b.checkInPhotos = photos
	return b
}

// SetTripPhotos sets the client trip photo references
func (b *Builder) SetTripPhotos(photos []string) *Builder {
	b.tripPhotos = photos
	return b
}

// SetFuelReceipt sets the fuel receipt
func (b *Builder) SetFuelReceipt(receipt *FuelReceipt) *Builder {
	b.fuelReceipt = receipt
	return b
}

// SetInWaterAt sets the launch timestamp
func (b *Builder) SetInWaterAt(t *time.Time) *Builder {
	b.inWaterAt = t
	return b
}

// SetNavigatingAt sets the departure timestamp
func (b *Builder) SetNavigatingAt(t *time.Time) *Builder {
	b.navigatingAt = t
	return b
}

// SetReturnedAt sets the return timestamp
func (b *Builder) SetReturnedAt(t *time.Time) *Builder {
	b.returnedAt = t
	return b
}

// SetCheckedInAt sets the check-in timestamp
func (b *Builder) SetCheckedInAt(t *time.Time) *Builder {
	b.checkedInAt = t
	return b
}

// SetCreatedAt sets the creation timestamp
func (b *Builder) SetCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// SetUpdatedAt sets the last update timestamp
func (b *Builder) SetUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates and constructs the final Reservation model
func (b *Builder) Build() (Reservation, error) {
	if b.clientId == 0 {
		return Reservation{}, errors.New("client ID is required")
	}

	if !b.date.Valid() {
		return Reservation{}, errors.New("valid date is required")
	}

	if b.tenantId == uuid.Nil {
		return Reservation{}, errors.New("tenant ID is required")
	}

	if err := b.validateStateTransitions(); err != nil {
		return Reservation{}, err
	}

	return Reservation{
		id:            b.id,
		clientId:      b.clientId,
		clientName:    b.clientName,
		vesselName:    b.vesselName,
		date:          b.date,
		timeOfDay:     b.timeOfDay,
		route:         b.route,
		status:        b.status,
		checkInPhotos: b.checkInPhotos,
		tripPhotos:    b.tripPhotos,
		fuelReceipt:   b.fuelReceipt,
		inWaterAt:     b.inWaterAt,
		navigatingAt:  b.navigatingAt,
		returnedAt:    b.returnedAt,
		checkedInAt:   b.checkedInAt,
		tenantId:      b.tenantId,
		createdAt:     b.createdAt,
		updatedAt:     b.updatedAt,
	}, nil
}

// validateStateTransitions validates that the stamped transition
// timestamps are consistent with the lifecycle status
func (b *Builder) validateStateTransitions() error {
	switch b.status {
	case StatusAtDock:
		if b.inWaterAt != nil {
			return errors.New("at-dock reservation cannot have launch timestamp")
		}
		if b.navigatingAt != nil {
			return errors.New("at-dock reservation cannot have departure timestamp")
		}
		if b.returnedAt != nil {
			return errors.New("at-dock reservation cannot have return timestamp")
		}
		if b.checkedInAt != nil {
			return errors.New("at-dock reservation cannot have check-in timestamp")
		}
	case StatusInWater:
		if b.inWaterAt == nil {
			return errors.New("in-water reservation must have launch timestamp")
		}
		if b.navigatingAt != nil {
			return errors.New("in-water reservation cannot have departure timestamp")
		}
		if b.returnedAt != nil {
			return errors.New("in-water reservation cannot have return timestamp")
		}
		if b.checkedInAt != nil {
			return errors.New("in-water reservation cannot have check-in timestamp")
		}
	case StatusNavigating:
		if b.inWaterAt == nil {
			return errors.New("navigating reservation must have launch timestamp")
		}
		if b.navigatingAt == nil {
			return errors.New("navigating reservation must have departure timestamp")
		}
		if b.returnedAt != nil {
			return errors.New("navigating reservation cannot have return timestamp")
		}
		if b.checkedInAt != nil {
			return errors.New("navigating reservation cannot have check-in timestamp")
		}
	case StatusReturned:
		if b.inWaterAt == nil {
			return errors.New("returned reservation must have launch timestamp")
		}
		if b.navigatingAt == nil {
			return errors.New("returned reservation must have departure timestamp")
		}
		if b.returnedAt == nil {
			return errors.New("returned reservation must have return timestamp")
		}
		if b.checkedInAt != nil {
			return errors.New("returned reservation cannot have check-in timestamp")
		}
	case StatusCheckedIn:
		if b.inWaterAt == nil {
			return errors.New("checked-in reservation must have launch timestamp")
		}
		if b.navigatingAt == nil {
			return errors.New("checked-in reservation must have departure timestamp")
		}
		if b.returnedAt == nil {
			return errors.New("checked-in reservation must have return timestamp")
		}
		if b.checkedInAt == nil {
			return errors.New("checked-in reservation must have check-in timestamp")
		}
	default:
		return errors.New("invalid reservation status")
	}

	return nil
}
