package reservation

import (
	"time"

	"atlas-marina/calendar"
	"github.com/google/uuid"
)

// MaintenanceBlock marks a vessel unavailable for booking on a date.
// Blocks are staff-declared, have no owner, and never transition.
type MaintenanceBlock struct {
	id         uint32
	vesselName string
	date       calendar.Date
	tenantId   uuid.UUID
	createdAt  time.Time
}

// NewMaintenanceBlock creates a maintenance block value
func NewMaintenanceBlock(id uint32, vesselName string, date calendar.Date, tenantId uuid.UUID, createdAt time.Time) MaintenanceBlock {
	return MaintenanceBlock{
		id:         id,
		vesselName: vesselName,
		date:       date,
		tenantId:   tenantId,
		createdAt:  createdAt,
	}
}

// Id returns the block ID
func (m MaintenanceBlock) Id() uint32 {
	return m.id
}

// VesselName returns the blocked vessel name
func (m MaintenanceBlock) VesselName() string {
	return m.vesselName
}

// Date returns the blocked date
func (m MaintenanceBlock) Date() calendar.Date {
	return m.date
}

// TenantId returns the tenant ID
func (m MaintenanceBlock) TenantId() uuid.UUID {
	return m.tenantId
}

// CreatedAt returns the creation timestamp
func (m MaintenanceBlock) CreatedAt() time.Time {
	return m.createdAt
}

// Covers reports whether the block applies to the given vessel and date
func (m MaintenanceBlock) Covers(vesselName string, date calendar.Date) bool {
	return calendar.SameVessel(m.vesselName, vesselName) && m.date == date
}
