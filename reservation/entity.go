package reservation

import (
	"encoding/json"
	"time"

	"atlas-marina/calendar"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Entity represents the GORM-compatible database representation of a reservation
type Entity struct {
	ID               uint32     `gorm:"primaryKey;autoIncrement"`
	ClientId         uint32     `gorm:"index;not null"`
	ClientName       string     `gorm:"not null"`
	VesselName       string     `gorm:"index"`
	Date             string     `gorm:"index;not null"`
	TimeOfDay        string     ``
	Route            string     ``
	Status           Status     `gorm:"index;not null"`
	CheckInPhotos    string     `gorm:"type:text"` // JSON array of photo references
	TripPhotos       string     `gorm:"type:text"` // JSON array of photo references
	FuelImage        string     ``
	FuelPayeeName    string     ``
	FuelPayeeKey     string     ``
	FuelAttachedAt   *time.Time ``
	InWaterAt        *time.Time `gorm:"index"`
	NavigatingAt     *time.Time `gorm:"index"`
	ReturnedAt       *time.Time `gorm:"index"`
	CheckedInAt      *time.Time `gorm:"index"`
	TenantId         uuid.UUID  `gorm:"type:uuid;index;not null"`
	CreatedAt        time.Time  `gorm:"not null"`
	UpdatedAt        time.Time  `gorm:"not null"`
}

// TableName returns the table name for the reservation entity
func (Entity) TableName() string {
	return "reservations"
}

// MaintenanceBlockEntity represents the GORM-compatible database
// representation of a maintenance block
type MaintenanceBlockEntity struct {
	ID         uint32    `gorm:"primaryKey;autoIncrement"`
	VesselName string    `gorm:"index;not null"`
	Date       string    `gorm:"index;not null"`
	TenantId   uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the maintenance block entity
func (MaintenanceBlockEntity) TableName() string {
	return "maintenance_blocks"
}

// Migration performs the database migration for the reservation and
// maintenance block entities
func Migration(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entity{}); err != nil {
		return err
	}
	return db.AutoMigrate(&MaintenanceBlockEntity{})
}

// Make transforms a reservation entity to a domain model
func Make(entity Entity) (Reservation, error) {
	checkInPhotos, err := parsePhotos(entity.CheckInPhotos)
	if err != nil {
		return Reservation{}, err
	}
	tripPhotos, err := parsePhotos(entity.TripPhotos)
	if err != nil {
		return Reservation{}, err
	}

	b := NewBuilder(entity.ClientId, entity.VesselName, calendar.Date(entity.Date), entity.TenantId).
		SetId(entity.ID).
		SetClientName(entity.ClientName).
		SetTimeOfDay(entity.TimeOfDay).
		SetRoute(entity.Route).
		SetStatus(entity.Status).
		SetCheckInPhotos(checkInPhotos).
		SetTripPhotos(tripPhotos).
		SetInWaterAt(entity.InWaterAt).
		SetNavigatingAt(entity.NavigatingAt).
		SetReturnedAt(entity.ReturnedAt).
		SetCheckedInAt(entity.CheckedInAt).
		SetCreatedAt(entity.CreatedAt).
		SetUpdatedAt(entity.UpdatedAt)

	if entity.FuelImage != "" {
		attachedAt := entity.CreatedAt
		if entity.FuelAttachedAt != nil {
			attachedAt = *entity.FuelAttachedAt
		}
		receipt := NewFuelReceipt(entity.FuelImage, entity.FuelPayeeName, entity.FuelPayeeKey, attachedAt)
		b = b.SetFuelReceipt(&receipt)
	}

	return b.Build()
}

// ToEntity converts a reservation domain model to a database entity
func (r Reservation) ToEntity() (Entity, error) {
	checkInPhotos, err := photosToJSON(r.checkInPhotos)
	if err != nil {
		return Entity{}, err
	}
	tripPhotos, err := photosToJSON(r.tripPhotos)
	if err != nil {
		return Entity{}, err
	}

	entity := Entity{
		ID:            r.id,
		ClientId:      r.clientId,
		ClientName:    r.clientName,
		VesselName:    r.vesselName,
		Date:          string(r.date),
		TimeOfDay:     r.timeOfDay,
		Route:         r.route,
		Status:        r.status,
		CheckInPhotos: checkInPhotos,
		TripPhotos:    tripPhotos,
		InWaterAt:     r.inWaterAt,
		NavigatingAt:  r.navigatingAt,
		ReturnedAt:    r.returnedAt,
		CheckedInAt:   r.checkedInAt,
		TenantId:      r.tenantId,
		CreatedAt:     r.createdAt,
		UpdatedAt:     r.updatedAt,
	}

	if r.fuelReceipt != nil {
		attachedAt := r.fuelReceipt.AttachedAt()
		entity.FuelImage = r.fuelReceipt.Image()
		entity.FuelPayeeName = r.fuelReceipt.PayeeName()
		entity.FuelPayeeKey = r.fuelReceipt.PayeeKey()
		entity.FuelAttachedAt = &attachedAt
	}

	return entity, nil
}

// MakeMaintenanceBlock transforms a maintenance block entity to a domain model
func MakeMaintenanceBlock(entity MaintenanceBlockEntity) (MaintenanceBlock, error) {
	return NewMaintenanceBlock(entity.ID, entity.VesselName, calendar.Date(entity.Date), entity.TenantId, entity.CreatedAt), nil
}

// ToEntity converts a maintenance block domain model to a database entity
func (m MaintenanceBlock) ToEntity() MaintenanceBlockEntity {
	return MaintenanceBlockEntity{
		ID:         m.id,
		VesselName: m.vesselName,
		Date:       string(m.date),
		TenantId:   m.tenantId,
		CreatedAt:  m.createdAt,
	}
}

// parsePhotos converts a JSON string to a slice of photo references
func parsePhotos(photosJSON string) ([]string, error) {
	if photosJSON == "" {
		return []string{}, nil
	}

	var photos []string
	if err := json.Unmarshal([]byte(photosJSON), &photos); err != nil {
		return nil, err
	}

	return photos, nil
}

// photosToJSON converts a slice of photo references to a JSON string
func photosToJSON(photos []string) (string, error) {
	if len(photos) == 0 {
		return "[]", nil
	}

	data, err := json.Marshal(photos)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
