package reservation

import (
	"errors"

	"atlas-marina/calendar"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var activeStatuses = []Status{StatusAtDock, StatusInWater, StatusNavigating, StatusReturned}

// GetReservationByIdProvider retrieves a reservation by ID
func GetReservationByIdProvider(db *gorm.DB, log logrus.FieldLogger) func(reservationId uint32, tenantId uuid.UUID) model.Provider[Reservation] {
	return func(reservationId uint32, tenantId uuid.UUID) model.Provider[Reservation] {
		return func() (Reservation, error) {
			log.WithFields(logrus.Fields{
				"reservationId": reservationId,
				"tenantId":      tenantId,
			}).Debug("Retrieving reservation by ID")

			var entity Entity
			err := db.Where("id = ? AND tenant_id = ?", reservationId, tenantId).First(&entity).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return Reservation{}, errors.New("reservation not found")
				}
				return Reservation{}, err
			}

			return Make(entity)
		}
	}
}

// GetReservationsByClientProvider retrieves all reservations for a client
func GetReservationsByClientProvider(db *gorm.DB, log logrus.FieldLogger) func(clientId uint32, tenantId uuid.UUID) model.Provider[[]Reservation] {
	return func(clientId uint32, tenantId uuid.UUID) model.Provider[[]Reservation] {
		return func() ([]Reservation, error) {
			log.WithFields(logrus.Fields{
				"clientId": clientId,
				"tenantId": tenantId,
			}).Debug("Retrieving reservations for client")

			var entities []Entity
			err := db.Where("client_id = ? AND tenant_id = ?", clientId, tenantId).
				Order("date DESC").
				Find(&entities).Error

			if err != nil {
				return nil, err
			}

			return makeAll(entities)
		}
	}
}

// GetActiveReservationsByClientProvider retrieves the non-terminal
// reservations for a client
func GetActiveReservationsByClientProvider(db *gorm.DB, log logrus.FieldLogger) func(clientId uint32, tenantId uuid.UUID) model.Provider[[]Reservation] {
	return func(clientId uint32, tenantId uuid.UUID) model.Provider[[]Reservation] {
		return func() ([]Reservation, error) {
			log.WithFields(logrus.Fields{
				"clientId": clientId,
				"tenantId": tenantId,
			}).Debug("Retrieving active reservations for client")

			var entities []Entity
			err := db.Where("client_id = ? AND tenant_id = ? AND status IN (?)",
				clientId, tenantId, activeStatuses).
				Order("date ASC").
				Find(&entities).Error

			if err != nil {
				return nil, err
			}

			return makeAll(entities)
		}
	}
}

// GetAllReservationsProvider retrieves every reservation for a tenant,
// the staff schedule board view
func GetAllReservationsProvider(db *gorm.DB, log logrus.FieldLogger) func(tenantId uuid.UUID) model.Provider[[]Reservation] {
	return func(tenantId uuid.UUID) model.Provider[[]Reservation] {
		return func() ([]Reservation, error) {
			log.WithField("tenantId", tenantId).Debug("Retrieving all reservations")

			var entities []Entity
			err := db.Where("tenant_id = ?", tenantId).
				Order("date ASC, created_at ASC").
				Find(&entities).Error

			if err != nil {
				return nil, err
			}

			return makeAll(entities)
		}
	}
}

// GetActiveReservationsByVesselProvider retrieves the non-terminal
// reservations on a vessel. Vessel names compare case-insensitively
// after trimming; a blank name matches nothing.
func GetActiveReservationsByVesselProvider(db *gorm.DB, log logrus.FieldLogger) func(vesselName string, tenantId uuid.UUID) model.Provider[[]Reservation] {
	return func(vesselName string, tenantId uuid.UUID) model.Provider[[]Reservation] {
		return func() ([]Reservation, error) {
			log.WithFields(logrus.Fields{
				"vesselName": vesselName,
				"tenantId":   tenantId,
			}).Debug("Retrieving active reservations for vessel")

			normalized := calendar.NormalizeVesselName(vesselName)
			if normalized == "" {
				return []Reservation{}, nil
			}

			var entities []Entity
			err := db.Where("LOWER(TRIM(vessel_name)) = ? AND tenant_id = ? AND status IN (?)",
				normalized, tenantId, activeStatuses).
				Order("date ASC").
				Find(&entities).Error

			if err != nil {
				return nil, err
			}

			return makeAll(entities)
		}
	}
}

// GetPreviousCompletedReservationProvider retrieves the most recent
// reservation on the vessel that has reached RETURNED or CHECKED_IN,
// excluding the given reservation
func GetPreviousCompletedReservationProvider(db *gorm.DB, log logrus.FieldLogger) func(vesselName string, excludeId uint32, tenantId uuid.UUID) model.Provider[*Reservation] {
	return func(vesselName string, excludeId uint32, tenantId uuid.UUID) model.Provider[*Reservation] {
		return func() (*Reservation, error) {
			log.WithFields(logrus.Fields{
				"vesselName": vesselName,
				"excludeId":  excludeId,
				"tenantId":   tenantId,
			}).Debug("Retrieving previous completed reservation for vessel")

			normalized := calendar.NormalizeVesselName(vesselName)
			if normalized == "" {
				return nil, nil
			}

			var entity Entity
			err := db.Where("LOWER(TRIM(vessel_name)) = ? AND id <> ? AND tenant_id = ? AND status IN (?)",
				normalized, excludeId, tenantId, []Status{StatusReturned, StatusCheckedIn}).
				Order("returned_at DESC").
				First(&entity).Error

			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, nil
				}
				return nil, err
			}

			reservation, err := Make(entity)
			if err != nil {
				return nil, err
			}

			return &reservation, nil
		}
	}
}

// GetTenantsWithActiveReservationsProvider retrieves the distinct tenant
// IDs holding at least one non-terminal reservation
func GetTenantsWithActiveReservationsProvider(db *gorm.DB, log logrus.FieldLogger) model.Provider[[]uuid.UUID] {
	return func() ([]uuid.UUID, error) {
		log.Debug("Retrieving tenants with active reservations")

		var tenantIds []uuid.UUID
		err := db.Model(&Entity{}).
			Where("status IN (?)", activeStatuses).
			Distinct().
			Pluck("tenant_id", &tenantIds).Error

		if err != nil {
			return nil, err
		}

		return tenantIds, nil
	}
}

// GetMaintenanceBlocksByVesselProvider retrieves the maintenance blocks
// for a vessel
func GetMaintenanceBlocksByVesselProvider(db *gorm.DB, log logrus.FieldLogger) func(vesselName string, tenantId uuid.UUID) model.Provider[[]MaintenanceBlock] {
	return func(vesselName string, tenantId uuid.UUID) model.Provider[[]MaintenanceBlock] {
		return func() ([]MaintenanceBlock, error) {
			log.WithFields(logrus.Fields{
				"vesselName": vesselName,
				"tenantId":   tenantId,
			}).Debug("Retrieving maintenance blocks for vessel")

			var entities []MaintenanceBlockEntity
			err := db.Where("LOWER(TRIM(vessel_name)) = ? AND tenant_id = ?",
				calendar.NormalizeVesselName(vesselName), tenantId).
				Order("date ASC").
				Find(&entities).Error

			if err != nil {
				return nil, err
			}

			return makeAllMaintenanceBlocks(entities)
		}
	}
}

// GetAllMaintenanceBlocksProvider retrieves every maintenance block for a tenant
func GetAllMaintenanceBlocksProvider(db *gorm.DB, log logrus.FieldLogger) func(tenantId uuid.UUID) model.Provider[[]MaintenanceBlock] {
	return func(tenantId uuid.UUID) model.Provider[[]MaintenanceBlock] {
		return func() ([]MaintenanceBlock, error) {
			log.WithField("tenantId", tenantId).Debug("Retrieving all maintenance blocks")

			var entities []MaintenanceBlockEntity
			err := db.Where("tenant_id = ?", tenantId).
				Order("date ASC").
				Find(&entities).Error

			if err != nil {
				return nil, err
			}

			return makeAllMaintenanceBlocks(entities)
		}
	}
}

func makeAll(entities []Entity) ([]Reservation, error) {
	reservations := make([]Reservation, 0, len(entities))
	for _, entity := range entities {
		reservation, err := Make(entity)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func makeAllMaintenanceBlocks(entities []MaintenanceBlockEntity) ([]MaintenanceBlock, error) {
	blocks := make([]MaintenanceBlock, 0, len(entities))
	for _, entity := range entities {
		block, err := MakeMaintenanceBlock(entity)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
