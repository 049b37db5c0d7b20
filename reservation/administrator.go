package reservation

import (
	"time"

	"atlas-marina/calendar"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CreateReservation creates a new reservation in the database
func CreateReservation(db *gorm.DB, log logrus.FieldLogger) func(clientId uint32, clientName string, vesselName string, date calendar.Date, timeOfDay string, route string, tenantId uuid.UUID) model.Provider[Entity] {
	return func(clientId uint32, clientName string, vesselName string, date calendar.Date, timeOfDay string, route string, tenantId uuid.UUID) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithFields(logrus.Fields{
				"clientId":   clientId,
				"vesselName": vesselName,
				"date":       date,
				"tenantId":   tenantId,
			}).Debug("Creating reservation entity")

			// Create new reservation entity
			now := time.Now()
			entity := Entity{
				ClientId:      clientId,
				ClientName:    clientName,
				VesselName:    vesselName,
				Date:          string(date),
				TimeOfDay:     timeOfDay,
				Route:         route,
				Status:        StatusAtDock,
				CheckInPhotos: "[]",
				TripPhotos:    "[]",
				TenantId:      tenantId,
				CreatedAt:     now,
				UpdatedAt:     now,
			}

			if err := db.Create(&entity).Error; err != nil {
				return Entity{}, err
			}

			return entity, nil
		}
	}
}

// UpdateReservation updates an existing reservation in the database
func UpdateReservation(db *gorm.DB, log logrus.FieldLogger) func(reservation Reservation) model.Provider[Entity] {
	return func(reservation Reservation) model.Provider[Entity] {
		return func() (Entity, error) {
			log.WithField("reservationId", reservation.Id()).Debug("Updating reservation entity")

			entity, err := reservation.ToEntity()
			if err != nil {
				return Entity{}, err
			}
			entity.UpdatedAt = time.Now()

			if err := db.Save(&entity).Error; err != nil {
				return Entity{}, err
			}

			return entity, nil
		}
	}
}

// DeleteReservation removes a reservation from the database
func DeleteReservation(db *gorm.DB, log logrus.FieldLogger) func(reservationId uint32, tenantId uuid.UUID) error {
	return func(reservationId uint32, tenantId uuid.UUID) error {
		log.WithFields(logrus.Fields{
			"reservationId": reservationId,
			"tenantId":      tenantId,
		}).Debug("Deleting reservation entity")

		return db.Where("id = ? AND tenant_id = ?", reservationId, tenantId).Delete(&Entity{}).Error
	}
}

// CreateMaintenanceBlock creates a new maintenance block in the database
func CreateMaintenanceBlock(db *gorm.DB, log logrus.FieldLogger) func(vesselName string, date calendar.Date, tenantId uuid.UUID) model.Provider[MaintenanceBlockEntity] {
	return func(vesselName string, date calendar.Date, tenantId uuid.UUID) model.Provider[MaintenanceBlockEntity] {
		return func() (MaintenanceBlockEntity, error) {
			log.WithFields(logrus.Fields{
				"vesselName": vesselName,
				"date":       date,
				"tenantId":   tenantId,
			}).Debug("Creating maintenance block entity")

			entity := MaintenanceBlockEntity{
				VesselName: vesselName,
				Date:       string(date),
				TenantId:   tenantId,
				CreatedAt:  time.Now(),
			}

			if err := db.Create(&entity).Error; err != nil {
				return MaintenanceBlockEntity{}, err
			}

			return entity, nil
		}
	}
}

// DeleteMaintenanceBlocks removes maintenance blocks for a vessel and date
func DeleteMaintenanceBlocks(db *gorm.DB, log logrus.FieldLogger) func(vesselName string, date calendar.Date, tenantId uuid.UUID) error {
	return func(vesselName string, date calendar.Date, tenantId uuid.UUID) error {
		log.WithFields(logrus.Fields{
			"vesselName": vesselName,
			"date":       date,
			"tenantId":   tenantId,
		}).Debug("Deleting maintenance block entities")

		return db.Where("LOWER(TRIM(vessel_name)) = ? AND date = ? AND tenant_id = ?",
			calendar.NormalizeVesselName(vesselName), string(date), tenantId).
			Delete(&MaintenanceBlockEntity{}).Error
	}
}
