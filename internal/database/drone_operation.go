package database

import (
	"context"
	"errors"
	"time"

	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DroneOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewDroneOperation(db *gorm.DB, queryTimeout time.Duration) *DroneOperation {
	return &DroneOperation{db: db, queryTimeout: queryTimeout}
}

func (droneOperation *DroneOperation) GetDroneById(pilotId, droneId uint) (drone *Drone, err error) {
	drone = &Drone{}
	ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
	defer cancel()
	err = droneOperation.db.WithContext(ctx).
		Where("id = ? AND pilot_id = ?", droneId, pilotId).
		First(drone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrDroneNotFound
	}
	return
}

func (droneOperation *DroneOperation) GetDrones(pilotId uint) (drones []*Drone, err error) {
	drones = make([]*Drone, 0)
	ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
	defer cancel()
	err = droneOperation.db.WithContext(ctx).
		Where("pilot_id = ?", pilotId).
		Order("id").
		Find(&drones).Error
	return
}

func (droneOperation *DroneOperation) AddDrone(drone *Drone) error {
	return droneOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		if drone.SerialNumber != "" {
			taken, err := droneOperation.IsSerialTaken(tx, drone.PilotID, drone.SerialNumber, 0)
			if err != nil {
				return err
			}
			if taken {
				return ErrSerialTaken
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Create(drone).Error
	})
}

func (droneOperation *DroneOperation) UpdateDroneInfo(drone *Drone, info map[string]interface{}) error {
	return droneOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		if serial, ok := info["serial_number"]; ok && serial.(string) != "" {
			taken, err := droneOperation.IsSerialTaken(tx, drone.PilotID, serial.(string), drone.ID)
			if err != nil {
				return err
			}
			if taken {
				return ErrSerialTaken
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
		defer cancel()
		return tx.WithContext(ctx).Model(drone).Updates(info).Error
	})
}

func (droneOperation *DroneOperation) DeleteDrone(drone *Drone) error {
	return droneOperation.db.Clauses(clause.Locking{Strength: "UPDATE"}).Transaction(func(tx *gorm.DB) error {
		ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
		defer cancel()

		var logCount int64
		if err := tx.WithContext(ctx).Model(&FlightLog{}).Where("drone_id = ?", drone.ID).Count(&logCount).Error; err != nil {
			return err
		}

		var maintenanceCount int64
		if err := tx.WithContext(ctx).Model(&MaintenanceRecord{}).Where("drone_id = ?", drone.ID).Count(&maintenanceCount).Error; err != nil {
			return err
		}

		if logCount > 0 || maintenanceCount > 0 {
			return ErrDroneInUse
		}

		return tx.WithContext(ctx).Delete(drone).Error
	})
}

func (droneOperation *DroneOperation) IsSerialTaken(tx *gorm.DB, pilotId uint, serialNumber string, excludeId uint) (bool, error) {
	if tx == nil {
		tx = droneOperation.db
	}
	ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
	defer cancel()

	var count int64
	query := tx.WithContext(ctx).
		Model(&Drone{}).
		Where("pilot_id = ? AND serial_number = ?", pilotId, serialNumber)
	if excludeId > 0 {
		query = query.Where("id <> ?", excludeId)
	}
	err := query.Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (droneOperation *DroneOperation) CountByPilot(pilotId uint) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), droneOperation.queryTimeout)
	defer cancel()
	err = droneOperation.db.WithContext(ctx).
		Model(&Drone{}).
		Where("pilot_id = ?", pilotId).
		Count(&count).Error
	return
}
