package database

import (
	"context"
	"errors"
	"time"

	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"gorm.io/gorm"
)

// MaintenanceOperation 整備記録はdrone_idしか持たないため、
// 所有権の判定は常にdronesテーブルとの結合で行う。
type MaintenanceOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewMaintenanceOperation(db *gorm.DB, queryTimeout time.Duration) *MaintenanceOperation {
	return &MaintenanceOperation{db: db, queryTimeout: queryTimeout}
}

func (maintenanceOperation *MaintenanceOperation) GetMaintenanceById(pilotId, recordId uint) (record *MaintenanceRecord, err error) {
	record = &MaintenanceRecord{}
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	err = maintenanceOperation.db.WithContext(ctx).
		Model(&MaintenanceRecord{}).
		Select("maintenance_records.*").
		Joins("JOIN drones ON drones.id = maintenance_records.drone_id").
		Where("maintenance_records.id = ? AND drones.pilot_id = ?", recordId, pilotId).
		First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrMaintenanceNotFound
	}
	return
}

func (maintenanceOperation *MaintenanceOperation) GetMaintenanceRecords(pilotId, droneId uint) (records []*MaintenanceRecord, err error) {
	records = make([]*MaintenanceRecord, 0)
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	query := maintenanceOperation.db.WithContext(ctx).
		Model(&MaintenanceRecord{}).
		Select("maintenance_records.*").
		Joins("JOIN drones ON drones.id = maintenance_records.drone_id").
		Where("drones.pilot_id = ?", pilotId)
	if droneId > 0 {
		query = query.Where("maintenance_records.drone_id = ?", droneId)
	}
	err = query.
		Order("maintenance_records.maintenance_date DESC, maintenance_records.id DESC").
		Find(&records).Error
	return
}

func (maintenanceOperation *MaintenanceOperation) AddMaintenance(record *MaintenanceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	return maintenanceOperation.db.WithContext(ctx).Create(record).Error
}

func (maintenanceOperation *MaintenanceOperation) UpdateMaintenanceInfo(record *MaintenanceRecord, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	return maintenanceOperation.db.WithContext(ctx).Model(record).Updates(info).Error
}

func (maintenanceOperation *MaintenanceOperation) DeleteMaintenance(record *MaintenanceRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	return maintenanceOperation.db.WithContext(ctx).Delete(record).Error
}

func (maintenanceOperation *MaintenanceOperation) CountByDrone(droneId uint) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), maintenanceOperation.queryTimeout)
	defer cancel()
	err = maintenanceOperation.db.WithContext(ctx).
		Model(&MaintenanceRecord{}).
		Where("drone_id = ?", droneId).
		Count(&count).Error
	return
}
