package database

import (
	"context"
	"errors"
	"time"

	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"gorm.io/gorm"
)

type FlightLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewFlightLogOperation(db *gorm.DB, queryTimeout time.Duration) *FlightLogOperation {
	return &FlightLogOperation{db: db, queryTimeout: queryTimeout}
}

func (flightLogOperation *FlightLogOperation) GetFlightLogById(pilotId, logId uint) (flightLog *FlightLog, err error) {
	flightLog = &FlightLog{}
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Where("id = ? AND pilot_id = ?", logId, pilotId).
		First(flightLog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrFlightLogNotFound
	}
	return
}

func (flightLogOperation *FlightLogOperation) GetFlightLogs(pilotId uint) (flightLogs []*FlightLog, err error) {
	flightLogs = make([]*FlightLog, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Where("pilot_id = ?", pilotId).
		Order("fly_date DESC, id DESC").
		Find(&flightLogs).Error
	return
}

func (flightLogOperation *FlightLogOperation) AddFlightLog(flightLog *FlightLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	return flightLogOperation.db.WithContext(ctx).Create(flightLog).Error
}

func (flightLogOperation *FlightLogOperation) UpdateFlightLogInfo(flightLog *FlightLog, info map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	return flightLogOperation.db.WithContext(ctx).Model(flightLog).Updates(info).Error
}

func (flightLogOperation *FlightLogOperation) DeleteFlightLog(flightLog *FlightLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	return flightLogOperation.db.WithContext(ctx).Delete(flightLog).Error
}

// GetReportRows 帳票の行順は飛行日昇順、開始時刻昇順(未入力は末尾)、id昇順で固定する。
func (flightLogOperation *FlightLogOperation) GetReportRows(pilotId uint, startDate, endDate string) (rows []*FlightLogReportRow, err error) {
	rows = make([]*FlightLogReportRow, 0)
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Select("flight_logs.*, drones.nickname AS drone_nickname, drones.model AS drone_model, pilots.name AS pilot_name").
		Joins("JOIN drones ON drones.id = flight_logs.drone_id").
		Joins("JOIN pilots ON pilots.id = flight_logs.pilot_id").
		Where("flight_logs.pilot_id = ? AND flight_logs.fly_date >= ? AND flight_logs.fly_date <= ?", pilotId, startDate, endDate).
		Order("flight_logs.fly_date ASC").
		Order("CASE WHEN flight_logs.start_time = '' THEN 1 ELSE 0 END").
		Order("flight_logs.start_time ASC").
		Order("flight_logs.id ASC").
		Scan(&rows).Error
	return
}

func (flightLogOperation *FlightLogOperation) CountLogsSince(pilotId uint, date string) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Where("pilot_id = ? AND fly_date >= ?", pilotId, date).
		Count(&count).Error
	return
}

func (flightLogOperation *FlightLogOperation) CountLogs(pilotId uint) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Where("pilot_id = ?", pilotId).
		Count(&count).Error
	return
}

func (flightLogOperation *FlightLogOperation) SumMinutes(pilotId uint) (minutes int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Where("pilot_id = ?", pilotId).
		Select("COALESCE(SUM(actual_time_minutes), 0)").
		Scan(&minutes).Error
	return
}

func (flightLogOperation *FlightLogOperation) CountDistinctStartLocations(pilotId uint) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Where("pilot_id = ? AND start_location <> ''", pilotId).
		Distinct("start_location").
		Count(&count).Error
	return
}

func (flightLogOperation *FlightLogOperation) CountByDrone(droneId uint) (count int64, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), flightLogOperation.queryTimeout)
	defer cancel()
	err = flightLogOperation.db.WithContext(ctx).
		Model(&FlightLog{}).
		Where("drone_id = ?", droneId).
		Count(&count).Error
	return
}
