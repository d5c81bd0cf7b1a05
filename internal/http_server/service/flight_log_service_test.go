// Package service
package service

import (
	"testing"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"gorm.io/gorm"
)

// fakeDroneOperation 所有判定だけを差し替えた機体操作。
type fakeDroneOperation struct {
	owner  uint
	drones map[uint]*operation.Drone
}

func (f *fakeDroneOperation) GetDroneById(pilotId, droneId uint) (*operation.Drone, error) {
	drone, found := f.drones[droneId]
	if !found || pilotId != f.owner {
		return nil, operation.ErrDroneNotFound
	}
	return drone, nil
}

func (f *fakeDroneOperation) GetDrones(pilotId uint) ([]*operation.Drone, error) { return nil, nil }

func (f *fakeDroneOperation) AddDrone(drone *operation.Drone) error { return nil }

func (f *fakeDroneOperation) UpdateDroneInfo(drone *operation.Drone, info map[string]interface{}) error {
	return nil
}

func (f *fakeDroneOperation) DeleteDrone(drone *operation.Drone) error { return nil }

func (f *fakeDroneOperation) IsSerialTaken(tx *gorm.DB, pilotId uint, serialNumber string, excludeId uint) (bool, error) {
	return false, nil
}

func (f *fakeDroneOperation) CountByPilot(pilotId uint) (int64, error) { return 0, nil }

func validFields() service.FlightLogFields {
	return service.FlightLogFields{
		DroneID:    1,
		FlyDate:    "2026-08-01",
		StartTime:  "09:00",
		EndTime:    "10:30",
		Purpose:    "訓練",
		FlightForm: "目視内飛行",
	}
}

func TestCheckFlightLogFields(t *testing.T) {
	droneOperation := &fakeDroneOperation{
		owner:  1,
		drones: map[uint]*operation.Drone{1: {Nickname: "テスト機"}},
	}
	flightLogService := NewFlightLogService(droneOperation, nil)

	tests := []struct {
		name            string
		pilotId         uint
		mutate          func(fields *service.FlightLogFields)
		expectedMinutes int
		expectedStatus  *service.ApiStatus
	}{
		{"valid", 1, func(fields *service.FlightLogFields) {}, 90, nil},
		{"missing drone", 1, func(fields *service.FlightLogFields) { fields.DroneID = 0 }, 0, &service.ErrIllegalParam},
		{"missing fly date", 1, func(fields *service.FlightLogFields) { fields.FlyDate = "" }, 0, &service.ErrIllegalParam},
		{"unknown purpose", 1, func(fields *service.FlightLogFields) { fields.Purpose = "登山" }, 0, &ErrPurposeValue},
		{"unknown flight form", 1, func(fields *service.FlightLogFields) { fields.FlightForm = "水中飛行" }, 0, &ErrFlightForm},
		{"empty purpose", 1, func(fields *service.FlightLogFields) { fields.Purpose = "" }, 90, nil},
		{"empty flight form", 1, func(fields *service.FlightLogFields) { fields.FlightForm = "" }, 90, nil},
		{"empty purpose and flight form", 1, func(fields *service.FlightLogFields) { fields.Purpose = ""; fields.FlightForm = "" }, 90, nil},
		{"broken clock", 1, func(fields *service.FlightLogFields) { fields.StartTime = "9時" }, 0, &ErrClockFormat},
		{"zero minutes", 1, func(fields *service.FlightLogFields) { fields.EndTime = "09:00" }, 0, &ErrFlightTime},
		{"missing times", 1, func(fields *service.FlightLogFields) { fields.StartTime = ""; fields.EndTime = "" }, 0, &ErrFlightTime},
		{"over twelve hours", 1, func(fields *service.FlightLogFields) { fields.EndTime = "21:01" }, 0, &ErrFlightTime},
		{"exactly twelve hours", 1, func(fields *service.FlightLogFields) { fields.EndTime = "21:00" }, 720, nil},
		{"one minute", 1, func(fields *service.FlightLogFields) { fields.EndTime = "09:01" }, 1, nil},
		{"overnight wrap", 1, func(fields *service.FlightLogFields) { fields.StartTime = "23:30"; fields.EndTime = "00:15" }, 45, nil},
		{"drone of another pilot", 2, func(fields *service.FlightLogFields) {}, 0, &ErrDroneNotOwned},
		{"unknown drone", 1, func(fields *service.FlightLogFields) { fields.DroneID = 99 }, 0, &ErrDroneNotOwned},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		fields := validFields()
		test.mutate(&fields)
		minutes, status := flightLogService.checkFlightLogFields(test.pilotId, &fields)
		if minutes != test.expectedMinutes || status != test.expectedStatus {
			fail++
			t.Errorf("checkFlightLogFields(%s) = (%d, %v); expected (%d, %v)", test.name, minutes, status, test.expectedMinutes, test.expectedStatus)
			continue
		}
		pass++
	}
	t.Logf("TestCheckFlightLogFields: %d pass, %d fail", pass, fail)
}
