// Package service
package service

import (
	"testing"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"gorm.io/gorm"
)

// nopLogger 集計失敗経路が出力する分を握り潰す。
type nopLogger struct{}

func (l *nopLogger) Init(debug bool)                     {}
func (l *nopLogger) ShutdownCallback() global.Callable   { return nil }
func (l *nopLogger) Debug(msg string, v ...interface{})  {}
func (l *nopLogger) DebugF(msg string, v ...interface{}) {}
func (l *nopLogger) Info(msg string, v ...interface{})   {}
func (l *nopLogger) InfoF(msg string, v ...interface{})  {}
func (l *nopLogger) Warn(msg string, v ...interface{})   {}
func (l *nopLogger) WarnF(msg string, v ...interface{})  {}
func (l *nopLogger) Error(msg string, v ...interface{})  {}
func (l *nopLogger) ErrorF(msg string, v ...interface{}) {}
func (l *nopLogger) Fatal(msg string, v ...interface{})  {}
func (l *nopLogger) FatalF(msg string, v ...interface{}) {}

// fakeFlightLogOperation 集計値を固定で返す飛行記録操作。
type fakeFlightLogOperation struct {
	monthlyLogs  int64
	totalLogs    int64
	totalMinutes int64
	flightAreas  int64
	sumError     error
}

func (f *fakeFlightLogOperation) GetFlightLogById(pilotId, logId uint) (*operation.FlightLog, error) {
	return nil, operation.ErrFlightLogNotFound
}

func (f *fakeFlightLogOperation) GetFlightLogs(pilotId uint) ([]*operation.FlightLog, error) {
	return nil, nil
}

func (f *fakeFlightLogOperation) AddFlightLog(flightLog *operation.FlightLog) error { return nil }

func (f *fakeFlightLogOperation) UpdateFlightLogInfo(flightLog *operation.FlightLog, info map[string]interface{}) error {
	return nil
}

func (f *fakeFlightLogOperation) DeleteFlightLog(flightLog *operation.FlightLog) error { return nil }

func (f *fakeFlightLogOperation) GetReportRows(pilotId uint, startDate, endDate string) ([]*operation.FlightLogReportRow, error) {
	return nil, nil
}

func (f *fakeFlightLogOperation) CountLogsSince(pilotId uint, date string) (int64, error) {
	return f.monthlyLogs, nil
}

func (f *fakeFlightLogOperation) CountLogs(pilotId uint) (int64, error) { return f.totalLogs, nil }

func (f *fakeFlightLogOperation) SumMinutes(pilotId uint) (int64, error) {
	return f.totalMinutes, f.sumError
}

func (f *fakeFlightLogOperation) CountDistinctStartLocations(pilotId uint) (int64, error) {
	return f.flightAreas, nil
}

func (f *fakeFlightLogOperation) CountByDrone(droneId uint) (int64, error) { return 0, nil }

func TestGetDashboardStatsEmpty(t *testing.T) {
	pilotOperation := &fakePilotOperation{
		pilots: map[uint]*operation.Pilot{1: {ID: 1, Name: "山田太郎"}},
	}
	dashboardService := NewDashboardService(&nopLogger{}, pilotOperation, &fakeFlightLogOperation{})

	res := dashboardService.GetDashboardStats(&service.RequestDashboardStats{
		Identity: &service.Identity{PilotID: 1},
	})
	if res.Code != SuccessGetStats.StatusName {
		t.Fatalf("GetDashboardStats code = %q; expected %q", res.Code, SuccessGetStats.StatusName)
	}
	stats := res.Data
	if stats.MonthlyLogs != 0 || stats.TotalLogs != 0 || stats.TotalMinutes != 0 || stats.FlightAreas != 0 {
		t.Errorf("GetDashboardStats with no logs = %+v; expected all zero", *stats)
	}
}

func TestGetDashboardStatsInitialMinutes(t *testing.T) {
	pilotOperation := &fakePilotOperation{
		pilots: map[uint]*operation.Pilot{1: {ID: 1, Name: "山田太郎", InitialFlightMinutes: 300}},
	}
	flightLogOperation := &fakeFlightLogOperation{
		monthlyLogs:  2,
		totalLogs:    5,
		totalMinutes: 120,
		flightAreas:  3,
	}
	dashboardService := NewDashboardService(&nopLogger{}, pilotOperation, flightLogOperation)

	res := dashboardService.GetDashboardStats(&service.RequestDashboardStats{
		Identity: &service.Identity{PilotID: 1},
	})
	if res.Code != SuccessGetStats.StatusName {
		t.Fatalf("GetDashboardStats code = %q; expected %q", res.Code, SuccessGetStats.StatusName)
	}
	if res.Data.TotalMinutes != 420 {
		t.Errorf("GetDashboardStats total minutes = %d; expected 420", res.Data.TotalMinutes)
	}
}

func TestGetDashboardStatsAggregateFailure(t *testing.T) {
	pilotOperation := &fakePilotOperation{
		pilots: map[uint]*operation.Pilot{1: {ID: 1, Name: "山田太郎"}},
	}
	flightLogOperation := &fakeFlightLogOperation{sumError: gorm.ErrInvalidDB}
	dashboardService := NewDashboardService(&nopLogger{}, pilotOperation, flightLogOperation)

	res := dashboardService.GetDashboardStats(&service.RequestDashboardStats{
		Identity: &service.Identity{PilotID: 1},
	})
	if res.Code != ErrStatsFail.StatusName {
		t.Errorf("GetDashboardStats code = %q; expected %q", res.Code, ErrStatsFail.StatusName)
	}
	if res.Data != nil {
		t.Errorf("GetDashboardStats on failure must not carry data")
	}
}
