// Package service
package service

import (
	"sync"
	"time"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type DashboardService struct {
	logger             log.LoggerInterface
	pilotOperation     operation.PilotOperationInterface
	flightLogOperation operation.FlightLogOperationInterface
}

func NewDashboardService(
	logger log.LoggerInterface,
	pilotOperation operation.PilotOperationInterface,
	flightLogOperation operation.FlightLogOperationInterface,
) *DashboardService {
	return &DashboardService{
		logger:             logger,
		pilotOperation:     pilotOperation,
		flightLogOperation: flightLogOperation,
	}
}

const dateLayout = "2006-01-02"

var (
	ErrStatsFail    = ApiStatus{StatusName: "STATS_FAIL", Description: "集計に失敗しました。", HttpCode: ServerInternalError}
	SuccessGetStats = ApiStatus{StatusName: "GET_STATS_SUCCESS", Description: "集計結果を取得しました。", HttpCode: Ok}
)

// GetDashboardStats 4つの集計を並行に流し、全て揃ってから結合する。
// どれか1つでも失敗した場合は全体を失敗として扱う。
func (dashboardService *DashboardService) GetDashboardStats(req *RequestDashboardStats) *ApiResponse[ResponseDashboardStats] {
	pilotId := req.Identity.PilotID
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)

	var (
		wg           sync.WaitGroup
		monthlyLogs  int64
		totalLogs    int64
		totalMinutes int64
		flightAreas  int64
		errs         [4]error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		monthlyLogs, errs[0] = dashboardService.flightLogOperation.CountLogsSince(pilotId, monthStart)
	}()
	go func() {
		defer wg.Done()
		totalLogs, errs[1] = dashboardService.flightLogOperation.CountLogs(pilotId)
	}()
	go func() {
		defer wg.Done()
		totalMinutes, errs[2] = dashboardService.flightLogOperation.SumMinutes(pilotId)
	}()
	go func() {
		defer wg.Done()
		flightAreas, errs[3] = dashboardService.flightLogOperation.CountDistinctStartLocations(pilotId)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			dashboardService.logger.ErrorF("Fail to aggregate dashboard stats for pilot %d: %v", pilotId, err)
			return NewApiResponse[ResponseDashboardStats](&ErrStatsFail, Unsatisfied, nil)
		}
	}

	pilot, err := dashboardService.pilotOperation.GetPilotById(pilotId)
	if err != nil {
		dashboardService.logger.ErrorF("Fail to aggregate dashboard stats for pilot %d: %v", pilotId, err)
		return NewApiResponse[ResponseDashboardStats](&ErrStatsFail, Unsatisfied, nil)
	}

	return NewApiResponse(&SuccessGetStats, Unsatisfied, &ResponseDashboardStats{
		MonthlyLogs:  monthlyLogs,
		TotalLogs:    totalLogs,
		TotalMinutes: int64(pilot.InitialFlightMinutes) + totalMinutes,
		FlightAreas:  flightAreas,
	})
}
