// Package service
package service

import (
	"fmt"
	"time"

	"github.com/hikoki-lab/drone-logbook/internal/http_server/service/report"
	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type ReportService struct {
	logger             log.LoggerInterface
	builder            *report.Builder
	flightLogOperation operation.FlightLogOperationInterface
}

func NewReportService(
	logger log.LoggerInterface,
	config *c.ReportConfig,
	flightLogOperation operation.FlightLogOperationInterface,
) *ReportService {
	return &ReportService{
		logger:             logger,
		builder:            report.NewBuilder(config),
		flightLogOperation: flightLogOperation,
	}
}

var (
	ErrReportRange = ApiStatus{StatusName: "VALIDATION_ERROR", Description: "出力期間の指定が正しくありません。", HttpCode: BadRequest}
	ErrReportFail  = ApiStatus{StatusName: "REPORT_FAIL", Description: "帳票の生成に失敗しました。", HttpCode: ServerInternalError}
	SuccessReport  = ApiStatus{StatusName: "REPORT_SUCCESS", Description: "帳票を生成しました。", HttpCode: Ok}
)

// validReportDate "YYYY-MM-DD"の厳密な形式のみ受け付ける。
func validReportDate(value string) bool {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return false
	}
	return parsed.Format(dateLayout) == value
}

func (reportService *ReportService) GenerateFlightLogReport(req *RequestFlightLogReport) *ApiResponse[ResponseFlightLogReport] {
	if !validReportDate(req.Start) || !validReportDate(req.End) || req.Start > req.End {
		return NewApiResponse[ResponseFlightLogReport](&ErrReportRange, Unsatisfied, nil)
	}

	rows, res := CallDBFuncAndCheckError[[]*operation.FlightLogReportRow, ResponseFlightLogReport](func() (*[]*operation.FlightLogReportRow, error) {
		rows, err := reportService.flightLogOperation.GetReportRows(req.Identity.PilotID, req.Start, req.End)
		return &rows, err
	})
	if res != nil {
		return res
	}

	// 全体をバッファに描画し終えてから応答する。途中失敗で部分的な本文は返さない
	content, err := reportService.builder.Build(*rows, req.Start, req.End)
	if err != nil {
		reportService.logger.ErrorF("Fail to build flight log report for pilot %d: %v", req.Identity.PilotID, err)
		return NewApiResponse[ResponseFlightLogReport](&ErrReportFail, Unsatisfied, nil)
	}

	return NewApiResponse(&SuccessReport, Unsatisfied, &ResponseFlightLogReport{
		FileName: fmt.Sprintf("flight_logs_%s_%s.pdf", req.Start, req.End),
		Content:  content,
	})
}
