// Package controller
package controller

import (
	"fmt"
	"net/http"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type ReportControllerInterface interface {
	DownloadFlightLogReport(ctx echo.Context) error
}

type ReportController struct {
	logger  log.LoggerInterface
	service ReportServiceInterface
}

func NewReportController(logger log.LoggerInterface, service ReportServiceInterface) *ReportController {
	return &ReportController{
		logger:  logger,
		service: service,
	}
}

// DownloadFlightLogReport 成功時はJSONではなくPDF本文をそのまま返す。
func (controller *ReportController) DownloadFlightLogReport(ctx echo.Context) error {
	data := &RequestFlightLogReport{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("ReportController.DownloadFlightLogReport bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)

	res := controller.service.GenerateFlightLogReport(data)
	if res.Data == nil {
		return res.Response(ctx)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%s", res.Data.FileName))
	return ctx.Blob(http.StatusOK, "application/pdf", res.Data.Content)
}
