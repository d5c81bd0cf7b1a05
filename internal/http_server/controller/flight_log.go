// Package controller
package controller

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type FlightLogControllerInterface interface {
	GetFlightLogs(ctx echo.Context) error
	GetFlightLogProfile(ctx echo.Context) error
	CreateFlightLog(ctx echo.Context) error
	EditFlightLog(ctx echo.Context) error
	DeleteFlightLog(ctx echo.Context) error
}

type FlightLogController struct {
	logger  log.LoggerInterface
	service FlightLogServiceInterface
}

func NewFlightLogController(logger log.LoggerInterface, service FlightLogServiceInterface) *FlightLogController {
	return &FlightLogController{
		logger:  logger,
		service: service,
	}
}

func (controller *FlightLogController) GetFlightLogs(ctx echo.Context) error {
	data := &RequestFlightLogList{Identity: GetIdentity(ctx)}
	return controller.service.GetFlightLogList(data).Response(ctx)
}

func (controller *FlightLogController) GetFlightLogProfile(ctx echo.Context) error {
	data := &RequestFlightLogProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightLogController.GetFlightLogProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.GetFlightLogProfile(data).Response(ctx)
}

func (controller *FlightLogController) CreateFlightLog(ctx echo.Context) error {
	data := &RequestFlightLogCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightLogController.CreateFlightLog bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.CreateFlightLog(data).Response(ctx)
}

func (controller *FlightLogController) EditFlightLog(ctx echo.Context) error {
	data := &RequestFlightLogEdit{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightLogController.EditFlightLog bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.EditFlightLogInfo(data).Response(ctx)
}

func (controller *FlightLogController) DeleteFlightLog(ctx echo.Context) error {
	data := &RequestFlightLogDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("FlightLogController.DeleteFlightLog bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.DeleteFlightLog(data).Response(ctx)
}
