// Package controller
package controller

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type PilotControllerInterface interface {
	PilotRegister(ctx echo.Context) error
	GetPilots(ctx echo.Context) error
	GetPilotProfile(ctx echo.Context) error
	EditPilotProfile(ctx echo.Context) error
	DeletePilot(ctx echo.Context) error
}

type PilotController struct {
	logger  log.LoggerInterface
	service PilotServiceInterface
}

func NewPilotController(logger log.LoggerInterface, service PilotServiceInterface) *PilotController {
	return &PilotController{
		logger:  logger,
		service: service,
	}
}

func (controller *PilotController) PilotRegister(ctx echo.Context) error {
	data := &RequestPilotRegister{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.PilotRegister bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	return controller.service.PilotRegister(data).Response(ctx)
}

func (controller *PilotController) GetPilots(ctx echo.Context) error {
	data := &RequestPilotList{Identity: GetIdentity(ctx)}
	return controller.service.GetPilotList(data).Response(ctx)
}

func (controller *PilotController) GetPilotProfile(ctx echo.Context) error {
	data := &RequestPilotProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.GetPilotProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.GetPilotProfile(data).Response(ctx)
}

func (controller *PilotController) EditPilotProfile(ctx echo.Context) error {
	data := &RequestPilotEditProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.EditPilotProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.EditPilotProfile(data).Response(ctx)
}

func (controller *PilotController) DeletePilot(ctx echo.Context) error {
	data := &RequestPilotDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("PilotController.DeletePilot bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.DeletePilot(data).Response(ctx)
}
