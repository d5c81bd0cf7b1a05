// Package controller
package controller

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type DroneControllerInterface interface {
	GetDrones(ctx echo.Context) error
	GetDroneProfile(ctx echo.Context) error
	CreateDrone(ctx echo.Context) error
	EditDrone(ctx echo.Context) error
	DeleteDrone(ctx echo.Context) error
}

type DroneController struct {
	logger  log.LoggerInterface
	service DroneServiceInterface
}

func NewDroneController(logger log.LoggerInterface, service DroneServiceInterface) *DroneController {
	return &DroneController{
		logger:  logger,
		service: service,
	}
}

func (controller *DroneController) GetDrones(ctx echo.Context) error {
	data := &RequestDroneList{Identity: GetIdentity(ctx)}
	return controller.service.GetDroneList(data).Response(ctx)
}

func (controller *DroneController) GetDroneProfile(ctx echo.Context) error {
	data := &RequestDroneProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("DroneController.GetDroneProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.GetDroneProfile(data).Response(ctx)
}

func (controller *DroneController) CreateDrone(ctx echo.Context) error {
	data := &RequestDroneCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("DroneController.CreateDrone bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.CreateDrone(data).Response(ctx)
}

func (controller *DroneController) EditDrone(ctx echo.Context) error {
	data := &RequestDroneEdit{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("DroneController.EditDrone bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.EditDroneInfo(data).Response(ctx)
}

func (controller *DroneController) DeleteDrone(ctx echo.Context) error {
	data := &RequestDroneDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("DroneController.DeleteDrone bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.DeleteDrone(data).Response(ctx)
}
