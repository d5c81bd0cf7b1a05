// Package controller
package controller

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type MaintenanceControllerInterface interface {
	GetMaintenances(ctx echo.Context) error
	GetMaintenanceProfile(ctx echo.Context) error
	CreateMaintenance(ctx echo.Context) error
	EditMaintenance(ctx echo.Context) error
	DeleteMaintenance(ctx echo.Context) error
}

type MaintenanceController struct {
	logger  log.LoggerInterface
	service MaintenanceServiceInterface
}

func NewMaintenanceController(logger log.LoggerInterface, service MaintenanceServiceInterface) *MaintenanceController {
	return &MaintenanceController{
		logger:  logger,
		service: service,
	}
}

func (controller *MaintenanceController) GetMaintenances(ctx echo.Context) error {
	data := &RequestMaintenanceList{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MaintenanceController.GetMaintenances bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.GetMaintenanceList(data).Response(ctx)
}

func (controller *MaintenanceController) GetMaintenanceProfile(ctx echo.Context) error {
	data := &RequestMaintenanceProfile{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MaintenanceController.GetMaintenanceProfile bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.GetMaintenanceProfile(data).Response(ctx)
}

func (controller *MaintenanceController) CreateMaintenance(ctx echo.Context) error {
	data := &RequestMaintenanceCreate{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MaintenanceController.CreateMaintenance bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.CreateMaintenance(data).Response(ctx)
}

func (controller *MaintenanceController) EditMaintenance(ctx echo.Context) error {
	data := &RequestMaintenanceEdit{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MaintenanceController.EditMaintenance bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.EditMaintenanceInfo(data).Response(ctx)
}

func (controller *MaintenanceController) DeleteMaintenance(ctx echo.Context) error {
	data := &RequestMaintenanceDelete{}
	if err := ctx.Bind(data); err != nil {
		controller.logger.ErrorF("MaintenanceController.DeleteMaintenance bind error: %v", err)
		return NewErrorResponse(ctx, &ErrLackParam)
	}
	data.Identity = GetIdentity(ctx)
	return controller.service.DeleteMaintenance(data).Response(ctx)
}
