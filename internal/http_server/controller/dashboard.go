// Package controller
package controller

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
)

type DashboardControllerInterface interface {
	GetDashboardStats(ctx echo.Context) error
}

type DashboardController struct {
	logger  log.LoggerInterface
	service DashboardServiceInterface
}

func NewDashboardController(logger log.LoggerInterface, service DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		logger:  logger,
		service: service,
	}
}

func (controller *DashboardController) GetDashboardStats(ctx echo.Context) error {
	data := &RequestDashboardStats{Identity: GetIdentity(ctx)}
	return controller.service.GetDashboardStats(data).Response(ctx)
}
