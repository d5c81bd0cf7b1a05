// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type DashboardServiceInterface interface {
	GetDashboardStats(req *RequestDashboardStats) *ApiResponse[ResponseDashboardStats]
}

type RequestDashboardStats struct {
	Identity *Identity
}

type ResponseDashboardStats operation.DashboardStats
