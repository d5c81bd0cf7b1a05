// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type MaintenanceServiceInterface interface {
	GetMaintenanceList(req *RequestMaintenanceList) *ApiResponse[ResponseMaintenanceList]
	GetMaintenanceProfile(req *RequestMaintenanceProfile) *ApiResponse[ResponseMaintenanceProfile]
	CreateMaintenance(req *RequestMaintenanceCreate) *ApiResponse[ResponseMaintenanceCreate]
	EditMaintenanceInfo(req *RequestMaintenanceEdit) *ApiResponse[ResponseMaintenanceEdit]
	DeleteMaintenance(req *RequestMaintenanceDelete) *ApiResponse[ResponseMaintenanceDelete]
}

type RequestMaintenanceList struct {
	Identity *Identity
	DroneID  uint `query:"drone_id"`
}

type ResponseMaintenanceList struct {
	Items []*operation.MaintenanceRecord `json:"items"`
	Total int64                          `json:"total"`
}

type RequestMaintenanceProfile struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponseMaintenanceProfile operation.MaintenanceRecord

type RequestMaintenanceCreate struct {
	Identity           *Identity `json:"-"`
	DroneID            uint      `json:"drone_id"`
	MaintenanceDate    string    `json:"maintenance_date"`
	Description        string    `json:"description"`
	Provider           string    `json:"provider"`
	IsMakerMaintenance bool      `json:"is_maker_maintenance"`
	AttachmentPath     string    `json:"attachment_path"`
}

type ResponseMaintenanceCreate struct {
	Maintenance *operation.MaintenanceRecord `json:"maintenance"`
}

type RequestMaintenanceEdit struct {
	Identity           *Identity `json:"-"`
	TargetID           uint      `json:"-" param:"id"`
	DroneID            uint      `json:"drone_id"`
	MaintenanceDate    string    `json:"maintenance_date"`
	Description        string    `json:"description"`
	Provider           string    `json:"provider"`
	IsMakerMaintenance bool      `json:"is_maker_maintenance"`
	AttachmentPath     string    `json:"attachment_path"`
}

type ResponseMaintenanceEdit struct {
	Maintenance *operation.MaintenanceRecord `json:"maintenance"`
}

type RequestMaintenanceDelete struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponseMaintenanceDelete struct{}
