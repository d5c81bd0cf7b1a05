// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type DroneServiceInterface interface {
	GetDroneList(req *RequestDroneList) *ApiResponse[ResponseDroneList]
	GetDroneProfile(req *RequestDroneProfile) *ApiResponse[ResponseDroneProfile]
	CreateDrone(req *RequestDroneCreate) *ApiResponse[ResponseDroneCreate]
	EditDroneInfo(req *RequestDroneEdit) *ApiResponse[ResponseDroneEdit]
	DeleteDrone(req *RequestDroneDelete) *ApiResponse[ResponseDroneDelete]
}

type RequestDroneList struct {
	Identity *Identity
}

type ResponseDroneList struct {
	Items []*operation.Drone `json:"items"`
	Total int64              `json:"total"`
}

type RequestDroneProfile struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponseDroneProfile operation.Drone

type RequestDroneCreate struct {
	Identity           *Identity `json:"-"`
	Manufacturer       string    `json:"manufacturer"`
	Model              string    `json:"model"`
	Type               string    `json:"type"`
	SerialNumber       string    `json:"serial_number"`
	RegistrationSymbol string    `json:"registration_symbol"`
	ValidPeriodStart   string    `json:"valid_period_start"`
	ValidPeriodEnd     string    `json:"valid_period_end"`
	Nickname           string    `json:"nickname"`
}

type ResponseDroneCreate struct {
	Drone *operation.Drone `json:"drone"`
}

type RequestDroneEdit struct {
	Identity           *Identity `json:"-"`
	TargetID           uint      `json:"-" param:"id"`
	Manufacturer       string    `json:"manufacturer"`
	Model              string    `json:"model"`
	Type               string    `json:"type"`
	SerialNumber       string    `json:"serial_number"`
	RegistrationSymbol string    `json:"registration_symbol"`
	ValidPeriodStart   string    `json:"valid_period_start"`
	ValidPeriodEnd     string    `json:"valid_period_end"`
	Nickname           string    `json:"nickname"`
}

type ResponseDroneEdit struct {
	Drone *operation.Drone `json:"drone"`
}

type RequestDroneDelete struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponseDroneDelete struct{}
