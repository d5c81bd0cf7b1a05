// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
)

type PilotServiceInterface interface {
	PilotRegister(req *RequestPilotRegister) *ApiResponse[ResponsePilotRegister]
	GetPilotList(req *RequestPilotList) *ApiResponse[ResponsePilotList]
	GetPilotProfile(req *RequestPilotProfile) *ApiResponse[ResponsePilotProfile]
	EditPilotProfile(req *RequestPilotEditProfile) *ApiResponse[ResponsePilotEditProfile]
	DeletePilot(req *RequestPilotDelete) *ApiResponse[ResponsePilotDelete]
}

type RequestPilotRegister struct {
	Name                 string `json:"name"`
	NameKana             string `json:"name_kana"`
	PostalCode           string `json:"postal_code"`
	Prefecture           string `json:"prefecture"`
	Address1             string `json:"address1"`
	Address2             string `json:"address2"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	HasLicense           bool   `json:"has_license"`
	InitialFlightMinutes int    `json:"initial_flight_minutes"`
	Password             string `json:"password"`
}

type ResponsePilotRegister struct {
	Pilot *operation.Pilot `json:"pilot"`
}

type RequestPilotList struct {
	Identity *Identity
}

type ResponsePilotList struct{}

type RequestPilotProfile struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponsePilotProfile struct {
	*operation.Pilot
	AppFlightMinutes int64 `json:"app_flight_minutes"`
}

type RequestPilotEditProfile struct {
	Identity             *Identity `json:"-"`
	TargetID             uint      `json:"-" param:"id"`
	Name                 string    `json:"name"`
	NameKana             string    `json:"name_kana"`
	PostalCode           string    `json:"postal_code"`
	Prefecture           string    `json:"prefecture"`
	Address1             string    `json:"address1"`
	Address2             string    `json:"address2"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone"`
	HasLicense           bool      `json:"has_license"`
	InitialFlightMinutes int       `json:"initial_flight_minutes"`
	Password             string    `json:"password"`
}

type ResponsePilotEditProfile struct {
	Pilot *operation.Pilot `json:"pilot"`
}

type RequestPilotDelete struct {
	Identity *Identity
	TargetID uint `param:"id"`
}

type ResponsePilotDelete struct{}
