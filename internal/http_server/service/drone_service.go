// Package service
package service

import (
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type DroneService struct {
	droneOperation operation.DroneOperationInterface
}

func NewDroneService(droneOperation operation.DroneOperationInterface) *DroneService {
	return &DroneService{droneOperation: droneOperation}
}

var SuccessGetDrones = ApiStatus{StatusName: "GET_DRONES_SUCCESS", Description: "機体一覧を取得しました。", HttpCode: Ok}

func (droneService *DroneService) GetDroneList(req *RequestDroneList) *ApiResponse[ResponseDroneList] {
	drones, res := CallDBFuncAndCheckError[[]*operation.Drone, ResponseDroneList](func() (*[]*operation.Drone, error) {
		drones, err := droneService.droneOperation.GetDrones(req.Identity.PilotID)
		return &drones, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetDrones, Unsatisfied, &ResponseDroneList{
		Items: *drones,
		Total: int64(len(*drones)),
	})
}

var SuccessGetDrone = ApiStatus{StatusName: "GET_DRONE_SUCCESS", Description: "機体情報を取得しました。", HttpCode: Ok}

func (droneService *DroneService) GetDroneProfile(req *RequestDroneProfile) *ApiResponse[ResponseDroneProfile] {
	drone, res := CallDBFuncAndCheckError[operation.Drone, ResponseDroneProfile](func() (*operation.Drone, error) {
		return droneService.droneOperation.GetDroneById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetDrone, Unsatisfied, (*ResponseDroneProfile)(drone))
}

var SuccessCreateDrone = ApiStatus{StatusName: "CREATE_DRONE_SUCCESS", Description: "機体を登録しました。", HttpCode: Ok}

func (droneService *DroneService) CreateDrone(req *RequestDroneCreate) *ApiResponse[ResponseDroneCreate] {
	if req.Model == "" {
		return NewApiResponse[ResponseDroneCreate](&ErrIllegalParam, Unsatisfied, nil)
	}

	// 所有者はセッションから決める。リクエスト本文の値は参照しない
	drone := &operation.Drone{
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
		Type:               req.Type,
		SerialNumber:       req.SerialNumber,
		RegistrationSymbol: req.RegistrationSymbol,
		ValidPeriodStart:   req.ValidPeriodStart,
		ValidPeriodEnd:     req.ValidPeriodEnd,
		Nickname:           req.Nickname,
		PilotID:            req.Identity.PilotID,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDroneCreate](func() (*interface{}, error) {
		return nil, droneService.droneOperation.AddDrone(drone)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessCreateDrone, Unsatisfied, &ResponseDroneCreate{Drone: drone})
}

var SuccessEditDrone = ApiStatus{StatusName: "EDIT_DRONE_SUCCESS", Description: "機体情報を更新しました。", HttpCode: Ok}

func (droneService *DroneService) EditDroneInfo(req *RequestDroneEdit) *ApiResponse[ResponseDroneEdit] {
	if req.Model == "" {
		return NewApiResponse[ResponseDroneEdit](&ErrIllegalParam, Unsatisfied, nil)
	}

	drone, res := CallDBFuncAndCheckError[operation.Drone, ResponseDroneEdit](func() (*operation.Drone, error) {
		return droneService.droneOperation.GetDroneById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}

	// pilot_idは更新対象に含めない
	info := map[string]interface{}{
		"manufacturer":        req.Manufacturer,
		"model":               req.Model,
		"type":                req.Type,
		"serial_number":       req.SerialNumber,
		"registration_symbol": req.RegistrationSymbol,
		"valid_period_start":  req.ValidPeriodStart,
		"valid_period_end":    req.ValidPeriodEnd,
		"nickname":            req.Nickname,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDroneEdit](func() (*interface{}, error) {
		return nil, droneService.droneOperation.UpdateDroneInfo(drone, info)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessEditDrone, Unsatisfied, &ResponseDroneEdit{Drone: drone})
}

var SuccessDeleteDrone = ApiStatus{StatusName: "DELETE_DRONE_SUCCESS", Description: "機体を削除しました。", HttpCode: Ok}

func (droneService *DroneService) DeleteDrone(req *RequestDroneDelete) *ApiResponse[ResponseDroneDelete] {
	drone, res := CallDBFuncAndCheckError[operation.Drone, ResponseDroneDelete](func() (*operation.Drone, error) {
		return droneService.droneOperation.GetDroneById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseDroneDelete](func() (*interface{}, error) {
		return nil, droneService.droneOperation.DeleteDrone(drone)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessDeleteDrone, Unsatisfied, &ResponseDroneDelete{})
}
