// Package service
package service

import (
	"errors"

	"github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
)

type MaintenanceService struct {
	droneOperation       operation.DroneOperationInterface
	maintenanceOperation operation.MaintenanceOperationInterface
}

func NewMaintenanceService(
	droneOperation operation.DroneOperationInterface,
	maintenanceOperation operation.MaintenanceOperationInterface,
) *MaintenanceService {
	return &MaintenanceService{
		droneOperation:       droneOperation,
		maintenanceOperation: maintenanceOperation,
	}
}

var (
	SuccessGetMaintenances   = ApiStatus{StatusName: "GET_MAINTENANCES_SUCCESS", Description: "整備記録一覧を取得しました。", HttpCode: Ok}
	SuccessGetMaintenance    = ApiStatus{StatusName: "GET_MAINTENANCE_SUCCESS", Description: "整備記録を取得しました。", HttpCode: Ok}
	SuccessCreateMaintenance = ApiStatus{StatusName: "CREATE_MAINTENANCE_SUCCESS", Description: "整備記録を登録しました。", HttpCode: Ok}
	SuccessEditMaintenance   = ApiStatus{StatusName: "EDIT_MAINTENANCE_SUCCESS", Description: "整備記録を更新しました。", HttpCode: Ok}
	SuccessDeleteMaintenance = ApiStatus{StatusName: "DELETE_MAINTENANCE_SUCCESS", Description: "整備記録を削除しました。", HttpCode: Ok}
)

// checkDroneOwnership 整備対象の機体が本人所有であることを確認する。
func (maintenanceService *MaintenanceService) checkDroneOwnership(pilotId, droneId uint) *ApiStatus {
	if _, err := maintenanceService.droneOperation.GetDroneById(pilotId, droneId); err != nil {
		if errors.Is(err, operation.ErrDroneNotFound) {
			return &ErrDroneNotOwned
		}
		return &ErrDatabaseFail
	}
	return nil
}

func (maintenanceService *MaintenanceService) GetMaintenanceList(req *RequestMaintenanceList) *ApiResponse[ResponseMaintenanceList] {
	records, res := CallDBFuncAndCheckError[[]*operation.MaintenanceRecord, ResponseMaintenanceList](func() (*[]*operation.MaintenanceRecord, error) {
		records, err := maintenanceService.maintenanceOperation.GetMaintenanceRecords(req.Identity.PilotID, req.DroneID)
		return &records, err
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetMaintenances, Unsatisfied, &ResponseMaintenanceList{
		Items: *records,
		Total: int64(len(*records)),
	})
}

func (maintenanceService *MaintenanceService) GetMaintenanceProfile(req *RequestMaintenanceProfile) *ApiResponse[ResponseMaintenanceProfile] {
	record, res := CallDBFuncAndCheckError[operation.MaintenanceRecord, ResponseMaintenanceProfile](func() (*operation.MaintenanceRecord, error) {
		return maintenanceService.maintenanceOperation.GetMaintenanceById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetMaintenance, Unsatisfied, (*ResponseMaintenanceProfile)(record))
}

func (maintenanceService *MaintenanceService) CreateMaintenance(req *RequestMaintenanceCreate) *ApiResponse[ResponseMaintenanceCreate] {
	if req.DroneID == 0 || req.MaintenanceDate == "" {
		return NewApiResponse[ResponseMaintenanceCreate](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := maintenanceService.checkDroneOwnership(req.Identity.PilotID, req.DroneID); status != nil {
		return NewApiResponse[ResponseMaintenanceCreate](status, Unsatisfied, nil)
	}

	record := &operation.MaintenanceRecord{
		DroneID:            req.DroneID,
		MaintenanceDate:    req.MaintenanceDate,
		Description:        req.Description,
		Provider:           req.Provider,
		IsMakerMaintenance: req.IsMakerMaintenance,
		AttachmentPath:     req.AttachmentPath,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseMaintenanceCreate](func() (*interface{}, error) {
		return nil, maintenanceService.maintenanceOperation.AddMaintenance(record)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessCreateMaintenance, Unsatisfied, &ResponseMaintenanceCreate{Maintenance: record})
}

func (maintenanceService *MaintenanceService) EditMaintenanceInfo(req *RequestMaintenanceEdit) *ApiResponse[ResponseMaintenanceEdit] {
	if req.DroneID == 0 || req.MaintenanceDate == "" {
		return NewApiResponse[ResponseMaintenanceEdit](&ErrIllegalParam, Unsatisfied, nil)
	}
	if status := maintenanceService.checkDroneOwnership(req.Identity.PilotID, req.DroneID); status != nil {
		return NewApiResponse[ResponseMaintenanceEdit](status, Unsatisfied, nil)
	}

	record, res := CallDBFuncAndCheckError[operation.MaintenanceRecord, ResponseMaintenanceEdit](func() (*operation.MaintenanceRecord, error) {
		return maintenanceService.maintenanceOperation.GetMaintenanceById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}

	info := map[string]interface{}{
		"drone_id":             req.DroneID,
		"maintenance_date":     req.MaintenanceDate,
		"description":          req.Description,
		"provider":             req.Provider,
		"is_maker_maintenance": req.IsMakerMaintenance,
		"attachment_path":      req.AttachmentPath,
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseMaintenanceEdit](func() (*interface{}, error) {
		return nil, maintenanceService.maintenanceOperation.UpdateMaintenanceInfo(record, info)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessEditMaintenance, Unsatisfied, &ResponseMaintenanceEdit{Maintenance: record})
}

func (maintenanceService *MaintenanceService) DeleteMaintenance(req *RequestMaintenanceDelete) *ApiResponse[ResponseMaintenanceDelete] {
	record, res := CallDBFuncAndCheckError[operation.MaintenanceRecord, ResponseMaintenanceDelete](func() (*operation.MaintenanceRecord, error) {
		return maintenanceService.maintenanceOperation.GetMaintenanceById(req.Identity.PilotID, req.TargetID)
	})
	if res != nil {
		return res
	}

	if _, res := CallDBFuncAndCheckError[interface{}, ResponseMaintenanceDelete](func() (*interface{}, error) {
		return nil, maintenanceService.maintenanceOperation.DeleteMaintenance(record)
	}); res != nil {
		return res
	}

	return NewApiResponse(&SuccessDeleteMaintenance, Unsatisfied, &ResponseMaintenanceDelete{})
}
