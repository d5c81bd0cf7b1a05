// Package operation
package operation

import "errors"

var (
	// ErrMaintenanceNotFound 整備記録が存在しない(他人所有の場合も同じ扱いにする)
	ErrMaintenanceNotFound = errors.New("maintenance record does not exist")
)

// MaintenanceOperationInterface 整備記録テーブル操作の定義。
// 所有権は機体経由で判定するため、全ての問い合わせでdronesテーブルと結合する。
type MaintenanceOperationInterface interface {
	// GetMaintenanceById 操縦者スコープ内で主キー検索する
	GetMaintenanceById(pilotId, recordId uint) (record *MaintenanceRecord, err error)
	// GetMaintenanceRecords 操縦者の整備記録一覧。droneIdが0以外の場合はその機体のみ
	GetMaintenanceRecords(pilotId, droneId uint) (records []*MaintenanceRecord, err error)
	// AddMaintenance 整備記録を作成する
	AddMaintenance(record *MaintenanceRecord) (err error)
	// UpdateMaintenanceInfo 許可されたカラムのみを更新する
	UpdateMaintenanceInfo(record *MaintenanceRecord, info map[string]interface{}) (err error)
	// DeleteMaintenance 整備記録を削除する
	DeleteMaintenance(record *MaintenanceRecord) (err error)
	// CountByDrone 機体を参照する整備記録数
	CountByDrone(droneId uint) (count int64, err error)
}
