// Package operation
package operation

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDroneNotFound 機体が存在しない(他人所有の場合も同じ扱いにする)
	ErrDroneNotFound = errors.New("drone does not exist")
	// ErrDroneInUse 飛行記録または整備記録から参照されているため削除不可
	ErrDroneInUse = errors.New("drone is referenced by flight logs or maintenance records")
	// ErrSerialTaken 同一操縦者内で製造番号が重複している
	ErrSerialTaken = errors.New("serial number has been used by the same pilot")
)

// DroneOperationInterface 機体テーブル操作の定義。
// 読み書きは必ずpilotIdで絞り込む。
type DroneOperationInterface interface {
	// GetDroneById 操縦者スコープ内で主キー検索する。他人の機体はErrDroneNotFound
	GetDroneById(pilotId, droneId uint) (drone *Drone, err error)
	// GetDrones 操縦者の機体一覧
	GetDrones(pilotId uint) (drones []*Drone, err error)
	// AddDrone 製造番号の操縦者内一意性を確認してから作成する
	AddDrone(drone *Drone) (err error)
	// UpdateDroneInfo 許可されたカラムのみを更新する。pilot_idは変更不可
	UpdateDroneInfo(drone *Drone, info map[string]interface{}) (err error)
	// DeleteDrone 参照する飛行記録・整備記録が無いことを同一トランザクションで確認してから削除する
	DeleteDrone(drone *Drone) (err error)
	// IsSerialTaken excludeId以外の同一操縦者の機体で製造番号が使用済みか確認する
	IsSerialTaken(tx *gorm.DB, pilotId uint, serialNumber string, excludeId uint) (taken bool, err error)
	// CountByPilot 操縦者が所有する機体数
	CountByPilot(pilotId uint) (count int64, err error)
}
