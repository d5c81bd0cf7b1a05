// Package operation
package operation

type DatabaseOperations struct {
	pilotOperation       PilotOperationInterface
	droneOperation       DroneOperationInterface
	flightLogOperation   FlightLogOperationInterface
	maintenanceOperation MaintenanceOperationInterface
	sessionOperation     SessionOperationInterface
}

func NewDatabaseOperations(
	pilotOperation PilotOperationInterface,
	droneOperation DroneOperationInterface,
	flightLogOperation FlightLogOperationInterface,
	maintenanceOperation MaintenanceOperationInterface,
	sessionOperation SessionOperationInterface,
) *DatabaseOperations {
	return &DatabaseOperations{
		pilotOperation:       pilotOperation,
		droneOperation:       droneOperation,
		flightLogOperation:   flightLogOperation,
		maintenanceOperation: maintenanceOperation,
		sessionOperation:     sessionOperation,
	}
}

func (db *DatabaseOperations) PilotOperation() PilotOperationInterface {
	return db.pilotOperation
}

func (db *DatabaseOperations) DroneOperation() DroneOperationInterface {
	return db.droneOperation
}

func (db *DatabaseOperations) FlightLogOperation() FlightLogOperationInterface {
	return db.flightLogOperation
}

func (db *DatabaseOperations) MaintenanceOperation() MaintenanceOperationInterface {
	return db.maintenanceOperation
}

func (db *DatabaseOperations) SessionOperation() SessionOperationInterface {
	return db.sessionOperation
}
