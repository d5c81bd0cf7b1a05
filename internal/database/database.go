package database

import (
	"context"
	. "fmt"
	"time"

	c "github.com/hikoki-lab/drone-logbook/internal/interfaces/config"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/log"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces/operation"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBCloseCallback struct {
	db     *gorm.DB
	logger log.LoggerInterface
}

func NewDBCloseCallback(db *gorm.DB, logger log.LoggerInterface) *DBCloseCallback {
	return &DBCloseCallback{db: db, logger: logger}
}

func (dc *DBCloseCallback) Invoke(ctx context.Context) error {
	dc.logger.Info("Closing database connection")
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	db, err := dc.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}

func ConnectDatabase(loggerInterface log.LoggerInterface, config *c.Config, debugMode bool) (global.Callable, *DatabaseOperations, error) {
	databaseConfig := config.Database
	queryTimeout := databaseConfig.QueryDuration

	connection := databaseConfig.GetConnection(loggerInterface)

	connectionConfig := gorm.Config{}
	connectionConfig.DefaultTransactionTimeout = 5 * time.Second
	connectionConfig.PrepareStmt = true

	if debugMode {
		connectionConfig.Logger = logger.Default.LogMode(logger.Error)
	} else {
		connectionConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(connection, &connectionConfig)
	if err != nil {
		return nil, nil, Errorf("error occured while connecting to database: %v", err)
	}

	if err = db.Migrator().AutoMigrate(&Pilot{}, &Drone{}, &FlightLog{}, &MaintenanceRecord{}, &Session{}); err != nil {
		return nil, nil, Errorf("error occured while migrating database: %v", err)
	}

	dbPool, err := db.DB()
	if err != nil {
		return nil, nil, Errorf("error occured while creating database pool: %v", err)
	}

	maxOpenConnections := databaseConfig.ServerMaxConnections * 4 / 5 // DB側の最大接続数の80%まで
	maxIdleConnections := maxOpenConnections / 5

	dbPool.SetMaxIdleConns(maxIdleConnections)
	dbPool.SetMaxOpenConns(maxOpenConnections)
	dbPool.SetConnMaxLifetime(databaseConfig.ConnectIdleDuration)

	if err = dbPool.Ping(); err != nil {
		return nil, nil, Errorf("error occured while pinging database: %v", err)
	}
	loggerInterface.Info("Database initialized and connection established")

	operations := NewDatabaseOperations(
		NewPilotOperation(db, queryTimeout, config.Server.General),
		NewDroneOperation(db, queryTimeout),
		NewFlightLogOperation(db, queryTimeout),
		NewMaintenanceOperation(db, queryTimeout),
		NewSessionOperation(db, queryTimeout),
	)

	return NewDBCloseCallback(db, loggerInterface), operations, nil
}
