// Package http_server
package http_server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hikoki-lab/drone-logbook/internal/http_server/controller"
	mid "github.com/hikoki-lab/drone-logbook/internal/http_server/middleware"
	impl "github.com/hikoki-lab/drone-logbook/internal/http_server/service"
	"github.com/hikoki-lab/drone-logbook/internal/http_server/service/store"
	. "github.com/hikoki-lab/drone-logbook/internal/interfaces"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	slogecho "github.com/samber/slog-echo"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

// startSessionSweeper 期限切れセッションを周期的に削除する。
func startSessionSweeper(applicationContent *ApplicationContent, interval time.Duration) {
	logger := applicationContent.Logger()
	sessionOperation := applicationContent.Operations().SessionOperation()
	ticker := time.NewTicker(interval)
	go func() {
		for range ticker.C {
			if removed, err := sessionOperation.SweepExpired(); err != nil {
				logger.ErrorF("Fail to sweep expired sessions: %v", err)
			} else if removed > 0 {
				logger.DebugF("Swept %d expired sessions", removed)
			}
		}
	}()
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	operations := applicationContent.Operations()
	pilotOperation := operations.PilotOperation()
	droneOperation := operations.DroneOperation()
	flightLogOperation := operations.FlightLogOperation()
	maintenanceOperation := operations.MaintenanceOperation()
	sessionOperation := operations.SessionOperation()

	service.InitServiceLogger(logger)
	impl.InitValidator(httpConfig.Limits)

	sessionRequired := mid.SessionMiddleware(logger, httpConfig.Session, sessionOperation, true)
	sessionOptional := mid.SessionMiddleware(logger, httpConfig.Session, sessionOperation, false)

	emailService := impl.NewEmailService(logger, httpConfig.Email)

	var storeService service.StoreServiceInterface
	storeService = store.NewLocalStoreService(logger, httpConfig.Store)
	switch httpConfig.Store.StoreType {
	case 1:
		storeService = store.NewALiYunOssStoreService(logger, httpConfig.Store, storeService)
	case 2:
		storeService = store.NewTencentCosStoreService(logger, httpConfig.Store, storeService)
	}

	authService := impl.NewAuthService(httpConfig, pilotOperation, sessionOperation)
	pilotService := impl.NewPilotService(httpConfig, logger, emailService, pilotOperation)
	droneService := impl.NewDroneService(droneOperation)
	flightLogService := impl.NewFlightLogService(droneOperation, flightLogOperation)
	maintenanceService := impl.NewMaintenanceService(droneOperation, maintenanceOperation)
	dashboardService := impl.NewDashboardService(logger, pilotOperation, flightLogOperation)
	reportService := impl.NewReportService(logger, httpConfig.Report, flightLogOperation)

	authController := controller.NewAuthController(logger, httpConfig.Session, authService)
	pilotController := controller.NewPilotController(logger, pilotService)
	droneController := controller.NewDroneController(logger, droneService)
	flightLogController := controller.NewFlightLogController(logger, flightLogService)
	maintenanceController := controller.NewMaintenanceController(logger, maintenanceService)
	dashboardController := controller.NewDashboardController(logger, dashboardService)
	reportController := controller.NewReportController(logger, reportService)
	fileController := controller.NewFileController(logger, storeService)

	apiGroup := e.Group("/api")
	apiGroup.POST("/login", authController.PilotLogin)
	apiGroup.POST("/logout", authController.PilotLogout, sessionOptional)
	apiGroup.GET("/current-user", authController.CurrentPilot, sessionOptional)
	apiGroup.GET("/dashboard-stats", dashboardController.GetDashboardStats, sessionRequired)

	pilotGroup := apiGroup.Group("/pilots", sessionRequired)
	pilotGroup.GET("", pilotController.GetPilots)
	pilotGroup.POST("", pilotController.PilotRegister)
	pilotGroup.GET("/:id", pilotController.GetPilotProfile)
	pilotGroup.PUT("/:id", pilotController.EditPilotProfile)
	pilotGroup.DELETE("/:id", pilotController.DeletePilot)

	droneGroup := apiGroup.Group("/drones", sessionRequired)
	droneGroup.GET("", droneController.GetDrones)
	droneGroup.POST("", droneController.CreateDrone)
	droneGroup.GET("/:id", droneController.GetDroneProfile)
	droneGroup.PUT("/:id", droneController.EditDrone)
	droneGroup.DELETE("/:id", droneController.DeleteDrone)

	flightLogGroup := apiGroup.Group("/flight_logs", sessionRequired)
	flightLogGroup.GET("", flightLogController.GetFlightLogs)
	flightLogGroup.POST("", flightLogController.CreateFlightLog)
	flightLogGroup.GET("/pdf", reportController.DownloadFlightLogReport)
	flightLogGroup.GET("/:id", flightLogController.GetFlightLogProfile)
	flightLogGroup.PUT("/:id", flightLogController.EditFlightLog)
	flightLogGroup.DELETE("/:id", flightLogController.DeleteFlightLog)

	maintenanceGroup := apiGroup.Group("/maintenance_records", sessionRequired)
	maintenanceGroup.GET("", maintenanceController.GetMaintenances)
	maintenanceGroup.POST("", maintenanceController.CreateMaintenance)
	maintenanceGroup.GET("/:id", maintenanceController.GetMaintenanceProfile)
	maintenanceGroup.PUT("/:id", maintenanceController.EditMaintenance)
	maintenanceGroup.DELETE("/:id", maintenanceController.DeleteMaintenance)

	fileGroup := apiGroup.Group("/files", sessionRequired)
	fileGroup.POST("/attachments", fileController.UploadAttachment)

	apiGroup.Use(middleware.Static(httpConfig.Store.LocalStorePath))

	startSessionSweeper(applicationContent, httpConfig.Session.SweepDuration)

	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
