package main

import (
	"flag"
	"fmt"

	"github.com/hikoki-lab/drone-logbook/internal/base"
	"github.com/hikoki-lab/drone-logbook/internal/database"
	"github.com/hikoki-lab/drone-logbook/internal/http_server"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces"
	"github.com/hikoki-lab/drone-logbook/internal/interfaces/global"
	"github.com/joho/godotenv"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	_ = godotenv.Load(*global.EnvFilePath)

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.Info("Application initializing...")

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing operation, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation)

	http_server.StartHttpServer(applicationContent)
}
