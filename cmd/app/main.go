package main

import (
	"fmt"
	"log/slog"
	"os"

	"pos/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		BackendBaseURL: goDotEnvVariable("BACKEND_BASE_URL"),
		BackendTimeout: goDotEnvVariable("BACKEND_TIMEOUT"),
		TaxBasisPoints: goDotEnvVariable("TAX_BASIS_POINTS"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateServer()
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
