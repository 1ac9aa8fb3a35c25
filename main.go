package main

import (
	"log"

	"fpnpower/domain/electrode"
	"fpnpower/internal/config"
	"fpnpower/internal/container"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appContainer, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}

	report, err := appContainer.Run()
	if err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}

	for _, band := range electrode.ChartBands {
		share := report.Share(band)
		appContainer.Logger.Info("%-10s FPN +%.1f%% -%.1f%% | non-FPN +%.1f%% -%.1f%% (%d significant)",
			band, share.FPNIncrease, share.FPNDecrease, share.NonFPNIncrease, share.NonFPNDecrease, share.Significant)
	}
	if len(report.Missing) > 0 {
		appContainer.Logger.Warn("Report %s built without data for %v", report.RunID, report.Missing)
	}
}
