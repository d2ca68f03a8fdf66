package main

import (
	"os"

	httpadapter "automation-api/internal/adapter/http"
	repo "automation-api/internal/adapter/repository"
	"automation-api/internal/config"
	"automation-api/internal/middleware/logger"
	"automation-api/internal/usecase"
	ai "automation-api/pkg/ai"
	infra "automation-api/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	// infra setup
	reports, err := repo.NewReportStore(cfg.ReportsDir)
	if err != nil {
		log.Fatal("report store init failed", zap.Error(err))
	}
	requestLog, err := repo.NewRequestLog(cfg.LogsDir)
	if err != nil {
		log.Fatal("request log init failed", zap.Error(err))
	}

	processor := usecase.NewProcessor(log,
		usecase.WithBrowserScraper(infra.NewChromedpScraper()),
		usecase.WithStaticScraper(infra.NewStaticScraper()),
		usecase.WithNLPService(ai.NewClient(cfg.AIServiceURL)),
		usecase.WithJokeSource(infra.NewJokeClient(cfg.JokeAPIURL)),
		usecase.WithReportStore(reports),
		usecase.WithRequestLog(requestLog),
		usecase.WithAnalyzer(usecase.NewAnalyzer(cfg.Vocabulary)),
		usecase.WithTranslateTo(cfg.TranslateTo),
	)

	app := fiber.New(fiber.Config{BodyLimit: 20 * 1024 * 1024})
	app.Use(httpadapter.RequestLogger(log))

	h := httpadapter.NewHandler(processor, log)
	h.Register(app)

	log.Info("automation api listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server failed", zap.Error(err))
	}
}
