// @title Myniu API
// @description API for the training and habit tracker "Myniu"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/myniu/internal/api"
	"github.com/limbo/myniu/internal/extract"
	"github.com/limbo/myniu/internal/repository"
	"github.com/limbo/myniu/internal/service"
	"github.com/limbo/myniu/pkg/cleanup"
	"github.com/limbo/myniu/pkg/config"
	jwtservice "github.com/limbo/myniu/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	trainingsRepo := repository.NewTrainingsRepo(&dbCfg)
	logsRepo := repository.NewDailyLogsRepo(&dbCfg)
	serv := api.New(&api.ServicesList{
		UserService:      service.NewUserService(repository.NewUsersRepo(&dbCfg)),
		TrainingsService: service.NewTrainingsService(trainingsRepo),
		DailyLogsService: service.NewDailyLogsService(logsRepo),
		DashboardService: service.NewDashboardService(trainingsRepo, logsRepo, nil),
		JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET")),
		Extractor: extract.NewGeminiClient(
			cfg.GetString("GEMINI_API_KEY"),
			cfg.GetStringOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		),
	})

	go func() {
		err := serv.Run(cfg.GetString("API_ADDRESS"))
		if err != nil {
			log.Println("Server error: " + err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	cleanup.CleanUp()
}
