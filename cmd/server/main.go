package main

import (
	"log"
	"net/http"

	_ "shuttletrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shuttletrack/internal/auth"
	"shuttletrack/internal/cache"
	"shuttletrack/internal/config"
	"shuttletrack/internal/db"
	"shuttletrack/internal/handler"
	"shuttletrack/internal/model"
	"shuttletrack/internal/provider"
	"shuttletrack/internal/repository"
	"shuttletrack/internal/router"
	"shuttletrack/internal/service"
)

// @title Badminton Alphabet API
// @version 1.0
// @description Skill-progress tracking for the Badminton Alphabet coaching program: invitation-gated player registration, a 26-skill rubric across four stages, and per-skill mastery tracking.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Stage{},
		&model.Skill{},
		&model.StageSkill{},
		&model.Progress{},
		&model.Invitation{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	providerClient := provider.NewClient(cfg.AuthBaseURL, cfg.AuthServiceKey, cfg.AppURL)
	if !providerClient.Configured() {
		log.Println("identity provider not configured; provider-backed auth endpoints will return 500")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	invitationRepo := repository.NewInvitationRepository(gormDB)
	progressRepo := repository.NewProgressRepository(gormDB)
	stageRepo := repository.NewStageRepository(gormDB)
	skillRepo := repository.NewSkillRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	authService := service.NewAuthService(userRepo, txManager, jwtService, tokenStore)
	syncService := service.NewSyncService(userRepo, invitationRepo, txManager, providerClient)
	invitationService := service.NewInvitationService(invitationRepo, userRepo)
	progressService := service.NewProgressService(progressRepo, skillRepo)
	rubricService := service.NewRubricService(stageRepo, skillRepo, cacheClient)
	userService := service.NewUserService(userRepo, stageRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, syncService, providerClient)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	progressHandler := handler.NewProgressHandler(progressService)
	userHandler := handler.NewUserHandler(userService)
	rubricHandler := handler.NewRubricHandler(rubricService)

	router.Register(e, cfg, authHandler, invitationHandler, progressHandler, userHandler, rubricHandler)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
