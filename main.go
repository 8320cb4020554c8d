package main

import (
	"context"
	"time"

	"github.com/cppla/huxiang/config"
	"github.com/cppla/huxiang/models"
	"github.com/cppla/huxiang/routes"
	"github.com/cppla/huxiang/services"
	"github.com/cppla/huxiang/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}
	defer func() { _ = utils.Logger.Sync() }()

	db, err := config.OpenDatabase(cfg, utils.NewGormLogger(utils.Sugar, config.GormLogLevel(cfg.LogLevel)), models.All()...)
	if err != nil {
		utils.Sugar.Fatalf("database: %v", err)
	}

	if cfg.SeedOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := services.Seed(ctx, db, services.SeedOptions{
			AdminUsername: cfg.AdminUsername,
			AdminEmail:    cfg.AdminEmail,
			AdminPassword: cfg.AdminPassword,
		})
		cancel()
		if err != nil {
			utils.Sugar.Fatalf("seed: %v", err)
		}
	}

	deps := routes.Deps{
		JWT:       utils.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour),
		Blacklist: utils.NewTokenBlacklist(utils.NewRedisClient(cfg)),
	}
	r := routes.SetupRouter(db, cfg, deps)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
