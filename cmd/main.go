package main

import (
	"github.com/JavaChrist/in-shape/config"
	"github.com/JavaChrist/in-shape/logger"
	"github.com/JavaChrist/in-shape/routes"
	"github.com/JavaChrist/in-shape/services"
	"github.com/JavaChrist/in-shape/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.LoadEnv()
	config.InitDB()
	utils.InitMailer()
	utils.InitS3()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		logger.Warn("push service unavailable", zap.Error(err))
		push = nil
	}
	services.InitAlertDeps(config.DB, hub, push)

	r := routes.SetupRouter(hub, push)

	addr := ":" + config.GetEnv("PORT", "8080")
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
