package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bid-optimizer-api/internal/api"
	"github.com/vfg2006/bid-optimizer-api/internal/config"
	"github.com/vfg2006/bid-optimizer-api/internal/scheduler"
	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	optimizerService, err := optimizing.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o motor de otimização")
	}

	optimizeSyncService := scheduler.NewOptimizeSyncService(optimizerService, cfg)

	if err := optimizeSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de otimização de lances")
	} else {
		logrus.Info("Agendador de otimização de lances iniciado com sucesso")
	}

	server, err := api.New(cfg, optimizerService, optimizeSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
