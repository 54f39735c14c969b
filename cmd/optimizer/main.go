package main

import (
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bid-optimizer-api/internal/config"
	"github.com/vfg2006/bid-optimizer-api/internal/scheduler"
	"github.com/vfg2006/bid-optimizer-api/internal/usecases/optimizing"
)

// Execução avulsa do otimizador: lê o bulksheet, grava o CSV otimizado e o
// guia do gestor de PPC, e encerra.
func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	input := flag.String("input", "", "bulksheet CSV de entrada (padrão: OPTIMIZER_INPUT_FILE)")
	output := flag.String("output", "", "CSV otimizado de saída (padrão: OPTIMIZER_OUTPUT_FILE)")
	guidePath := flag.String("guide", "", "guia em PDF (padrão: OPTIMIZER_GUIDE_FILE; vazio desabilita)")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if *input != "" {
		cfg.Optimizer.InputFile = *input
	}
	if *output != "" {
		cfg.Optimizer.OutputFile = *output
	}
	if *guidePath != "" {
		cfg.Optimizer.GuideFile = *guidePath
	}

	optimizerService, err := optimizing.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao montar o motor de otimização")
	}

	runner := scheduler.NewOptimizeSyncService(optimizerService, cfg)
	if err := runner.RunOptimization(); err != nil {
		logrus.WithError(err).Fatal("Otimização falhou")
	}
}
