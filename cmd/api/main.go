package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/site-analytics-api/infrastructure/integrator/ganalytics"
	"github.com/vfg2006/site-analytics-api/infrastructure/integrator/ganalytics/gaclient"
	"github.com/vfg2006/site-analytics-api/internal/api"
	"github.com/vfg2006/site-analytics-api/internal/config"
	"github.com/vfg2006/site-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/site-analytics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authenticator := authenticating.NewService(cfg)

	gaClient := gaclient.NewClient(cfg)
	gaIntegrator := ganalytics.New(cfg, gaClient)

	reportService := reporting.NewService(cfg, gaIntegrator)

	server, err := api.New(cfg, reportService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
