package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/clinic-financial-model/infrastructure/exporter"
	"github.com/vfg2006/clinic-financial-model/infrastructure/repository"
	"github.com/vfg2006/clinic-financial-model/internal/api"
	"github.com/vfg2006/clinic-financial-model/internal/api/handler"
	"github.com/vfg2006/clinic-financial-model/internal/config"
	"github.com/vfg2006/clinic-financial-model/internal/scheduler"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/authenticating"
	"github.com/vfg2006/clinic-financial-model/internal/usecases/modeling"
	"github.com/vfg2006/clinic-financial-model/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	format, err := exporter.ParseFormat(cfg.Export.Format)
	if err != nil {
		logrus.WithError(err).Fatal("Formato de exportação inválido")
	}

	precision, err := exporter.ParsePrecision(cfg.Export.Precision)
	if err != nil {
		logrus.WithError(err).Fatal("Precisão de exportação inválida")
	}

	// Sem DATABASE_URL as execuções agendadas gravam apenas arquivos
	var sink repository.ModelExportRepository
	if cfg.Database.Enabled() {
		repo, closeConn, err := repository.OpenModelExportSink(ctx, cfg.Database)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao preparar destino PostgreSQL")
		}
		defer closeConn()
		sink = repo
	} else {
		logrus.Info("DATABASE_URL não configurada, destino PostgreSQL desabilitado")
	}

	modeler := modeling.NewService()
	authenticator := authenticating.NewService(cfg.Auth)

	modelExportService := scheduler.NewModelExportService(
		modeler,
		exporter.New(format, exporter.WithPrecision(precision)),
		sink,
		cfg,
	)

	if err := modelExportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de exportação do modelo")
	} else {
		logrus.Info("Agendador de exportação do modelo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		modeler,
		authenticator,
		handler.CronJobServices{ModelExportService: modelExportService},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
