package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/Contabilizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/ubl"
	"github.com/jhoicas/Contabilizador-api/internal/interfaces/cli"
	"github.com/jhoicas/Contabilizador-api/pkg/config"
	"github.com/jhoicas/Contabilizador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	// stdout queda para el resumen; los logs van a stderr.
	log := logger.New(logger.Config{Env: "development", Level: cfg.App.LogLevel, Out: os.Stderr})

	contabilizarUC := contabilizacion.NewContabilizarUseCase(
		ubl.NewParser(),
		excel.NewExportador(),
		infrapdf.NewResumenGenerator(),
		log,
		contabilizacion.Config{
			Workers:          cfg.Contabilidad.Workers,
			TimeoutDocumento: cfg.Contabilidad.TimeoutDocumento,
		},
	)

	root := cli.NewRootCmd(cli.Deps{
		Contabilizar: contabilizarUC,
		Catalogo:     usecase.NewCatalogoUseCase(nil),
		Defaults:     contabilizacion.DefaultsDe(cfg.Contabilidad),
		Logger:       log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
