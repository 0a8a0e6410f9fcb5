// Package cli comandos cobra de contabilizar: emitidos, recibidos y validar-catalogo.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/usecase"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/pkg/logger"
)

// Deps dependencias de los comandos.
type Deps struct {
	Contabilizar *contabilizacion.ContabilizarUseCase
	Catalogo     *usecase.CatalogoUseCase
	Defaults     contabilizacion.Defaults
	Logger       *logger.Logger
}

// NewRootCmd arma el árbol de comandos.
func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	root := &cobra.Command{
		Use:   "contabilizar",
		Short: "Convierte facturas electrónicas UBL (DIAN) en el XLSX de importación contable",
		Long: `contabilizar lee facturas, notas crédito y notas débito UBL 2.1 (también dentro de
AttachedDocument), aplica el paquete PUC y genera el archivo de importación de 27 columnas.

Ejemplos:
  contabilizar emitidos facturas/ --catalogo puc.csv --consecutivo
  contabilizar recibidos *.xml --catalogo puc.xlsx --retefuente 0.025 --resumen-pdf resumen.pdf
  contabilizar validar-catalogo puc.yaml`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newPerfilCmd(deps, contabilidad.PerfilEmitidos),
		newPerfilCmd(deps, contabilidad.PerfilRecibidos),
		newValidarCatalogoCmd(deps),
	)
	return root
}
