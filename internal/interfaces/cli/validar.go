package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
)

func newValidarCatalogoCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validar-catalogo <archivo>",
		Short: "Valida un paquete PUC e imprime el reporte en JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("leer catálogo: %w", err)
			}
			rep, _, err := deps.Catalogo.ValidarArchivo(args[0], data)
			if err != nil {
				return err
			}
			if err := imprimirJSON(cmd.OutOrStdout(), rep); err != nil {
				return err
			}
			if rep.Invalidas > 0 {
				return fmt.Errorf("%w: %d filas inválidas", domain.ErrInvalidInput, rep.Invalidas)
			}
			return nil
		},
	}
}
