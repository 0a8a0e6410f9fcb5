package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Contabilizador-api/internal/application/contabilizacion"
	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
)

type perfilFlags struct {
	catalogo   string
	salida     string
	resumenPDF string
	opciones   string
	in         dto.OpcionesRequest
}

func newPerfilCmd(deps Deps, perfil contabilidad.Perfil) *cobra.Command {
	var f perfilFlags
	cmd := &cobra.Command{
		Use:   perfil.String() + " <xml|directorio>...",
		Short: "Contabiliza facturas " + perfil.String(),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPerfil(cmd, deps, perfil, &f, args)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.catalogo, "catalogo", "", "paquete PUC (CSV, XLSX, YAML o JSON)")
	fl.StringVarP(&f.salida, "salida", "o", "", "archivo XLSX de salida (por defecto contabilizacion_<fecha>.xlsx)")
	fl.StringVar(&f.resumenPDF, "resumen-pdf", "", "escribe además el resumen en PDF")
	fl.StringVar(&f.opciones, "opciones", "", "archivo YAML de opciones; los flags tienen prioridad")
	fl.StringVar(&f.in.Orden, "orden", "asc", "orden por fecha: asc o desc")
	fl.BoolVar(&f.in.Consecutivo, "consecutivo", false, "autonumerar el consecutivo por documento")
	fl.IntVar(&f.in.TipoComprobante, "tipo-comprobante", 0, "tipo de comprobante (por defecto el del perfil)")
	_ = cmd.MarkFlagRequired("catalogo")

	if perfil == contabilidad.PerfilRecibidos {
		fl.Float64Var(&f.in.RetefuenteTarifa, "retefuente", 0, "tarifa de retención en la fuente sobre el subtotal (ej. 0.025)")
		fl.Float64Var(&f.in.ReteivaPorc, "reteiva", 0, "porcentaje de ReteIVA sobre el IVA (ej. 0.15)")
		fl.Float64Var(&f.in.ReteicaTarifa, "reteica", 0, "tarifa de ReteICA sobre el subtotal (ej. 0.00966)")
		fl.StringVar(&f.in.CodigoImpuesto, "codigo-impuesto", "", "código de impuesto de la línea de IVA descontable")
		fl.BoolVar(&f.in.SinInferirICA, "sin-inferir-ica", false, "no inferir ReteICA a partir de los totales")
	}
	return cmd
}

func runPerfil(cmd *cobra.Command, deps Deps, perfil contabilidad.Perfil, f *perfilFlags, args []string) error {
	ctx := cmd.Context()

	in, err := combinarOpciones(cmd, perfil, f)
	if err != nil {
		return err
	}
	if f.salida != "" {
		in.NombreArchivo = filepath.Base(f.salida)
	}

	data, err := os.ReadFile(f.catalogo)
	if err != nil {
		return fmt.Errorf("leer catálogo: %w", err)
	}
	rep, lineas, err := deps.Catalogo.ValidarArchivo(f.catalogo, data)
	if err != nil {
		return err
	}
	if rep.Invalidas > 0 {
		_ = imprimirJSON(cmd.ErrOrStderr(), rep)
		return fmt.Errorf("%w: el catálogo tiene %d filas inválidas", domain.ErrInvalidInput, rep.Invalidas)
	}

	op, tarifas, err := contabilizacion.ResolverOpciones(perfil, in, deps.Defaults)
	if err != nil {
		return err
	}
	fuentes, err := expandir(args)
	if err != nil {
		return err
	}

	res, err := deps.Contabilizar.Contabilizar(ctx, contabilizacion.Solicitud{
		Perfil:   perfil,
		Fuentes:  fuentes,
		Lineas:   lineas,
		Opciones: op,
		Tarifas:  tarifas,
	})
	if err != nil {
		return err
	}

	salida := f.salida
	if salida == "" {
		salida = res.NombreArchivo
	}
	if err := os.WriteFile(salida, res.Archivo, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", salida, err)
	}
	deps.Logger.Debug().Str("salida", salida).Int("filas", len(res.Filas)).Msg("xlsx escrito")

	if f.resumenPDF != "" {
		pdf, err := deps.Contabilizar.PDF(ctx, res.Resumen)
		if err != nil {
			return err
		}
		if err := os.WriteFile(f.resumenPDF, pdf, 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", f.resumenPDF, err)
		}
	}

	r := res.Resumen
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d documentos, %d procesados, %d errores, %d duplicados, %d filas\n",
		salida, r.Documentos, r.Procesados, r.Errores, r.Duplicados, r.Filas)
	for _, e := range r.Rechazos {
		fmt.Fprintf(out, "  descartado %s: %s\n", e.Archivo, e.Motivo)
	}
	return nil
}

// combinarOpciones aplica el archivo YAML y encima los flags que el usuario cambió.
func combinarOpciones(cmd *cobra.Command, perfil contabilidad.Perfil, f *perfilFlags) (dto.OpcionesRequest, error) {
	if f.opciones == "" {
		return f.in, nil
	}
	arch, err := leerOpciones(f.opciones)
	if err != nil {
		return dto.OpcionesRequest{}, err
	}
	if arch.Perfil != "" {
		p, err := contabilidad.ParsePerfil(arch.Perfil)
		if err != nil || p != perfil {
			return dto.OpcionesRequest{}, fmt.Errorf("%w: el archivo de opciones es para el perfil %q", domain.ErrInvalidInput, arch.Perfil)
		}
	}

	in := arch.OpcionesRequest
	fl := cmd.Flags()
	if fl.Changed("orden") {
		in.Orden = f.in.Orden
	}
	if fl.Changed("consecutivo") {
		in.Consecutivo = f.in.Consecutivo
	}
	if fl.Changed("tipo-comprobante") {
		in.TipoComprobante = f.in.TipoComprobante
	}
	if fl.Changed("retefuente") {
		in.RetefuenteTarifa = f.in.RetefuenteTarifa
	}
	if fl.Changed("reteiva") {
		in.ReteivaPorc = f.in.ReteivaPorc
	}
	if fl.Changed("reteica") {
		in.ReteicaTarifa = f.in.ReteicaTarifa
	}
	if fl.Changed("codigo-impuesto") {
		in.CodigoImpuesto = f.in.CodigoImpuesto
	}
	if fl.Changed("sin-inferir-ica") {
		in.SinInferirICA = f.in.SinInferirICA
	}
	return in, nil
}

// expandir convierte los argumentos en fuentes; los directorios aportan sus *.xml en orden alfabético.
func expandir(args []string) ([]contabilizacion.Fuente, error) {
	var out []contabilizacion.Fuente
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		if !info.IsDir() {
			out = append(out, contabilizacion.ArchivoFuente{Ruta: a})
			continue
		}
		entradas, err := os.ReadDir(a)
		if err != nil {
			return nil, fmt.Errorf("leer directorio %s: %w", a, err)
		}
		var rutas []string
		for _, e := range entradas {
			if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
				rutas = append(rutas, filepath.Join(a, e.Name()))
			}
		}
		sort.Strings(rutas)
		for _, r := range rutas {
			out = append(out, contabilizacion.ArchivoFuente{Ruta: r})
		}
	}
	return out, nil
}

func imprimirJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
