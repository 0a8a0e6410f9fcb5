// Package pdf genera el reporte resumen de una corrida de contabilización.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Perfil + archivo generado │ Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTADORES: documentos / procesados / errores / duplicados  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Archivo | N° | Fecha | Tercero | Subtotal | IVA | ...│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Débito / Crédito                                   │
//	│  RECHAZOS: archivo + motivo                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorError   = &props.Color{Red: 160, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ResumenGenerator implementa contabilizacion.ReporteGenerator usando Maroto v2.
type ResumenGenerator struct {
	now func() time.Time
}

// NewResumenGenerator construye el generador.
func NewResumenGenerator() *ResumenGenerator { return &ResumenGenerator{now: time.Now} }

// GenerarResumen genera el PDF y devuelve sus bytes.
func (g *ResumenGenerator) GenerarResumen(ctx context.Context, r *dto.ResumenContabilizacion) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Resumen de contabilización", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contadoresRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(r.Detalle)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(r))

	if len(r.Rechazos) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(rechazosRows(r.Rechazos)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(r *dto.ResumenContabilizacion, t time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("CONTABILIZACIÓN "+strings.ToUpper(r.Perfil), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Archivo: "+r.NombreArchivo, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+t.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func contadoresRow(r *dto.ResumenContabilizacion) core.Row {
	celda := func(label string, n int) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(n), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5}),
		)
	}
	return row.New(13).Add(
		celda("Documentos", r.Documentos),
		celda("Procesados", r.Procesados),
		celda("Errores", r.Errores),
		celda("Duplicados", r.Duplicados),
		celda("Filas", r.Filas),
		col.New(2),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Archivo", 3, align.Left),
		h("N°", 1, align.Left),
		h("Fecha", 2, align.Center),
		h("Tercero", 2, align.Left),
		h("Subtotal", 1, align.Right),
		h("IVA", 1, align.Right),
		h("Total", 1, align.Right),
		h("Filas", 1, align.Center),
	)
}

func tableDetailRows(detalle []dto.DocumentoResumen) []core.Row {
	celda := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 7, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	out := make([]core.Row, 0, len(detalle))
	for _, d := range detalle {
		out = append(out, row.New(6).Add(
			celda(d.Archivo, 3, align.Left),
			celda(d.Numero, 1, align.Left),
			celda(nonEmpty(d.Fecha, "-"), 2, align.Center),
			celda(nonEmpty(d.Tercero, "-"), 2, align.Left),
			celda(formatMoney(d.Subtotal), 1, align.Right),
			celda(formatMoney(d.IVA), 1, align.Right),
			celda(formatMoney(d.Total), 1, align.Right),
			celda(strconv.Itoa(d.Filas), 1, align.Center),
		))
	}
	return out
}

func totalsRow(r *dto.ResumenContabilizacion) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Color: colorPrimary})
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(label("Total débito:"), text.New("Total crédito:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5,
		})),
		col.New(3).Add(value("$"+formatMoney(r.TotalDebito)), text.New("$"+formatMoney(r.TotalCredito), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: 5, Color: colorPrimary,
		})),
	)
}

func rechazosRows(rechazos []dto.ErrorDocumento) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DOCUMENTOS DESCARTADOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorError, Top: 1}),
		)),
	}
	for _, e := range rechazos {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(e.Archivo, props.Text{Size: 7, Top: 0.5})),
			col.New(8).Add(text.New(e.Motivo, props.Text{Size: 7, Top: 0.5, Color: colorGray})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato colombiano: puntos de miles y coma decimal.
// Ej: 1234567.5 → "1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	signo := ""
	if strings.HasPrefix(s, "-") {
		signo, s = "-", s[1:]
	}
	entero, dec, _ := strings.Cut(s, ".")
	n := len(entero)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(entero) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return signo + string(buf) + "," + dec
}
