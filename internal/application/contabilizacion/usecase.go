package contabilizacion

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/pkg/dian"
	"github.com/jhoicas/Contabilizador-api/pkg/logger"
)

// Config parámetros de ejecución del caso de uso.
type Config struct {
	Workers          int           // 0 = runtime.NumCPU()
	TimeoutDocumento time.Duration // 0 = sin límite
}

// Solicitud entrada de una corrida.
type Solicitud struct {
	Perfil   contabilidad.Perfil
	Fuentes  []Fuente
	Lineas   []entity.LineaCatalogo
	Opciones Opciones
	Tarifas  contabilidad.Tarifas // solo recibidos
}

// Resultado archivo generado más el resumen de la corrida.
type Resultado struct {
	Archivo       []byte
	NombreArchivo string
	Filas         []entity.FilaContable
	Resumen       *dto.ResumenContabilizacion
}

// ContabilizarUseCase orquesta lectura concurrente, clasificación, construcción de filas y exportación.
type ContabilizarUseCase struct {
	parser     DocumentParser
	exportador Exportador
	reporte    ReporteGenerator
	log        *logger.Logger
	cfg        Config
	now        func() time.Time
}

// NewContabilizarUseCase construye el caso de uso. reporte puede ser nil si no se usa el PDF.
func NewContabilizarUseCase(parser DocumentParser, exportador Exportador, reporte ReporteGenerator, log *logger.Logger, cfg Config) *ContabilizarUseCase {
	return &ContabilizarUseCase{
		parser:     parser,
		exportador: exportador,
		reporte:    reporte,
		log:        log,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Contabilizar genera el XLSX del lote.
// Errores: domain.ErrEmptyInput (sin documentos válidos o sin paquete) y domain.ErrEmptyResult (cero filas).
func (uc *ContabilizarUseCase) Contabilizar(ctx context.Context, sol Solicitud) (*Resultado, error) {
	res, err := uc.Resumir(ctx, sol)
	if err != nil {
		return nil, err
	}
	archivo, err := uc.exportador.Exportar(res.Filas, sol.Perfil.Hoja())
	if err != nil {
		return nil, err
	}
	res.Archivo = archivo
	return res, nil
}

// Resumir ejecuta la corrida sin serializar el XLSX.
func (uc *ContabilizarUseCase) Resumir(ctx context.Context, sol Solicitud) (*Resultado, error) {
	if len(sol.Fuentes) == 0 || len(sol.Lineas) == 0 {
		return nil, domain.ErrEmptyInput
	}
	resumen := &dto.ResumenContabilizacion{
		Perfil:        sol.Perfil.String(),
		NombreArchivo: sol.Opciones.NombreArchivo,
		Documentos:    len(sol.Fuentes),
	}
	if resumen.NombreArchivo == "" {
		resumen.NombreArchivo = sol.Perfil.NombreArchivo(uc.now())
	}

	docs := uc.LeerDocumentos(ctx, sol.Fuentes, resumen)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	motor := contabilidad.NewMotor(sol.Perfil, sol.Tarifas)
	filas, err := Construir(docs, sol.Lineas, motor, sol.Opciones)
	if err != nil {
		return nil, err
	}
	if len(filas) == 0 {
		return nil, domain.ErrEmptyResult
	}

	completarResumen(resumen, docs, filas, motor)
	uc.log.Info().
		Str("perfil", resumen.Perfil).
		Int("documentos", resumen.Documentos).
		Int("procesados", resumen.Procesados).
		Int("errores", resumen.Errores).
		Int("duplicados", resumen.Duplicados).
		Int("filas", resumen.Filas).
		Msg("contabilización generada")

	return &Resultado{NombreArchivo: resumen.NombreArchivo, Filas: filas, Resumen: resumen}, nil
}

// ResumenPDF genera el reporte PDF de la corrida. Retorna (bytes, nombre de archivo).
func (uc *ContabilizarUseCase) ResumenPDF(ctx context.Context, sol Solicitud) ([]byte, string, error) {
	if uc.reporte == nil {
		return nil, "", fmt.Errorf("reporte PDF no configurado")
	}
	res, err := uc.Resumir(ctx, sol)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.PDF(ctx, res.Resumen)
	if err != nil {
		return nil, "", err
	}
	return pdf, strings.TrimSuffix(res.NombreArchivo, ".xlsx") + ".pdf", nil
}

// PDF genera el reporte de un resumen ya calculado (la CLI lo usa tras exportar el XLSX).
func (uc *ContabilizarUseCase) PDF(ctx context.Context, r *dto.ResumenContabilizacion) ([]byte, error) {
	if uc.reporte == nil {
		return nil, fmt.Errorf("reporte PDF no configurado")
	}
	pdf, err := uc.reporte.GenerarResumen(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("resumen pdf: %w", err)
	}
	return pdf, nil
}

// lectura resultado de leer una fuente; se guarda por posición para conservar el orden de entrada.
type lectura struct {
	doc *entity.Documento
	err error
}

// LeerDocumentos lee y parsea las fuentes con un pool acotado a min(workers, n).
// Los documentos fallidos, sin líneas o duplicados se registran en el resumen y se omiten;
// nunca abortan el lote. El orden de salida es el de entrada.
func (uc *ContabilizarUseCase) LeerDocumentos(ctx context.Context, fuentes []Fuente, resumen *dto.ResumenContabilizacion) []*entity.Documento {
	lecturas := make([]lectura, len(fuentes))

	var g errgroup.Group
	g.SetLimit(uc.workers(len(fuentes)))
	for i, f := range fuentes {
		i, f := i, f
		g.Go(func() error {
			doc, err := uc.leerUno(ctx, f)
			lecturas[i] = lectura{doc: doc, err: err}
			return nil
		})
	}
	_ = g.Wait()

	vistos := make(map[string]string, len(fuentes))
	docs := make([]*entity.Documento, 0, len(fuentes))
	for i, l := range lecturas {
		nombre := fuentes[i].Nombre()
		if l.err == nil {
			if previo, ok := vistos[l.doc.Huella]; ok {
				l.err = fmt.Errorf("%w: igual a %s", domain.ErrDuplicateDocument, previo)
			} else {
				vistos[l.doc.Huella] = nombre
			}
		}
		if l.err != nil {
			uc.rechazar(resumen, nombre, l.err)
			continue
		}
		uc.verificarTerceros(l.doc)
		docs = append(docs, l.doc)
	}
	resumen.Procesados = len(docs)
	return docs
}

func (uc *ContabilizarUseCase) leerUno(ctx context.Context, f Fuente) (*entity.Documento, error) {
	if uc.cfg.TimeoutDocumento > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.cfg.TimeoutDocumento)
		defer cancel()
	}

	ch := make(chan lectura, 1)
	go func() {
		raw, err := f.Leer(ctx)
		if err != nil {
			ch <- lectura{err: err}
			return
		}
		doc, err := uc.parser.Parse(f.Nombre(), raw)
		ch <- lectura{doc: doc, err: err}
	}()

	select {
	case l := <-ch:
		if errors.Is(l.err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", domain.ErrParseTimeout, f.Nombre())
		}
		if l.err != nil {
			return nil, l.err
		}
		if !l.doc.TieneItems() {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoLineItems, f.Nombre())
		}
		return l.doc, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s", domain.ErrParseTimeout, f.Nombre())
		}
		return nil, ctx.Err()
	}
}

func (uc *ContabilizarUseCase) rechazar(resumen *dto.ResumenContabilizacion, archivo string, err error) {
	if errors.Is(err, domain.ErrDuplicateDocument) {
		resumen.Duplicados++
	} else {
		resumen.Errores++
	}
	resumen.Rechazos = append(resumen.Rechazos, dto.ErrorDocumento{Archivo: archivo, Motivo: err.Error()})
	uc.log.Warn().Str("archivo", archivo).Err(err).Msg("documento descartado")
}

// verificarTerceros solo advierte: la identificación se exporta tal como viene en el XML.
func (uc *ContabilizarUseCase) verificarTerceros(d *entity.Documento) {
	for _, p := range []entity.Parte{d.Header.Proveedor, d.Header.Cliente} {
		if p.TipoID != dian.TipoDocumentoNIT || p.DV == "" {
			continue
		}
		if err := dian.VerificarDV(p.NumeroID, p.DV); err != nil {
			uc.log.Warn().Str("archivo", d.Archivo).Str("nit", p.NumeroID).Err(err).Msg("NIT con dígito de verificación inválido")
		}
	}
}

func (uc *ContabilizarUseCase) workers(n int) int {
	w := uc.cfg.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	if n < w {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

func completarResumen(r *dto.ResumenContabilizacion, docs []*entity.Documento, filas []entity.FilaContable, motor *contabilidad.Motor) {
	porDoc := make(map[string]int, len(docs))
	r.TotalDebito, r.TotalCredito = decimal.Zero, decimal.Zero
	for _, f := range filas {
		porDoc[f.DocumentoID]++
		r.TotalDebito = r.TotalDebito.Add(f.Debito)
		r.TotalCredito = r.TotalCredito.Add(f.Credito)
	}
	r.Filas = len(filas)
	for _, d := range Ordenar(docs, OrdenAsc) {
		r.Detalle = append(r.Detalle, dto.DocumentoResumen{
			Archivo:  d.Archivo,
			Numero:   d.Header.Numero,
			Fecha:    d.FechaYMD,
			Tercero:  motor.Tercero(d),
			Subtotal: d.Totales.Subtotal,
			IVA:      d.Totales.IVA,
			Total:    d.Totales.Total,
			Filas:    porDoc[d.ID],
		})
	}
}
