package contabilizacion

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/pkg/config"
)

// Defaults valores que aplican cuando la petición no los trae (configuración o empresa).
type Defaults struct {
	TipoComprobanteEmitidos  int
	TipoComprobanteRecibidos int
	Retefuente               decimal.Decimal
	Reteiva                  decimal.Decimal
	Reteica                  decimal.Decimal
	InferirICA               bool
	CodigoImpuesto           string
}

// DefaultsDe toma los valores por defecto de la configuración.
func DefaultsDe(c config.ContabilidadConfig) Defaults {
	return Defaults{
		TipoComprobanteEmitidos:  c.TipoComprobanteEmitidos,
		TipoComprobanteRecibidos: c.TipoComprobanteRecibidos,
		Retefuente:               decimal.NewFromFloat(c.RetefuenteTarifa),
		Reteiva:                  decimal.NewFromFloat(c.ReteivaPorc),
		Reteica:                  decimal.NewFromFloat(c.ReteicaTarifa),
		InferirICA:               c.InferirICA,
		CodigoImpuesto:           c.CodigoImpuesto,
	}
}

// ConEmpresa sobreescribe las tarifas con las de la empresa cuando están definidas.
func (d Defaults) ConEmpresa(e *entity.Empresa) Defaults {
	if e == nil {
		return d
	}
	if !e.RetefuenteTarifa.IsZero() {
		d.Retefuente = e.RetefuenteTarifa
	}
	if !e.ReteivaPorc.IsZero() {
		d.Reteiva = e.ReteivaPorc
	}
	if !e.ReteicaTarifa.IsZero() {
		d.Reteica = e.ReteicaTarifa
	}
	return d
}

// ResolverOpciones combina la petición con los valores por defecto. Una tarifa en cero
// significa "usar la por defecto"; las tarifas solo aplican a recibidos.
func ResolverOpciones(p contabilidad.Perfil, in dto.OpcionesRequest, d Defaults) (Opciones, contabilidad.Tarifas, error) {
	if err := validarRequest(in); err != nil {
		return Opciones{}, contabilidad.Tarifas{}, err
	}
	orden, err := ParseOrden(in.Orden)
	if err != nil {
		return Opciones{}, contabilidad.Tarifas{}, err
	}

	op := Opciones{
		TipoComprobante: in.TipoComprobante,
		NombreArchivo:   strings.TrimSpace(in.NombreArchivo),
		Orden:           orden,
		Consecutivo:     in.Consecutivo,
		CodigoImpuesto:  strings.TrimSpace(in.CodigoImpuesto),
	}
	if op.TipoComprobante == 0 {
		switch p {
		case contabilidad.PerfilEmitidos:
			op.TipoComprobante = d.TipoComprobanteEmitidos
		case contabilidad.PerfilRecibidos:
			op.TipoComprobante = d.TipoComprobanteRecibidos
		}
	}
	if op.NombreArchivo != "" && !strings.HasSuffix(strings.ToLower(op.NombreArchivo), ".xlsx") {
		op.NombreArchivo += ".xlsx"
	}

	if p != contabilidad.PerfilRecibidos {
		return op, contabilidad.Tarifas{}, nil
	}
	if op.CodigoImpuesto == "" {
		op.CodigoImpuesto = d.CodigoImpuesto
	}
	t := contabilidad.Tarifas{
		ReteFuente: tarifa(in.RetefuenteTarifa, d.Retefuente),
		ReteIVA:    tarifa(in.ReteivaPorc, d.Reteiva),
		ReteICA:    tarifa(in.ReteicaTarifa, d.Reteica),
		InferirICA: d.InferirICA && !in.SinInferirICA,
	}
	for _, v := range []decimal.Decimal{t.ReteFuente, t.ReteIVA, t.ReteICA} {
		if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
			return Opciones{}, contabilidad.Tarifas{}, fmt.Errorf("%w: las tarifas deben estar entre 0 y 1", domain.ErrInvalidInput)
		}
	}
	return op, t, nil
}

var validate = newValidator()

// newValidator reporta los campos con su nombre JSON (el mismo del formulario y del YAML).
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validarRequest(in dto.OpcionesRequest) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, mensajeCampo(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func mensajeCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gte":
		return fe.Field() + " debe ser mayor o igual a " + fe.Param()
	case "lte":
		return fe.Field() + " debe ser menor o igual a " + fe.Param()
	case "max":
		return fe.Field() + " admite como máximo " + fe.Param() + " caracteres"
	case "excludesall":
		return fe.Field() + " no puede contener " + fe.Param()
	}
	return fe.Field() + " inválido"
}

func tarifa(v float64, def decimal.Decimal) decimal.Decimal {
	if v == 0 {
		return def
	}
	return decimal.NewFromFloat(v)
}
