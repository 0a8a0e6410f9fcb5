package ubl

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
	"github.com/jhoicas/Contabilizador-api/pkg/dian"
)

var (
	bomUTF8 = []byte("\xef\xbb\xbf")
	cien    = decimal.NewFromInt(100)
)

// ── Cadenas de extracción ─────────────────────────────────────────────────────

var (
	campoNumero   = campo("cbc:ID")
	campoFecha    = campo("cbc:IssueDate")
	campoMoneda   = campo("cbc:DocumentCurrencyCode")
	campoCUFE     = campo("cbc:UUID")
	campoAdjunto  = campo("cac:Attachment/cac:ExternalReference/cbc:Description")
	nodoProveedor = nodo("cac:AccountingSupplierParty/cac:Party", "cac:SenderParty")
	nodoCliente   = nodo("cac:AccountingCustomerParty/cac:Party", "cac:ReceiverParty")

	// Nombre: se prefiere la razón social registrada sobre el nombre comercial.
	campoNombre = campo(
		"cac:PartyLegalEntity/cbc:RegistrationName",
		"cac:PartyTaxScheme/cbc:RegistrationName",
		"cac:PartyName/cbc:Name",
	)
	campoIdentificacion = campo(
		"cac:PartyTaxScheme/cbc:CompanyID",
		"cac:PartyLegalEntity/cbc:CompanyID",
		"cac:PartyIdentification/cbc:ID",
	)

	nodoTotales    = nodo("cac:LegalMonetaryTotal", "cac:RequestedMonetaryTotal")
	campoLineExt   = campo("cbc:LineExtensionAmount")
	campoTaxExcl   = campo("cbc:TaxExclusiveAmount")
	campoTaxIncl   = campo("cbc:TaxInclusiveAmount")
	campoPayable   = campo("cbc:PayableAmount")
	familiasLineas = []string{"cac:InvoiceLine", "cac:CreditNoteLine", "cac:DebitNoteLine"}

	campoDescripcion = campo("cac:Item/cbc:Name", "cac:Item/cbc:Description", "cbc:Note")
	campoCantidad    = campo("cbc:InvoicedQuantity", "cbc:CreditedQuantity", "cbc:DebitedQuantity")
	campoPrecio      = campo("cac:Price/cbc:PriceAmount")
	campoBaseLinea   = campo("cbc:LineExtensionAmount")
	campoPorcentaje  = campo(
		"cac:TaxTotal/cac:TaxSubtotal/cac:TaxCategory/cbc:Percent",
		"cac:TaxTotal/cac:TaxSubtotal/cbc:Percent",
	)
)

// ── Parser ────────────────────────────────────────────────────────────────────

// Parser convierte el XML de una factura, nota crédito, nota débito o AttachedDocument DIAN
// en un entity.Documento. No tiene estado; es seguro para uso concurrente.
type Parser struct{}

// NewParser construye el parser.
func NewParser() *Parser { return &Parser{} }

// Parse lee un documento. Retorna domain.ErrMalformedDocument si el contenido no es XML.
// Un documento sin líneas se retorna con Items vacío; el llamador decide qué hacer con él.
func (p *Parser) Parse(archivo string, raw []byte) (*entity.Documento, error) {
	root, err := leerRaiz(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedDocument, archivo, err)
	}

	// AttachedDocument: la factura va embebida como texto (CDATA) en el adjunto.
	if root.Tag == dian.DocumentoAdjunto {
		interno := campoAdjunto.texto(root)
		if interno == "" {
			return nil, fmt.Errorf("%w: %s: AttachedDocument sin documento embebido", domain.ErrMalformedDocument, archivo)
		}
		root, err = leerRaiz([]byte(interno))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: documento embebido: %v", domain.ErrMalformedDocument, archivo, err)
		}
	}

	doc := &entity.Documento{
		ID:      uuid.New().String(),
		Archivo: archivo,
		Tipo:    root.Tag,
		Header: entity.Encabezado{
			Numero:    campoNumero.texto(root),
			Fecha:     campoFecha.texto(root),
			Moneda:    campoMoneda.texto(root),
			CUFE:      campoCUFE.texto(root),
			Proveedor: parte(nodoProveedor.elemento(root)),
			Cliente:   parte(nodoCliente.elemento(root)),
		},
		Huella: Huella(raw),
		Raw:    string(raw),
	}
	if t := nodoTotales.elemento(root); t != nil {
		doc.Declarados = entity.TotalesDeclarados{
			LineExtension: ParseDecimal(campoLineExt.texto(t)),
			TaxExclusive:  ParseDecimal(campoTaxExcl.texto(t)),
			TaxInclusive:  ParseDecimal(campoTaxIncl.texto(t)),
			Payable:       ParseDecimal(campoPayable.texto(t)),
		}
	}

	for _, el := range lista(root, familiasLineas...) {
		doc.Items = append(doc.Items, item(el))
	}
	doc.Totales = Totalizar(doc.Items)
	return doc, nil
}

func leerRaiz(raw []byte) (*etree.Element, error) {
	x := etree.NewDocument()
	x.ReadSettings.CharsetReader = charsetReader
	if err := x.ReadFromBytes(bytes.TrimPrefix(raw, bomUTF8)); err != nil {
		return nil, err
	}
	root := x.Root()
	if root == nil {
		return nil, fmt.Errorf("sin elemento raíz")
	}
	return root, nil
}

func parte(e *etree.Element) entity.Parte {
	if e == nil {
		return entity.Parte{}
	}
	id := campoIdentificacion.elemento(e)
	out := entity.Parte{Nombre: campoNombre.texto(e)}
	if id != nil {
		out.NumeroID = campoIdentificacion.texto(e)
		out.TipoID = atributo(id, "schemeName", "schemeID", "schemeAgencyName")
		// En DIAN el schemeID de un NIT (schemeName=31) es el dígito de verificación.
		if atributo(id, "schemeName") == dian.TipoDocumentoNIT {
			out.DV = atributo(id, "schemeID")
		}
	}
	return out
}

func item(e *etree.Element) entity.Item {
	it := entity.Item{
		Descripcion:    campoDescripcion.texto(e),
		Cantidad:       ParseDecimal(campoCantidad.texto(e)),
		PrecioUnitario: ParseDecimal(campoPrecio.texto(e)),
		PorcentajeIVA:  ParseDecimal(campoPorcentaje.texto(e)),
	}
	if b := campoBaseLinea.texto(e); b != "" {
		it.Base = ParseDecimal(b)
	} else {
		it.Base = it.Cantidad.Mul(it.PrecioUnitario)
	}
	it.Total = it.Base.Mul(decimal.NewFromInt(1).Add(it.PorcentajeIVA.Div(cien)))
	return it
}

// Totalizar suma las líneas: subtotal = Σ base, IVA = Σ base × %/100, total = subtotal + IVA,
// todo redondeado a 2 decimales.
func Totalizar(items []entity.Item) entity.Totales {
	sub, iva := decimal.Zero, decimal.Zero
	for _, it := range items {
		sub = sub.Add(it.Base)
		iva = iva.Add(it.Base.Mul(it.PorcentajeIVA).Div(cien))
	}
	sub, iva = sub.Round(2), iva.Round(2)
	return entity.Totales{Subtotal: sub, IVA: iva, Total: sub.Add(iva)}
}
