package ubl_test

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/ubl"
)

// ── helpers ──

func leerFixture(t *testing.T, nombre string) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/" + nombre)
	require.NoError(t, err)
	return b
}

const notaCreditoSinPrefijos = `<?xml version="1.0" encoding="UTF-8"?>
<CreditNote>
  <ID>NC-7</ID>
  <IssueDate>05/03/2024</IssueDate>
  <AccountingSupplierParty><Party><PartyName><Name>Proveedor Uno</Name></PartyName></Party></AccountingSupplierParty>
  <AccountingCustomerParty><Party>
    <PartyLegalEntity><RegistrationName>Cliente Dos Ltda</RegistrationName><CompanyID schemeID="31">900123456</CompanyID></PartyLegalEntity>
  </Party></AccountingCustomerParty>
  <CreditNoteLine>
    <CreditedQuantity>3</CreditedQuantity>
    <Price><PriceAmount> 10 </PriceAmount></Price>
    <TaxTotal><TaxSubtotal><Percent>5</Percent></TaxSubtotal></TaxTotal>
    <Item><Description>Devolución</Description></Item>
  </CreditNoteLine>
</CreditNote>`

// ── tests ──

func TestParse_FacturaCompleta(t *testing.T) {
	doc, err := ubl.NewParser().Parse("factura.xml", leerFixture(t, "factura.xml"))
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "factura.xml", doc.Archivo)
	assert.Equal(t, "Invoice", doc.Tipo)
	assert.Equal(t, "SETP990000001", doc.Header.Numero)
	assert.Equal(t, "2024-03-05", doc.Header.Fecha)
	assert.Equal(t, "COP", doc.Header.Moneda)
	assert.Equal(t, "a1b2c3d4e5", doc.Header.CUFE)

	// razón social registrada antes que el nombre comercial
	assert.Equal(t, "Ferretería El Tornillo S.A.S.", doc.Header.Proveedor.Nombre)
	assert.Equal(t, "800197268", doc.Header.Proveedor.NumeroID)
	assert.Equal(t, "31", doc.Header.Proveedor.TipoID)
	assert.Equal(t, "4", doc.Header.Proveedor.DV)

	assert.Equal(t, "Comprador", doc.Header.Cliente.Nombre)
	assert.Equal(t, "1020304050", doc.Header.Cliente.NumeroID)
	assert.Equal(t, "13", doc.Header.Cliente.TipoID)

	require.Len(t, doc.Items, 2)
	assert.Equal(t, "Martillo", doc.Items[0].Descripcion)
	assert.Equal(t, "100.00", doc.Items[0].Base.StringFixed(2))
	assert.Equal(t, "119.00", doc.Items[0].Total.StringFixed(2))
	assert.Equal(t, "19.00", doc.Items[0].PorcentajeIVA.StringFixed(2))

	// sin LineExtensionAmount: base = cantidad × precio (coma decimal)
	assert.Equal(t, "Tornillos", doc.Items[1].Descripcion)
	assert.Equal(t, "50.00", doc.Items[1].Base.StringFixed(2))
	assert.True(t, doc.Items[1].PorcentajeIVA.IsZero())

	assert.Equal(t, "150.00", doc.Totales.Subtotal.StringFixed(2))
	assert.Equal(t, "19.00", doc.Totales.IVA.StringFixed(2))
	assert.Equal(t, "169.00", doc.Totales.Total.StringFixed(2))
	assert.Equal(t, "169.00", doc.Declarados.Payable.StringFixed(2))
	assert.Len(t, doc.Huella, 64)
}

func TestParse_PayableConReteICADescontada(t *testing.T) {
	xml := strings.Replace(string(leerFixture(t, "factura.xml")),
		`<cbc:PayableAmount currencyID="COP">169.00</cbc:PayableAmount>`,
		`<cbc:PayableAmount currencyID="COP">167.50</cbc:PayableAmount>`, 1)
	doc, err := ubl.NewParser().Parse("factura.xml", []byte(xml))
	require.NoError(t, err)

	// el total calculado no cambia; la diferencia solo aparece contra el declarado
	assert.Equal(t, "169.00", doc.Totales.Total.StringFixed(2))
	assert.Equal(t, "167.50", doc.Declarados.Payable.StringFixed(2))

	mm := contabilidad.NewMotorRecibidos(contabilidad.Tarifas{InferirICA: true}).MontosDocumento(doc)
	assert.Equal(t, "1.50", mm.ReteICA.StringFixed(2))
	assert.Equal(t, "167.50", mm.Neto.StringFixed(2))
}

func TestParse_NotaCreditoSinNamespaces(t *testing.T) {
	doc, err := ubl.NewParser().Parse("nc.xml", []byte(notaCreditoSinPrefijos))
	require.NoError(t, err)

	assert.Equal(t, "CreditNote", doc.Tipo)
	assert.Equal(t, "NC-7", doc.Header.Numero)
	assert.Equal(t, "Proveedor Uno", doc.Header.Proveedor.Nombre)
	assert.Equal(t, "Cliente Dos Ltda", doc.Header.Cliente.Nombre)
	assert.Equal(t, "900123456", doc.Header.Cliente.NumeroID)
	assert.Equal(t, "31", doc.Header.Cliente.TipoID)

	require.Len(t, doc.Items, 1)
	assert.Equal(t, "Devolución", doc.Items[0].Descripcion)
	assert.Equal(t, "30.00", doc.Items[0].Base.StringFixed(2))
	assert.Equal(t, "31.50", doc.Items[0].Total.StringFixed(2))
	assert.Equal(t, "31.50", doc.Totales.Total.StringFixed(2))
}

func TestParse_AttachedDocument(t *testing.T) {
	interno := string(leerFixture(t, "factura.xml"))
	adjunto := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<AttachedDocument xmlns="urn:oasis:names:specification:ubl:schema:xsd:AttachedDocument-2"
  xmlns:cac="urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
  xmlns:cbc="urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2">
  <cbc:ID>AD-1</cbc:ID>
  <cac:Attachment><cac:ExternalReference><cbc:MimeCode>text/xml</cbc:MimeCode>
    <cbc:Description><![CDATA[%s]]></cbc:Description>
  </cac:ExternalReference></cac:Attachment>
</AttachedDocument>`, interno)

	doc, err := ubl.NewParser().Parse("ad.xml", []byte(adjunto))
	require.NoError(t, err)
	assert.Equal(t, "Invoice", doc.Tipo)
	assert.Equal(t, "SETP990000001", doc.Header.Numero)
	assert.Len(t, doc.Items, 2)
}

func TestParse_XMLMalFormado(t *testing.T) {
	_, err := ubl.NewParser().Parse("roto.xml", []byte("<Invoice><cbc:ID>1</Invoice"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedDocument))

	_, err = ubl.NewParser().Parse("vacio.xml", []byte("   "))
	assert.True(t, errors.Is(err, domain.ErrMalformedDocument))
}

func TestParse_SinLineas(t *testing.T) {
	doc, err := ubl.NewParser().Parse("sin.xml", []byte(`<Invoice><ID>1</ID></Invoice>`))
	require.NoError(t, err)
	assert.False(t, doc.TieneItems())
	assert.True(t, doc.Totales.Total.IsZero())
}

func TestParse_Latin1(t *testing.T) {
	// "Compañía" en ISO-8859-1: ñ = 0xF1, í = 0xED
	raw := []byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Invoice><AccountingSupplierParty><Party><PartyName><Name>Compa\xf1\xeda</Name></PartyName></Party></AccountingSupplierParty><InvoiceLine><InvoicedQuantity>1</InvoicedQuantity><Price><PriceAmount>1</PriceAmount></Price></InvoiceLine></Invoice>")
	doc, err := ubl.NewParser().Parse("latin1.xml", raw)
	require.NoError(t, err)
	assert.Equal(t, "Compañía", doc.Header.Proveedor.Nombre)
}

func TestParse_NumeroInvalidoVaCero(t *testing.T) {
	raw := `<Invoice><InvoiceLine><InvoicedQuantity>dos</InvoicedQuantity><Price><PriceAmount>NaN</PriceAmount></Price></InvoiceLine></Invoice>`
	doc, err := ubl.NewParser().Parse("x.xml", []byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.True(t, doc.Items[0].Base.IsZero())
}

func TestParseDecimal(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1234.5", "1234.50"},
		{" 1 234,5 ", "1234.50"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"19,00", "19.00"},
		{"", "0.00"},
		{"abc", "0.00"},
		{"Infinity", "0.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ubl.ParseDecimal(tc.in).StringFixed(2), "entrada %q", tc.in)
	}
}

func TestHuella_MismoContenidoCanonico(t *testing.T) {
	a := []byte(`<Invoice a="1" b="2"><ID>1</ID></Invoice>`)
	b := []byte(`<Invoice b='2'  a='1'><ID>1</ID></Invoice>`)
	c := []byte(`<Invoice a="1" b="2"><ID>2</ID></Invoice>`)
	assert.Equal(t, ubl.Huella(a), ubl.Huella(b))
	assert.NotEqual(t, ubl.Huella(a), ubl.Huella(c))
}
