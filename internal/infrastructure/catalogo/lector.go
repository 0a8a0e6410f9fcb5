// Package catalogo lee paquetes PUC desde archivos CSV, XLSX o YAML y los valida.
package catalogo

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
	"github.com/jhoicas/Contabilizador-api/pkg/texto"
)

// Registro fila cruda del archivo, antes de validar.
type Registro struct {
	Fila       int
	Cuenta     string
	Nombre     string
	Tipo       string
	Naturaleza string
	Orden      string
}

// columnas aceptadas en el encabezado (normalizadas).
var columnas = map[string]string{
	"codigo":        "cuenta",
	"cuenta":        "cuenta",
	"codigo cuenta": "cuenta",
	"nombre":        "nombre",
	"descripcion":   "nombre",
	"tipo":          "tipo",
	"naturaleza":    "naturaleza",
	"orden":         "orden",
}

// Leer detecta el formato por la extensión del nombre de archivo.
func Leer(nombre string, data []byte) ([]Registro, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: catálogo vacío", domain.ErrInvalidInput)
	}
	switch strings.ToLower(filepath.Ext(nombre)) {
	case ".csv", ".txt":
		return LeerCSV(data)
	case ".xlsx":
		return LeerXLSX(data)
	case ".yaml", ".yml":
		return LeerYAML(data)
	case ".json":
		return LeerJSON(data)
	}
	return nil, fmt.Errorf("%w: formato de catálogo no soportado %q", domain.ErrInvalidInput, filepath.Ext(nombre))
}

// LeerCSV acepta separador ',' o ';' y archivos en Windows-1252 (Excel en español).
func LeerCSV(data []byte) ([]Registro, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		dec, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("catalogo: decodificar csv: %w", err)
		}
		data = dec
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = separador(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var filas [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", domain.ErrInvalidInput, err)
		}
		filas = append(filas, rec)
	}
	return desdeTabla(filas)
}

// LeerXLSX usa la primera hoja del libro.
func LeerXLSX(data []byte) ([]Registro, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", domain.ErrInvalidInput, err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("%w: xlsx sin hojas", domain.ErrInvalidInput)
	}
	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("catalogo: leer hoja %s: %w", hojas[0], err)
	}
	return desdeTabla(filas)
}

// LeerYAML acepta una lista de líneas o un mapa con la clave "cuentas".
func LeerYAML(data []byte) ([]Registro, error) {
	var lineas []dto.LineaCatalogoRequest
	if err := yaml.Unmarshal(data, &lineas); err != nil {
		var envoltura struct {
			Cuentas []dto.LineaCatalogoRequest `yaml:"cuentas"`
		}
		if err2 := yaml.Unmarshal(data, &envoltura); err2 != nil {
			return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidInput, err)
		}
		lineas = envoltura.Cuentas
	}
	return DesdeRequest(lineas), nil
}

// LeerJSON lista de líneas en JSON (campo "catalogo" de la API).
func LeerJSON(data []byte) ([]Registro, error) {
	var lineas []dto.LineaCatalogoRequest
	if err := json.Unmarshal(data, &lineas); err != nil {
		return nil, fmt.Errorf("%w: json: %v", domain.ErrInvalidInput, err)
	}
	return DesdeRequest(lineas), nil
}

// DesdeRequest convierte las líneas recibidas por la API en registros numerados desde 2.
func DesdeRequest(lineas []dto.LineaCatalogoRequest) []Registro {
	out := make([]Registro, 0, len(lineas))
	for i, l := range lineas {
		out = append(out, Registro{
			Fila:       i + 2,
			Cuenta:     strings.TrimSpace(l.Cuenta),
			Nombre:     strings.TrimSpace(l.Nombre),
			Tipo:       strings.TrimSpace(l.Tipo),
			Naturaleza: strings.TrimSpace(l.Naturaleza),
		})
	}
	return out
}

func desdeTabla(filas [][]string) ([]Registro, error) {
	if len(filas) == 0 {
		return nil, fmt.Errorf("%w: catálogo sin encabezado", domain.ErrInvalidInput)
	}
	idx := make(map[string]int)
	for i, h := range filas[0] {
		if campo, ok := columnas[texto.Normalizar(h)]; ok {
			if _, repetido := idx[campo]; !repetido {
				idx[campo] = i
			}
		}
	}
	if _, ok := idx["cuenta"]; !ok {
		return nil, fmt.Errorf("%w: el encabezado debe incluir la columna codigo o cuenta", domain.ErrInvalidInput)
	}

	celda := func(fila []string, campo string) string {
		i, ok := idx[campo]
		if !ok || i >= len(fila) {
			return ""
		}
		return strings.TrimSpace(fila[i])
	}

	var out []Registro
	for n, fila := range filas[1:] {
		if vacia(fila) {
			continue
		}
		out = append(out, Registro{
			Fila:       n + 2,
			Cuenta:     celda(fila, "cuenta"),
			Nombre:     celda(fila, "nombre"),
			Tipo:       celda(fila, "tipo"),
			Naturaleza: celda(fila, "naturaleza"),
			Orden:      celda(fila, "orden"),
		})
	}
	return out, nil
}

func separador(data []byte) rune {
	primera, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(primera, []byte(";")) > bytes.Count(primera, []byte(",")) {
		return ';'
	}
	return ','
}

func vacia(fila []string) bool {
	for _, c := range fila {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseOrden(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil && n >= 0
}
