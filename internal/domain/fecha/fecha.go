// Package fecha normaliza fechas textuales de los documentos a YYYY-MM-DD
// y calcula una clave entera comparable para ordenarlos.
package fecha

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ClaveSinFecha clave de los documentos cuya fecha no se pudo resolver: siempre quedan de últimos.
const ClaveSinFecha = math.MaxInt

var (
	reISO   = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	reLatam = regexp.MustCompile(`^(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
)

// layouts del último intento, en orden.
var layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"20060102",
	"2006.01.02",
	"02.01.2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 January 2006",
	"Mon Jan 2 2006",
}

// Normalizar convierte la fecha a YYYY-MM-DD probando ISO (Y-M-D), latina (D-M-Y) y luego
// formatos genéricos. Retorna "" si no la reconoce.
func Normalizar(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if m := reISO.FindStringSubmatch(s); m != nil {
		if out, ok := componer(m[1], m[2], m[3]); ok {
			return out
		}
	}
	if m := reLatam.FindStringSubmatch(s); m != nil {
		if out, ok := componer(m[3], m[2], m[1]); ok {
			return out
		}
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// Clave devuelve Y*10000 + M*100 + D para una fecha ya normalizada, o ClaveSinFecha.
func Clave(ymd string) int {
	if ymd == "" {
		return ClaveSinFecha
	}
	partes := strings.Split(ymd, "-")
	if len(partes) != 3 {
		return ClaveSinFecha
	}
	y, errY := strconv.Atoi(partes[0])
	m, errM := strconv.Atoi(partes[1])
	d, errD := strconv.Atoi(partes[2])
	if errY != nil || errM != nil || errD != nil {
		return ClaveSinFecha
	}
	return y*10000 + m*100 + d
}

func componer(ys, ms, ds string) (string, bool) {
	y, _ := strconv.Atoi(ys)
	m, _ := strconv.Atoi(ms)
	d, _ := strconv.Atoi(ds)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d), true
}
