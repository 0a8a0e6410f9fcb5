package ubl

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseDecimal interpreta montos con tolerancia de formato: ignora espacios, acepta coma
// decimal y separadores de miles ("1.234,56" o "1,234.56"). Lo que no se pueda leer vale 0.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return decimal.Zero
	}
	coma := strings.LastIndexByte(s, ',')
	punto := strings.LastIndexByte(s, '.')
	if coma >= 0 && punto >= 0 {
		if coma > punto {
			s = strings.ReplaceAll(s, ".", "")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
