package dian

import (
	"fmt"
	"unicode"
)

// pesos del módulo 11 DIAN, aplicados de derecha a izquierda sobre el número sin DV.
var pesosNIT = []int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// DigitoVerificacion calcula el DV de un NIT (sin el DV). Acepta puntos y guiones.
func DigitoVerificacion(nit string) (byte, error) {
	digits := soloDigitos(nit)
	if len(digits) == 0 {
		return 0, fmt.Errorf("dian: NIT vacío")
	}
	if len(digits) > len(pesosNIT) {
		return 0, fmt.Errorf("dian: NIT demasiado largo (%d dígitos)", len(digits))
	}
	var sum int
	for i := 0; i < len(digits); i++ {
		d := digits[len(digits)-1-i]
		sum += int(d-'0') * pesosNIT[i]
	}
	r := sum % 11
	if r == 0 || r == 1 {
		return byte('0' + r), nil
	}
	return byte('0' + (11 - r)), nil
}

// VerificarDV indica si dv corresponde al NIT dado. Un dv vacío no se puede verificar y retorna error.
func VerificarDV(nit, dv string) error {
	d := soloDigitos(dv)
	if len(d) != 1 {
		return fmt.Errorf("dian: dígito de verificación inválido %q", dv)
	}
	esperado, err := DigitoVerificacion(nit)
	if err != nil {
		return err
	}
	if d[0] != esperado {
		return fmt.Errorf("dian: dígito de verificación del NIT %s inválido: esperado %c, recibido %c", nit, esperado, d[0])
	}
	return nil
}

func soloDigitos(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
