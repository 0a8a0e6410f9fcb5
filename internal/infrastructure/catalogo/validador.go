package catalogo

import (
	"fmt"
	"sort"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain/contabilidad"
	"github.com/jhoicas/Contabilizador-api/internal/domain/entity"
)

// Validar revisa cada registro y devuelve el reporte junto con las líneas válidas.
// Las que traen orden van primero, ordenadas por esa columna; las demás siguen en el
// orden del archivo y se numeran a continuación del mayor orden explícito.
func Validar(registros []Registro) (dto.ReporteCatalogo, []entity.LineaCatalogo) {
	rep := dto.ReporteCatalogo{Total: len(registros), Errores: []dto.ErrorFilaCatalogo{}}
	vistos := make(map[string]int, len(registros))
	lineas := make([]entity.LineaCatalogo, 0, len(registros))
	var sinOrden []entity.LineaCatalogo

	for _, r := range registros {
		var errs []string
		if r.Cuenta == "" {
			errs = append(errs, "codigo es obligatorio")
		} else if fila, ok := vistos[r.Cuenta]; ok {
			errs = append(errs, fmt.Sprintf("codigo duplicado (fila %d)", fila))
		} else {
			vistos[r.Cuenta] = r.Fila
		}
		if r.Tipo == "" {
			errs = append(errs, "tipo es obligatorio")
		} else if !contabilidad.EtiquetaValida(r.Tipo) {
			errs = append(errs, "tipo desconocido: "+r.Tipo)
		}
		nat, ok := contabilidad.ParseNaturaleza(r.Naturaleza)
		if !ok {
			errs = append(errs, "naturaleza debe ser debito o credito")
		}
		orden, ok := parseOrden(r.Orden)
		if !ok {
			errs = append(errs, "orden debe ser un entero no negativo")
		}

		if len(errs) > 0 {
			rep.Invalidas++
			rep.Errores = append(rep.Errores, dto.ErrorFilaCatalogo{Fila: r.Fila, Codigo: r.Cuenta, Errores: errs})
			continue
		}
		rep.Validas++
		l := entity.LineaCatalogo{
			Cuenta:     r.Cuenta,
			Nombre:     r.Nombre,
			Tipo:       r.Tipo,
			Naturaleza: nat.String(),
			Orden:      orden,
		}
		if r.Orden == "" {
			sinOrden = append(sinOrden, l)
			continue
		}
		lineas = append(lineas, l)
	}
	sort.SliceStable(lineas, func(i, j int) bool { return lineas[i].Orden < lineas[j].Orden })

	siguiente := 0
	if n := len(lineas); n > 0 {
		siguiente = lineas[n-1].Orden + 1
	}
	for i := range sinOrden {
		sinOrden[i].Orden = siguiente + i
	}
	return rep, append(lineas, sinOrden...)
}
