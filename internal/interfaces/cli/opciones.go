package cli

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Contabilizador-api/internal/application/dto"
	"github.com/jhoicas/Contabilizador-api/internal/domain"
)

// archivoOpciones formato del archivo --opciones:
//
//	perfil: recibidos
//	orden: desc
//	consecutivo: true
//	tipo_comprobante: 4
//	retefuente_tarifa: 0.025
//	reteiva_porc: 0.15
type archivoOpciones struct {
	Perfil              string `yaml:"perfil"`
	dto.OpcionesRequest `yaml:",inline"`
}

func leerOpciones(ruta string) (archivoOpciones, error) {
	var out archivoOpciones
	data, err := os.ReadFile(ruta)
	if err != nil {
		return out, fmt.Errorf("leer opciones: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&out); err != nil {
		return out, fmt.Errorf("%w: opciones %s: %v", domain.ErrInvalidInput, ruta, err)
	}
	return out, nil
}
