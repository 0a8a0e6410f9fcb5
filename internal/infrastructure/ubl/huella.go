package ubl

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"

	"github.com/ucarion/c14n"
	"golang.org/x/crypto/blake2b"
)

// Huella BLAKE2b-256 (hex) de la forma canónica C14N del documento. Dos archivos con el mismo
// contenido XML y distinto formato (espacios entre atributos, orden, comillas) comparten huella.
// Si el XML no se puede canonicalizar se usa el contenido crudo.
func Huella(raw []byte) string {
	data := raw
	if canon, err := canonicalizar(raw); err == nil {
		data = canon
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func canonicalizar(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	dec.CharsetReader = charsetReader
	return c14n.Canonicalize(dec)
}
