package contabilizacion

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// ArchivoFuente documento en disco (CLI).
type ArchivoFuente struct {
	Ruta string
}

func (f ArchivoFuente) Nombre() string { return filepath.Base(f.Ruta) }

func (f ArchivoFuente) Leer(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Ruta)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", f.Ruta, err)
	}
	return b, nil
}

// MultipartFuente archivo subido en un formulario multipart (API HTTP).
type MultipartFuente struct {
	Header *multipart.FileHeader
}

func (f MultipartFuente) Nombre() string { return f.Header.Filename }

func (f MultipartFuente) Leer(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := f.Header.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", f.Header.Filename, err)
	}
	defer file.Close()
	return io.ReadAll(file)
}

// BytesFuente documento ya cargado en memoria.
type BytesFuente struct {
	Archivo string
	Data    []byte
}

func (f BytesFuente) Nombre() string                         { return f.Archivo }
func (f BytesFuente) Leer(_ context.Context) ([]byte, error) { return f.Data, nil }
