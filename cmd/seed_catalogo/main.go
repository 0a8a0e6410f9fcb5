// seed_catalogo genera el script SQL que carga un paquete PUC (CSV, XLSX, YAML o JSON)
// en las tablas paquetes y paquete_cuentas de una empresa existente.
//
// Uso: go run ./cmd/seed_catalogo <nit-empresa> <nombre-paquete> <archivo> [salida.sql]
// Por defecto escribe internal/infrastructure/postgres/migrations/100_seed_paquete.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Contabilizador-api/internal/infrastructure/catalogo"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "uso: seed_catalogo <nit-empresa> <nombre-paquete> <archivo> [salida.sql]")
		os.Exit(2)
	}
	nit, nombre, archivo := os.Args[1], os.Args[2], os.Args[3]

	data, err := os.ReadFile(archivo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer paquete: %v\n", err)
		os.Exit(1)
	}
	registros, err := catalogo.Leer(filepath.Base(archivo), data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Interpretar paquete: %v\n", err)
		os.Exit(1)
	}
	rep, lineas := catalogo.Validar(registros)
	if rep.Invalidas > 0 {
		for _, e := range rep.Errores {
			fmt.Fprintf(os.Stderr, "fila %d (%s): %s\n", e.Fila, e.Codigo, strings.Join(e.Errores, "; "))
		}
		os.Exit(1)
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "100_seed_paquete.sql")
	if len(os.Args) > 4 {
		outPath = os.Args[4]
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	paqueteID := uuid.New().String()
	fmt.Fprintf(out, "-- Paquete PUC %q para la empresa %s\n", nombre, nit)
	fmt.Fprintf(out, "-- Generado desde %s\n\n", filepath.Base(archivo))

	out.WriteString("-- 1. Paquete\n")
	fmt.Fprintf(out, "INSERT INTO paquetes (id, empresa_id, nombre)\n")
	fmt.Fprintf(out, "SELECT '%s', id, '%s' FROM empresas WHERE nit = '%s';\n\n", paqueteID, escapeSQL(nombre), escapeSQL(nit))

	out.WriteString("-- 2. Cuentas en el orden del paquete\n")
	out.WriteString("INSERT INTO paquete_cuentas (paquete_id, cuenta, nombre, tipo, naturaleza, orden) VALUES\n")
	for i, l := range lineas {
		sep := ","
		if i == len(lineas)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', '%s', %d)%s\n",
			paqueteID, escapeSQL(l.Cuenta), escapeSQL(l.Nombre), escapeSQL(l.Tipo), l.Naturaleza, i, sep)
	}
	out.WriteString("ON CONFLICT (paquete_id, cuenta) DO UPDATE SET orden = EXCLUDED.orden;\n")

	fmt.Printf("Generado %s: paquete %s con %d cuentas\n", outPath, paqueteID, len(lineas))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
