// seed_users genera el script SQL con los datos iniciales: un usuario por rol,
// las obligaciones legales del mes y, opcionalmente, la planilla desde un CSV.
//
// Uso: go run ./cmd/seed_users [-password clave] [-month 2026-03] [-employees planilla.csv] [-latin1]
// El CSV exportado desde Excel suele venir en ISO-8859-1; -latin1 lo convierte a UTF-8.
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	password := flag.String("password", "", "contraseña inicial de los usuarios (obligatoria, mínimo 8 caracteres)")
	month := flag.String("month", time.Now().Format("2006-01"), "mes de las obligaciones (YYYY-MM)")
	employeesPath := flag.String("employees", "", "CSV de planilla: dni,nombres,apellidos,cargo,area,sueldo,fecha_ingreso")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	base, err := time.Parse("2006-01", *month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Mes inválido %q: %v\n", *month, err)
		os.Exit(1)
	}

	users, err := defaultUsers(*password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usuarios: %v\n", err)
		os.Exit(1)
	}

	var employees []employeeRow
	if *employeesPath != "" {
		f, err := os.Open(*employeesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()

		var r io.Reader = f
		if *latin1 {
			r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
		}
		employees, err = readEmployees(r)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer planilla: %v\n", err)
			os.Exit(1)
		}
	}

	// Ruta del script de salida (relativa al módulo)
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	obligations := complianceFor(base)
	if err := writeSeed(out, users, employees, obligations); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d usuarios, %d trabajadores, %d obligaciones\n",
		outPath, len(users), len(employees), len(obligations))
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
