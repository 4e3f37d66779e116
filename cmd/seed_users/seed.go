package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/application/auth"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/pkg/sunat"
)

type userRow struct {
	id, email, name, role, hash string
}

type employeeRow struct {
	id, dni, firstName, lastName, position, area string
	salary                                       decimal.Decimal
	hireDate                                     time.Time
}

type obligationRow struct {
	id, agency, title, description string
	due                            time.Time
}

// defaultUsers un usuario por rol: <rol>@pyme.local.
func defaultUsers(password string) ([]userRow, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	names := map[entity.Role]string{
		entity.RoleAdmin:        "Administrador",
		entity.RoleContabilidad: "Contabilidad",
		entity.RoleRRHH:         "Recursos Humanos",
		entity.RoleSupervisor:   "Supervisor",
	}
	out := make([]userRow, 0, len(entity.Roles()))
	for _, r := range entity.Roles() {
		out = append(out, userRow{
			id:    uuid.New().String(),
			email: r.String() + "@pyme.local",
			name:  names[r],
			role:  r.String(),
			hash:  hash,
		})
	}
	return out, nil
}

// complianceFor obligaciones habituales de una PYME para el mes dado.
// Los vencimientos SUNAT dependen del último dígito del RUC; se usa el día 15 del mes siguiente.
func complianceFor(month time.Time) []obligationRow {
	next := time.Date(month.Year(), month.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	period := month.Format("01/2006")
	rows := []obligationRow{
		{agency: entity.AgencySUNAT, title: "Declaración mensual IGV-Renta (PDT 621)", description: "Periodo " + period, due: next.AddDate(0, 0, 14)},
		{agency: entity.AgencySUNAT, title: "Libros electrónicos (PLE)", description: "Registro de ventas y compras, periodo " + period, due: next.AddDate(0, 0, 14)},
		{agency: entity.AgencySUNAFIL, title: "Planilla electrónica PLAME", description: "Remuneraciones y aportes, periodo " + period, due: next.AddDate(0, 0, 14)},
		{agency: entity.AgencySUNAFIL, title: "Registro de control de asistencia", description: "Conservar marcaciones del mes " + period, due: next.AddDate(0, 0, -1)},
	}
	switch month.Month() {
	case time.May, time.November:
		rows = append(rows, obligationRow{agency: entity.AgencySUNAFIL, title: "Depósito CTS", description: "Compensación por tiempo de servicios", due: time.Date(month.Year(), month.Month(), 15, 0, 0, 0, 0, time.UTC)})
	case time.July, time.December:
		rows = append(rows, obligationRow{agency: entity.AgencySUNAFIL, title: "Pago de gratificación", description: "Gratificación legal y bonificación extraordinaria", due: time.Date(month.Year(), month.Month(), 15, 0, 0, 0, 0, time.UTC)})
	}
	for i := range rows {
		rows[i].id = uuid.New().String()
	}
	return rows
}

// readEmployees lee la planilla en CSV (con cabecera). Acepta coma o punto y coma.
func readEmployees(r io.Reader) ([]employeeRow, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(512)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cr := csv.NewReader(br)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = 7
	if strings.Count(string(head), ";") > strings.Count(string(head), ",") {
		cr.Comma = ';'
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	seen := map[string]bool{}
	out := make([]employeeRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		line := i + 2
		dni := strings.TrimSpace(rec[0])
		if err := sunat.ValidateDNI(dni); err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if seen[dni] {
			return nil, fmt.Errorf("línea %d: DNI %s repetido", line, dni)
		}
		seen[dni] = true
		salary, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(rec[5]), ",", ""))
		if err != nil {
			return nil, fmt.Errorf("línea %d: sueldo %q: %w", line, rec[5], err)
		}
		hire, err := time.Parse("2006-01-02", strings.TrimSpace(rec[6]))
		if err != nil {
			return nil, fmt.Errorf("línea %d: fecha_ingreso %q: %w", line, rec[6], err)
		}
		out = append(out, employeeRow{
			id:        uuid.New().String(),
			dni:       dni,
			firstName: strings.TrimSpace(rec[1]),
			lastName:  strings.TrimSpace(rec[2]),
			position:  strings.TrimSpace(rec[3]),
			area:      strings.TrimSpace(rec[4]),
			salary:    salary.Round(2),
			hireDate:  hire,
		})
	}
	return out, nil
}

// writeSeed escribe el script idempotente (ON CONFLICT DO NOTHING).
func writeSeed(w io.Writer, users []userRow, employees []employeeRow, obligations []obligationRow) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("-- Datos iniciales generados por cmd/seed_users\n\n")

	bw.WriteString("-- 1. Usuarios (uno por rol)\n")
	for _, u := range users {
		fmt.Fprintf(bw, "INSERT INTO users (id, email, password_hash, name, role) VALUES ('%s', '%s', '%s', '%s', '%s')\n",
			u.id, escapeSQL(u.email), escapeSQL(u.hash), escapeSQL(u.name), u.role)
		bw.WriteString("ON CONFLICT DO NOTHING;\n")
	}

	if len(employees) > 0 {
		bw.WriteString("\n-- 2. Planilla\n")
		for _, e := range employees {
			fmt.Fprintf(bw, "INSERT INTO employees (id, dni, first_name, last_name, position, area, salary, hire_date) VALUES ('%s', '%s', '%s', '%s', '%s', '%s', %s, '%s')\n",
				e.id, e.dni, escapeSQL(e.firstName), escapeSQL(e.lastName), escapeSQL(e.position), escapeSQL(e.area),
				e.salary.StringFixed(2), e.hireDate.Format("2006-01-02"))
			bw.WriteString("ON CONFLICT (dni) DO NOTHING;\n")
		}
	}

	bw.WriteString("\n-- 3. Obligaciones SUNAT / SUNAFIL\n")
	for _, o := range obligations {
		fmt.Fprintf(bw, "INSERT INTO compliance_items (id, agency, title, description, due_date) VALUES ('%s', '%s', '%s', '%s', '%s')\n",
			o.id, o.agency, escapeSQL(o.title), escapeSQL(o.description), o.due.Format("2006-01-02"))
		bw.WriteString("ON CONFLICT DO NOTHING;\n")
	}
	return bw.Flush()
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
