package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

const timeEntryColumns = `id, employee_id, work_date, check_in, check_out, hours, recorded_by, created_at`

// TimeEntryRepo adaptador PostgreSQL del control de asistencia.
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

// Create persiste una marcación de entrada.
func (r *TimeEntryRepo) Create(ctx context.Context, t *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.EmployeeID, t.WorkDate, t.CheckIn, t.CheckOut, t.Hours, t.RecordedBy, t.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// GetOpen devuelve la marcación abierta (sin salida) del trabajador en el día.
func (r *TimeEntryRepo) GetOpen(ctx context.Context, employeeID string, day time.Time) (*entity.TimeEntry, error) {
	start, end := dayRange(day)
	query := `
		SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE employee_id = $1 AND work_date >= $2 AND work_date < $3 AND check_out IS NULL
		ORDER BY check_in DESC LIMIT 1`
	t, err := scanTimeEntry(r.q.QueryRow(ctx, query, employeeID, start, end))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open time entry: %w", err)
	}
	return t, nil
}

// Close registra la salida y las horas trabajadas.
func (r *TimeEntryRepo) Close(ctx context.Context, t *entity.TimeEntry) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE time_entries SET check_out = $2, hours = $3 WHERE id = $1 AND check_out IS NULL`,
		t.ID, t.CheckOut, t.Hours)
	if err != nil {
		return fmt.Errorf("close time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// ListByDate lista las marcaciones de un día.
func (r *TimeEntryRepo) ListByDate(ctx context.Context, day time.Time, limit, offset int) ([]*entity.TimeEntry, error) {
	start, end := dayRange(day)
	query := `
		SELECT ` + timeEntryColumns + ` FROM time_entries
		WHERE work_date >= $1 AND work_date < $2
		ORDER BY check_in LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, start, end, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.TimeEntry
	for rows.Next() {
		t, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func scanTimeEntry(s scanner) (*entity.TimeEntry, error) {
	var t entity.TimeEntry
	if err := s.Scan(&t.ID, &t.EmployeeID, &t.WorkDate, &t.CheckIn, &t.CheckOut, &t.Hours, &t.RecordedBy, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}
