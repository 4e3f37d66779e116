package repository

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// TimeEntryRepository puerto de persistencia para marcaciones.
type TimeEntryRepository interface {
	Create(ctx context.Context, t *entity.TimeEntry) error
	// GetOpen devuelve la marcación sin salida del trabajador en la fecha, o nil.
	// Las jornadas abiertas de días anteriores no cuentan.
	GetOpen(ctx context.Context, employeeID string, day time.Time) (*entity.TimeEntry, error)
	Close(ctx context.Context, t *entity.TimeEntry) error
	ListByDate(ctx context.Context, day time.Time, limit, offset int) ([]*entity.TimeEntry, error)
}
