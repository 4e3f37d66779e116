package repository

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// EmployeeRepository puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByDNI(ctx context.Context, dni string) (*entity.Employee, error)
	// List filtra por estado si status no está vacío.
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Employee, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
