package repository

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// ComplianceRepository puerto de persistencia para obligaciones legales.
type ComplianceRepository interface {
	// List filtra por entidad (SUNAT, SUNAFIL) si agency no está vacío.
	List(ctx context.Context, agency string) ([]*entity.ComplianceItem, error)
	GetByID(ctx context.Context, id string) (*entity.ComplianceItem, error)
	Update(ctx context.Context, item *entity.ComplianceItem) error
}
