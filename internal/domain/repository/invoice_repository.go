package repository

import (
	"context"

	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

// InvoiceRepository puerto de persistencia para Invoice.
type InvoiceRepository interface {
	// Create asigna el siguiente correlativo de la serie y persiste la factura.
	Create(ctx context.Context, inv *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entity.Invoice, error)
	// Update solo aplica sobre una factura aún pendiente; si ya cambió devuelve domain.ErrInvalidStatus.
	Update(ctx context.Context, inv *entity.Invoice) error
}
