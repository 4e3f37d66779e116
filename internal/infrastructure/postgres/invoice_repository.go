package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `id, series, number, customer_name, customer_ruc, issue_date, due_date,
	subtotal, igv, total, status, created_by, paid_at, created_at, updated_at`

// InvoiceRepo adaptador PostgreSQL de facturas.
type InvoiceRepo struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewInvoiceRepository construye el adaptador; necesita el pool para abrir transacciones.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool, tx: NewTxRunner(pool)}
}

// Create toma un lock por serie, asigna el siguiente correlativo y persiste en una sola transacción.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	return r.tx.Run(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, inv.Series); err != nil {
			return fmt.Errorf("lock serie: %w", err)
		}
		if err := tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(number), 0) + 1 FROM invoices WHERE series = $1`, inv.Series,
		).Scan(&inv.Number); err != nil {
			return fmt.Errorf("siguiente correlativo: %w", err)
		}

		query := `
			INSERT INTO invoices (` + invoiceColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
		_, err := tx.Exec(ctx, query,
			inv.ID, inv.Series, inv.Number, inv.CustomerName, inv.CustomerRUC, inv.IssueDate, inv.DueDate,
			inv.Subtotal, inv.IGV, inv.Total, inv.Status, inv.CreatedBy, inv.PaidAt, inv.CreatedAt, inv.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert invoice: %w", err)
		}
		return nil
	})
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List lista facturas recientes primero, filtrando por estado si se indica.
func (r *InvoiceRepo) List(ctx context.Context, status string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + ` FROM invoices
		WHERE ($1 = '' OR status = $1)
		ORDER BY issue_date DESC, series, number DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update persiste estado y fecha de pago. El WHERE exige que siga pendiente:
// de dos cambios concurrentes (pago y anulación) solo uno se aplica.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE invoices SET status = $2, paid_at = $3, updated_at = $4 WHERE id = $1 AND status = $5`,
		inv.ID, inv.Status, inv.PaidAt, inv.UpdatedAt, entity.InvoicePending)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: la factura ya no está pendiente", domain.ErrInvalidStatus)
	}
	return nil
}

func scanInvoice(s scanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := s.Scan(&inv.ID, &inv.Series, &inv.Number, &inv.CustomerName, &inv.CustomerRUC,
		&inv.IssueDate, &inv.DueDate, &inv.Subtotal, &inv.IGV, &inv.Total, &inv.Status,
		&inv.CreatedBy, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
