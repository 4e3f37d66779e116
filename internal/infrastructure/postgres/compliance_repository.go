package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var _ repository.ComplianceRepository = (*ComplianceRepo)(nil)

const complianceColumns = `id, agency, title, description, due_date, status, completed_at, updated_at`

// ComplianceRepo adaptador PostgreSQL de obligaciones SUNAT / SUNAFIL.
type ComplianceRepo struct {
	q Querier
}

// NewComplianceRepository construye el adaptador.
func NewComplianceRepository(q Querier) *ComplianceRepo {
	return &ComplianceRepo{q: q}
}

// List lista obligaciones por fecha de vencimiento.
func (r *ComplianceRepo) List(ctx context.Context, agency string) ([]*entity.ComplianceItem, error) {
	query := `
		SELECT ` + complianceColumns + ` FROM compliance_items
		WHERE ($1 = '' OR agency = $1)
		ORDER BY due_date, title`
	rows, err := r.q.Query(ctx, query, agency)
	if err != nil {
		return nil, fmt.Errorf("list compliance: %w", err)
	}
	defer rows.Close()
	var list []*entity.ComplianceItem
	for rows.Next() {
		c, err := scanCompliance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compliance: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// GetByID obtiene una obligación por ID.
func (r *ComplianceRepo) GetByID(ctx context.Context, id string) (*entity.ComplianceItem, error) {
	c, err := scanCompliance(r.q.QueryRow(ctx, `SELECT `+complianceColumns+` FROM compliance_items WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compliance: %w", err)
	}
	return c, nil
}

// Update persiste estado y fecha de cumplimiento.
func (r *ComplianceRepo) Update(ctx context.Context, item *entity.ComplianceItem) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE compliance_items SET status = $2, completed_at = $3, updated_at = $4 WHERE id = $1`,
		item.ID, item.Status, item.CompletedAt, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update compliance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCompliance(s scanner) (*entity.ComplianceItem, error) {
	var c entity.ComplianceItem
	if err := s.Scan(&c.ID, &c.Agency, &c.Title, &c.Description, &c.DueDate, &c.Status, &c.CompletedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
