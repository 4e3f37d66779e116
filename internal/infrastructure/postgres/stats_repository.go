package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para los indicadores del dashboard.
type StatsRepo struct {
	q Querier
}

// NewStatsRepository construye el adaptador.
func NewStatsRepository(q Querier) *StatsRepo {
	return &StatsRepo{q: q}
}

// IncomeBetween suma las facturas pagadas cuya fecha de pago cae en [start, end).
func (r *StatsRepo) IncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(total), 0)
	FROM invoices
	WHERE status = 'paid' AND paid_at >= $1 AND paid_at < $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("stats.IncomeBetween: %w", err)
	}
	return total, nil
}

// CountPendingInvoices facturas emitidas aún no cobradas.
func (r *StatsRepo) CountPendingInvoices(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE status = 'pending'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.CountPendingInvoices: %w", err)
	}
	return n, nil
}

// CountActiveEmployees trabajadores activos en planilla.
func (r *StatsRepo) CountActiveEmployees(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.CountActiveEmployees: %w", err)
	}
	return n, nil
}

// ComplianceProgress obligaciones cumplidas sobre el total.
func (r *StatsRepo) ComplianceProgress(ctx context.Context) (done, total int, err error) {
	const query = `
	SELECT COUNT(*) FILTER (WHERE status = 'done'), COUNT(*)
	FROM compliance_items`
	if err := r.q.QueryRow(ctx, query).Scan(&done, &total); err != nil {
		return 0, 0, fmt.Errorf("stats.ComplianceProgress: %w", err)
	}
	return done, total, nil
}
