package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatsRepository consultas de solo lectura que alimentan los indicadores del dashboard.
type StatsRepository interface {
	// IncomeBetween suma el total de las facturas pagadas en el rango. Cero si no hay.
	IncomeBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	CountPendingInvoices(ctx context.Context) (int, error)
	CountActiveEmployees(ctx context.Context) (int, error)
	// ComplianceProgress devuelve obligaciones cumplidas y totales.
	ComplianceProgress(ctx context.Context) (done, total int, err error)
}
