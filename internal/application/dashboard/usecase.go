// Package dashboard arma el panel principal: reúne los indicadores en vivo y los combina
// con la vista del rol (accesos, etiquetas y estados) en un modelo listo para pintar.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	domdash "github.com/jhoicas/gestion-pyme/internal/domain/dashboard"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// ReportGenerator genera la versión imprimible del panel.
type ReportGenerator interface {
	GenerateDashboardPDF(ctx context.Context, view *dto.DashboardView, generatedAt time.Time) ([]byte, error)
}

// DashboardUseCase indicadores y vista del dashboard.
type DashboardUseCase struct {
	stats     repository.StatsRepository
	generator ReportGenerator
	now       func() time.Time
}

// NewDashboardUseCase construye el caso de uso. generator puede ser nil si no se exporta PDF.
func NewDashboardUseCase(stats repository.StatsRepository, generator ReportGenerator) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, generator: generator, now: time.Now}
}

// GetStats obtiene los cuatro indicadores en paralelo.
// El ingreso es el cobrado en el mes en curso.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (domdash.LiveStats, error) {
	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	type incomeResult struct {
		total decimal.Decimal
		err   error
	}
	type countResult struct {
		n   int
		err error
	}
	type progressResult struct {
		done, total int
		err         error
	}

	incomeCh := make(chan incomeResult, 1)
	pendingCh := make(chan countResult, 1)
	employeesCh := make(chan countResult, 1)
	complianceCh := make(chan progressResult, 1)

	go func() {
		total, err := uc.stats.IncomeBetween(ctx, monthStart, monthEnd)
		incomeCh <- incomeResult{total, err}
	}()
	go func() {
		n, err := uc.stats.CountPendingInvoices(ctx)
		pendingCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.stats.CountActiveEmployees(ctx)
		employeesCh <- countResult{n, err}
	}()
	go func() {
		done, total, err := uc.stats.ComplianceProgress(ctx)
		complianceCh <- progressResult{done, total, err}
	}()

	income := <-incomeCh
	pending := <-pendingCh
	employees := <-employeesCh
	compliance := <-complianceCh

	if income.err != nil {
		return domdash.LiveStats{}, fmt.Errorf("dashboard: ingresos: %w", income.err)
	}
	if pending.err != nil {
		return domdash.LiveStats{}, fmt.Errorf("dashboard: facturas pendientes: %w", pending.err)
	}
	if employees.err != nil {
		return domdash.LiveStats{}, fmt.Errorf("dashboard: empleados activos: %w", employees.err)
	}
	if compliance.err != nil {
		return domdash.LiveStats{}, fmt.Errorf("dashboard: cumplimiento: %w", compliance.err)
	}

	return domdash.LiveStats{
		TotalIncome:     income.total.Round(2),
		PendingInvoices: pending.n,
		ActiveEmployees: employees.n,
		ComplianceScore: complianceScore(compliance.done, compliance.total),
	}, nil
}

// GetView indicadores en vivo combinados con la vista del rol.
func (uc *DashboardUseCase) GetView(ctx context.Context, role string) (*dto.DashboardView, error) {
	stats, err := uc.GetStats(ctx)
	if err != nil {
		return nil, err
	}
	view := RenderView(entity.NormalizeRole(role), stats, uc.now())
	return &view, nil
}

// GetReport genera el PDF del panel del rol. Devuelve bytes y nombre de archivo.
func (uc *DashboardUseCase) GetReport(ctx context.Context, role string) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("dashboard: generador de reportes no configurado")
	}
	view, err := uc.GetView(ctx, role)
	if err != nil {
		return nil, "", err
	}
	now := uc.now()
	pdf, err := uc.generator.GenerateDashboardPDF(ctx, view, now)
	if err != nil {
		return nil, "", fmt.Errorf("dashboard: generar reporte: %w", err)
	}
	return pdf, fmt.Sprintf("dashboard-%s-%s.pdf", view.Role, now.Format("20060102")), nil
}

// RenderView arma el modelo de presentación. Pura: mismo rol e indicadores, misma vista.
func RenderView(role entity.Role, stats domdash.LiveStats, at time.Time) dto.DashboardView {
	labels := domdash.LabelsFor(role)
	status := domdash.StatusFor(role, stats)

	cards := make([]dto.StatCardDTO, 0, len(domdash.StatKeys()))
	for _, key := range domdash.StatKeys() {
		cards = append(cards, dto.StatCardDTO{
			Key:    string(key),
			Label:  labels.Get(key),
			Value:  formatCard(key, stats),
			Status: status.Get(key),
		})
	}
	return dto.DashboardView{
		Role:      string(entity.NormalizeRole(string(role))),
		Shortcuts: domdash.ShortcutsFor(role),
		Cards:     cards,
		Stats:     stats,
		DateLabel: monthLabel(at),
	}
}

// complianceScore porcentaje entero de obligaciones cumplidas; 100 si no hay ninguna registrada.
func complianceScore(done, total int) int {
	if total <= 0 {
		return 100
	}
	return done * 100 / total
}
