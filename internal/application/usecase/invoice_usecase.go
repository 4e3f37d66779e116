package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
	"github.com/jhoicas/gestion-pyme/pkg/sunat"
)

// DefaultSeries serie usada cuando la solicitud no indica una.
const DefaultSeries = "F001"

// InvoiceUseCase emisión y cobranza de facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	now  func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: time.Now}
}

// Create emite una factura pendiente. El IGV (18%) se calcula sobre el subtotal.
func (uc *InvoiceUseCase) Create(ctx context.Context, createdBy string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	series := strings.ToUpper(strings.TrimSpace(in.Series))
	if series == "" {
		series = DefaultSeries
	}
	if !validSeries(series) {
		return nil, fmt.Errorf("%w: serie %q, formato esperado F001", domain.ErrInvalidInput, in.Series)
	}
	ruc := sunat.NormalizeRUC(in.CustomerRUC)
	if err := sunat.ValidateRUC(ruc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: razón social del cliente es obligatoria", domain.ErrInvalidInput)
	}
	if !in.Subtotal.IsPositive() {
		return nil, fmt.Errorf("%w: el subtotal debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if in.DueDays < 0 {
		return nil, fmt.Errorf("%w: días de crédito negativos", domain.ErrInvalidInput)
	}

	now := uc.now()
	issue, err := parseDateOr(in.IssueDate, now)
	if err != nil {
		return nil, err
	}
	subtotal := in.Subtotal.Round(2)
	igv, total := sunat.ComputeIGV(subtotal)

	inv := &entity.Invoice{
		ID:           uuid.New().String(),
		Series:       series,
		CustomerName: name,
		CustomerRUC:  ruc,
		IssueDate:    issue,
		DueDate:      issue.AddDate(0, 0, in.DueDays),
		Subtotal:     subtotal,
		IGV:          igv,
		Total:        total,
		Status:       entity.InvoicePending,
		CreatedBy:    createdBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// GetByID obtiene una factura. domain.ErrNotFound si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// List lista facturas, opcionalmente por estado.
func (uc *InvoiceUseCase) List(ctx context.Context, status string, page dto.PageRequest) (dto.ListResponse[*dto.InvoiceResponse], error) {
	page.DefaultPage()
	status = strings.ToLower(strings.TrimSpace(status))
	switch status {
	case "", entity.InvoicePending, entity.InvoicePaid, entity.InvoiceCancelled:
	default:
		return dto.ListResponse[*dto.InvoiceResponse]{}, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.repo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[*dto.InvoiceResponse]{}, err
	}
	items := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, toInvoiceResponse(inv))
	}
	return dto.NewListResponse(items, page), nil
}

// UpdateStatus registra el pago o la anulación de una factura pendiente.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateStatusRequest) (*dto.InvoiceResponse, error) {
	status := strings.ToLower(strings.TrimSpace(in.Status))
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !inv.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidStatus, inv.Status, in.Status)
	}
	now := uc.now()
	inv.Status = status
	inv.UpdatedAt = now
	if status == entity.InvoicePaid {
		inv.PaidAt = &now
	}
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return toInvoiceResponse(inv), nil
}

// validSeries F o B seguido de tres caracteres alfanuméricos (F001, B002, FA01).
func validSeries(s string) bool {
	if len(s) != 4 || (s[0] != 'F' && s[0] != 'B') {
		return false
	}
	for _, c := range s[1:] {
		if !(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// InvoiceCode número de comprobante con correlativo de 8 dígitos, ej: F001-00000042.
func InvoiceCode(series string, number int) string {
	return fmt.Sprintf("%s-%08d", series, number)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:           inv.ID,
		Code:         InvoiceCode(inv.Series, inv.Number),
		Series:       inv.Series,
		Number:       inv.Number,
		CustomerName: inv.CustomerName,
		CustomerRUC:  inv.CustomerRUC,
		IssueDate:    inv.IssueDate,
		DueDate:      inv.DueDate,
		Subtotal:     inv.Subtotal,
		IGV:          inv.IGV,
		Total:        inv.Total,
		Status:       inv.Status,
		PaidAt:       inv.PaidAt,
	}
}
