package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

const validRUC = "20100070970"

func newInvoiceUC() (*InvoiceUseCase, *memInvoices) {
	repo := newMemInvoices()
	uc := NewInvoiceUseCase(repo)
	uc.now = fixedClock
	return uc, repo
}

func TestInvoiceCreate_CalculaIGVYCorrelativo(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	in := dto.CreateInvoiceRequest{
		CustomerName: "Comercial Andina SAC", CustomerRUC: validRUC,
		Subtotal: decimal.NewFromInt(1000), DueDays: 30,
	}
	first, err := uc.Create(ctx, "u1", in)
	require.NoError(t, err)

	assert.Equal(t, DefaultSeries, first.Series)
	assert.Equal(t, "F001-00000001", first.Code)
	assert.True(t, first.IGV.Equal(decimal.NewFromInt(180)))
	assert.True(t, first.Total.Equal(decimal.NewFromInt(1180)))
	assert.Equal(t, entity.InvoicePending, first.Status)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), first.IssueDate)
	assert.Equal(t, time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC), first.DueDate)

	second, err := uc.Create(ctx, "u1", in)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Number)

	other, err := uc.Create(ctx, "u1", dto.CreateInvoiceRequest{
		Series: "b002", CustomerName: "X", CustomerRUC: "20-10007097-0", Subtotal: decimal.NewFromFloat(10.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "B002-00000001", other.Code)
	assert.Equal(t, validRUC, other.CustomerRUC)
}

func TestInvoiceCreate_Validaciones(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()
	base := func() dto.CreateInvoiceRequest {
		return dto.CreateInvoiceRequest{CustomerName: "Cliente", CustomerRUC: validRUC, Subtotal: decimal.NewFromInt(10)}
	}

	bad := []func(*dto.CreateInvoiceRequest){
		func(r *dto.CreateInvoiceRequest) { r.CustomerRUC = "20100070971" },
		func(r *dto.CreateInvoiceRequest) { r.CustomerRUC = "" },
		func(r *dto.CreateInvoiceRequest) { r.CustomerName = "  " },
		func(r *dto.CreateInvoiceRequest) { r.Subtotal = decimal.Zero },
		func(r *dto.CreateInvoiceRequest) { r.DueDays = -5 },
		func(r *dto.CreateInvoiceRequest) { r.Series = "X001" },
		func(r *dto.CreateInvoiceRequest) { r.IssueDate = "2026-13-01" },
	}
	for i, mutate := range bad {
		in := base()
		mutate(&in)
		_, err := uc.Create(ctx, "u1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %d", i)
	}
}

func TestInvoiceUpdateStatus(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()

	inv, err := uc.Create(ctx, "u1", dto.CreateInvoiceRequest{CustomerName: "C", CustomerRUC: validRUC, Subtotal: decimal.NewFromInt(50)})
	require.NoError(t, err)

	paid, err := uc.UpdateStatus(ctx, inv.ID, dto.UpdateStatusRequest{Status: "paid"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.Equal(t, testNow, *paid.PaidAt)

	_, err = uc.UpdateStatus(ctx, inv.ID, dto.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus, "una factura pagada no se anula")

	_, err = uc.UpdateStatus(ctx, "no-existe", dto.UpdateStatusRequest{Status: "paid"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceList_FiltraEstado(t *testing.T) {
	uc, _ := newInvoiceUC()
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, "u1", dto.CreateInvoiceRequest{CustomerName: "C", CustomerRUC: validRUC, Subtotal: decimal.NewFromInt(1)})
		require.NoError(t, err)
	}
	all, err := uc.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, all.Items, 3)

	_, err = uc.UpdateStatus(ctx, all.Items[0].ID, dto.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	pending, err := uc.List(ctx, "pending", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, pending.Items, 2)

	_, err = uc.List(ctx, "borrador", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceCode(t *testing.T) {
	assert.Equal(t, "F001-00000042", InvoiceCode("F001", 42))
}

// staleInvoices devuelve siempre la lectura inicial, como dos peticiones que leyeron antes de escribir.
type staleInvoices struct {
	*memInvoices
	snapshot *entity.Invoice
}

func (s *staleInvoices) GetByID(_ context.Context, _ string) (*entity.Invoice, error) {
	cp := *s.snapshot
	return &cp, nil
}

func TestInvoiceUpdateStatus_PagoYAnulacionConcurrentes(t *testing.T) {
	mem := newMemInvoices()
	ctx := context.Background()
	creator := NewInvoiceUseCase(mem)
	creator.now = fixedClock
	inv, err := creator.Create(ctx, "u1", dto.CreateInvoiceRequest{CustomerName: "C", CustomerRUC: validRUC, Subtotal: decimal.NewFromInt(80)})
	require.NoError(t, err)

	snapshot, err := mem.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	uc := NewInvoiceUseCase(&staleInvoices{memInvoices: mem, snapshot: snapshot})
	uc.now = fixedClock

	_, err = uc.UpdateStatus(ctx, inv.ID, dto.UpdateStatusRequest{Status: "paid"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, inv.ID, dto.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	stored, err := mem.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoicePaid, stored.Status, "la anulación tardía no pisa el pago")
}
