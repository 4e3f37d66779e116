package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
)

var testNow = time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type memEmployees struct {
	mu   sync.Mutex
	byID map[string]*entity.Employee
}

func newMemEmployees(list ...*entity.Employee) *memEmployees {
	m := &memEmployees{byID: map[string]*entity.Employee{}}
	for _, e := range list {
		m.byID[e.ID] = e
	}
	return m
}

func (m *memEmployees) Create(_ context.Context, e *entity.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memEmployees) GetByID(_ context.Context, id string) (*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.byID[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (m *memEmployees) GetByDNI(_ context.Context, dni string) (*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.DNI == dni {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memEmployees) List(_ context.Context, status string, limit, offset int) ([]*entity.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Employee
	for _, e := range m.byID {
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DNI < out[j].DNI })
	return page(out, limit, offset), nil
}

func (m *memEmployees) UpdateStatus(_ context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	return nil
}

type memInvoices struct {
	byID map[string]*entity.Invoice
	next map[string]int
}

func newMemInvoices() *memInvoices {
	return &memInvoices{byID: map[string]*entity.Invoice{}, next: map[string]int{}}
}

func (m *memInvoices) Create(_ context.Context, inv *entity.Invoice) error {
	m.next[inv.Series]++
	inv.Number = m.next[inv.Series]
	cp := *inv
	m.byID[inv.ID] = &cp
	return nil
}

func (m *memInvoices) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if inv, ok := m.byID[id]; ok {
		cp := *inv
		return &cp, nil
	}
	return nil, nil
}

func (m *memInvoices) List(_ context.Context, status string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range m.byID {
		if status == "" || inv.Status == status {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return page(out, limit, offset), nil
}

func (m *memInvoices) Update(_ context.Context, inv *entity.Invoice) error {
	cur, ok := m.byID[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if cur.Status != entity.InvoicePending {
		return domain.ErrInvalidStatus
	}
	cp := *inv
	m.byID[inv.ID] = &cp
	return nil
}

type memTimeEntries struct {
	list []*entity.TimeEntry
}

// Create replica el índice time_entries_open_uq: una marcación abierta por trabajador y día.
func (m *memTimeEntries) Create(_ context.Context, t *entity.TimeEntry) error {
	for _, e := range m.list {
		if e.EmployeeID == t.EmployeeID && e.CheckOut == nil && sameDay(e.WorkDate, t.WorkDate) {
			return domain.ErrConflict
		}
	}
	cp := *t
	m.list = append(m.list, &cp)
	return nil
}

func (m *memTimeEntries) GetOpen(_ context.Context, employeeID string, day time.Time) (*entity.TimeEntry, error) {
	for _, t := range m.list {
		if t.EmployeeID == employeeID && t.CheckOut == nil && sameDay(t.WorkDate, day) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memTimeEntries) Close(_ context.Context, t *entity.TimeEntry) error {
	for i, e := range m.list {
		if e.ID == t.ID {
			cp := *t
			m.list[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memTimeEntries) ListByDate(_ context.Context, day time.Time, limit, offset int) ([]*entity.TimeEntry, error) {
	var out []*entity.TimeEntry
	for _, t := range m.list {
		if sameDay(t.WorkDate, day) {
			out = append(out, t)
		}
	}
	return page(out, limit, offset), nil
}

type memCompliance struct {
	byID map[string]*entity.ComplianceItem
}

func (m *memCompliance) List(_ context.Context, agency string) ([]*entity.ComplianceItem, error) {
	var out []*entity.ComplianceItem
	for _, c := range m.byID {
		if agency == "" || c.Agency == agency {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (m *memCompliance) GetByID(_ context.Context, id string) (*entity.ComplianceItem, error) {
	if c, ok := m.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (m *memCompliance) Update(_ context.Context, item *entity.ComplianceItem) error {
	cp := *item
	m.byID[item.ID] = &cp
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func page[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}
