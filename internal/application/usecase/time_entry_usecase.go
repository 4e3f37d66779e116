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
)

// Tipos de marcación devueltos por Record.
const (
	KindCheckIn  = "check_in"
	KindCheckOut = "check_out"
)

// TimeEntryUseCase control de asistencia: entrada y salida por trabajador y día.
type TimeEntryUseCase struct {
	entries   repository.TimeEntryRepository
	employees repository.EmployeeRepository
	now       func() time.Time
}

// NewTimeEntryUseCase construye el caso de uso.
func NewTimeEntryUseCase(entries repository.TimeEntryRepository, employees repository.EmployeeRepository) *TimeEntryUseCase {
	return &TimeEntryUseCase{entries: entries, employees: employees, now: time.Now}
}

// Record marca la entrada del trabajador o, si ya tiene una jornada abierta hoy, su salida.
func (uc *TimeEntryUseCase) Record(ctx context.Context, recordedBy string, in dto.TimeEntryRequest) (*dto.TimeEntryResponse, error) {
	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID == "" {
		return nil, fmt.Errorf("%w: employee_id es obligatorio", domain.ErrInvalidInput)
	}
	emp, err := uc.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if emp.Status != entity.EmployeeActive {
		return nil, fmt.Errorf("%w: el trabajador está inactivo", domain.ErrConflict)
	}

	now := uc.now()
	open, err := uc.entries.GetOpen(ctx, employeeID, now)
	if err != nil {
		return nil, err
	}
	if open != nil {
		open.CheckOut = &now
		open.Hours = open.WorkedHours()
		if err := uc.entries.Close(ctx, open); err != nil {
			return nil, err
		}
		return toTimeEntryResponse(open, KindCheckOut), nil
	}

	y, m, d := now.Date()
	entry := &entity.TimeEntry{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		WorkDate:   time.Date(y, m, d, 0, 0, 0, 0, now.Location()),
		CheckIn:    now,
		RecordedBy: recordedBy,
		CreatedAt:  now,
	}
	if err := uc.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toTimeEntryResponse(entry, KindCheckIn), nil
}

// ListByDate marcaciones del día indicado (YYYY-MM-DD); vacío es hoy.
func (uc *TimeEntryUseCase) ListByDate(ctx context.Context, date string, page dto.PageRequest) (dto.ListResponse[*dto.TimeEntryResponse], error) {
	page.DefaultPage()
	day, err := parseDateOr(date, uc.now())
	if err != nil {
		return dto.ListResponse[*dto.TimeEntryResponse]{}, err
	}
	list, err := uc.entries.ListByDate(ctx, day, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[*dto.TimeEntryResponse]{}, err
	}
	items := make([]*dto.TimeEntryResponse, 0, len(list))
	for _, t := range list {
		kind := KindCheckIn
		if t.CheckOut != nil {
			kind = KindCheckOut
		}
		items = append(items, toTimeEntryResponse(t, kind))
	}
	return dto.NewListResponse(items, page), nil
}

func toTimeEntryResponse(t *entity.TimeEntry, kind string) *dto.TimeEntryResponse {
	return &dto.TimeEntryResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		WorkDate:   t.WorkDate,
		CheckIn:    t.CheckIn,
		CheckOut:   t.CheckOut,
		Hours:      t.Hours,
		Kind:       kind,
	}
}
