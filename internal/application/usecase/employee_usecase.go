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

const dateLayout = "2006-01-02"

// EmployeeUseCase alta, consulta y baja de trabajadores.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
	now  func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: time.Now}
}

// Create registra un trabajador activo. El DNI debe ser único.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	dni := strings.TrimSpace(in.DNI)
	if err := sunat.ValidateDNI(dni); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return nil, fmt.Errorf("%w: nombres y apellidos son obligatorios", domain.ErrInvalidInput)
	}
	if in.Salary.IsNegative() {
		return nil, fmt.Errorf("%w: la remuneración no puede ser negativa", domain.ErrInvalidInput)
	}
	now := uc.now()
	hireDate, err := parseDateOr(in.HireDate, now)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un trabajador con DNI %s", domain.ErrDuplicate, dni)
	}

	emp := &entity.Employee{
		ID:        uuid.New().String(),
		DNI:       dni,
		FirstName: first,
		LastName:  last,
		Position:  strings.TrimSpace(in.Position),
		Area:      strings.TrimSpace(in.Area),
		Salary:    in.Salary.Round(2),
		HireDate:  hireDate,
		Status:    entity.EmployeeActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un trabajador. domain.ErrNotFound si no existe.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(emp), nil
}

// List lista trabajadores, opcionalmente filtrados por estado.
func (uc *EmployeeUseCase) List(ctx context.Context, status string, page dto.PageRequest) (dto.ListResponse[*dto.EmployeeResponse], error) {
	page.DefaultPage()
	status = strings.ToLower(strings.TrimSpace(status))
	if status != "" && !validEmployeeStatus(status) {
		return dto.ListResponse[*dto.EmployeeResponse]{}, fmt.Errorf("%w: estado %q", domain.ErrInvalidInput, status)
	}
	list, err := uc.repo.List(ctx, status, page.Limit, page.Offset)
	if err != nil {
		return dto.ListResponse[*dto.EmployeeResponse]{}, err
	}
	items := make([]*dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, toEmployeeResponse(e))
	}
	return dto.NewListResponse(items, page), nil
}

// UpdateStatus activa o da de baja a un trabajador.
func (uc *EmployeeUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateStatusRequest) (*dto.EmployeeResponse, error) {
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if !validEmployeeStatus(status) {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidStatus, in.Status)
	}
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if emp.Status == status {
		return toEmployeeResponse(emp), nil
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	emp.Status = status
	emp.UpdatedAt = uc.now()
	return toEmployeeResponse(emp), nil
}

func validEmployeeStatus(s string) bool {
	return s == entity.EmployeeActive || s == entity.EmployeeInactive
}

// parseDateOr interpreta YYYY-MM-DD en la zona de def; vacío devuelve el día de def.
func parseDateOr(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := def.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, def.Location()), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, def.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q, formato esperado YYYY-MM-DD", domain.ErrInvalidInput, s)
	}
	return t, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		DNI:       e.DNI,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		FullName:  e.FullName(),
		Position:  e.Position,
		Area:      e.Area,
		Salary:    e.Salary,
		HireDate:  e.HireDate,
		Status:    e.Status,
	}
}
