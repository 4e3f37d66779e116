package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gestion-pyme/internal/application/dto"
	"github.com/jhoicas/gestion-pyme/internal/domain"
	"github.com/jhoicas/gestion-pyme/internal/domain/entity"
	"github.com/jhoicas/gestion-pyme/internal/domain/repository"
)

// ComplianceUseCase seguimiento de obligaciones ante SUNAT y SUNAFIL.
type ComplianceUseCase struct {
	repo repository.ComplianceRepository
	now  func() time.Time
}

// NewComplianceUseCase construye el caso de uso.
func NewComplianceUseCase(repo repository.ComplianceRepository) *ComplianceUseCase {
	return &ComplianceUseCase{repo: repo, now: time.Now}
}

// List obligaciones, opcionalmente de una entidad. Overdue se evalúa al momento de la consulta.
func (uc *ComplianceUseCase) List(ctx context.Context, agency string) ([]*dto.ComplianceResponse, error) {
	agency = strings.ToUpper(strings.TrimSpace(agency))
	switch agency {
	case "", entity.AgencySUNAT, entity.AgencySUNAFIL:
	default:
		return nil, fmt.Errorf("%w: entidad %q", domain.ErrInvalidInput, agency)
	}
	list, err := uc.repo.List(ctx, agency)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	out := make([]*dto.ComplianceResponse, 0, len(list))
	for _, item := range list {
		out = append(out, toComplianceResponse(item, now))
	}
	return out, nil
}

// UpdateStatus marca una obligación como cumplida o la reabre.
func (uc *ComplianceUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateStatusRequest) (*dto.ComplianceResponse, error) {
	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status != entity.CompliancePending && status != entity.ComplianceDone {
		return nil, fmt.Errorf("%w: estado %q", domain.ErrInvalidStatus, in.Status)
	}
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.now()
	if item.Status != status {
		item.Status = status
		item.UpdatedAt = now
		if status == entity.ComplianceDone {
			item.CompletedAt = &now
		} else {
			item.CompletedAt = nil
		}
		if err := uc.repo.Update(ctx, item); err != nil {
			return nil, err
		}
	}
	return toComplianceResponse(item, now), nil
}

func toComplianceResponse(c *entity.ComplianceItem, now time.Time) *dto.ComplianceResponse {
	return &dto.ComplianceResponse{
		ID:          c.ID,
		Agency:      c.Agency,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		Status:      c.Status,
		Overdue:     c.Overdue(now),
		CompletedAt: c.CompletedAt,
	}
}
