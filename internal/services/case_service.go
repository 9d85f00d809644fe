package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/casetrack/case-management-api/internal/apperrors"
	"github.com/casetrack/case-management-api/internal/auth"
	"github.com/casetrack/case-management-api/internal/dto"
	"github.com/casetrack/case-management-api/internal/models"
	"github.com/casetrack/case-management-api/internal/repository"
)

// CaseService orchestrates case create/read/update/soft-delete against the
// repository. Every operation is a single-record read-then-write; the only
// cross-record invariant is per-owner title uniqueness, checked fail-fast
// here and backed by the partial unique index.
type CaseService struct {
	caseRepo repository.CaseRepository
}

// NewCaseService creates a new CaseService
func NewCaseService(caseRepo repository.CaseRepository) *CaseService {
	return &CaseService{caseRepo: caseRepo}
}

// Create persists a new case, defaulting the status to OPEN when absent.
// CreatedBy is stamped by the persistence hook from the ctx principal.
func (s *CaseService) Create(ctx context.Context, req dto.CreateCaseRequest) (*models.Case, error) {
	p, ok := auth.FromContext(ctx)
	if !ok {
		return nil, apperrors.ErrForbidden
	}

	taken, err := s.caseRepo.ExistsByTitleAndOwner(ctx, req.Title, p.ID, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check title: %w", err)
	}
	if taken {
		return nil, apperrors.DuplicateTitle()
	}

	status := models.CaseStatusOpen
	if req.Status != nil {
		status = *req.Status
	}

	kase := &models.Case{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Due:         req.Due,
	}

	if err := s.caseRepo.Create(ctx, kase); err != nil {
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	return kase, nil
}

// Search returns one page of matches plus element and page totals.
func (s *CaseService) Search(ctx context.Context, criteria repository.CaseCriteria) (*dto.CaseData, error) {
	if err := criteria.Normalize(); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidSortField):
			return nil, apperrors.Validation(apperrors.FieldErrors{"sortBy": "field.invalid"})
		case errors.Is(err, repository.ErrInvalidSortOrder):
			return nil, apperrors.Validation(apperrors.FieldErrors{"sortOrder": "field.invalid"})
		}
		return nil, err
	}

	cases, total, err := s.caseRepo.Search(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to search cases: %w", err)
	}

	totalPages := int((total + int64(criteria.Limit) - 1) / int64(criteria.Limit))

	return &dto.CaseData{
		Tasks:        dto.ToCaseResponses(cases),
		TotalElement: total,
		TotalPage:    totalPages,
	}, nil
}

// Get fetches exactly one live case.
func (s *CaseService) Get(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	kase, err := s.caseRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to find case: %w", err)
	}
	return kase, nil
}

// Update overwrites only the fields present in the request; nil leaves the
// stored value unchanged. UpdatedBy is stamped at persist time.
func (s *CaseService) Update(ctx context.Context, req dto.UpdateCaseRequest) (*models.Case, error) {
	kase, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != kase.Title {
		taken, err := s.caseRepo.ExistsByTitleAndOwner(ctx, *req.Title, kase.CreatedBy, kase.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check title: %w", err)
		}
		if taken {
			return nil, apperrors.DuplicateTitle()
		}
		kase.Title = *req.Title
	}
	if req.Description != nil {
		kase.Description = *req.Description
	}
	if req.Status != nil {
		kase.Status = *req.Status
	}
	if req.Due != nil {
		kase.Due = req.Due
	}

	if err := s.caseRepo.Update(ctx, kase); err != nil {
		return nil, fmt.Errorf("failed to update case: %w", err)
	}

	return kase, nil
}

// Delete flips the soft-delete flag; the row is never physically removed.
// Deleting an already-deleted case reports not found because reads exclude
// deleted rows.
func (s *CaseService) Delete(ctx context.Context, id uuid.UUID) error {
	kase, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	kase.Deleted = true

	if err := s.caseRepo.Update(ctx, kase); err != nil {
		return fmt.Errorf("failed to delete case: %w", err)
	}

	return nil
}
