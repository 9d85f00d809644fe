package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/casetrack/case-management-api/internal/auth"
	"github.com/casetrack/case-management-api/internal/repository"
)

// PermissionService answers ownership questions for per-resource guards.
type PermissionService struct {
	caseRepo repository.CaseRepository
}

// NewPermissionService creates a new PermissionService
func NewPermissionService(caseRepo repository.CaseRepository) *PermissionService {
	return &PermissionService{caseRepo: caseRepo}
}

// IsCaseOwner reports whether the request principal owns the case. It runs a
// single existence query so "missing" and "owned by someone else" produce the
// same answer; an anonymous request is never an owner.
func (s *PermissionService) IsCaseOwner(ctx context.Context, caseID uuid.UUID) (bool, error) {
	p, ok := auth.FromContext(ctx)
	if !ok {
		return false, nil
	}

	return s.caseRepo.ExistsByIDAndOwner(ctx, caseID, p.ID)
}
